package liquipedia

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Scraped rows from the Esports World Cup overview page. The page carries
// four things this service snapshots: the per-game tournament grid, the team
// cards, the prize pool table and the info box.

// EventRow is one tournament row in the overview grid.
type EventRow struct {
	Name string
	Link string
	Icon string
}

// TeamRow is one participating team card.
type TeamRow struct {
	Name string
	Logo string
}

// PrizeRow is one place row of the prize pool table.
type PrizeRow struct {
	Place        string
	PlaceLogo    string
	Prize        string
	Participants string
	TeamLogo     string
}

// Info is the tournament info box.
type Info struct {
	Header         string
	Series         string
	Organizers     string
	Location       string
	PrizePool      string
	StartDate      string
	EndDate        string
	LiquipediaTier string
	LogoLight      string
	LogoDark       string
	LocationLogo   string
	SocialLinks    map[string]string
}

// ExtractEvents lists the per-game tournaments in the overview grid. Rows
// without a named link are skipped.
func ExtractEvents(doc *goquery.Document, origin string) []EventRow {
	rows := []EventRow{}

	doc.Find("div.gridTable.tournament-card div.gridRow").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("div.gridCell.Tournament.Header").First()
		if cell.Length() == 0 {
			return
		}

		var name, link string
		cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			text := strings.TrimSpace(a.Text())
			if text == "" {
				return true
			}
			name = text
			link = absURL(origin, a.AttrOr("href", ""))
			return false
		})
		if name == "" {
			return
		}

		icon := ""
		if src, ok := cell.Find("img").First().Attr("src"); ok {
			icon = absURL(origin, src)
		}

		rows = append(rows, EventRow{Name: name, Link: link, Icon: icon})
	})

	return rows
}

// GameSlugFromLink pulls the game segment out of an event link:
// https://liquipedia.net/dota2/Esports_World_Cup/2025 -> "dota2".
func GameSlugFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}
	return strings.ToLower(strings.SplitN(path, "/", 2)[0])
}

// ExtractTeams lists the participating team cards.
func ExtractTeams(doc *goquery.Document, origin string) []TeamRow {
	rows := []TeamRow{}

	doc.Find("div.teamcard").Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("center a").First().Text())
		if name == "" {
			name = strings.TrimSpace(card.Find("center").First().Text())
		}
		if name == "" {
			return
		}

		logo := ""
		if src, ok := card.Find("img").First().Attr("src"); ok {
			logo = absURL(origin, src)
		}

		rows = append(rows, TeamRow{Name: name, Logo: logo})
	})

	return rows
}

// ExtractPrizeDistribution reads the prize pool table. The header row and
// rows with neither place nor prize are skipped.
func ExtractPrizeDistribution(doc *goquery.Document, origin string) []PrizeRow {
	rows := []PrizeRow{}

	table := doc.Find("div.prizepooltable").First()
	table.Find("div.csstable-widget-row").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("div.csstable-widget-cell")
		if cells.Length() < 3 {
			return
		}

		place := cells.Eq(0)
		prize := cells.Eq(1)
		participants := cells.Eq(2)

		r := PrizeRow{
			Place:        strings.TrimSpace(place.Text()),
			Prize:        strings.TrimSpace(prize.Text()),
			Participants: strings.TrimSpace(participants.Text()),
		}
		if r.Place == "Place" || (r.Place == "" && r.Prize == "") {
			return
		}

		if src, ok := place.Find("img").First().Attr("src"); ok {
			r.PlaceLogo = absURL(origin, src)
		}
		if src, ok := participants.Find("img").First().Attr("src"); ok {
			r.TeamLogo = absURL(origin, src)
		}

		rows = append(rows, r)
	})

	return rows
}

// ExtractInfo reads the tournament info box. The bool reports whether the
// box exists on the page at all; missing rows inside it stay empty.
func ExtractInfo(doc *goquery.Document, origin string) (Info, bool) {
	box := doc.Find("div.fo-nttax-infobox").First()
	if box.Length() == 0 {
		return Info{}, false
	}

	info := Info{SocialLinks: map[string]string{}}
	info.Header = strings.TrimSpace(box.Find("div.infobox-header").First().Text())

	box.Find("div.infobox-cell-2.infobox-description").Each(func(_ int, label *goquery.Selection) {
		value := label.Next()
		text := strings.TrimSpace(value.Text())

		switch strings.TrimSuffix(strings.TrimSpace(label.Text()), ":") {
		case "Series":
			info.Series = text
		case "Organizer", "Organizers":
			info.Organizers = text
		case "Location":
			info.Location = text
			if src, ok := value.Find("img").First().Attr("src"); ok {
				info.LocationLogo = absURL(origin, src)
			}
		case "Prize Pool":
			info.PrizePool = text
		case "Start Date":
			info.StartDate = text
		case "End Date":
			info.EndDate = text
		case "Liquipedia Tier":
			info.LiquipediaTier = text
		}
	})

	if src, ok := box.Find("div.infobox-image.lightmode img").First().Attr("src"); ok {
		info.LogoLight = absURL(origin, src)
	}
	if src, ok := box.Find("div.infobox-image.darkmode img").First().Attr("src"); ok {
		info.LogoDark = absURL(origin, src)
	}

	box.Find("div.infobox-icons a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" {
			return
		}
		info.SocialLinks[socialPlatform(a, href)] = href
	})

	return info, true
}

// socialPlatform names a social link by its icon class (lp-icon lp-twitter)
// with the link's host as fallback.
func socialPlatform(a *goquery.Selection, href string) string {
	if classes, ok := a.Find("i").First().Attr("class"); ok {
		for _, class := range strings.Fields(classes) {
			if strings.HasPrefix(class, "lp-") && class != "lp-icon" {
				return strings.TrimPrefix(class, "lp-")
			}
		}
	}
	if u, err := url.Parse(href); err == nil && u.Host != "" {
		host := strings.TrimPrefix(u.Host, "www.")
		if i := strings.IndexByte(host, '.'); i > 0 {
			return host[:i]
		}
		return host
	}
	return "link"
}
