package liquipedia

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
)

// ExtractTournaments reads the three tournament lists off a game's Main_Page.
// A heading that is missing from the page yields an empty section, never an
// absent key.
func ExtractTournaments(doc *goquery.Document, origin string) domain.TournamentSections {
	return domain.TournamentSections{
		Upcoming:  extractTournamentSection(doc, origin, "Upcoming"),
		Ongoing:   extractTournamentSection(doc, origin, "Ongoing"),
		Completed: extractTournamentSection(doc, origin, "Completed"),
	}
}

// extractTournamentSection finds the heading whose text matches the section
// name and walks the list next to it.
func extractTournamentSection(doc *goquery.Document, origin, section string) []domain.Tournament {
	tournaments := []domain.Tournament{}

	heading := doc.Find("span.tournaments-list-heading").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == section
	}).First()
	if heading.Length() == 0 {
		return tournaments
	}

	list := heading.Parent().Find("ul.tournaments-list-type-list").First()
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		tournaments = append(tournaments, extractTournament(li, origin))
	})
	return tournaments
}

func extractTournament(li *goquery.Selection, origin string) domain.Tournament {
	t := domain.Tournament{
		Name: domain.NoName,
		Date: domain.NoDate,
		Tier: domain.UnknownTier,
	}

	if name := li.Find("span.tournament-name").First(); name.Length() > 0 {
		t.Name = strings.TrimSpace(name.Text())
		if href, ok := name.Find("a").First().Attr("href"); ok {
			link := absURL(origin, href)
			t.Link = &link
		}
	}

	if dates := li.Find("small.tournaments-list-dates").First(); dates.Length() > 0 {
		t.Date = strings.TrimSpace(dates.Text())
	}

	if chip := li.Find("div.tournament-badge__chip").First(); chip.Length() > 0 {
		t.Tier = strings.TrimSpace(chip.Text())
	}
	// A qualifier badge extends the tier text, even the "Unknown" fallback.
	if qualifier := li.Find("div.tournament-badge__text").First(); qualifier.Length() > 0 {
		t.Tier = t.Tier + " " + strings.TrimSpace(qualifier.Text())
	}

	if src, ok := li.Find("span.tournament-icon img").First().Attr("src"); ok {
		logo := absURL(origin, src)
		t.Logo = &logo
	}
	if src, ok := li.Find("span.tournament-game-icon img").First().Attr("src"); ok {
		icon := absURL(origin, src)
		t.GameIcon = &icon
	}

	return t
}
