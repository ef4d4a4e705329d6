package liquipedia

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
)

// ExtractGroupMatches walks the bracket match lists on a group stage page and
// buckets matches by group title. A list without a title gets a positional
// "Group N" name.
func ExtractGroupMatches(doc *goquery.Document, origin string) domain.GameGroups {
	groups := domain.GameGroups{}

	doc.Find(".brkts-matchlist").Each(func(i int, list *goquery.Selection) {
		title := strings.TrimSpace(list.Find(".brkts-matchlist-title").First().Text())
		if title == "" {
			title = fmt.Sprintf("Group %d", i+1)
		}

		matches := []domain.GroupMatch{}
		list.Find(".brkts-matchlist-match").Each(func(_ int, block *goquery.Selection) {
			matches = append(matches, extractGroupMatch(block, origin))
		})
		groups[title] = matches
	})

	return groups
}

// extractGroupMatch reads one match row. Exactly two opponent cells are
// required; any other count leaves both teams at the "N/A" sentinel.
func extractGroupMatch(block *goquery.Selection, origin string) domain.GroupMatch {
	m := domain.GroupMatch{
		Team1:     domain.GroupTeam{Name: domain.NoTeam, Logo: domain.NoTeam},
		Team2:     domain.GroupTeam{Name: domain.NoTeam, Logo: domain.NoTeam},
		MatchTime: domain.NoTime,
	}

	opponents := block.Find(".brkts-matchlist-opponent")
	if opponents.Length() == 2 {
		m.Team1 = extractGroupTeam(opponents.Eq(0), origin)
		m.Team2 = extractGroupTeam(opponents.Eq(1), origin)
	}

	scores := []string{}
	block.Find(".brkts-matchlist-score").Each(func(_ int, cell *goquery.Selection) {
		if text := strings.TrimSpace(cell.Text()); text != "" {
			scores = append(scores, text)
		}
	})
	m.Score = strings.Join(scores, ":")

	if timer := block.Find(".timer-object").First(); timer.Length() > 0 {
		if text := strings.TrimSpace(timer.Text()); text != "" {
			m.MatchTime = text
		}
	}
	m.MatchDate = MatchDateOf(m.MatchTime)

	return m
}

func extractGroupTeam(cell *goquery.Selection, origin string) domain.GroupTeam {
	team := domain.GroupTeam{Name: domain.NoTeam, Logo: domain.NoTeam}

	if name := strings.TrimSpace(cell.Find(".name").First().Text()); name != "" {
		team.Name = name
	} else if text := strings.TrimSpace(cell.Text()); text != "" {
		team.Name = text
	}

	if src, ok := cell.Find("img").First().Attr("src"); ok {
		team.Logo = absURL(origin, src)
	}

	return team
}
