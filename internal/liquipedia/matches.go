package liquipedia

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
)

// data-toggle-area-content values on Liquipedia:Matches.
const (
	toggleUpcoming  = "1"
	toggleCompleted = "2"
)

// ExtractMatches classifies every match block on a Liquipedia:Matches page
// as upcoming or completed and groups it under its tournament name. Sections
// with any other toggle value are skipped.
func ExtractMatches(doc *goquery.Document) domain.MatchSections {
	sections := domain.MatchSections{
		Upcoming:  map[string][]domain.Match{},
		Completed: map[string][]domain.Match{},
	}

	doc.Find("div[data-toggle-area-content]").Each(func(_ int, area *goquery.Selection) {
		var bucket map[string][]domain.Match
		switch area.AttrOr("data-toggle-area-content", "") {
		case toggleUpcoming:
			bucket = sections.Upcoming
		case toggleCompleted:
			bucket = sections.Completed
		default:
			return
		}

		area.Find(".match").Each(func(_ int, block *goquery.Selection) {
			tournament := domain.UnknownTournament
			if a := block.Find(".match-tournament .tournament-name a").First(); a.Length() > 0 {
				tournament = strings.TrimSpace(a.Text())
			}
			bucket[tournament] = append(bucket[tournament], extractMatch(block))
		})
	})

	return sections
}

func extractMatch(block *goquery.Selection) domain.Match {
	m := domain.Match{
		Team1:   domain.NoTeam,
		Team2:   domain.NoTeam,
		Rating1: domain.NoRating,
		Rating2: domain.NoRating,
		Format:  domain.NoFormat,
		Time:    domain.NoTime,
	}

	if name := block.Find(".team-left .team-template-text a").First(); name.Length() > 0 {
		m.Team1 = strings.TrimSpace(name.Text())
	}
	if name := block.Find(".team-right .team-template-text a").First(); name.Length() > 0 {
		m.Team2 = strings.TrimSpace(name.Text())
	}

	if rating := block.Find(".team-left .team-rating").First(); rating.Length() > 0 {
		m.Rating1 = strings.TrimSpace(rating.Text())
	}
	if rating := block.Find(".team-right .team-rating").First(); rating.Length() > 0 {
		m.Rating2 = strings.TrimSpace(rating.Text())
	}

	if format := block.Find(".versus-lower abbr").First(); format.Length() > 0 {
		m.Format = strings.TrimSpace(format.Text())
	}

	m.Result = extractResult(block)

	if t := block.Find("div.match-details > div.match-bottom-bar > span > span").First(); t.Length() > 0 {
		m.Time = strings.TrimSpace(t.Text())
	} else if t := block.Find(".timer-object-date").First(); t.Length() > 0 {
		m.Time = strings.TrimSpace(t.Text())
	}

	return m
}

// extractResult prefers a colon-joined score, taken only when every score
// span has text, then falls back to the left team's rank. When neither
// yields text the result stays absent; consumers branch on key presence.
func extractResult(block *goquery.Selection) *domain.MatchResult {
	spans := block.Find(".versus-upper span")
	if spans.Length() > 0 {
		parts := make([]string, 0, spans.Length())
		complete := true
		spans.Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text == "" {
				complete = false
				return
			}
			parts = append(parts, text)
		})
		if complete {
			return &domain.MatchResult{Kind: domain.ResultKindScore, Value: strings.Join(parts, ":")}
		}
	}

	if rank := block.Find(".team-left .team-rank").First(); rank.Length() > 0 {
		if text := strings.TrimSpace(rank.Text()); text != "" {
			return &domain.MatchResult{Kind: domain.ResultKindRank, Value: text}
		}
	}

	return nil
}
