package liquipedia_test

import (
	"testing"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupStagePage = `
<div class="brkts-matchlist">
  <div class="brkts-matchlist-title">Group A</div>
  <div class="brkts-matchlist-match">
    <div class="brkts-matchlist-opponent"><img src="/commons/images/falcons.png"><span class="name">Team Falcons</span></div>
    <div class="brkts-matchlist-score">2</div>
    <div class="brkts-matchlist-score">0</div>
    <div class="brkts-matchlist-opponent"><img src="/commons/images/liquid.png"><span class="name">Team Liquid</span></div>
    <span class="timer-object">July 8, 2025 - 17:00 CEST</span>
  </div>
  <div class="brkts-matchlist-match">
    <div class="brkts-matchlist-opponent"><span class="name">Orphan</span></div>
    <span class="timer-object">TBD</span>
  </div>
</div>
<div class="brkts-matchlist">
  <div class="brkts-matchlist-match">
    <div class="brkts-matchlist-opponent"><span class="name">Alpha</span></div>
    <div class="brkts-matchlist-opponent"><span class="name">Beta</span></div>
    <span class="timer-object">July 10, 2025</span>
  </div>
</div>
`

func TestExtractGroupMatches(t *testing.T) {
	doc := parseDoc(t, groupStagePage)

	groups := liquipedia.ExtractGroupMatches(doc, origin)

	require.Len(t, groups, 2)
	require.Len(t, groups["Group A"], 2)

	m := groups["Group A"][0]
	assert.Equal(t, "Team Falcons", m.Team1.Name)
	assert.Equal(t, "https://liquipedia.net/commons/images/falcons.png", m.Team1.Logo)
	assert.Equal(t, "Team Liquid", m.Team2.Name)
	assert.Equal(t, "https://liquipedia.net/commons/images/liquid.png", m.Team2.Logo)
	assert.Equal(t, "2:0", m.Score)
	assert.Equal(t, "July 8, 2025 - 17:00 CEST", m.MatchTime)
	assert.Equal(t, "2025-07-08", m.MatchDate)
}

func TestExtractGroupMatchesSingleOpponent(t *testing.T) {
	doc := parseDoc(t, groupStagePage)

	groups := liquipedia.ExtractGroupMatches(doc, origin)

	// One opponent cell is not a match: both sides fall back uniformly.
	m := groups["Group A"][1]
	assert.Equal(t, domain.NoTeam, m.Team1.Name)
	assert.Equal(t, domain.NoTeam, m.Team1.Logo)
	assert.Equal(t, domain.NoTeam, m.Team2.Name)
	assert.Equal(t, domain.NoTeam, m.Team2.Logo)
	assert.Equal(t, "TBD", m.MatchTime)
	assert.Equal(t, domain.UnknownDate, m.MatchDate)
	assert.Equal(t, "", m.Score)
}

func TestExtractGroupMatchesUntitledList(t *testing.T) {
	doc := parseDoc(t, groupStagePage)

	groups := liquipedia.ExtractGroupMatches(doc, origin)

	require.Contains(t, groups, "Group 2")
	m := groups["Group 2"][0]
	assert.Equal(t, "Alpha", m.Team1.Name)
	assert.Equal(t, domain.NoTeam, m.Team1.Logo, "no image in the cell")
	assert.Equal(t, "Beta", m.Team2.Name)
	assert.Equal(t, "2025-07-10", m.MatchDate, "date-only display times parse too")
}

func TestExtractGroupMatchesEmptyPage(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)

	groups := liquipedia.ExtractGroupMatches(doc, origin)
	assert.Empty(t, groups)
}
