package liquipedia_test

import (
	"encoding/json"
	"testing"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchesPage = `
<div data-toggle-area-content="1">
  <div class="match">
    <div class="team-left">
      <span class="team-template-text"><a href="/dota2/Team_Spirit">Team Spirit</a></span>
      <span class="team-rating">1623</span>
    </div>
    <div class="team-right">
      <span class="team-template-text"><a href="/dota2/Gaimin_Gladiators">Gaimin Gladiators</a></span>
      <span class="team-rating">1588</span>
    </div>
    <div class="versus-lower"><abbr title="Best of 3">Bo3</abbr></div>
    <div class="match-tournament"><div class="tournament-name"><a href="/dota2/ESL_One">ESL One Raleigh</a></div></div>
    <div class="match-details"><div class="match-bottom-bar"><span><span>July 8, 2025 - 17:00 CEST</span></span></div></div>
  </div>
  <div class="match"></div>
</div>
<div data-toggle-area-content="2">
  <div class="match">
    <div class="team-left"><span class="team-template-text"><a>Team Falcons</a></span></div>
    <div class="team-right"><span class="team-template-text"><a>Team Liquid</a></span></div>
    <div class="versus-upper"><span>2</span><span>1</span></div>
    <div class="versus-lower"><abbr title="Best of 3">Bo3</abbr></div>
    <div class="match-tournament"><div class="tournament-name"><a href="/dota2/ESL_One">ESL One Raleigh</a></div></div>
    <div class="timer-object-date">July 6, 2025 - 20:00 CEST</div>
  </div>
  <div class="match">
    <div class="team-left">
      <span class="team-template-text"><a>Tundra</a></span>
      <span class="team-rank">#4</span>
    </div>
    <div class="versus-upper"><span>2</span><span></span></div>
    <div class="match-tournament"><div class="tournament-name"><a href="/dota2/Riyadh_Masters">Riyadh Masters</a></div></div>
  </div>
</div>
<div data-toggle-area-content="3">
  <div class="match">
    <div class="team-left"><span class="team-template-text"><a>Hidden</a></span></div>
  </div>
</div>
`

func TestExtractMatchesClassification(t *testing.T) {
	doc := parseDoc(t, matchesPage)

	sections := liquipedia.ExtractMatches(doc)

	require.Len(t, sections.Upcoming["ESL One Raleigh"], 1)
	require.Len(t, sections.Upcoming[domain.UnknownTournament], 1)
	require.Len(t, sections.Completed["ESL One Raleigh"], 1)
	require.Len(t, sections.Completed["Riyadh Masters"], 1)

	// Toggle value "3" belongs to neither bucket.
	total := 0
	for _, matches := range sections.Upcoming {
		total += len(matches)
	}
	for _, matches := range sections.Completed {
		total += len(matches)
	}
	assert.Equal(t, 4, total)
}

func TestExtractMatchesFullBlock(t *testing.T) {
	doc := parseDoc(t, matchesPage)

	sections := liquipedia.ExtractMatches(doc)

	m := sections.Upcoming["ESL One Raleigh"][0]
	assert.Equal(t, "Team Spirit", m.Team1)
	assert.Equal(t, "Gaimin Gladiators", m.Team2)
	assert.Equal(t, "1623", m.Rating1)
	assert.Equal(t, "1588", m.Rating2)
	assert.Equal(t, "Bo3", m.Format)
	assert.Equal(t, "July 8, 2025 - 17:00 CEST", m.Time)
	assert.Nil(t, m.Result, "no score spans, no rank: result stays absent")
}

func TestExtractMatchesSentinels(t *testing.T) {
	doc := parseDoc(t, matchesPage)

	sections := liquipedia.ExtractMatches(doc)

	m := sections.Upcoming[domain.UnknownTournament][0]
	assert.Equal(t, domain.NoTeam, m.Team1)
	assert.Equal(t, domain.NoTeam, m.Team2)
	assert.Equal(t, domain.NoRating, m.Rating1)
	assert.Equal(t, domain.NoRating, m.Rating2)
	assert.Equal(t, domain.NoFormat, m.Format)
	assert.Equal(t, domain.NoTime, m.Time)
	assert.Nil(t, m.Result)
}

func TestExtractMatchesScoreResult(t *testing.T) {
	doc := parseDoc(t, matchesPage)

	sections := liquipedia.ExtractMatches(doc)

	m := sections.Completed["ESL One Raleigh"][0]
	require.NotNil(t, m.Result)
	assert.Equal(t, domain.ResultKindScore, m.Result.Kind)
	assert.Equal(t, "2:1", m.Result.Value)

	// The alternate time selector fills in when the bottom bar is missing.
	assert.Equal(t, "July 6, 2025 - 20:00 CEST", m.Time)
}

func TestExtractMatchesRankFallback(t *testing.T) {
	doc := parseDoc(t, matchesPage)

	sections := liquipedia.ExtractMatches(doc)

	// One empty score span disqualifies the colon join; the rank steps in.
	m := sections.Completed["Riyadh Masters"][0]
	require.NotNil(t, m.Result)
	assert.Equal(t, domain.ResultKindRank, m.Result.Kind)
	assert.Equal(t, "#4", m.Result.Value)
}

func TestExtractMatchesEmptyRankStaysAbsent(t *testing.T) {
	doc := parseDoc(t, `
<div data-toggle-area-content="2">
  <div class="match">
    <div class="team-left">
      <span class="team-template-text"><a>Alpha</a></span>
      <span class="team-rank">  </span>
    </div>
    <div class="versus-upper"><span></span></div>
  </div>
</div>`)

	sections := liquipedia.ExtractMatches(doc)

	m := sections.Completed[domain.UnknownTournament][0]
	assert.Nil(t, m.Result)
}

func TestMatchResultSerialization(t *testing.T) {
	withScore := domain.Match{
		Team1:   "Team Falcons",
		Team2:   "Team Liquid",
		Rating1: "-",
		Rating2: "-",
		Format:  "Bo3",
		Time:    "N/A",
		Result:  &domain.MatchResult{Kind: domain.ResultKindScore, Value: "2:1"},
	}
	data, err := json.Marshal(withScore)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"result":"2:1"`)

	withScore.Result = nil
	data, err = json.Marshal(withScore)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "result")

	var decoded domain.Match
	require.NoError(t, json.Unmarshal([]byte(`{"team1":"A","team2":"B","result":"#4"}`), &decoded))
	require.NotNil(t, decoded.Result)
	assert.Equal(t, domain.ResultKindRank, decoded.Result.Kind)
	assert.Equal(t, "#4", decoded.Result.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"team1":"A","team2":"B","result":"0:2"}`), &decoded))
	require.NotNil(t, decoded.Result)
	assert.Equal(t, domain.ResultKindScore, decoded.Result.Kind)
}

func TestExtractMatchesBothBucketsAlwaysPresent(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)

	sections := liquipedia.ExtractMatches(doc)

	data, err := json.Marshal(sections)
	require.NoError(t, err)
	assert.JSONEq(t, `{"upcoming":{},"completed":{}}`, string(data))
}
