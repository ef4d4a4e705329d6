package liquipedia_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "https://liquipedia.net"

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const tournamentsPage = `
<div class="tournaments-list">
  <span class="tournaments-list-heading">Upcoming</span>
  <ul class="tournaments-list-type-list">
    <li>
      <div class="tournament-badge__chip">Tier 1</div>
      <div class="tournament-badge__text">Qualifier</div>
      <span class="tournament-icon"><img src="/commons/images/ti33.png"></span>
      <span class="tournament-game-icon"><img src="/commons/images/dota2icon.png"></span>
      <span class="tournament-name"><a href="/dota2/The_International/2025">The International 2025</a></span>
      <small class="tournaments-list-dates">Sep 4 - 14, 2025</small>
    </li>
    <li>
      <span class="tournament-name">Community Clash</span>
      <small class="tournaments-list-dates">TBD</small>
    </li>
  </ul>
</div>
<div class="tournaments-list">
  <span class="tournaments-list-heading">Ongoing</span>
  <ul class="tournaments-list-type-list">
    <li></li>
  </ul>
</div>
`

func TestExtractTournaments(t *testing.T) {
	doc := parseDoc(t, tournamentsPage)

	sections := liquipedia.ExtractTournaments(doc, origin)

	require.Len(t, sections.Upcoming, 2)

	full := sections.Upcoming[0]
	assert.Equal(t, "The International 2025", full.Name)
	assert.Equal(t, "Sep 4 - 14, 2025", full.Date)
	require.NotNil(t, full.Link)
	assert.Equal(t, "https://liquipedia.net/dota2/The_International/2025", *full.Link)
	assert.Equal(t, "Tier 1 Qualifier", full.Tier)
	require.NotNil(t, full.Logo)
	assert.Equal(t, "https://liquipedia.net/commons/images/ti33.png", *full.Logo)
	require.NotNil(t, full.GameIcon)
	assert.Equal(t, "https://liquipedia.net/commons/images/dota2icon.png", *full.GameIcon)

	bare := sections.Upcoming[1]
	assert.Equal(t, "Community Clash", bare.Name)
	assert.Nil(t, bare.Link, "no anchor means no link")
	assert.Equal(t, domain.UnknownTier, bare.Tier)
	assert.Nil(t, bare.Logo)
	assert.Nil(t, bare.GameIcon)
}

func TestExtractTournamentsSentinels(t *testing.T) {
	doc := parseDoc(t, tournamentsPage)

	sections := liquipedia.ExtractTournaments(doc, origin)

	// The Ongoing list has one empty item: every field falls back.
	require.Len(t, sections.Ongoing, 1)
	empty := sections.Ongoing[0]
	assert.Equal(t, domain.NoName, empty.Name)
	assert.Equal(t, domain.NoDate, empty.Date)
	assert.Equal(t, domain.UnknownTier, empty.Tier)
	assert.Nil(t, empty.Link)
	assert.Nil(t, empty.Logo)
	assert.Nil(t, empty.GameIcon)
}

func TestExtractTournamentsMissingSectionStaysPresent(t *testing.T) {
	doc := parseDoc(t, tournamentsPage)

	sections := liquipedia.ExtractTournaments(doc, origin)

	// No Completed heading on the page: the key is present and empty.
	assert.Empty(t, sections.Completed)

	data, err := json.Marshal(sections)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Completed":[]`)
}

func TestExtractTournamentsEmptyPage(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)

	sections := liquipedia.ExtractTournaments(doc, origin)

	assert.Empty(t, sections.Upcoming)
	assert.Empty(t, sections.Ongoing)
	assert.Empty(t, sections.Completed)

	data, err := json.Marshal(sections)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Upcoming":[],"Ongoing":[],"Completed":[]}`, string(data))
}

func TestExtractTournamentsKeepsAbsoluteLinks(t *testing.T) {
	doc := parseDoc(t, `
<div>
  <span class="tournaments-list-heading">Upcoming</span>
  <ul class="tournaments-list-type-list">
    <li>
      <span class="tournament-name"><a href="https://example.com/külső">Offsite Cup</a></span>
    </li>
  </ul>
</div>`)

	sections := liquipedia.ExtractTournaments(doc, origin)

	require.Len(t, sections.Upcoming, 1)
	require.NotNil(t, sections.Upcoming[0].Link)
	assert.Equal(t, "https://example.com/külső", *sections.Upcoming[0].Link)
}
