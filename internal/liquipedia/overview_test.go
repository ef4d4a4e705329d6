package liquipedia_test

import (
	"testing"

	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overviewPage = `
<div class="fo-nttax-infobox">
  <div class="infobox-header">Esports World Cup 2025</div>
  <div class="infobox-image lightmode"><img src="/commons/images/ewc_light.png"></div>
  <div class="infobox-image darkmode"><img src="/commons/images/ewc_dark.png"></div>
  <div class="infobox-cell-2 infobox-description">Series:</div><div>Esports World Cup</div>
  <div class="infobox-cell-2 infobox-description">Organizers:</div><div>Esports World Cup Foundation</div>
  <div class="infobox-cell-2 infobox-description">Location:</div><div><img src="/commons/images/sa_flag.png"> Riyadh, Saudi Arabia</div>
  <div class="infobox-cell-2 infobox-description">Prize Pool:</div><div>$70,000,000 USD</div>
  <div class="infobox-cell-2 infobox-description">Start Date:</div><div>2025-07-08</div>
  <div class="infobox-cell-2 infobox-description">End Date:</div><div>2025-08-24</div>
  <div class="infobox-cell-2 infobox-description">Liquipedia Tier:</div><div>S-Tier</div>
  <div class="infobox-icons">
    <a href="https://twitter.com/EsportsWC"><i class="lp-icon lp-twitter"></i></a>
    <a href="https://discord.gg/ewc"><i class="lp-icon lp-discord"></i></a>
    <a href="https://esportsworldcup.com"><i class="lp-icon"></i></a>
  </div>
</div>
<div class="gridTable tournament-card">
  <div class="gridRow">
    <div class="gridCell Tournament Header">
      <img src="/commons/images/dota2_icon.png">
      <a href="/dota2/Esports_World_Cup/2025">Esports World Cup 2025: Dota 2</a>
    </div>
  </div>
  <div class="gridRow">
    <div class="gridCell Tournament Header">
      <img src="/commons/images/valorant_icon.png">
      <a href="/valorant/Esports_World_Cup/2025">Esports World Cup 2025: Valorant</a>
    </div>
  </div>
</div>
<div class="teamcard">
  <center><a href="/esports/Team_Falcons">Team Falcons</a></center>
  <img src="/commons/images/falcons.png">
</div>
<div class="teamcard">
  <center><a href="/esports/Team_Liquid">Team Liquid</a></center>
</div>
<div class="prizepooltable csstable-widget">
  <div class="csstable-widget-row">
    <div class="csstable-widget-cell">Place</div>
    <div class="csstable-widget-cell">Prize</div>
    <div class="csstable-widget-cell">Participants</div>
  </div>
  <div class="csstable-widget-row">
    <div class="csstable-widget-cell"><img src="/commons/images/gold.png"> 1st</div>
    <div class="csstable-widget-cell">$7,000,000</div>
    <div class="csstable-widget-cell"><img src="/commons/images/falcons.png"> Team Falcons</div>
  </div>
  <div class="csstable-widget-row">
    <div class="csstable-widget-cell">2nd</div>
    <div class="csstable-widget-cell">$4,000,000</div>
    <div class="csstable-widget-cell">Team Liquid</div>
  </div>
</div>
`

func TestExtractEvents(t *testing.T) {
	doc := parseDoc(t, overviewPage)

	events := liquipedia.ExtractEvents(doc, origin)

	require.Len(t, events, 2)
	assert.Equal(t, "Esports World Cup 2025: Dota 2", events[0].Name)
	assert.Equal(t, "https://liquipedia.net/dota2/Esports_World_Cup/2025", events[0].Link)
	assert.Equal(t, "https://liquipedia.net/commons/images/dota2_icon.png", events[0].Icon)
	assert.Equal(t, "Esports World Cup 2025: Valorant", events[1].Name)
}

func TestGameSlugFromLink(t *testing.T) {
	assert.Equal(t, "dota2", liquipedia.GameSlugFromLink("https://liquipedia.net/dota2/Esports_World_Cup/2025"))
	assert.Equal(t, "valorant", liquipedia.GameSlugFromLink("https://liquipedia.net/valorant/Esports_World_Cup/2025"))
	assert.Equal(t, "", liquipedia.GameSlugFromLink("https://liquipedia.net/"))
	assert.Equal(t, "", liquipedia.GameSlugFromLink(""))
}

func TestExtractTeams(t *testing.T) {
	doc := parseDoc(t, overviewPage)

	teams := liquipedia.ExtractTeams(doc, origin)

	require.Len(t, teams, 2)
	assert.Equal(t, "Team Falcons", teams[0].Name)
	assert.Equal(t, "https://liquipedia.net/commons/images/falcons.png", teams[0].Logo)
	assert.Equal(t, "Team Liquid", teams[1].Name)
	assert.Equal(t, "", teams[1].Logo)
}

func TestExtractPrizeDistribution(t *testing.T) {
	doc := parseDoc(t, overviewPage)

	prizes := liquipedia.ExtractPrizeDistribution(doc, origin)

	require.Len(t, prizes, 2, "header row is skipped")

	first := prizes[0]
	assert.Equal(t, "1st", first.Place)
	assert.Equal(t, "https://liquipedia.net/commons/images/gold.png", first.PlaceLogo)
	assert.Equal(t, "$7,000,000", first.Prize)
	assert.Equal(t, "Team Falcons", first.Participants)
	assert.Equal(t, "https://liquipedia.net/commons/images/falcons.png", first.TeamLogo)

	second := prizes[1]
	assert.Equal(t, "2nd", second.Place)
	assert.Equal(t, "", second.PlaceLogo)
	assert.Equal(t, "Team Liquid", second.Participants)
}

func TestExtractInfo(t *testing.T) {
	doc := parseDoc(t, overviewPage)

	info, ok := liquipedia.ExtractInfo(doc, origin)
	require.True(t, ok)

	assert.Equal(t, "Esports World Cup 2025", info.Header)
	assert.Equal(t, "Esports World Cup", info.Series)
	assert.Equal(t, "Esports World Cup Foundation", info.Organizers)
	assert.Equal(t, "Riyadh, Saudi Arabia", info.Location)
	assert.Equal(t, "$70,000,000 USD", info.PrizePool)
	assert.Equal(t, "2025-07-08", info.StartDate)
	assert.Equal(t, "2025-08-24", info.EndDate)
	assert.Equal(t, "S-Tier", info.LiquipediaTier)
	assert.Equal(t, "https://liquipedia.net/commons/images/ewc_light.png", info.LogoLight)
	assert.Equal(t, "https://liquipedia.net/commons/images/ewc_dark.png", info.LogoDark)
	assert.Equal(t, "https://liquipedia.net/commons/images/sa_flag.png", info.LocationLogo)

	assert.Equal(t, "https://twitter.com/EsportsWC", info.SocialLinks["twitter"])
	assert.Equal(t, "https://discord.gg/ewc", info.SocialLinks["discord"])
	assert.Equal(t, "https://esportsworldcup.com", info.SocialLinks["esportsworldcup"], "host fallback when the icon class names no platform")
}

func TestExtractInfoMissing(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)

	_, ok := liquipedia.ExtractInfo(doc, origin)
	assert.False(t, ok)
}
