package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIClient drives the scraper API over HTTP.
type APIClient struct {
	http *resty.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL + "/api").
			SetTimeout(60 * time.Second),
	}
}

// envelope is the wrapper every endpoint responds with.
type envelope struct {
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	Error      string          `json:"error"`
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Response types matching the backend, trimmed to the fields we print

type Tournament struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Tier string `json:"tier"`
}

type TournamentSections struct {
	Upcoming  []Tournament `json:"Upcoming"`
	Ongoing   []Tournament `json:"Ongoing"`
	Completed []Tournament `json:"Completed"`
}

type Match struct {
	Team1  string  `json:"team1"`
	Team2  string  `json:"team2"`
	Format string  `json:"format"`
	Time   string  `json:"time"`
	Result *string `json:"result"`
}

type MatchSections struct {
	Upcoming  map[string][]Match `json:"upcoming"`
	Completed map[string][]Match `json:"completed"`
}

type GroupTeam struct {
	Name string `json:"name"`
}

type GroupMatch struct {
	Team1     GroupTeam `json:"team1"`
	Team2     GroupTeam `json:"team2"`
	MatchTime string    `json:"match_time"`
	Score     string    `json:"score"`
	MatchDate string    `json:"match_date"`
}

type AggregatedMatch struct {
	GroupMatch
	Game  string `json:"game"`
	Group string `json:"group"`
}

type AllMatches struct {
	Matches     []AggregatedMatch `json:"matches"`
	FailedGames []string          `json:"failed_games"`
}

type Event struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type Game struct {
	GameName string `json:"game_name"`
}

type Team struct {
	TeamName string `json:"team_name"`
}

type Prize struct {
	Place        string `json:"place"`
	Prize        string `json:"prize"`
	Participants string `json:"participants"`
}

type Info struct {
	Header    string `json:"header"`
	Series    string `json:"series"`
	Location  string `json:"location"`
	PrizePool string `json:"prize_pool"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ScrapeTournaments fetches the tournament listing for one game.
func (c *APIClient) ScrapeTournaments(game string, force bool) (*TournamentSections, error) {
	env, err := c.post("/tournaments", map[string]interface{}{"game": game, "force": force})
	if err != nil {
		return nil, err
	}

	var sections TournamentSections
	if err := json.Unmarshal(env.Data, &sections); err != nil {
		return nil, fmt.Errorf("decode tournaments: %w", err)
	}
	return &sections, nil
}

// ScrapeMatches fetches the match ticker for one game.
func (c *APIClient) ScrapeMatches(game string, force bool) (*MatchSections, error) {
	env, err := c.post("/matches", map[string]interface{}{"game": game, "force": force})
	if err != nil {
		return nil, err
	}

	var sections MatchSections
	if err := json.Unmarshal(env.Data, &sections); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return &sections, nil
}

// GroupMatches fetches the group-stage bracket for one game.
func (c *APIClient) GroupMatches(game string, force bool, date string) (map[string][]GroupMatch, error) {
	body := map[string]interface{}{"game": game, "force": force}
	if date != "" {
		body["date"] = date
	}

	env, err := c.post("/ewc/matches", body)
	if err != nil {
		return nil, err
	}

	var groups map[string][]GroupMatch
	if err := json.Unmarshal(env.Data, &groups); err != nil {
		return nil, fmt.Errorf("decode group matches: %w", err)
	}
	return groups, nil
}

// AllMatchesQuery narrows and pages the aggregated schedule.
type AllMatchesQuery struct {
	Force   bool
	Game    string
	Group   string
	Date    string
	Page    int
	PerPage int
}

// AllMatches fetches the cross-game schedule.
func (c *APIClient) AllMatches(q AllMatchesQuery) (*AllMatches, *Pagination, error) {
	params := map[string]string{}
	if q.Force {
		params["force"] = "true"
	}
	if q.Game != "" {
		params["game"] = q.Game
	}
	if q.Group != "" {
		params["group"] = q.Group
	}
	if q.Date != "" {
		params["date"] = q.Date
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}

	env, err := c.get("/ewc/matches", params)
	if err != nil {
		return nil, nil, err
	}

	var all AllMatches
	if err := json.Unmarshal(env.Data, &all); err != nil {
		return nil, nil, fmt.Errorf("decode schedule: %w", err)
	}
	return &all, env.Pagination, nil
}

// Events fetches the tournament event list, live rescraping when asked.
func (c *APIClient) Events(live bool) ([]Event, error) {
	var events []Event
	if err := c.getInto("/ewc/events", live, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Games fetches the known game slugs.
func (c *APIClient) Games(live bool) ([]Game, error) {
	var games []Game
	if err := c.getInto("/ewc/games", live, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Teams fetches the participating teams.
func (c *APIClient) Teams(live bool) ([]Team, error) {
	var teams []Team
	if err := c.getInto("/ewc/teams", live, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Prizes fetches the prize distribution table.
func (c *APIClient) Prizes(live bool) ([]Prize, error) {
	var prizes []Prize
	if err := c.getInto("/ewc/prizes", live, &prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

// TournamentInfo fetches the tournament info box.
func (c *APIClient) TournamentInfo(live bool) (*Info, error) {
	var info Info
	if err := c.getInto("/ewc/info", live, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// HTTP helpers

func (c *APIClient) getInto(path string, live bool, out interface{}) error {
	params := map[string]string{}
	if live {
		params["live"] = "true"
	}

	env, err := c.get(path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *APIClient) get(path string, params map[string]string) (*envelope, error) {
	resp, err := c.http.R().SetQueryParams(params).Get(path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return parseEnvelope(resp)
}

func (c *APIClient) post(path string, body interface{}) (*envelope, error) {
	resp, err := c.http.R().SetBody(body).Post(path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return parseEnvelope(resp)
}

func parseEnvelope(resp *resty.Response) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode(), err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%s (status %d)", env.Error, resp.StatusCode())
	}
	return &env, nil
}
