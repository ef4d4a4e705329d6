package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
	"gorm.io/datatypes"
)

// dateFilterPattern is the only accepted date filter shape. Anything else is
// rejected before any fetch work happens.
var dateFilterPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateFilter accepts an empty filter or a strict YYYY-MM-DD string.
func ValidateDateFilter(date string) error {
	if date == "" || dateFilterPattern.MatchString(date) {
		return nil
	}
	return domain.ErrInvalidDateFilter
}

type EWCService struct {
	client  *liquipedia.Client
	cache   *cache.Cache
	repos   *repository.Repositories
	workers int
}

func NewEWCService(client *liquipedia.Client, c *cache.Cache, repos *repository.Repositories, workers int) *EWCService {
	if workers < 1 {
		workers = 1
	}
	return &EWCService{client: client, cache: c, repos: repos, workers: workers}
}

// GetGroupMatches returns one game's group-stage matches keyed by group
// title. An optional date filter keeps only matches on that day; groups the
// filter empties out are dropped.
func (s *EWCService) GetGroupMatches(ctx context.Context, game string, force bool, date string) (domain.GameGroups, error) {
	if err := ValidateDateFilter(date); err != nil {
		return nil, err
	}

	groups, err := s.groupMatches(ctx, game, force)
	if err != nil {
		return nil, err
	}
	if date != "" {
		groups = filterGroupsByDate(groups, date)
	}
	return groups, nil
}

// groupMatches is the cache-or-scrape path for one game's group stage.
func (s *EWCService) groupMatches(ctx context.Context, game string, force bool) (domain.GameGroups, error) {
	key := cache.Key(game, "ewc_matches")

	if !force {
		if data, fresh := s.cache.Get(key); fresh {
			var groups domain.GameGroups
			if err := json.Unmarshal(data, &groups); err == nil {
				return groups, nil
			}
		}
	}

	doc, err := s.client.GetDocument(ctx, liquipedia.GroupStagePath(game))
	if err != nil {
		return nil, err
	}
	groups := liquipedia.ExtractGroupMatches(doc, s.client.BaseURL())

	if data, err := json.Marshal(groups); err == nil {
		if err := s.cache.Put(key, data); err != nil {
			log.Printf("WARN [ewc.cache] write %s: %v", key, err)
		}
	}

	return groups, nil
}

func filterGroupsByDate(groups domain.GameGroups, date string) domain.GameGroups {
	filtered := domain.GameGroups{}
	for group, matches := range groups {
		var keep []domain.GroupMatch
		for _, m := range matches {
			if m.MatchDate == date {
				keep = append(keep, m)
			}
		}
		if len(keep) > 0 {
			filtered[group] = keep
		}
	}
	return filtered
}

type AllMatchesOptions struct {
	Force   bool
	Game    string
	Group   string
	Date    string
	Page    int
	PerPage int
}

type AllMatchesResult struct {
	Matches     []domain.AggregatedMatch
	FailedGames []string
	Pagination  Pagination
}

// GetAllMatches aggregates every candidate game's group stage into one
// filtered, chronologically sorted, paginated listing. A game whose scrape
// fails lands in FailedGames and never fails the request.
func (s *EWCService) GetAllMatches(ctx context.Context, opts AllMatchesOptions) (*AllMatchesResult, error) {
	if err := ValidateDateFilter(opts.Date); err != nil {
		return nil, err
	}

	games, err := s.candidateGames(ctx, opts.Force)
	if err != nil {
		return nil, err
	}

	perGame, failed := s.scrapeGames(ctx, games, opts.Force)

	flat := flattenMatches(perGame)
	flat = filterMatches(flat, opts.Game, opts.Group, opts.Date)
	sortMatches(flat)

	window, pagination := PaginateMatches(flat, opts.Page, opts.PerPage)
	return &AllMatchesResult{Matches: window, FailedGames: failed, Pagination: pagination}, nil
}

type DayMatchesOptions struct {
	Force bool
	Game  string
	Group string
	Date  string
}

// GetMatchesByDay returns the cross-game schedule grouped by calendar day.
// Days come out chronologically with the "Unknown Date" bucket last; games
// and groups within a day are alphabetical.
func (s *EWCService) GetMatchesByDay(ctx context.Context, opts DayMatchesOptions) ([]domain.MatchDay, []string, error) {
	if err := ValidateDateFilter(opts.Date); err != nil {
		return nil, nil, err
	}

	games, err := s.candidateGames(ctx, opts.Force)
	if err != nil {
		return nil, nil, err
	}

	perGame, failed := s.scrapeGames(ctx, games, opts.Force)

	flat := flattenMatches(perGame)
	flat = filterMatches(flat, opts.Game, opts.Group, opts.Date)
	sortMatches(flat)

	return groupByDay(flat), failed, nil
}

// candidateGames lists the games to aggregate over, refreshing the snapshot
// from the overview page when forced or when the table is still empty.
func (s *EWCService) candidateGames(ctx context.Context, force bool) ([]domain.Game, error) {
	if !force {
		games, err := s.repos.Game.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(games) > 0 {
			return games, nil
		}
	}

	if err := s.refreshEvents(ctx); err != nil {
		return nil, err
	}
	return s.repos.Game.GetAll(ctx)
}

// scrapeGames fetches every game's group stage on a bounded worker pool.
// Results keep input order so FailedGames is deterministic.
func (s *EWCService) scrapeGames(ctx context.Context, games []domain.Game, force bool) (map[string]domain.GameGroups, []string) {
	type scrape struct {
		groups domain.GameGroups
		err    error
	}
	results := make([]scrape, len(games))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, game := range games {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			groups, err := s.groupMatches(ctx, slug, force)
			results[i] = scrape{groups: groups, err: err}
		}(i, game.GameName)
	}
	wg.Wait()

	perGame := make(map[string]domain.GameGroups, len(games))
	failed := []string{}
	for i, r := range results {
		if r.err != nil {
			log.Printf("WARN [ewc.aggregate] %s: %v", games[i].GameName, r.err)
			failed = append(failed, games[i].GameName)
			continue
		}
		perGame[games[i].GameName] = r.groups
	}
	return perGame, failed
}

// flattenMatches walks games and groups in sorted order so ties in the later
// stable sort keep a deterministic order.
func flattenMatches(perGame map[string]domain.GameGroups) []domain.AggregatedMatch {
	games := make([]string, 0, len(perGame))
	for game := range perGame {
		games = append(games, game)
	}
	sort.Strings(games)

	flat := []domain.AggregatedMatch{}
	for _, game := range games {
		groups := perGame[game]
		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			for _, m := range groups[name] {
				flat = append(flat, domain.AggregatedMatch{GroupMatch: m, Game: game, Group: name})
			}
		}
	}
	return flat
}

func filterMatches(matches []domain.AggregatedMatch, game, group, date string) []domain.AggregatedMatch {
	if game == "" && group == "" && date == "" {
		return matches
	}
	filtered := make([]domain.AggregatedMatch, 0, len(matches))
	for _, m := range matches {
		if game != "" && !strings.EqualFold(m.Game, game) {
			continue
		}
		if group != "" && !strings.EqualFold(m.Group, group) {
			continue
		}
		if date != "" && m.MatchDate != date {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// sortMatches orders matches chronologically. Matches whose display time
// cannot be parsed sort after all parsed ones and keep their relative order.
func sortMatches(matches []domain.AggregatedMatch) {
	type keyed struct {
		match domain.AggregatedMatch
		when  time.Time
		ok    bool
	}
	keys := make([]keyed, len(matches))
	for i, m := range matches {
		when, ok := liquipedia.ParseMatchTime(m.MatchTime)
		keys[i] = keyed{match: m, when: when, ok: ok}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.when.Before(b.when)
	})

	for i := range keys {
		matches[i] = keys[i].match
	}
}

// groupByDay buckets the sorted flat list. The input ordering already puts
// dates chronologically with unknowns last, so first-seen date order is the
// output order.
func groupByDay(matches []domain.AggregatedMatch) []domain.MatchDay {
	byDate := map[string]map[string]map[string][]domain.GroupMatch{}
	dateOrder := []string{}

	for _, m := range matches {
		if _, ok := byDate[m.MatchDate]; !ok {
			byDate[m.MatchDate] = map[string]map[string][]domain.GroupMatch{}
			dateOrder = append(dateOrder, m.MatchDate)
		}
		byGame := byDate[m.MatchDate]
		if _, ok := byGame[m.Game]; !ok {
			byGame[m.Game] = map[string][]domain.GroupMatch{}
		}
		byGame[m.Game][m.Group] = append(byGame[m.Game][m.Group], m.GroupMatch)
	}

	days := make([]domain.MatchDay, 0, len(dateOrder))
	for _, date := range dateOrder {
		byGame := byDate[date]

		gameNames := make([]string, 0, len(byGame))
		for game := range byGame {
			gameNames = append(gameNames, game)
		}
		sort.Strings(gameNames)

		day := domain.MatchDay{Date: date, Games: make([]domain.DayGame, 0, len(gameNames))}
		for _, game := range gameNames {
			byGroup := byGame[game]

			groupNames := make([]string, 0, len(byGroup))
			for name := range byGroup {
				groupNames = append(groupNames, name)
			}
			sort.Strings(groupNames)

			dayGame := domain.DayGame{Game: game, Groups: make([]domain.DayGroup, 0, len(groupNames))}
			for _, name := range groupNames {
				dayGame.Groups = append(dayGame.Groups, domain.DayGroup{Group: name, Matches: byGroup[name]})
			}
			day.Games = append(day.Games, dayGame)
		}
		days = append(days, day)
	}
	return days
}

// GetEvents lists the overview page's per-game tournaments, refreshing the
// snapshot first when live is set.
func (s *EWCService) GetEvents(ctx context.Context, live bool) ([]domain.Event, error) {
	if live {
		if err := s.refreshEvents(ctx); err != nil {
			return nil, err
		}
	}
	return s.repos.Event.GetAll(ctx)
}

// GetGames lists the aggregation candidates derived from the event links.
func (s *EWCService) GetGames(ctx context.Context, live bool) ([]domain.Game, error) {
	if live {
		if err := s.refreshEvents(ctx); err != nil {
			return nil, err
		}
	}
	return s.repos.Game.GetAll(ctx)
}

// refreshEvents scrapes the overview grid and replaces both snapshots derived
// from it: the events table and the games table (slug + icon per event link).
func (s *EWCService) refreshEvents(ctx context.Context) error {
	doc, err := s.client.GetDocument(ctx, liquipedia.OverviewPath)
	if err != nil {
		return err
	}
	rows := liquipedia.ExtractEvents(doc, s.client.BaseURL())

	events := make([]domain.Event, 0, len(rows))
	games := make([]domain.Game, 0, len(rows))
	seen := map[string]bool{}
	for _, row := range rows {
		events = append(events, domain.Event{Name: row.Name, Link: row.Link})

		slug := liquipedia.GameSlugFromLink(row.Link)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		games = append(games, domain.Game{GameName: slug, LogoURL: row.Icon})
	}

	if err := s.repos.Event.ReplaceAll(ctx, events); err != nil {
		return fmt.Errorf("replace events: %w", err)
	}
	if err := s.repos.Game.ReplaceAll(ctx, games); err != nil {
		return fmt.Errorf("replace games: %w", err)
	}
	return nil
}

func (s *EWCService) GetTeams(ctx context.Context, live bool) ([]domain.Team, error) {
	if live {
		doc, err := s.client.GetDocument(ctx, liquipedia.OverviewPath)
		if err != nil {
			return nil, err
		}
		rows := liquipedia.ExtractTeams(doc, s.client.BaseURL())

		teams := make([]domain.Team, 0, len(rows))
		for _, row := range rows {
			teams = append(teams, domain.Team{TeamName: row.Name, LogoURL: row.Logo})
		}
		if err := s.repos.Team.ReplaceAll(ctx, teams); err != nil {
			return nil, fmt.Errorf("replace teams: %w", err)
		}
	}
	return s.repos.Team.GetAll(ctx)
}

func (s *EWCService) GetPrizeDistribution(ctx context.Context, live bool) ([]domain.PrizeDistribution, error) {
	if live {
		doc, err := s.client.GetDocument(ctx, liquipedia.OverviewPath)
		if err != nil {
			return nil, err
		}
		rows := liquipedia.ExtractPrizeDistribution(doc, s.client.BaseURL())

		prizes := make([]domain.PrizeDistribution, 0, len(rows))
		for _, row := range rows {
			prizes = append(prizes, domain.PrizeDistribution{
				Place:        row.Place,
				PlaceLogo:    row.PlaceLogo,
				Prize:        row.Prize,
				Participants: row.Participants,
				LogoTeam:     row.TeamLogo,
			})
		}
		if err := s.repos.Prize.ReplaceAll(ctx, prizes); err != nil {
			return nil, fmt.Errorf("replace prize distribution: %w", err)
		}
	}
	return s.repos.Prize.GetAll(ctx)
}

// GetInfo returns the tournament info box row. live scrapes and replaces the
// stored row first; a page without the box yields ErrInfoNotFound.
func (s *EWCService) GetInfo(ctx context.Context, live bool) (*domain.EWCInfo, error) {
	if live {
		doc, err := s.client.GetDocument(ctx, liquipedia.OverviewPath)
		if err != nil {
			return nil, err
		}
		scraped, ok := liquipedia.ExtractInfo(doc, s.client.BaseURL())
		if !ok {
			return nil, domain.ErrInfoNotFound
		}

		links, err := json.Marshal(scraped.SocialLinks)
		if err != nil {
			return nil, fmt.Errorf("encode social links: %w", err)
		}
		info := &domain.EWCInfo{
			Header:         scraped.Header,
			Series:         scraped.Series,
			Organizers:     scraped.Organizers,
			Location:       scraped.Location,
			PrizePool:      scraped.PrizePool,
			StartDate:      scraped.StartDate,
			EndDate:        scraped.EndDate,
			LiquipediaTier: scraped.LiquipediaTier,
			LogoLight:      scraped.LogoLight,
			LogoDark:       scraped.LogoDark,
			LocationLogo:   scraped.LocationLogo,
			SocialLinks:    datatypes.JSON(links),
		}
		if err := s.repos.Info.Replace(ctx, info); err != nil {
			return nil, fmt.Errorf("replace info: %w", err)
		}
	}
	return s.repos.Info.Get(ctx)
}
