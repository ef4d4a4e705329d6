package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "tournaments":
		tournamentsCmd(apiURL, args)
	case "matches":
		matchesCmd(apiURL, args)
	case "groups":
		groupsCmd(apiURL, args)
	case "schedule":
		scheduleCmd(apiURL, args)
	case "refresh":
		refreshCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Scrape CLI - Development tool for driving the scraper API

USAGE:
  scrape <command> [options]

COMMANDS:
  tournaments  Fetch the tournament listing for a game
  matches      Fetch the match ticker for a game
  groups       Fetch the Esports World Cup group stage for a game
  schedule     Fetch the aggregated cross-game schedule
  refresh      Rescrape the overview snapshots (events, teams, prizes, info)
  help         Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Tournament listing for Dota 2, bypassing the cache
  scrape tournaments --game=dota2 --force

  # Group stage for one day only
  scrape groups --game=valorant --date=2025-07-09

  # Second page of the full schedule, 20 matches per page
  scrape schedule --page=2 --per-page=20

  # Rebuild the stored overview snapshots from Liquipedia
  scrape refresh`)
}

func tournamentsCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("tournaments", flag.ExitOnError)
	game := fs.String("game", "dota2", "Game wiki slug")
	force := fs.Bool("force", false, "Bypass the scrape cache")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Printf("Fetching tournaments for %s... ", *game)
	sections, err := client.ScrapeTournaments(*game, *force)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
	fmt.Println()

	printTournaments("Upcoming", sections.Upcoming)
	printTournaments("Ongoing", sections.Ongoing)
	printTournaments("Completed", sections.Completed)
}

func printTournaments(heading string, tournaments []Tournament) {
	fmt.Printf("%s (%d):\n", heading, len(tournaments))
	for _, tr := range tournaments {
		fmt.Printf("  [%s] %s  %s\n", tr.Tier, tr.Name, tr.Date)
	}
	fmt.Println()
}

func matchesCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("matches", flag.ExitOnError)
	game := fs.String("game", "dota2", "Game wiki slug")
	force := fs.Bool("force", false, "Bypass the scrape cache")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Printf("Fetching matches for %s... ", *game)
	sections, err := client.ScrapeMatches(*game, *force)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
	fmt.Println()

	printMatches("Upcoming", sections.Upcoming)
	printMatches("Completed", sections.Completed)
}

func printMatches(heading string, byTournament map[string][]Match) {
	names := make([]string, 0, len(byTournament))
	for name := range byTournament {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s:\n", heading)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
		for _, m := range byTournament[name] {
			line := fmt.Sprintf("    %s vs %s (%s) %s", m.Team1, m.Team2, m.Format, m.Time)
			if m.Result != nil {
				line += fmt.Sprintf("  -> %s", *m.Result)
			}
			fmt.Println(line)
		}
	}
	fmt.Println()
}

func groupsCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("groups", flag.ExitOnError)
	game := fs.String("game", "dota2", "Game wiki slug")
	force := fs.Bool("force", false, "Bypass the scrape cache")
	date := fs.String("date", "", "Only matches on this day (YYYY-MM-DD)")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Printf("Fetching group stage for %s... ", *game)
	groups, err := client.GroupMatches(*game, *force, *date)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
	fmt.Println()

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s:\n", name)
		for _, m := range groups[name] {
			score := m.Score
			if score == "" {
				score = "vs"
			}
			fmt.Printf("  %s %s %s  %s\n", m.Team1.Name, score, m.Team2.Name, m.MatchTime)
		}
		fmt.Println()
	}
}

func scheduleCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	force := fs.Bool("force", false, "Bypass the scrape cache")
	game := fs.String("game", "", "Only this game")
	group := fs.String("group", "", "Only this group")
	date := fs.String("date", "", "Only matches on this day (YYYY-MM-DD)")
	page := fs.Int("page", 1, "Page number")
	perPage := fs.Int("per-page", 20, "Matches per page")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Print("Fetching schedule... ")
	all, pagination, err := client.AllMatches(AllMatchesQuery{
		Force:   *force,
		Game:    *game,
		Group:   *group,
		Date:    *date,
		Page:    *page,
		PerPage: *perPage,
	})
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
	fmt.Println()

	for _, m := range all.Matches {
		score := m.Score
		if score == "" {
			score = "vs"
		}
		fmt.Printf("  [%s] %s: %s %s %s  %s\n", m.Game, m.Group, m.Team1.Name, score, m.Team2.Name, m.MatchTime)
	}

	if pagination != nil {
		fmt.Println()
		fmt.Printf("Page %d of %d (%d matches total)\n", pagination.Page, pagination.Pages, pagination.Total)
	}

	if len(all.FailedGames) > 0 {
		fmt.Println()
		fmt.Printf("Warning: %d game(s) failed to scrape: %v\n", len(all.FailedGames), all.FailedGames)
	}
}

func refreshCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("refresh", flag.ExitOnError)
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Println("=== Refreshing overview snapshots ===")
	fmt.Println()

	fmt.Print("Refreshing events... ")
	events, err := client.Events(true)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d events)\n", len(events))

	// Games are derived from the events refresh
	games, err := client.Games(false)
	if err != nil {
		fmt.Printf("Warning: failed to list games: %v\n", err)
	} else {
		names := make([]string, len(games))
		for i, g := range games {
			names[i] = g.GameName
		}
		fmt.Printf("  Known games: %v\n", names)
	}

	fmt.Print("Refreshing teams... ")
	teams, err := client.Teams(true)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d teams)\n", len(teams))

	fmt.Print("Refreshing prizes... ")
	prizes, err := client.Prizes(true)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d rows)\n", len(prizes))

	fmt.Print("Refreshing tournament info... ")
	info, err := client.TournamentInfo(true)
	if err != nil {
		// The info box is optional on some mirrors, keep going
		fmt.Printf("SKIPPED\n  %v\n", err)
	} else {
		fmt.Printf("OK (%s, %s)\n", info.Header, info.PrizePool)
	}

	fmt.Println()
	fmt.Println("Done.")
}
