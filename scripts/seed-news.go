package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

type NewsItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Writer       string `json:"writer"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	NewsLink     string `json:"news_link,omitempty"`
}

type CreatedNews struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type Envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func apiBase() string {
	if url := os.Getenv("API_URL"); url != "" {
		return url + "/api"
	}
	return "http://localhost:8080/api"
}

func createNews(item NewsItem) (*CreatedNews, error) {
	body, _ := json.Marshal(item)

	resp, err := http.Post(apiBase()+"/news", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	var env Envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return nil, fmt.Errorf("decode failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create failed (%d): %s", resp.StatusCode, env.Error)
	}

	var created CreatedNews
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &created, nil
}

func countNews() (int, error) {
	resp, err := http.Get(apiBase() + "/news?per_page=1")
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode failed: %w", err)
	}
	return result.Pagination.Total, nil
}

func main() {
	items := []NewsItem{
		{
			Title:       "Team Falcons sweep the Dota 2 group stage",
			Description: "An unbeaten run through Group A sends Falcons straight into the upper bracket.",
			Writer:      "Mahmoud Hamdi",
			NewsLink:    "https://liquipedia.net/dota2/Esports_World_Cup/2025",
		},
		{
			Title:       "Valorant groups drawn for Riyadh",
			Description: "Twelve teams split across three groups, with the winners advancing directly to playoffs.",
			Writer:      "Mahmoud Hamdi",
			NewsLink:    "https://liquipedia.net/valorant/Esports_World_Cup/2025",
		},
		{
			Title:       "Spirit stumble in their opening series",
			Description: "A reverse sweep puts last year's finalists into an early must-win position.",
			Writer:      "Sara Adel",
			NewsLink:    "https://example.com/spirit-opening-loss",
		},
		{
			Title:       "Prize pool confirmed at $70 million across all titles",
			Description: "Organizers confirmed the largest combined prize pool in esports history.",
			Writer:      "Sara Adel",
			NewsLink:    "https://example.com/ewc-prize-pool",
		},
		{
			Title:       "Schedule update: day three starts two hours earlier",
			Description: "The CS2 and Dota 2 blocks swap slots to avoid overlapping grand finals.",
			Writer:      "Omar Khaled",
		},
		{
			Title:       "Club championship standings after week one",
			Description: "Falcons lead the cross-game club points race, with Liquid close behind.",
			Writer:      "Omar Khaled",
			NewsLink:    "https://example.com/club-standings-week-one",
		},
	}

	fmt.Printf("Seeding %d news items...\n\n", len(items))

	for i, item := range items {
		created, err := createNews(item)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create item %d: %v\n", i+1, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ [%d] %s\n", created.ID, created.Title)
	}

	total, err := countNews()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to count news: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("============================================================")
	fmt.Println("SEED COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("\nThe API now holds %d news items.\n", total)
	fmt.Printf("Browse them at %s/news\n", apiBase())
}
