package liquipedia

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production wiki origin.
const DefaultBaseURL = "https://liquipedia.net"

// userAgent goes out on every request; the wiki blocks Go's default agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// StatusError reports a non-200 response from the wiki.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

// TransportError reports a network failure before any response arrived.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client fetches wiki pages. One attempt per call; a failed fetch surfaces
// immediately and retrying is the caller's decision.
type Client struct {
	base string
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
	return &Client{base: baseURL, http: httpClient}
}

// BaseURL is the configured wiki origin, used to absolutize scraped links.
func (c *Client) BaseURL() string { return c.base }

// GetDocument fetches a wiki path and parses the body.
func (c *Client) GetDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, &TransportError{URL: c.base + path, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{URL: c.base + path, StatusCode: res.StatusCode()}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// TournamentsPath is a game's Main_Page, which carries the tournament lists.
func TournamentsPath(game string) string {
	return "/" + game + "/Main_Page"
}

// MatchesPath is a game's live match ticker.
func MatchesPath(game string) string {
	return "/" + game + "/Liquipedia:Matches"
}

// GroupStagePath is a game's Esports World Cup group stage page.
func GroupStagePath(game string) string {
	return "/" + game + "/Esports_World_Cup/2025/Group_Stage"
}

// OverviewPath is the Esports World Cup overview page: info box, team cards,
// prize pool table and the per-game tournament list.
const OverviewPath = "/esports/Esports_World_Cup/2025"

// absURL turns a wiki-relative href or src into an absolute URL.
func absURL(origin, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return origin + ref
}
