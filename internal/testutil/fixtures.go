package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"gorm.io/gorm"
)

// NewsBuilder creates test news items with a builder pattern
type NewsBuilder struct {
	title        string
	description  string
	writer       string
	thumbnailURL string
	newsLink     string
	createdAt    time.Time
}

// NewNewsBuilder creates a new NewsBuilder with default values
func NewNewsBuilder() *NewsBuilder {
	return &NewsBuilder{
		title:       fmt.Sprintf("Test headline %s", uuid.New().String()[:8]),
		description: "Something happened at the tournament.",
		writer:      "Test Writer",
		newsLink:    "https://example.com/story",
		createdAt:   time.Now(),
	}
}

// WithTitle sets the title
func (b *NewsBuilder) WithTitle(title string) *NewsBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *NewsBuilder) WithDescription(description string) *NewsBuilder {
	b.description = description
	return b
}

// WithWriter sets the writer
func (b *NewsBuilder) WithWriter(writer string) *NewsBuilder {
	b.writer = writer
	return b
}

// WithThumbnailURL sets the thumbnail URL
func (b *NewsBuilder) WithThumbnailURL(url string) *NewsBuilder {
	b.thumbnailURL = url
	return b
}

// WithNewsLink sets the source link
func (b *NewsBuilder) WithNewsLink(link string) *NewsBuilder {
	b.newsLink = link
	return b
}

// WithCreatedAt sets the creation time, which drives list ordering
func (b *NewsBuilder) WithCreatedAt(at time.Time) *NewsBuilder {
	b.createdAt = at
	return b
}

// Build creates the news item in the database
func (b *NewsBuilder) Build(t *testing.T, db *gorm.DB) *domain.News {
	t.Helper()

	item := &domain.News{
		Title:        b.title,
		Description:  b.description,
		Writer:       b.writer,
		ThumbnailURL: b.thumbnailURL,
		NewsLink:     b.newsLink,
		CreatedAt:    b.createdAt,
		UpdatedAt:    b.createdAt,
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create news item: %v", err)
	}

	return item
}

// SeedNews creates N news items with distinct creation times, newest last
func SeedNews(t *testing.T, db *gorm.DB, count int) []*domain.News {
	t.Helper()

	base := time.Now().Add(-time.Duration(count) * time.Minute)
	items := make([]*domain.News, count)
	for i := 0; i < count; i++ {
		items[i] = NewNewsBuilder().
			WithTitle(fmt.Sprintf("Headline %d", i)).
			WithCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Build(t, db)
	}
	return items
}

// DoJSON sends a JSON request and decodes the response body into out. Pass a
// nil body for bodyless requests and a nil out to skip decoding.
func DoJSON(t *testing.T, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp
}
