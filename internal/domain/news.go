package domain

import "time"

// News is an editorial item managed through the API rather than scraped.
// Title, Description and Writer are truncated by the service before they
// reach the column limits here.
type News struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"size:2000"`
	Writer       string    `json:"writer" gorm:"size:100"`
	ThumbnailURL string    `json:"thumbnail_url"` // remote URL or /uploads/<file> path
	NewsLink     string    `json:"news_link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
