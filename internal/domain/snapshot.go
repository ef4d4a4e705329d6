package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot tables hold the latest scrape of the Esports World Cup overview
// page. Each refresh replaces the whole table; rows carry no identity across
// refreshes.

type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamName  string    `json:"team_name" gorm:"not null"`
	LogoURL   string    `json:"logo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Link      string    `json:"link"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Game struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GameName  string    `json:"game_name" gorm:"not null"` // lowercase wiki slug, e.g. "dota2"
	LogoURL   string    `json:"logo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrizeDistribution struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Place        string    `json:"place"`
	PlaceLogo    string    `json:"place_logo"`
	Prize        string    `json:"prize"`
	Participants string    `json:"participants"`
	LogoTeam     string    `json:"logo_team"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PrizeDistribution) TableName() string { return "prize_distribution" }

// EWCInfo is the tournament info box. At most one row exists.
type EWCInfo struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Header         string         `json:"header"`
	Series         string         `json:"series"`
	Organizers     string         `json:"organizers"`
	Location       string         `json:"location"`
	PrizePool      string         `json:"prize_pool"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	LiquipediaTier string         `json:"liquipedia_tier"`
	LogoLight      string         `json:"logo_light"`
	LogoDark       string         `json:"logo_dark"`
	LocationLogo   string         `json:"location_logo"`
	SocialLinks    datatypes.JSON `json:"social_links" gorm:"type:jsonb"` // {"twitter": "https://...", ...}
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (EWCInfo) TableName() string { return "ewc_info" }
