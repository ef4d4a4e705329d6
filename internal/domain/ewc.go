package domain

// UnknownDate is the match_date bucket for display times that cannot be
// parsed. It sorts after every real date.
const UnknownDate = "Unknown Date"

// GroupTeam is one side of a group-stage match.
type GroupTeam struct {
	Name string `json:"name"` // "N/A" when the opponent cell is unusable
	Logo string `json:"logo"` // absolute URL, "N/A" when unusable
}

// GroupMatch is a single Esports World Cup group-stage match.
type GroupMatch struct {
	Team1     GroupTeam `json:"team1"`
	Team2     GroupTeam `json:"team2"`
	MatchTime string    `json:"match_time"` // display text, e.g. "July 8, 2025 - 17:00 CEST"
	Score     string    `json:"score"`      // free text, empty when not played yet
	MatchDate string    `json:"match_date"` // "YYYY-MM-DD" derived from MatchTime, or "Unknown Date"
}

// GameGroups maps a group title to its matches for one game.
type GameGroups map[string][]GroupMatch

// AggregatedMatch annotates a group match with its game and group for the
// flattened cross-game listing.
type AggregatedMatch struct {
	GroupMatch
	Game  string `json:"game"`  // lowercase wiki slug, e.g. "dota2"
	Group string `json:"group"` // group title, e.g. "Group A"
}

// MatchDay is one calendar day of the cross-game schedule. Days are ordered
// chronologically with the "Unknown Date" bucket last; games and groups are
// ordered alphabetically.
type MatchDay struct {
	Date  string    `json:"date"`
	Games []DayGame `json:"games"`
}

type DayGame struct {
	Game   string     `json:"game"`
	Groups []DayGroup `json:"groups"`
}

type DayGroup struct {
	Group   string       `json:"group"`
	Matches []GroupMatch `json:"matches"`
}
