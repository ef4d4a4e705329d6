package domain

import (
	"encoding/json"
	"strings"
)

// Sentinel values substituted when a match field is missing from the page.
const (
	NoTeam            = "N/A"
	NoRating          = "-"
	NoFormat          = "-"
	NoTime            = "N/A"
	UnknownTournament = "Unknown Tournament"
)

type ResultKind string

const (
	ResultKindScore ResultKind = "score" // colon-joined map scores, e.g. "2:1"
	ResultKindRank  ResultKind = "rank"  // a standing indicator, e.g. "#4"
)

// MatchResult is either a score or a rank indicator. It serializes as the
// bare string consumers expect; the kind is recovered on unmarshal from the
// colon shape.
type MatchResult struct {
	Kind  ResultKind
	Value string
}

func (r MatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

func (r *MatchResult) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	r.Value = value
	if strings.Contains(value, ":") {
		r.Kind = ResultKindScore
	} else {
		r.Kind = ResultKindRank
	}
	return nil
}

type Match struct {
	Team1   string       `json:"team1"`            // "N/A" when the team link is missing
	Team2   string       `json:"team2"`            // "N/A" when the team link is missing
	Rating1 string       `json:"rating1"`          // "-" when absent
	Rating2 string       `json:"rating2"`          // "-" when absent
	Format  string       `json:"format"`           // e.g. "Bo3", "-" when absent
	Time    string       `json:"time"`             // display text, "N/A" when absent
	Result  *MatchResult `json:"result,omitempty"` // absent when no usable result exists
}

// MatchSections buckets matches by status, then by tournament name. Both keys
// are always present in the JSON output, even when empty.
type MatchSections struct {
	Upcoming  map[string][]Match `json:"upcoming"`
	Completed map[string][]Match `json:"completed"`
}
