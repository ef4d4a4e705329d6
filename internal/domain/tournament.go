package domain

// Sentinel values substituted when a tournament field is missing from the page.
const (
	NoName      = "No name"
	NoDate      = "No date"
	UnknownTier = "Unknown"
)

type Tournament struct {
	Name     string  `json:"name"`      // "No name" when the name span is missing
	Date     string  `json:"date"`      // display text, e.g. "Jan 17 - Feb 02"
	Link     *string `json:"link"`      // absolute wiki URL, nil when absent
	Tier     string  `json:"tier"`      // badge chip, optionally "<chip> <qualifier>"
	Logo     *string `json:"logo"`      // tournament icon URL
	GameIcon *string `json:"game_icon"` // game icon URL
}

// TournamentSections buckets tournaments under the three Main_Page headings.
// All three keys are always present in the JSON output, even when empty.
type TournamentSections struct {
	Upcoming  []Tournament `json:"Upcoming"`
	Ongoing   []Tournament `json:"Ongoing"`
	Completed []Tournament `json:"Completed"`
}
