package liquipedia_test

import (
	"testing"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "full timestamp with zone",
			input: "July 8, 2025 - 17:00 CEST",
			want:  time.Date(2025, 7, 8, 17, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date only",
			input: "July 10, 2025",
			want:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  July 8, 2025 - 17:00 CEST  ",
			want:  time.Date(2025, 7, 8, 17, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "placeholder", input: "TBD", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "sentinel", input: "N/A", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := liquipedia.ParseMatchTime(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want.Year(), got.Year())
				assert.Equal(t, tt.want.Month(), got.Month())
				assert.Equal(t, tt.want.Day(), got.Day())
				assert.Equal(t, tt.want.Hour(), got.Hour())
				assert.Equal(t, tt.want.Minute(), got.Minute())
			}
		})
	}
}

func TestMatchDateOf(t *testing.T) {
	assert.Equal(t, "2025-07-08", liquipedia.MatchDateOf("July 8, 2025 - 17:00 CEST"))
	assert.Equal(t, "2025-07-10", liquipedia.MatchDateOf("July 10, 2025"))
	assert.Equal(t, domain.UnknownDate, liquipedia.MatchDateOf("TBD"))
	assert.Equal(t, domain.UnknownDate, liquipedia.MatchDateOf(""))
}
