package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
	"github.com/mahmoodhamdi/scraper-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsService() *service.NewsService {
	return service.NewNewsService(testutil.NewFakeNewsRepository())
}

func TestNewsService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.NewsInput
		wantErr error
	}{
		{
			name:  "minimal",
			input: service.NewsInput{Title: "Falcons win the cup"},
		},
		{
			name: "full",
			input: service.NewsInput{
				Title:       "Falcons win the cup",
				Description: "A clean sweep in the final.",
				Writer:      "Hamdi",
				Thumbnail:   "https://example.com/falcons.png",
				NewsLink:    "https://example.com/story",
			},
		},
		{
			name:    "missing title",
			input:   service.NewsInput{Description: "no headline"},
			wantErr: service.ErrTitleRequired,
		},
		{
			name:    "blank title",
			input:   service.NewsInput{Title: "   "},
			wantErr: service.ErrTitleRequired,
		},
		{
			name:    "bad news link",
			input:   service.NewsInput{Title: "t", NewsLink: "not-a-url"},
			wantErr: service.ErrInvalidNewsLink,
		},
		{
			name:    "non-http news link",
			input:   service.NewsInput{Title: "t", NewsLink: "ftp://example.com/story"},
			wantErr: service.ErrInvalidNewsLink,
		},
		{
			name:    "bad thumbnail url",
			input:   service.NewsInput{Title: "t", Thumbnail: "nope"},
			wantErr: service.ErrInvalidThumbnail,
		},
		{
			name:  "uploaded thumbnail path skips the URL check",
			input: service.NewsInput{Title: "t", Thumbnail: "/uploads/abc.png", ThumbnailUploaded: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newNewsService()

			item, err := svc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.Equal(t, strings.TrimSpace(tt.input.Title), item.Title)
			assert.Equal(t, tt.input.Thumbnail, item.ThumbnailURL)
		})
	}
}

func TestNewsService_Create_Truncation(t *testing.T) {
	svc := newNewsService()
	ctx := context.Background()

	item, err := svc.Create(ctx, service.NewsInput{
		Title:       strings.Repeat("é", 300),
		Description: strings.Repeat("d", 2500),
		Writer:      strings.Repeat("w", 150),
	})
	require.NoError(t, err)

	// Limits are in runes so multi-byte text survives the cut.
	assert.Equal(t, strings.Repeat("é", 255), item.Title)
	assert.Equal(t, strings.Repeat("d", 2000), item.Description)
	assert.Equal(t, strings.Repeat("w", 100), item.Writer)
}

func TestNewsService_Update(t *testing.T) {
	svc := newNewsService()
	ctx := context.Background()

	created, err := svc.Create(ctx, service.NewsInput{
		Title:       "Original headline",
		Description: "Original description",
		Writer:      "Hamdi",
		NewsLink:    "https://example.com/story",
	})
	require.NoError(t, err)

	newTitle := "Updated headline"
	updated, err := svc.Update(ctx, created.ID, service.NewsUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Updated headline", updated.Title)
	assert.Equal(t, "Original description", updated.Description, "unset fields stay put")
	assert.Equal(t, "Hamdi", updated.Writer)

	// An explicit empty string clears the field.
	empty := ""
	updated, err = svc.Update(ctx, created.ID, service.NewsUpdate{NewsLink: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.NewsLink)

	blank := "   "
	_, err = svc.Update(ctx, created.ID, service.NewsUpdate{Title: &blank})
	assert.ErrorIs(t, err, service.ErrTitleRequired)

	badLink := "not-a-url"
	_, err = svc.Update(ctx, created.ID, service.NewsUpdate{NewsLink: &badLink})
	assert.ErrorIs(t, err, service.ErrInvalidNewsLink)

	// A rejected update leaves the stored item untouched.
	current, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated headline", current.Title)

	_, err = svc.Update(ctx, 9999, service.NewsUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrNewsNotFound)
}

func TestNewsService_List(t *testing.T) {
	svc := newNewsService()
	ctx := context.Background()

	seed := []service.NewsInput{
		{Title: "Falcons crowned champions", Description: "Grand final recap", Writer: "Alice"},
		{Title: "Spirit eliminated", Description: "Upset in groups", Writer: "alice"},
		{Title: "Roster shuffle", Description: "Offseason moves", Writer: "Bob"},
	}
	for _, input := range seed {
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	all, pagination, err := svc.List(ctx, service.NewsListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Roster shuffle", all[0].Title, "newest first")
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 1, pagination.Pages)

	byWriter, pagination, err := svc.List(ctx, service.NewsListOptions{Writer: "ALICE"})
	require.NoError(t, err)
	assert.Len(t, byWriter, 2, "writer filter is case-insensitive")
	assert.Equal(t, 2, pagination.Total)

	bySearch, _, err := svc.List(ctx, service.NewsListOptions{Search: "falcons"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Falcons crowned champions", bySearch[0].Title)

	window, pagination, err := svc.List(ctx, service.NewsListOptions{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, window, 1)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 2, pagination.Pages)
}

func TestNewsService_Delete(t *testing.T) {
	svc := newNewsService()
	ctx := context.Background()

	created, err := svc.Create(ctx, service.NewsInput{Title: "Short lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNewsNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNewsNotFound)
}
