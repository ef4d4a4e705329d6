package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
)

type TournamentService struct {
	client *liquipedia.Client
	cache  *cache.Cache
}

func NewTournamentService(client *liquipedia.Client, c *cache.Cache) *TournamentService {
	return &TournamentService{client: client, cache: c}
}

// GetTournaments returns the tournament lists for a game, from cache when the
// entry is fresh and force is unset. Fresh scrapes are written through to the
// cache; forced scrapes refresh it for later callers too.
func (s *TournamentService) GetTournaments(ctx context.Context, game string, force bool) (*domain.TournamentSections, error) {
	key := cache.Key(game, "tournaments")

	if !force {
		if data, fresh := s.cache.Get(key); fresh {
			var sections domain.TournamentSections
			if err := json.Unmarshal(data, &sections); err == nil {
				return &sections, nil
			}
			// A corrupt entry counts as a miss and gets overwritten below.
		}
	}

	doc, err := s.client.GetDocument(ctx, liquipedia.TournamentsPath(game))
	if err != nil {
		return nil, err
	}
	sections := liquipedia.ExtractTournaments(doc, s.client.BaseURL())

	if data, err := json.Marshal(sections); err == nil {
		if err := s.cache.Put(key, data); err != nil {
			log.Printf("WARN [tournaments.cache] write %s: %v", key, err)
		}
	}

	return &sections, nil
}
