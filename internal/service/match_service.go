package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
)

type MatchService struct {
	client *liquipedia.Client
	cache  *cache.Cache
}

func NewMatchService(client *liquipedia.Client, c *cache.Cache) *MatchService {
	return &MatchService{client: client, cache: c}
}

// GetMatches returns a game's upcoming and completed matches grouped by
// tournament. Caching behaves exactly like GetTournaments: fresh entries
// short-circuit unless force is set, and every scrape writes through.
func (s *MatchService) GetMatches(ctx context.Context, game string, force bool) (*domain.MatchSections, error) {
	key := cache.Key(game, "matches")

	if !force {
		if data, fresh := s.cache.Get(key); fresh {
			var sections domain.MatchSections
			if err := json.Unmarshal(data, &sections); err == nil {
				return &sections, nil
			}
		}
	}

	doc, err := s.client.GetDocument(ctx, liquipedia.MatchesPath(game))
	if err != nil {
		return nil, err
	}
	sections := liquipedia.ExtractMatches(doc)

	if data, err := json.Marshal(sections); err == nil {
		if err := s.cache.Put(key, data); err != nil {
			log.Printf("WARN [matches.cache] write %s: %v", key, err)
		}
	}

	return &sections, nil
}
