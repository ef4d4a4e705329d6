package service

import (
	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/config"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
)

type Services struct {
	Tournament *TournamentService
	Match      *MatchService
	EWC        *EWCService
	News       *NewsService
}

func NewServices(repos *repository.Repositories, client *liquipedia.Client, c *cache.Cache, cfg *config.Config) *Services {
	return &Services{
		Tournament: NewTournamentService(client, c),
		Match:      NewMatchService(client, c),
		EWC:        NewEWCService(client, c, repos, cfg.ScrapeWorkers),
		News:       NewNewsService(repos.News),
	}
}
