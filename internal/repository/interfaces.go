package repository

import (
	"context"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
)

// NewsListParams filters and windows the news listing. Writer matches
// case-insensitively; Search matches title or description substrings.
type NewsListParams struct {
	Writer string
	Search string
	Limit  int
	Offset int
}

type NewsRepository interface {
	Create(ctx context.Context, item *domain.News) error
	GetByID(ctx context.Context, id uint) (*domain.News, error)
	List(ctx context.Context, params NewsListParams) ([]*domain.News, int64, error)
	Update(ctx context.Context, item *domain.News) error
	Delete(ctx context.Context, id uint) error
}

// Snapshot repositories replace their whole table on every refresh. ReplaceAll
// must be atomic: readers never observe a partially refreshed table.

type TeamRepository interface {
	ReplaceAll(ctx context.Context, teams []domain.Team) error
	GetAll(ctx context.Context) ([]domain.Team, error)
}

type EventRepository interface {
	ReplaceAll(ctx context.Context, events []domain.Event) error
	GetAll(ctx context.Context) ([]domain.Event, error)
}

type GameRepository interface {
	ReplaceAll(ctx context.Context, games []domain.Game) error
	GetAll(ctx context.Context) ([]domain.Game, error)
}

type PrizeRepository interface {
	ReplaceAll(ctx context.Context, prizes []domain.PrizeDistribution) error
	GetAll(ctx context.Context) ([]domain.PrizeDistribution, error)
}

// InfoRepository holds at most one row.
type InfoRepository interface {
	Replace(ctx context.Context, info *domain.EWCInfo) error
	Get(ctx context.Context) (*domain.EWCInfo, error)
}

type Repositories struct {
	News  NewsRepository
	Team  TeamRepository
	Event EventRepository
	Game  GameRepository
	Prize PrizeRepository
	Info  InfoRepository
}
