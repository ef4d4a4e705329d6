package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
)

// NewFakeRepositories wires the in-memory fakes into the aggregate the
// services expect, for tests that need no Postgres.
func NewFakeRepositories() *repository.Repositories {
	return &repository.Repositories{
		News:  NewFakeNewsRepository(),
		Team:  &FakeTeamRepository{},
		Event: &FakeEventRepository{},
		Game:  &FakeGameRepository{},
		Prize: &FakePrizeRepository{},
		Info:  &FakeInfoRepository{},
	}
}

// FakeNewsRepository keeps news in memory with the same filter and ordering
// semantics as the Postgres repository.
type FakeNewsRepository struct {
	mu     sync.Mutex
	items  map[uint]domain.News
	nextID uint
}

func NewFakeNewsRepository() *FakeNewsRepository {
	return &FakeNewsRepository{items: make(map[uint]domain.News), nextID: 1}
}

func (f *FakeNewsRepository) Create(ctx context.Context, item *domain.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	item.ID = f.nextID
	f.nextID++
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	f.items[item.ID] = *item
	return nil
}

func (f *FakeNewsRepository) GetByID(ctx context.Context, id uint) (*domain.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNewsNotFound
	}
	return &item, nil
}

func (f *FakeNewsRepository) List(ctx context.Context, params repository.NewsListParams) ([]*domain.News, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := make([]domain.News, 0, len(f.items))
	for _, item := range f.items {
		if params.Writer != "" && !strings.EqualFold(item.Writer, params.Writer) {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			title := strings.ToLower(item.Title)
			desc := strings.ToLower(item.Description)
			if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))

	start := params.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if params.Limit > 0 && start+params.Limit < end {
		end = start + params.Limit
	}

	window := make([]*domain.News, 0, end-start)
	for i := start; i < end; i++ {
		item := matched[i]
		window = append(window, &item)
	}
	return window, total, nil
}

func (f *FakeNewsRepository) Update(ctx context.Context, item *domain.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[item.ID]; !ok {
		return domain.ErrNewsNotFound
	}
	item.UpdatedAt = time.Now()
	f.items[item.ID] = *item
	return nil
}

func (f *FakeNewsRepository) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[id]; !ok {
		return domain.ErrNewsNotFound
	}
	delete(f.items, id)
	return nil
}

type FakeTeamRepository struct {
	mu    sync.Mutex
	teams []domain.Team
}

func (f *FakeTeamRepository) ReplaceAll(ctx context.Context, teams []domain.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teams = append([]domain.Team(nil), teams...)
	return nil
}

func (f *FakeTeamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Team(nil), f.teams...), nil
}

type FakeEventRepository struct {
	mu     sync.Mutex
	events []domain.Event
}

func (f *FakeEventRepository) ReplaceAll(ctx context.Context, events []domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append([]domain.Event(nil), events...)
	return nil
}

func (f *FakeEventRepository) GetAll(ctx context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Event(nil), f.events...), nil
}

type FakeGameRepository struct {
	mu    sync.Mutex
	games []domain.Game
}

func (f *FakeGameRepository) ReplaceAll(ctx context.Context, games []domain.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games = append([]domain.Game(nil), games...)
	return nil
}

func (f *FakeGameRepository) GetAll(ctx context.Context) ([]domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	games := append([]domain.Game(nil), f.games...)
	sort.Slice(games, func(i, j int) bool { return games[i].GameName < games[j].GameName })
	return games, nil
}

type FakePrizeRepository struct {
	mu     sync.Mutex
	prizes []domain.PrizeDistribution
}

func (f *FakePrizeRepository) ReplaceAll(ctx context.Context, prizes []domain.PrizeDistribution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prizes = append([]domain.PrizeDistribution(nil), prizes...)
	return nil
}

func (f *FakePrizeRepository) GetAll(ctx context.Context) ([]domain.PrizeDistribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PrizeDistribution(nil), f.prizes...), nil
}

type FakeInfoRepository struct {
	mu   sync.Mutex
	info *domain.EWCInfo
}

func (f *FakeInfoRepository) Replace(ctx context.Context, info *domain.EWCInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *info
	stored.ID = 1
	f.info = &stored
	return nil
}

func (f *FakeInfoRepository) Get(ctx context.Context) (*domain.EWCInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.info == nil {
		return nil, domain.ErrInfoNotFound
	}
	info := *f.info
	return &info, nil
}
