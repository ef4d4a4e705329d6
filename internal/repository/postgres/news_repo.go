package postgres

import (
	"context"
	"errors"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *newsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, item *domain.News) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *newsRepository) GetByID(ctx context.Context, id uint) (*domain.News, error) {
	var item domain.News
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNewsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) List(ctx context.Context, params repository.NewsListParams) ([]*domain.News, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.News{})

	if params.Writer != "" {
		query = query.Where("LOWER(writer) = LOWER(?)", params.Writer)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*domain.News
	err := query.
		Order("created_at DESC, id DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *newsRepository) Update(ctx context.Context, item *domain.News) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}
