package postgres

import (
	"context"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"gorm.io/gorm"
)

type prizeRepository struct {
	db *gorm.DB
}

func NewPrizeRepository(db *gorm.DB) *prizeRepository {
	return &prizeRepository{db: db}
}

func (r *prizeRepository) ReplaceAll(ctx context.Context, prizes []domain.PrizeDistribution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.PrizeDistribution{}).Error; err != nil {
			return err
		}
		if len(prizes) == 0 {
			return nil
		}
		return tx.Create(&prizes).Error
	})
}

func (r *prizeRepository) GetAll(ctx context.Context) ([]domain.PrizeDistribution, error) {
	var prizes []domain.PrizeDistribution
	err := r.db.WithContext(ctx).Order("id ASC").Find(&prizes).Error
	if err != nil {
		return nil, err
	}
	return prizes, nil
}
