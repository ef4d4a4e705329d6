package postgres

import (
	"context"
	"errors"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"gorm.io/gorm"
)

type infoRepository struct {
	db *gorm.DB
}

func NewInfoRepository(db *gorm.DB) *infoRepository {
	return &infoRepository{db: db}
}

func (r *infoRepository) Replace(ctx context.Context, info *domain.EWCInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.EWCInfo{}).Error; err != nil {
			return err
		}
		return tx.Create(info).Error
	})
}

func (r *infoRepository) Get(ctx context.Context) (*domain.EWCInfo, error) {
	var info domain.EWCInfo
	err := r.db.WithContext(ctx).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInfoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}
