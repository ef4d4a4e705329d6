package postgres

import (
	"context"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) ReplaceAll(ctx context.Context, teams []domain.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Team{}).Error; err != nil {
			return err
		}
		if len(teams) == 0 {
			return nil
		}
		return tx.Create(&teams).Error
	})
}

func (r *teamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).Order("id ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
