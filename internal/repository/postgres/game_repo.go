package postgres

import (
	"context"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *gameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) ReplaceAll(ctx context.Context, games []domain.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Game{}).Error; err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}
		return tx.Create(&games).Error
	})
}

func (r *gameRepository) GetAll(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	err := r.db.WithContext(ctx).Order("game_name ASC").Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
