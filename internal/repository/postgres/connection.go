package postgres

import (
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.News{},
		&domain.Team{},
		&domain.Event{},
		&domain.Game{},
		&domain.PrizeDistribution{},
		&domain.EWCInfo{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		News:  NewNewsRepository(db),
		Team:  NewTeamRepository(db),
		Event: NewEventRepository(db),
		Game:  NewGameRepository(db),
		Prize: NewPrizeRepository(db),
		Info:  NewInfoRepository(db),
	}
}
