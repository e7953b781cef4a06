package database

import (
	"hope-backend/internal/config"
	"hope-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store: postgres when DATABASE_URL is set, otherwise
// sqlite at DB_PATH.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}
	return gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Donation{},
		&models.Payment{},
		&models.NewsletterSubscription{},
		&models.Session{},
		&models.Campaign{},
	)
}

// SeedCampaigns inserts the initial campaign rows on an empty table so the
// transparency pages have content on a fresh deployment.
func SeedCampaigns(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Campaign{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	campaigns := []models.Campaign{
		{
			Name:         "Coral Restoration Project",
			Description:  "Restoring damaged coral reefs through community-based conservation efforts",
			GoalAmount:   decimal.NewFromInt(50000),
			RaisedAmount: decimal.NewFromInt(35000),
		},
		{
			Name:         "Marine Education Program",
			Description:  "Teaching local communities sustainable fishing practices and marine conservation",
			GoalAmount:   decimal.NewFromInt(30000),
			RaisedAmount: decimal.NewFromInt(22500),
		},
		{
			Name:         "Sustainable Fishing Initiative",
			Description:  "Supporting local fishermen with sustainable equipment and training",
			GoalAmount:   decimal.NewFromInt(40000),
			RaisedAmount: decimal.NewFromInt(16000),
		},
	}
	return db.Create(&campaigns).Error
}
