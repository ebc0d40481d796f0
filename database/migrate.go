package database

import (
	"gorm.io/gorm"

	"totl_backend/internal/models"
)

// Migrate runs the schema migration for every registered model. Order
// matters only for readability; gorm resolves references itself.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.TalentProfile{},
		&models.ClientProfile{},
		&models.Gig{},
		&models.Application{},
		&models.Booking{},
		&models.ClientApplication{},
		&models.ContentFlag{},
		&models.EmailLog{},
	)
}
