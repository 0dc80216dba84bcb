package repositories

import (
	"dorm-management-api/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables used by the service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.DormApplication{},
		&models.Message{},
		&models.Announcement{},
	)
}
