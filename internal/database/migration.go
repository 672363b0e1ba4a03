package database

import (
	"fmt"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Asset{},
		&models.Liability{},
		&models.Budget{},
		&models.SavingsGoal{},
		&models.Debt{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
