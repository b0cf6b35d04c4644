package persistence

import (
	"fmt"

	"github.com/contentforge/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates the tables from the GORM models.
// Production schemas come from the SQL migrations; this is for local
// development against sqlite and for tests.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}
