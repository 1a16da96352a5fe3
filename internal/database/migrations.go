package database

import (
	"fmt"

	"github.com/emreglvibecoder/darth-vader-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates the users and todos tables when they are missing and
// never alters an existing table, with one exception: a todos table from a
// release without accounts gets an owner_id column (default 0, so its old
// rows belong to nobody).
func Migrate(db *gorm.DB, log logrus.FieldLogger) error {
	log.Info("Running database migrations...")
	m := db.Migrator()

	for _, model := range []interface{}{&models.User{}, &models.Task{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if !m.HasColumn(&models.Task{}, "OwnerID") {
		log.Warn("todos table has no owner_id column, adding it")
		if err := m.AddColumn(&models.Task{}, "OwnerID"); err != nil {
			return fmt.Errorf("failed to add todos.owner_id: %w", err)
		}
	}
	if !m.HasIndex(&models.Task{}, "OwnerID") {
		if err := m.CreateIndex(&models.Task{}, "OwnerID"); err != nil {
			return fmt.Errorf("failed to index todos.owner_id: %w", err)
		}
	}

	log.Info("Database migrations completed")
	return nil
}
