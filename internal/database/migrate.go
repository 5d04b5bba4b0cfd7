package database

import (
	"fmt"
	"time"

	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/store"
	"gorm.io/gorm"
)

// SchemaMigration records an applied migration.
type SchemaMigration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "migrations"
}

type migration struct {
	name string
	run  func(tx *gorm.DB) error
}

// migrations are applied in order, each at most once.
var migrations = []migration{
	{
		name: "0001_create_kv_entries",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&store.Entry{})
		},
	},
}

// RunMigrations applies every migration that is not yet recorded.
func RunMigrations(db *gorm.DB, log *logger.Logger) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("name = ?", m.name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.name, err)
		}
		if count > 0 {
			log.Debug("skipping migration (already applied)", "migration", m.name)
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Name: m.name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}
		log.Info("applied migration", "migration", m.name)
	}

	return nil
}
