package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/valoreapp/valore-backend/internal/config"
)

// NewDB opens the configured database and brings the schema up to date.
// The default driver is the embedded sqlite file; "mysql" selects the
// hosted deployment. A schema failure here is fatal to startup: the
// stores cannot run against a partially-initialized schema.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DB.Path))
	case "mysql":
		dialector = mysql.Open(cfg.DB.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // surface constraint violations as gorm error kinds
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate creates missing tables, indexes and constraints. Idempotent:
// safe on every process start, never drops or truncates existing data.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&Profile{},
		&Hotel{},
		&HotelTag{},
		&HotelTagMap{},
		&Review{},
		&ReviewPhoto{},
		&List{},
		&ListItem{},
		&Follow{},
		&Event{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
