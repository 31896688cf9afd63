package configs

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
)

// maxOpenConns bounds how many statements may be in flight system-wide;
// requests past the limit queue until a connection frees.
const maxOpenConns = 10

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store, bounds the pool and probes connectivity so
// the process fails fast when the database is unreachable.
func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)

	switch cfg.DBDriver {
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		database, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns / 2)

	// Acquire-then-release probe, same as the old connectToDatabase check.
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("database connection successful")
	db = database
	return nil
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.MenuItemImage{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
