package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbm "carebuilds/internal/models/db_models"
	"carebuilds/pkg/logger"
)

// GormConfig is shared by the Postgres connection and the SQLite test
// databases. Timestamps are written in UTC and driver errors are translated
// to gorm sentinels such as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func InitPostgresql(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, errors.New("POSTGRES_URL is not set")
	}

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), GormConfig())
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", "error", err)
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&dbm.User{},
		&dbm.JournalEntry{},
		&dbm.Solution{},
		&dbm.UserSolution{},
		&dbm.MoodEntry{},
	)
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
