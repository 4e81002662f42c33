package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"carebuilds/internal/infra"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

// Now is the instant every fixed test clock starts from.
var Now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

func Clock() utils.Clock {
	return utils.NewFixedClock(Now)
}

func ClockAt(t time.Time) utils.Clock {
	return utils.NewFixedClock(t)
}

// DB opens a fresh in-memory SQLite database with the full schema. Every
// test gets its own database; the single connection keeps the memory
// database alive and means nested queries inside a transaction must use tx.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := infra.GormConfig()
	cfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := infra.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

func Ctx() context.Context {
	return context.Background()
}
