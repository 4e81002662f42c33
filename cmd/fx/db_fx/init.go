package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"carebuilds/internal/infra"
	"carebuilds/pkg/logger"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg infra.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Running database migrations")
			return infra.AutoMigrate(db.WithContext(ctx))
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
