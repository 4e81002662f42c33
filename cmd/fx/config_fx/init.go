package config_fx

import (
	"go.uber.org/fx"

	"carebuilds/internal/infra"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

var Module = fx.Provide(
	infra.LoadConfig, provideLogger, provideClock, provideTokenManager)

func provideLogger(lc fx.Lifecycle, cfg infra.Config) (*logger.Logger, error) {
	mode := "development"
	if cfg.IsProduction() {
		mode = "production"
	}
	log, err := logger.New(mode, cfg.LogFile)
	if err != nil {
		log = logger.NewStderrFallback()
		log.Warn("Configured logger unavailable, logging to stderr", "log_file", cfg.LogFile, "error", err)
	}
	lc.Append(fx.StopHook(log.Sync))
	return log, nil
}

func provideClock(cfg infra.Config) (utils.Clock, error) {
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return utils.NewSystemClock(loc), nil
}

func provideTokenManager(cfg infra.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
}
