package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carebuilds/internal/infra"
	"carebuilds/internal/repositories"
	"carebuilds/internal/services"
	"carebuilds/pkg/logger"
	mem "carebuilds/pkg/memcache"
	"carebuilds/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideAccountService, provideAccountRepo),
	fx.Invoke(seedAdmin),
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.TokenRevocationStore,
	cfg infra.Config,
	clock utils.Clock,
	log *logger.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked, cfg, clock, log)
}

// seedAdmin runs after the migrations registered by db_fx.
func seedAdmin(lc fx.Lifecycle, accountService services.AccountServiceInterface) {
	lc.Append(fx.StartHook(accountService.EnsureDefaultAdmin))
}
