package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carebuilds/internal/repositories"
	"carebuilds/internal/services"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideAdminService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, clock utils.Clock) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, clock)
}

func provideAdminService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	journalRepo repositories.JournalRepository,
	moodRepo repositories.MoodRepository,
	solutionRepo repositories.SolutionRepository,
	userSolutionRepo repositories.UserSolutionRepository,
	clock utils.Clock,
	log *logger.Logger,
) services.AdminService {
	return services.NewAdminService(db, accountRepo, journalRepo, moodRepo, solutionRepo, userSolutionRepo, clock, log)
}
