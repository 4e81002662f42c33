package solution_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carebuilds/internal/catalog"
	"carebuilds/internal/repositories"
	"carebuilds/internal/services"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

var Module = fx.Provide(
	catalog.Default,
	services.NewTriageEngine,
	provideSolutionRepo, provideUserSolutionRepo, provideSolutionService,
)

func provideSolutionRepo(db *gorm.DB) repositories.SolutionRepository {
	return repositories.NewSolutionRepository(db)
}

func provideUserSolutionRepo(db *gorm.DB) repositories.UserSolutionRepository {
	return repositories.NewUserSolutionRepository(db)
}

func provideSolutionService(
	db *gorm.DB,
	c *catalog.Catalog,
	triage services.TriageEngine,
	journalRepo repositories.JournalRepository,
	solutionRepo repositories.SolutionRepository,
	userSolutionRepo repositories.UserSolutionRepository,
	clock utils.Clock,
	log *logger.Logger,
) services.SolutionService {
	return services.NewSolutionService(db, c, triage, journalRepo, solutionRepo, userSolutionRepo, clock, log)
}
