package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carebuilds/internal/repositories"
	"carebuilds/internal/services"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

var Module = fx.Provide(
	provideJournalRepo, provideMoodRepo, provideJournalService, provideMoodService)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideMoodRepo(db *gorm.DB) repositories.MoodRepository {
	return repositories.NewMoodRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository, clock utils.Clock) services.JournalService {
	return services.NewJournalService(journalRepo, clock)
}

func provideMoodService(db *gorm.DB, moodRepo repositories.MoodRepository, clock utils.Clock, log *logger.Logger) services.MoodService {
	return services.NewMoodService(db, moodRepo, clock, log)
}
