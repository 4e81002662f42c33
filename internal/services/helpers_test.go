package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"carebuilds/internal/catalog"
	"carebuilds/internal/infra"
	"carebuilds/internal/repositories"
	"carebuilds/internal/testutil"
	mem "carebuilds/pkg/memcache"
	"carebuilds/pkg/utils"
)

type testEnv struct {
	db    *gorm.DB
	clock utils.Clock

	accountRepo      repositories.AccountRepository
	journalRepo      repositories.JournalRepository
	moodRepo         repositories.MoodRepository
	solutionRepo     repositories.SolutionRepository
	userSolutionRepo repositories.UserSolutionRepository
	revoked          *mem.RevokedTokens
	tokens           *utils.TokenManager
}

func newTestEnv(t *testing.T, clock utils.Clock) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	return &testEnv{
		db:               db,
		clock:            clock,
		accountRepo:      repositories.NewAccountRepository(db),
		journalRepo:      repositories.NewJournalRepository(db),
		moodRepo:         repositories.NewMoodRepository(db),
		solutionRepo:     repositories.NewSolutionRepository(db),
		userSolutionRepo: repositories.NewUserSolutionRepository(db),
		revoked:          mem.NewRevokedTokens(),
		tokens:           utils.NewTokenManager("test-secret", testTokenTTL),
	}
}

func (e *testEnv) solutionService(t *testing.T) SolutionService {
	c := catalog.Default()
	return NewSolutionService(e.db, c, NewTriageEngine(c), e.journalRepo, e.solutionRepo, e.userSolutionRepo, e.clock, testutil.Logger(t))
}

func (e *testEnv) moodService(t *testing.T) MoodService {
	return NewMoodService(e.db, e.moodRepo, e.clock, testutil.Logger(t))
}

func (e *testEnv) journalService() JournalService {
	return NewJournalService(e.journalRepo, e.clock)
}

func (e *testEnv) accountService(t *testing.T, cfg infra.Config) AccountServiceInterface {
	return NewAccountService(e.accountRepo, e.tokens, e.revoked, cfg, e.clock, testutil.Logger(t))
}

func (e *testEnv) adminService(t *testing.T) AdminService {
	return NewAdminService(e.db, e.accountRepo, e.journalRepo, e.moodRepo, e.solutionRepo, e.userSolutionRepo, e.clock, testutil.Logger(t))
}

func (e *testEnv) dashboardService() DashboardService {
	return NewDashboardService(repositories.NewDashboardRepository(e.db), e.clock)
}

const testTokenTTL = 24 * time.Hour

// withClock returns a copy of env sharing its database with the clock fixed at t.
func (e *testEnv) withClock(t time.Time) *testEnv {
	shifted := *e
	shifted.clock = testutil.ClockAt(t)
	return &shifted
}
