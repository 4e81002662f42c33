package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebuilds/internal/repositories"
	"carebuilds/internal/testutil"
)

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 100.0, growthRate(1, 0))
	assert.Equal(t, 0.0, growthRate(0, 0))
	assert.Equal(t, 50.0, growthRate(3, 2))
	assert.Equal(t, -66.7, growthRate(1, 3))
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()

	recent := testutil.SeedUser(t, ctx, env.db, "recent@example.com")
	old := testutil.SeedUser(t, ctx, env.db, "old@example.com")
	require.NoError(t, env.db.Model(old).Update("created_at", testutil.Now.AddDate(0, 0, -45)).Error)
	require.NoError(t, env.db.Model(old).Update("is_active", false).Error)
	require.NoError(t, env.accountRepo.UpdateLastLogin(ctx, nil, recent.ID, testutil.Now.Add(-time.Hour)))

	testutil.SeedSolution(t, ctx, env.db, "Draft", "work", false)
	_, err := env.solutionService(t).RecordTriage(ctx, recent.ID, "stress", "work")
	require.NoError(t, err)

	stats, err := env.dashboardService().DashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.ActiveUsers)
	assert.EqualValues(t, 1, stats.NewUsersLastMonth)
	assert.Equal(t, 0.0, stats.GrowthRate)
	assert.EqualValues(t, 1, stats.ActiveSessions)
	assert.EqualValues(t, 1, stats.TotalJournalEntries)
	assert.EqualValues(t, 1, stats.TotalSolutions)
	assert.EqualValues(t, 1, stats.TotalSolutionViews)
}

func TestAdminAnalyticsBucketsByDay(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	a := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	b := testutil.SeedUser(t, ctx, env.db, "b@example.com")
	require.NoError(t, env.db.Model(b).Update("created_at", testutil.Now.AddDate(0, 0, -1)).Error)

	yesterday := testutil.Now.AddDate(0, 0, -1)
	testutil.SeedJournalEntry(t, ctx, env.db, a.ID, "work", testutil.Now.Add(-time.Hour))
	testutil.SeedJournalEntry(t, ctx, env.db, a.ID, "work", yesterday)
	testutil.SeedJournalEntry(t, ctx, env.db, b.ID, "family", yesterday)
	testutil.SeedJournalEntry(t, ctx, env.db, b.ID, "", yesterday)
	testutil.SeedJournalEntry(t, ctx, env.db, b.ID, "work", testutil.Now.AddDate(0, 0, -40))

	testutil.SeedMood(t, ctx, env.db, a.ID, 4, yesterday)
	testutil.SeedMood(t, ctx, env.db, b.ID, 1, yesterday)
	testutil.SeedMood(t, ctx, env.db, a.ID, 5, testutil.Now.Add(-time.Hour))

	report, err := env.dashboardService().AdminAnalytics(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, report.Days)

	require.Len(t, report.UserRegistrations, 2)
	assert.Equal(t, "2025-03-14", report.UserRegistrations[0].Date)
	assert.EqualValues(t, 1, report.UserRegistrations[0].Count)

	require.Len(t, report.JournalEntries, 2)
	assert.Equal(t, "2025-03-14", report.JournalEntries[0].Date)
	assert.EqualValues(t, 3, report.JournalEntries[0].Count)
	assert.Equal(t, "2025-03-15", report.JournalEntries[1].Date)
	assert.EqualValues(t, 1, report.JournalEntries[1].Count)

	require.Len(t, report.MoodAnalytics, 2)
	assert.Equal(t, 2.5, report.MoodAnalytics[0].AverageMood)
	assert.Equal(t, 5.0, report.MoodAnalytics[1].AverageMood)

	require.Len(t, report.CategoryUsage, 2)
	assert.Equal(t, "work", report.CategoryUsage[0].Category)
	assert.EqualValues(t, 2, report.CategoryUsage[0].Count)
	assert.Equal(t, "family", report.CategoryUsage[1].Category)

	_, err = env.dashboardService().AdminAnalytics(ctx, 0)
	assert.Error(t, err)
}

func TestCountByDayOrdersOldestFirst(t *testing.T) {
	loc := time.UTC
	ts := []time.Time{
		time.Date(2025, 3, 3, 10, 0, 0, 0, loc),
		time.Date(2025, 3, 1, 23, 0, 0, 0, loc),
		time.Date(2025, 3, 3, 1, 0, 0, 0, loc),
	}
	got := countByDay(ts, loc)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-01", got[0].Date)
	assert.Equal(t, "2025-03-03", got[1].Date)
	assert.EqualValues(t, 2, got[1].Count)

	moods := averageMoodByDay([]repositories.MoodPoint{
		{CreatedAt: ts[0], MoodRating: 1},
		{CreatedAt: ts[2], MoodRating: 2},
		{CreatedAt: ts[2], MoodRating: 2},
	}, loc)
	require.Len(t, moods, 1)
	assert.Equal(t, 1.67, moods[0].AverageMood)
}
