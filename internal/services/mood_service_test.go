package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/testutil"
	"carebuilds/pkg/utils"
)

func TestRecordMoodValidatesRating(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.moodService(t)

	for _, rating := range []int{0, 6, -3} {
		_, _, err := svc.RecordMood(ctx, user.ID, rating, "")
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "rating %d", rating)
	}

	entry, created, err := svc.RecordMood(ctx, user.ID, 3, "ok")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 3, entry.MoodRating)
	assert.Equal(t, "2025-03-15", entry.Day)
}

func TestRecordMoodUpsertsPerDay(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.moodService(t)

	first, created, err := svc.RecordMood(ctx, user.ID, 2, "morning")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.RecordMood(ctx, user.ID, 4, "evening")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var rows []db_models.MoodEntry
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].MoodRating)
	assert.Equal(t, "evening", rows[0].Notes)

	tomorrow := env.withClock(testutil.Now.AddDate(0, 0, 1)).moodService(t)
	_, created, err = tomorrow.RecordMood(ctx, user.ID, 5, "")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestMoodStatsEmpty(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	stats, err := env.moodService(t).MoodStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, response_models.MoodStats{MoodTrend: response_models.TrendNeutral}, *stats)
}

func TestMoodStatsTrendAndStreak(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	// Newest first: today 5, yesterday 5, then 4, 2, 2.
	for i, rating := range []int{5, 5, 4, 2, 2} {
		testutil.SeedMood(t, ctx, env.db, user.ID, rating, testutil.Now.AddDate(0, 0, -i).Add(-time.Hour))
	}

	stats, err := env.moodService(t).MoodStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalEntries)
	assert.InDelta(t, 3.6, stats.AverageMood, 1e-9)
	assert.Equal(t, response_models.TrendImproving, stats.MoodTrend)
	assert.Equal(t, 5, stats.Streak)
}

func TestMoodStatsStreakStopsAtGap(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	for _, daysAgo := range []int{0, 1, 2, 4, 5} {
		testutil.SeedMood(t, ctx, env.db, user.ID, 3, testutil.Now.AddDate(0, 0, -daysAgo).Add(-time.Hour))
	}

	stats, err := env.moodService(t).MoodStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Streak)
	assert.Equal(t, response_models.TrendStable, stats.MoodTrend)
}

func TestMoodStatsStreakZeroWithoutToday(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	testutil.SeedMood(t, ctx, env.db, user.ID, 1, testutil.Now.AddDate(0, 0, -1))
	testutil.SeedMood(t, ctx, env.db, user.ID, 5, testutil.Now.AddDate(0, 0, -2))

	stats, err := env.moodService(t).MoodStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, response_models.TrendDeclining, stats.MoodTrend)
}

func TestMoodTrend(t *testing.T) {
	assert.Equal(t, response_models.TrendNeutral, moodTrend([]int{4}))
	assert.Equal(t, response_models.TrendImproving, moodTrend([]int{5, 5, 4, 2, 2}))
	assert.Equal(t, response_models.TrendDeclining, moodTrend([]int{1, 5}))
	assert.Equal(t, response_models.TrendStable, moodTrend([]int{3, 3, 3, 3}))
}

func TestListMoodsWindow(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	testutil.SeedMood(t, ctx, env.db, user.ID, 4, testutil.Now.AddDate(0, 0, -1))
	testutil.SeedMood(t, ctx, env.db, user.ID, 2, testutil.Now.AddDate(0, 0, -10))

	svc := env.moodService(t)
	res, err := svc.ListMoods(ctx, user.ID, 7)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, 4, res.Entries[0].MoodRating)
	assert.Equal(t, "7 days", res.Period)

	res, err = svc.ListMoods(ctx, user.ID, 30)
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)

	_, err = svc.ListMoods(ctx, user.ID, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
