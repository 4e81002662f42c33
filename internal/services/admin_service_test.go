package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/testutil"
	"carebuilds/pkg/utils"
)

func TestAdminDeleteUserCascades(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	admin := testutil.SeedAdmin(t, ctx, env.db, "admin@example.com")
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	keep := testutil.SeedUser(t, ctx, env.db, "b@example.com")

	solutions := env.solutionService(t)
	_, err := solutions.RecordTriage(ctx, user.ID, "stress", "work")
	require.NoError(t, err)
	_, err = solutions.RecordTriage(ctx, keep.ID, "stress", "work")
	require.NoError(t, err)
	testutil.SeedMood(t, ctx, env.db, user.ID, 3, testutil.Now)

	svc := env.adminService(t)
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), utils.ErrInvalidInput)
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, uuid.New()), utils.ErrUserNotFound)
	require.NoError(t, svc.DeleteUser(ctx, admin.ID, user.ID))

	for _, model := range []interface{}{&db_models.JournalEntry{}, &db_models.UserSolution{}, &db_models.MoodEntry{}} {
		var n int64
		require.NoError(t, env.db.Model(model).Where("user_id = ?", user.ID).Count(&n).Error)
		assert.Zero(t, n, "%T rows left for deleted user", model)
	}
	gone, err := env.accountRepo.FindByID(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var kept int64
	require.NoError(t, env.db.Model(&db_models.JournalEntry{}).Where("user_id = ?", keep.ID).Count(&kept).Error)
	assert.EqualValues(t, 1, kept)
}

func TestAdminListUsersFiltersAndCounts(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	alice := testutil.SeedUser(t, ctx, env.db, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, env.db, "bob@example.com")
	require.NoError(t, env.db.Model(bob).Update("is_active", false).Error)

	testutil.SeedJournalEntry(t, ctx, env.db, alice.ID, "work", testutil.Now)
	testutil.SeedJournalEntry(t, ctx, env.db, alice.ID, "", testutil.Now)
	_, err := env.solutionService(t).RecordTriage(ctx, alice.ID, "stress", "work")
	require.NoError(t, err)

	svc := env.adminService(t)
	page, err := svc.ListUsers(ctx, 1, 20, "ALICE", "all")
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.EqualValues(t, 3, page.Users[0].JournalEntriesCount)
	assert.EqualValues(t, 1, page.Users[0].SolutionsUsedCount)

	page, err = svc.ListUsers(ctx, 1, 20, "", "inactive")
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, bob.ID, page.Users[0].ID)
	assert.Zero(t, page.Users[0].JournalEntriesCount)

	page, err = svc.ListUsers(ctx, 1, 1, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 2, page.Pages)

	_, err = svc.ListUsers(ctx, 1, 20, "", "banned")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAdminUpdateUser(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	testutil.SeedUser(t, ctx, env.db, "taken@example.com")
	svc := env.adminService(t)

	got, err := svc.UpdateUser(ctx, user.ID, request_models.AdminUpdateUserRequest{
		IsActive: boolPtr(false),
		IsAdmin:  boolPtr(true),
	})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsAdmin)

	_, err = svc.UpdateUser(ctx, user.ID, request_models.AdminUpdateUserRequest{Email: strPtr("Taken@example.com")})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	_, err = svc.UpdateUser(ctx, uuid.New(), request_models.AdminUpdateUserRequest{})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestAdminSolutionLifecycle(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.adminService(t)

	_, err := svc.CreateSolution(ctx, request_models.CreateSolutionRequest{Title: "x"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.CreateSolution(ctx, request_models.CreateSolutionRequest{Title: "x", Category: "work", DifficultyLevel: "expert"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	created, err := svc.CreateSolution(ctx, request_models.CreateSolutionRequest{
		Title:    "Breathing",
		Category: "health",
	})
	require.NoError(t, err)
	assert.False(t, created.IsPublished)
	assert.Equal(t, db_models.DifficultyBeginner, created.DifficultyLevel)
	assert.JSONEq(t, "{}", string(created.Content))

	updated, err := svc.UpdateSolution(ctx, created.ID, request_models.UpdateSolutionRequest{
		IsPublished: boolPtr(true),
		Content:     json.RawMessage(`{"steps":[]}`),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.JSONEq(t, `{"steps":[]}`, string(updated.Content))

	link := &db_models.UserSolution{UserID: user.ID, SolutionID: created.ID, StartedAt: testutil.Now}
	require.NoError(t, env.userSolutionRepo.Create(ctx, nil, link))

	page, err := svc.ListSolutions(ctx, 1, 20, "health", "published")
	require.NoError(t, err)
	require.Len(t, page.Solutions, 1)
	assert.EqualValues(t, 1, page.Solutions[0].UsageCount)

	drafts, err := svc.ListSolutions(ctx, 1, 20, "", "draft")
	require.NoError(t, err)
	assert.Empty(t, drafts.Solutions)

	require.NoError(t, svc.DeleteSolution(ctx, created.ID))
	var links int64
	require.NoError(t, env.db.Model(&db_models.UserSolution{}).Count(&links).Error)
	assert.Zero(t, links)
	assert.ErrorIs(t, svc.DeleteSolution(ctx, created.ID), utils.ErrSolutionNotFound)
}

func TestAdminUpdateSolutionKeepsConcurrentViews(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	svc := env.adminService(t)

	created, err := svc.CreateSolution(ctx, request_models.CreateSolutionRequest{Title: "Breathing", Category: "health"})
	require.NoError(t, err)
	require.NoError(t, env.solutionRepo.IncrementViews(ctx, nil, created.ID))

	// A triage lands right after the admin edit has read the row.
	armed := true
	require.NoError(t, env.db.Callback().Query().After("gorm:query").Register("test:triage_view", func(tx *gorm.DB) {
		if !armed || tx.Statement.Table != "solutions" {
			return
		}
		armed = false
		require.NoError(t, env.solutionRepo.IncrementViews(ctx, nil, created.ID))
	}))

	updated, err := svc.UpdateSolution(ctx, created.ID, request_models.UpdateSolutionRequest{
		Description: strPtr("Slow breathing for a calmer day"),
	})
	require.NoError(t, err)
	assert.False(t, armed)
	assert.EqualValues(t, 2, updated.Views)
	assert.Equal(t, "Slow breathing for a calmer day", updated.Description)

	stored, err := env.solutionRepo.FindByID(ctx, nil, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.EqualValues(t, 2, stored.Views)
	assert.Equal(t, "Slow breathing for a calmer day", stored.Description)
}
