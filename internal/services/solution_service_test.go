package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebuilds/internal/catalog"
	"carebuilds/internal/models/db_models"
	"carebuilds/internal/testutil"
	"carebuilds/pkg/utils"
)

func TestRecordTriageReusesSolution(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.solutionService(t)

	first, err := svc.RecordTriage(ctx, user.ID, "I am so stressed at work", "Work")
	require.NoError(t, err)
	second, err := svc.RecordTriage(ctx, user.ID, "still stressed", "work")
	require.NoError(t, err)

	assert.Equal(t, first.SolutionID, second.SolutionID)
	assert.NotEqual(t, first.JournalEntryID, second.JournalEntryID)
	assert.Equal(t, catalog.Work, first.Solution.Category)
	assert.Equal(t, introStress, first.Solution.PersonalizedIntro)

	var journals, solutions, links int64
	require.NoError(t, env.db.Model(&db_models.JournalEntry{}).Count(&journals).Error)
	require.NoError(t, env.db.Model(&db_models.Solution{}).Count(&solutions).Error)
	require.NoError(t, env.db.Model(&db_models.UserSolution{}).Count(&links).Error)
	assert.EqualValues(t, 2, journals)
	assert.EqualValues(t, 1, solutions)
	assert.EqualValues(t, 2, links)

	stored, err := env.solutionRepo.FindByID(ctx, nil, first.SolutionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.EqualValues(t, 2, stored.Views)
	assert.True(t, stored.IsPublished)
	assert.Equal(t, db_models.DifficultyBeginner, stored.DifficultyLevel)

	var content map[string]interface{}
	require.NoError(t, json.Unmarshal(stored.Content, &content))
	assert.Equal(t, "Managing Work Stress and Burnout", content["title"])
}

func TestRecordTriageStoresRawText(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.solutionService(t)

	res, err := svc.RecordTriage(ctx, user.ID, "  My family keeps fighting  ", "family")
	require.NoError(t, err)

	entry, err := env.journalRepo.FindForUser(ctx, nil, user.ID, res.JournalEntryID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "  My family keeps fighting  ", entry.Content)
	require.NotNil(t, entry.Category)
	assert.Equal(t, "family", *entry.Category)
	assert.True(t, entry.IsPrivate)
}

func TestRecordTriageUnknownCategoryFallsBack(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	res, err := env.solutionService(t).RecordTriage(ctx, user.ID, "hmm", "astrology")
	require.NoError(t, err)
	assert.Equal(t, catalog.Personal, res.Solution.Category)
	assert.Equal(t, introGeneric, res.Solution.PersonalizedIntro)
}

func TestRecordTriageRejectsEmptyText(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	_, err := env.solutionService(t).RecordTriage(ctx, user.ID, "   ", "work")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	var journals int64
	require.NoError(t, env.db.Model(&db_models.JournalEntry{}).Count(&journals).Error)
	assert.Zero(t, journals)
}

func TestUpdateProgressSetsCompletionOnce(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.solutionService(t)

	res, err := svc.RecordTriage(ctx, user.ID, "stress", "work")
	require.NoError(t, err)

	link, err := svc.UpdateProgress(ctx, user.ID, res.SolutionID, 40, "halfway")
	require.NoError(t, err)
	assert.Equal(t, 40, link.Progress)
	assert.Nil(t, link.CompletedAt)

	link, err = svc.UpdateProgress(ctx, user.ID, res.SolutionID, 100, "done")
	require.NoError(t, err)
	require.NotNil(t, link.CompletedAt)
	completedAt := *link.CompletedAt

	later := env.withClock(testutil.Now.AddDate(0, 0, 3)).solutionService(t)
	link, err = later.UpdateProgress(ctx, user.ID, res.SolutionID, 100, "again")
	require.NoError(t, err)
	require.NotNil(t, link.CompletedAt)
	assert.True(t, completedAt.Equal(*link.CompletedAt))
	assert.Equal(t, "again", link.Notes)
}

func TestUpdateProgressValidation(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")
	svc := env.solutionService(t)

	res, err := svc.RecordTriage(ctx, user.ID, "stress", "work")
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, user.ID, res.SolutionID, -1, "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.UpdateProgress(ctx, user.ID, res.SolutionID, 101, "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.UpdateProgress(ctx, user.ID, uuid.New(), 10, "")
	assert.ErrorIs(t, err, utils.ErrUserSolutionNotFound)

	other := testutil.SeedUser(t, ctx, env.db, "b@example.com")
	_, err = svc.UpdateProgress(ctx, other.ID, res.SolutionID, 10, "")
	assert.ErrorIs(t, err, utils.ErrUserSolutionNotFound)
}

func TestListUserSolutionsNewestFirst(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	user := testutil.SeedUser(t, ctx, env.db, "a@example.com")

	_, err := env.solutionService(t).RecordTriage(ctx, user.ID, "stress", "work")
	require.NoError(t, err)
	later := env.withClock(testutil.Now.Add(time.Hour)).solutionService(t)
	_, err = later.RecordTriage(ctx, user.ID, "money", "financial")
	require.NoError(t, err)

	list, err := env.solutionService(t).ListUserSolutions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, catalog.Financial, list[0].Category)
	assert.Equal(t, catalog.Work, list[1].Category)
	assert.Equal(t, 0, list[0].UserProgress)
}

func TestGetSolutionHidesDrafts(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	ctx := testutil.Ctx()
	svc := env.solutionService(t)

	published := testutil.SeedSolution(t, ctx, env.db, "Published", "work", true)
	draft := testutil.SeedSolution(t, ctx, env.db, "Draft", "work", false)

	got, err := svc.GetSolution(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, "Published", got.Title)

	_, err = svc.GetSolution(ctx, draft.ID)
	assert.ErrorIs(t, err, utils.ErrSolutionNotFound)
}

func TestCategoriesListsSeven(t *testing.T) {
	env := newTestEnv(t, testutil.Clock())
	assert.Len(t, env.solutionService(t).Categories(), 7)
}
