package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
	"carebuilds/pkg/utils"
)

const Password = "secret123"

func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, email string) *db_models.User {
	tb.Helper()
	hash, err := utils.HashPassword(Password)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	u := &db_models.User{
		BaseModel:    db_models.BaseModel{ID: uuid.New(), CreatedAt: Now},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Language:     db_models.DefaultLanguage,
		Goals:        []string{},
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAdmin(tb testing.TB, ctx context.Context, db *gorm.DB, email string) *db_models.User {
	tb.Helper()
	u := SeedUser(tb, ctx, db, email)
	if err := db.WithContext(ctx).Model(u).Update("is_admin", true).Error; err != nil {
		tb.Fatalf("promote admin: %v", err)
	}
	u.IsAdmin = true
	return u
}

func SeedJournalEntry(tb testing.TB, ctx context.Context, db *gorm.DB, userID uuid.UUID, category string, at time.Time) *db_models.JournalEntry {
	tb.Helper()
	e := &db_models.JournalEntry{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: at},
		UserID:    userID,
		Content:   "entry",
		IsPrivate: true,
	}
	if category != "" {
		e.Category = &category
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed journal entry: %v", err)
	}
	return e
}

func SeedMood(tb testing.TB, ctx context.Context, db *gorm.DB, userID uuid.UUID, rating int, at time.Time) *db_models.MoodEntry {
	tb.Helper()
	m := &db_models.MoodEntry{
		BaseModel:  db_models.BaseModel{ID: uuid.New(), CreatedAt: at},
		UserID:     userID,
		Day:        utils.DayKey(at, time.UTC),
		MoodRating: rating,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mood: %v", err)
	}
	return m
}

func SeedSolution(tb testing.TB, ctx context.Context, db *gorm.DB, title, category string, published bool) *db_models.Solution {
	tb.Helper()
	s := &db_models.Solution{
		BaseModel:       db_models.BaseModel{ID: uuid.New(), CreatedAt: Now},
		Title:           title,
		Description:     "description",
		Category:        category,
		Content:         datatypes.JSON([]byte("{}")),
		EstimatedTime:   "1 week",
		DifficultyLevel: db_models.DifficultyBeginner,
		IsPublished:     published,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed solution: %v", err)
	}
	return s
}
