package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
)

type MoodRepository interface {
	FindByDay(ctx context.Context, tx *gorm.DB, userID uuid.UUID, day string) (*db_models.MoodEntry, error)
	Create(ctx context.Context, tx *gorm.DB, entry *db_models.MoodEntry) error
	Save(ctx context.Context, tx *gorm.DB, entry *db_models.MoodEntry) error
	ListBetween(ctx context.Context, tx *gorm.DB, userID uuid.UUID, start, end time.Time) ([]db_models.MoodEntry, error)
	DaysWithEntries(ctx context.Context, tx *gorm.DB, userID uuid.UUID, days []string) (map[string]bool, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) FindByDay(ctx context.Context, tx *gorm.DB, userID uuid.UUID, day string) (*db_models.MoodEntry, error) {
	var entry db_models.MoodEntry
	err := pick(r.db, tx).WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (r *moodRepository) Create(ctx context.Context, tx *gorm.DB, entry *db_models.MoodEntry) error {
	return pick(r.db, tx).WithContext(ctx).Create(entry).Error
}

func (r *moodRepository) Save(ctx context.Context, tx *gorm.DB, entry *db_models.MoodEntry) error {
	return pick(r.db, tx).WithContext(ctx).Save(entry).Error
}

// ListBetween returns the user's entries created in [start, end], newest
// first.
func (r *moodRepository) ListBetween(ctx context.Context, tx *gorm.DB, userID uuid.UUID, start, end time.Time) ([]db_models.MoodEntry, error) {
	var entries []db_models.MoodEntry
	err := pick(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Where("created_at >= ? AND created_at <= ?", start.UTC(), end.UTC()).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DaysWithEntries reports which of the given day keys hold an entry.
// The lookup stays on the (user_id, day) index.
func (r *moodRepository) DaysWithEntries(ctx context.Context, tx *gorm.DB, userID uuid.UUID, days []string) (map[string]bool, error) {
	out := make(map[string]bool, len(days))
	if len(days) == 0 {
		return out, nil
	}

	var found []string
	err := pick(r.db, tx).WithContext(ctx).
		Model(&db_models.MoodEntry{}).
		Where("user_id = ? AND day IN ?", userID, days).
		Pluck("day", &found).Error
	if err != nil {
		return nil, err
	}

	for _, d := range found {
		out[d] = true
	}
	return out, nil
}

func (r *moodRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.MoodEntry{}).Error
}
