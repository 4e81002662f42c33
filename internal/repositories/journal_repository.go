package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
)

type JournalRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *db_models.JournalEntry) error
	FindForUser(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) (*db_models.JournalEntry, error)
	ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, category string, offset, limit int) ([]db_models.JournalEntry, int64, error)
	Save(ctx context.Context, tx *gorm.DB, entry *db_models.JournalEntry) error
	Delete(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	CountByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, tx *gorm.DB, entry *db_models.JournalEntry) error {
	return pick(r.db, tx).WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) FindForUser(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) (*db_models.JournalEntry, error) {
	var entry db_models.JournalEntry
	err := pick(r.db, tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// ListForUser pages through a user's entries, newest first. An empty
// category means no filter.
func (r *journalRepository) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, category string, offset, limit int) ([]db_models.JournalEntry, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if category != "" {
			db = db.Where("category = ?", category)
		}
		return db
	}

	var total int64
	if err := pick(r.db, tx).WithContext(ctx).
		Model(&db_models.JournalEntry{}).
		Scopes(filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []db_models.JournalEntry
	if err := pick(r.db, tx).WithContext(ctx).
		Scopes(filter, paginate(offset, limit)).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *journalRepository) Save(ctx context.Context, tx *gorm.DB, entry *db_models.JournalEntry) error {
	return pick(r.db, tx).WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) Delete(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).Delete(&db_models.JournalEntry{}, "id = ?", entryID).Error
}

func (r *journalRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.JournalEntry{}).Error
}

func (r *journalRepository) CountByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countGroupedBy(ctx, pick(r.db, tx), &db_models.JournalEntry{}, "user_id", userIDs)
}
