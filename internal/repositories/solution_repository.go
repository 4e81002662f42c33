package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
)

const (
	SolutionStatusAll       = "all"
	SolutionStatusPublished = "published"
	SolutionStatusDraft     = "draft"
)

type SolutionFilter struct {
	Category string
	Status   string
}

type SolutionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, solution *db_models.Solution) error
	FindByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.Solution, error)
	FindPublishedByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.Solution, error)
	FindOldestByTitleAndCategory(ctx context.Context, tx *gorm.DB, title, category string) (*db_models.Solution, error)
	IncrementViews(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, tx *gorm.DB, filter SolutionFilter, offset, limit int) ([]db_models.Solution, int64, error)
	Save(ctx context.Context, tx *gorm.DB, solution *db_models.Solution) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type solutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

func (r *solutionRepository) Create(ctx context.Context, tx *gorm.DB, solution *db_models.Solution) error {
	return pick(r.db, tx).WithContext(ctx).Create(solution).Error
}

func (r *solutionRepository) FindByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.Solution, error) {
	return r.first(ctx, tx, "id = ?", id)
}

func (r *solutionRepository) FindPublishedByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.Solution, error) {
	return r.first(ctx, tx, "id = ? AND is_published = ?", id, true)
}

// FindOldestByTitleAndCategory backs find-or-create. Concurrent first-time
// creates can leave duplicates; ordering by age makes every later lookup
// settle on the same row.
func (r *solutionRepository) FindOldestByTitleAndCategory(ctx context.Context, tx *gorm.DB, title, category string) (*db_models.Solution, error) {
	var solution db_models.Solution
	err := pick(r.db, tx).WithContext(ctx).
		Where("title = ? AND category = ?", title, category).
		Order("created_at ASC").
		Order("id ASC").
		Take(&solution).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &solution, nil
}

func (r *solutionRepository) IncrementViews(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	res := pick(r.db, tx).WithContext(ctx).
		Model(&db_models.Solution{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *solutionRepository) List(ctx context.Context, tx *gorm.DB, filter SolutionFilter, offset, limit int) ([]db_models.Solution, int64, error) {
	var total int64
	if err := pick(r.db, tx).WithContext(ctx).
		Model(&db_models.Solution{}).
		Scopes(filterSolutions(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var solutions []db_models.Solution
	if err := pick(r.db, tx).WithContext(ctx).
		Scopes(filterSolutions(filter), paginate(offset, limit)).
		Order("created_at DESC").
		Find(&solutions).Error; err != nil {
		return nil, 0, err
	}

	return solutions, total, nil
}

func filterSolutions(filter SolutionFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		switch filter.Status {
		case SolutionStatusPublished:
			db = db.Where("is_published = ?", true)
		case SolutionStatusDraft:
			db = db.Where("is_published = ?", false)
		}
		return db
	}
}

// Save writes the editable columns. Views only move through IncrementViews so
// a stale copy can never roll the counter back.
func (r *solutionRepository) Save(ctx context.Context, tx *gorm.DB, solution *db_models.Solution) error {
	return pick(r.db, tx).WithContext(ctx).Omit("views").Save(solution).Error
}

func (r *solutionRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).Delete(&db_models.Solution{}, "id = ?", id).Error
}

func (r *solutionRepository) first(ctx context.Context, tx *gorm.DB, query string, args ...interface{}) (*db_models.Solution, error) {
	var solution db_models.Solution
	err := pick(r.db, tx).WithContext(ctx).Where(query, args...).First(&solution).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &solution, nil
}
