package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
)

type UserSolutionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, link *db_models.UserSolution) error
	FindLatest(ctx context.Context, tx *gorm.DB, userID, solutionID uuid.UUID) (*db_models.UserSolution, error)
	Save(ctx context.Context, tx *gorm.DB, link *db_models.UserSolution) error
	ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]db_models.UserSolution, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	DeleteBySolution(ctx context.Context, tx *gorm.DB, solutionID uuid.UUID) error
	CountByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountBySolutions(ctx context.Context, tx *gorm.DB, solutionIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type userSolutionRepository struct {
	db *gorm.DB
}

func NewUserSolutionRepository(db *gorm.DB) UserSolutionRepository {
	return &userSolutionRepository{db: db}
}

func (r *userSolutionRepository) Create(ctx context.Context, tx *gorm.DB, link *db_models.UserSolution) error {
	return pick(r.db, tx).WithContext(ctx).Create(link).Error
}

// FindLatest returns the most recently started link of a user to a solution.
func (r *userSolutionRepository) FindLatest(ctx context.Context, tx *gorm.DB, userID, solutionID uuid.UUID) (*db_models.UserSolution, error) {
	var link db_models.UserSolution
	err := pick(r.db, tx).WithContext(ctx).
		Where("user_id = ? AND solution_id = ?", userID, solutionID).
		Order("started_at DESC").
		Order("created_at DESC").
		Take(&link).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &link, nil
}

func (r *userSolutionRepository) Save(ctx context.Context, tx *gorm.DB, link *db_models.UserSolution) error {
	return pick(r.db, tx).WithContext(ctx).Omit("Solution").Save(link).Error
}

// ListForUser joins each link with its solution, newest link first.
func (r *userSolutionRepository) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]db_models.UserSolution, error) {
	var links []db_models.UserSolution
	err := pick(r.db, tx).WithContext(ctx).
		Joins("Solution").
		Where("user_solutions.user_id = ?", userID).
		Order("user_solutions.started_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userSolutionRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.UserSolution{}).Error
}

func (r *userSolutionRepository) DeleteBySolution(ctx context.Context, tx *gorm.DB, solutionID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).
		Where("solution_id = ?", solutionID).
		Delete(&db_models.UserSolution{}).Error
}

func (r *userSolutionRepository) CountByUsers(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countGroupedBy(ctx, pick(r.db, tx), &db_models.UserSolution{}, "user_id", userIDs)
}

func (r *userSolutionRepository) CountBySolutions(ctx context.Context, tx *gorm.DB, solutionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countGroupedBy(ctx, pick(r.db, tx), &db_models.UserSolution{}, "solution_id", solutionIDs)
}
