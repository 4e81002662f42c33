package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/models/db_models"
)

const (
	UserStatusAll      = "all"
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type UserFilter struct {
	Search string
	Status string
}

type AccountRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *db_models.User) error
	FindByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*db_models.User, error)
	Save(ctx context.Context, tx *gorm.DB, user *db_models.User) error
	UpdateLastLogin(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error
	List(ctx context.Context, tx *gorm.DB, filter UserFilter, offset, limit int) ([]db_models.User, int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Create(ctx context.Context, tx *gorm.DB, user *db_models.User) error {
	return pick(a.db, tx).WithContext(ctx).Create(user).Error
}

func (a *accountRepository) FindByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := pick(a.db, tx).WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*db_models.User, error) {
	var user db_models.User
	err := pick(a.db, tx).WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) Save(ctx context.Context, tx *gorm.DB, user *db_models.User) error {
	return pick(a.db, tx).WithContext(ctx).Save(user).Error
}

func (a *accountRepository) UpdateLastLogin(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error {
	return pick(a.db, tx).WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("last_login", at.UTC()).Error
}

// List returns one page of users, newest first, plus the filtered total.
func (a *accountRepository) List(ctx context.Context, tx *gorm.DB, filter UserFilter, offset, limit int) ([]db_models.User, int64, error) {
	var total int64
	err := pick(a.db, tx).WithContext(ctx).
		Model(&db_models.User{}).
		Scopes(filterUsers(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []db_models.User
	err = pick(a.db, tx).WithContext(ctx).
		Scopes(filterUsers(filter), paginate(offset, limit)).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func filterUsers(filter UserFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			like := "%" + strings.ToLower(filter.Search) + "%"
			db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
		}
		switch filter.Status {
		case UserStatusActive:
			db = db.Where("is_active = ?", true)
		case UserStatusInactive:
			db = db.Where("is_active = ?", false)
		}
		return db
	}
}

func (a *accountRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return pick(a.db, tx).WithContext(ctx).Delete(&db_models.User{}, "id = ?", id).Error
}
