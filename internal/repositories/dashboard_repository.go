package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "carebuilds/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountUsers(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	CountUsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountUsersLoggedInBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountJournalEntries(ctx context.Context) (int64, error)
	CountPublishedSolutions(ctx context.Context) (int64, error)
	SumSolutionViews(ctx context.Context) (int64, error)

	// Raw points for the analytics series; bucketing happens in the service
	// so days follow the server time zone on every database.
	UserSignupsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
	JournalEntriesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
	MoodRatingsBetween(ctx context.Context, start, end time.Time) ([]MoodPoint, error)

	// Journal entries per non-empty category
	CategoryUsage(ctx context.Context, start, end time.Time) ([]CategoryRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type MoodPoint struct {
	CreatedAt  time.Time `gorm:"column:created_at"`
	MoodRating int       `gorm:"column:mood_rating"`
}

type CategoryRow struct {
	Category string `gorm:"column:category"`
	Count    int64  `gorm:"column:count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}

// CountUsersCreatedBetween counts users created in [start, end).
func (r *dashboardRepository) CountUsersCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}

// CountUsersLoggedInBetween counts users whose last login is in [start, end).
func (r *dashboardRepository) CountUsersLoggedInBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("last_login IS NOT NULL AND last_login >= ? AND last_login < ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountJournalEntries(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.JournalEntry{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPublishedSolutions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Solution{}).
		Where("is_published = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumSolutionViews(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Solution{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum).Error
	return sum, err
}

// ---------- Series ----------
func (r *dashboardRepository) UserSignupsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var ts []time.Time
	err := r.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("created_at >= ? AND created_at <= ?", start.UTC(), end.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &ts).Error
	return ts, err
}

func (r *dashboardRepository) JournalEntriesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var ts []time.Time
	err := r.db.WithContext(ctx).
		Model(&dbm.JournalEntry{}).
		Where("created_at >= ? AND created_at <= ?", start.UTC(), end.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &ts).Error
	return ts, err
}

func (r *dashboardRepository) MoodRatingsBetween(ctx context.Context, start, end time.Time) ([]MoodPoint, error) {
	var rows []MoodPoint
	err := r.db.WithContext(ctx).
		Model(&dbm.MoodEntry{}).
		Select("created_at, mood_rating").
		Where("created_at >= ? AND created_at <= ?", start.UTC(), end.UTC()).
		Order("created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CategoryUsage(ctx context.Context, start, end time.Time) ([]CategoryRow, error) {
	var rows []CategoryRow
	err := r.db.WithContext(ctx).
		Model(&dbm.JournalEntry{}).
		Select("category, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", start.UTC(), end.UTC()).
		Where("category IS NOT NULL AND category <> ''").
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Scan(&rows).Error
	return rows, err
}
