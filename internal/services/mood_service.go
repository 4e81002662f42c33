package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/infra"
	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

const (
	moodStatsWindowDays = 30
	streakMaxDays       = 30
	trendThreshold      = 0.2

	DefaultMoodDays = 30
	MaxMoodDays     = 365
)

type MoodService interface {
	RecordMood(ctx context.Context, userID uuid.UUID, rating int, notes string) (*response_models.MoodEntryResponse, bool, error)
	ListMoods(ctx context.Context, userID uuid.UUID, days int) (*response_models.MoodEntries, error)
	MoodStats(ctx context.Context, userID uuid.UUID) (*response_models.MoodStats, error)
}

type moodService struct {
	db       *gorm.DB
	moodRepo repositories.MoodRepository
	clock    utils.Clock
	log      *logger.Logger
}

func NewMoodService(db *gorm.DB, moodRepo repositories.MoodRepository, clock utils.Clock, log *logger.Logger) MoodService {
	return &moodService{
		db:       db,
		moodRepo: moodRepo,
		clock:    clock,
		log:      log.With("service", "MoodService"),
	}
}

// RecordMood keeps one entry per user per server-local day: the first call of
// the day creates it, later calls overwrite rating and notes. created reports
// which of the two happened.
func (m *moodService) RecordMood(ctx context.Context, userID uuid.UUID, rating int, notes string) (*response_models.MoodEntryResponse, bool, error) {
	if rating < 1 || rating > 5 {
		return nil, false, utils.InvalidInput("Mood rating must be between 1 and 5")
	}

	now := m.clock.Now()
	day := utils.DayKey(now, m.clock.Location())

	var (
		entry   *db_models.MoodEntry
		created bool
		err     error
	)
	// A concurrent first write of the day loses on the unique index; the
	// second pass then finds the row and updates it.
	for attempt := 0; attempt < 2; attempt++ {
		entry, created, err = m.upsertMood(ctx, userID, now, day, rating, notes)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		m.log.Debug("Mood upsert raced, retrying", "user_id", userID, "day", day)
	}
	if err != nil {
		return nil, false, utils.DatabaseError(err)
	}

	resp := response_models.NewMoodEntryResponse(entry)
	return &resp, created, nil
}

func (m *moodService) upsertMood(ctx context.Context, userID uuid.UUID, now time.Time, day string, rating int, notes string) (*db_models.MoodEntry, bool, error) {
	var (
		entry   *db_models.MoodEntry
		created bool
	)
	err := infra.RunInTransaction(ctx, m.db, func(tx *gorm.DB) error {
		existing, err := m.moodRepo.FindByDay(ctx, tx, userID, day)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.MoodRating = rating
			existing.Notes = notes
			entry = existing
			return m.moodRepo.Save(ctx, tx, existing)
		}

		entry = &db_models.MoodEntry{
			BaseModel:  db_models.BaseModel{CreatedAt: now.UTC()},
			UserID:     userID,
			Day:        day,
			MoodRating: rating,
			Notes:      notes,
		}
		created = true
		return m.moodRepo.Create(ctx, tx, entry)
	})
	return entry, created, err
}

func (m *moodService) ListMoods(ctx context.Context, userID uuid.UUID, days int) (*response_models.MoodEntries, error) {
	if days < 1 || days > MaxMoodDays {
		return nil, utils.InvalidInput(fmt.Sprintf("days must be between 1 and %d", MaxMoodDays))
	}

	now := m.clock.Now()
	entries, err := m.moodRepo.ListBetween(ctx, nil, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.MoodEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, response_models.NewMoodEntryResponse(&entries[i]))
	}

	return &response_models.MoodEntries{
		Entries: out,
		Period:  fmt.Sprintf("%d days", days),
	}, nil
}

func (m *moodService) MoodStats(ctx context.Context, userID uuid.UUID) (*response_models.MoodStats, error) {
	now := m.clock.Now()
	entries, err := m.moodRepo.ListBetween(ctx, nil, userID, now.AddDate(0, 0, -moodStatsWindowDays), now)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	if len(entries) == 0 {
		return &response_models.MoodStats{MoodTrend: response_models.TrendNeutral}, nil
	}

	ratings := make([]int, len(entries))
	for i, e := range entries {
		ratings[i] = e.MoodRating
	}

	streak, err := m.streak(ctx, userID, now)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	return &response_models.MoodStats{
		AverageMood:  roundOneDecimal(mean(ratings)),
		TotalEntries: len(ratings),
		MoodTrend:    moodTrend(ratings),
		Streak:       streak,
	}, nil
}

// streak counts consecutive days with an entry, ending today and looking back
// at most streakMaxDays days.
func (m *moodService) streak(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	days := trailingDayKeys(now, m.clock.Location(), streakMaxDays)

	found, err := m.moodRepo.DaysWithEntries(ctx, nil, userID, days)
	if err != nil {
		return 0, err
	}

	streak := 0
	for _, d := range days {
		if !found[d] {
			break
		}
		streak++
	}
	return streak, nil
}

// trailingDayKeys returns n day keys starting at today and going backwards.
func trailingDayKeys(now time.Time, loc *time.Location, n int) []string {
	today := utils.StartOfDay(now, loc)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = utils.DayKey(today.AddDate(0, 0, -i), loc)
	}
	return keys
}

// moodTrend compares the newer half of ratings (ordered newest first) with
// the older half. The older half takes the extra element of an odd count.
func moodTrend(ratings []int) string {
	mid := len(ratings) / 2
	if mid == 0 {
		return response_models.TrendNeutral
	}

	newer := mean(ratings[:mid])
	older := mean(ratings[mid:])

	switch {
	case newer > older+trendThreshold:
		return response_models.TrendImproving
	case newer < older-trendThreshold:
		return response_models.TrendDeclining
	default:
		return response_models.TrendStable
	}
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
