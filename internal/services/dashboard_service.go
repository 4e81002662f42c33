package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/utils"
)

const (
	growthWindowDays = 30

	DefaultAnalyticsDays = 30
	MaxAnalyticsDays     = 365
)

type DashboardService interface {
	DashboardStats(ctx context.Context) (*response_models.DashboardStats, error)
	AdminAnalytics(ctx context.Context, days int) (*response_models.Analytics, error)
}

type dashboardService struct {
	repo  repositories.DashboardRepository
	clock utils.Clock
}

func NewDashboardService(repo repositories.DashboardRepository, clock utils.Clock) DashboardService {
	return &dashboardService{repo: repo, clock: clock}
}

func (s *dashboardService) DashboardStats(ctx context.Context) (*response_models.DashboardStats, error) {
	now := s.clock.Now()
	lastMonth := now.AddDate(0, 0, -growthWindowDays)
	previousMonth := now.AddDate(0, 0, -2*growthWindowDays)
	today := utils.StartOfDay(now, s.clock.Location())

	var (
		stats response_models.DashboardStats
		prior int64
		err   error
	)

	if stats.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if stats.ActiveUsers, err = s.repo.CountActiveUsers(ctx); err != nil {
		return nil, utils.DatabaseError(err)
	}
	// Upper bound is open so a user created at exactly now still counts.
	if stats.NewUsersLastMonth, err = s.repo.CountUsersCreatedBetween(ctx, lastMonth, now.Add(time.Nanosecond)); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if prior, err = s.repo.CountUsersCreatedBetween(ctx, previousMonth, lastMonth); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if stats.ActiveSessions, err = s.repo.CountUsersLoggedInBetween(ctx, today, today.AddDate(0, 0, 1)); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if stats.TotalJournalEntries, err = s.repo.CountJournalEntries(ctx); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if stats.TotalSolutions, err = s.repo.CountPublishedSolutions(ctx); err != nil {
		return nil, utils.DatabaseError(err)
	}
	if stats.TotalSolutionViews, err = s.repo.SumSolutionViews(ctx); err != nil {
		return nil, utils.DatabaseError(err)
	}

	stats.GrowthRate = growthRate(stats.NewUsersLastMonth, prior)
	return &stats, nil
}

// growthRate is the percentage change from prior to current, rounded to one
// decimal. With no prior users it is 100 when there are new users and 0
// otherwise.
func growthRate(current, prior int64) float64 {
	if prior == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return roundOneDecimal(float64(current-prior) / float64(prior) * 100)
}

func (s *dashboardService) AdminAnalytics(ctx context.Context, days int) (*response_models.Analytics, error) {
	if days < 1 || days > MaxAnalyticsDays {
		return nil, utils.InvalidInput(fmt.Sprintf("days must be between 1 and %d", MaxAnalyticsDays))
	}

	end := s.clock.Now()
	start := end.AddDate(0, 0, -days)
	loc := s.clock.Location()

	signups, err := s.repo.UserSignupsBetween(ctx, start, end)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	journals, err := s.repo.JournalEntriesBetween(ctx, start, end)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	moods, err := s.repo.MoodRatingsBetween(ctx, start, end)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	categories, err := s.repo.CategoryUsage(ctx, start, end)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	usage := make([]response_models.CategoryCount, 0, len(categories))
	for _, row := range categories {
		usage = append(usage, response_models.CategoryCount{Category: row.Category, Count: row.Count})
	}

	return &response_models.Analytics{
		Days:              days,
		UserRegistrations: countByDay(signups, loc),
		JournalEntries:    countByDay(journals, loc),
		MoodAnalytics:     averageMoodByDay(moods, loc),
		CategoryUsage:     usage,
	}, nil
}

// countByDay buckets timestamps by calendar day in loc, oldest day first.
func countByDay(ts []time.Time, loc *time.Location) []response_models.DailyCount {
	counts := make(map[string]int64)
	for _, t := range ts {
		counts[utils.DayKey(t, loc)]++
	}

	out := make([]response_models.DailyCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, response_models.DailyCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func averageMoodByDay(points []repositories.MoodPoint, loc *time.Location) []response_models.DailyMood {
	type acc struct {
		sum, n int
	}
	byDay := make(map[string]*acc)
	for _, p := range points {
		key := utils.DayKey(p.CreatedAt, loc)
		a, ok := byDay[key]
		if !ok {
			a = &acc{}
			byDay[key] = a
		}
		a.sum += p.MoodRating
		a.n++
	}

	out := make([]response_models.DailyMood, 0, len(byDay))
	for day, a := range byDay {
		out = append(out, response_models.DailyMood{
			Date:        day,
			AverageMood: roundTwoDecimals(float64(a.sum) / float64(a.n)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
