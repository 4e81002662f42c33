package response_models

import (
	"time"

	"github.com/google/uuid"

	"carebuilds/internal/models/db_models"
)

type JournalEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`
	Category   *string   `json:"category"`
	MoodRating *int      `json:"mood_rating"`
	CreatedAt  time.Time `json:"created_at"`
	IsPrivate  bool      `json:"is_private"`
}

type JournalPage struct {
	Entries     []JournalEntryResponse `json:"entries"`
	Total       int64                  `json:"total"`
	Pages       int                    `json:"pages"`
	CurrentPage int                    `json:"current_page"`
}

type MoodEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MoodRating int       `json:"mood_rating"`
	Notes      string    `json:"notes"`
	Day        string    `json:"day"`
	CreatedAt  time.Time `json:"created_at"`
}

type MoodEntries struct {
	Entries []MoodEntryResponse `json:"entries"`
	Period  string              `json:"period"`
}

const (
	TrendNeutral   = "neutral"
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

type MoodStats struct {
	AverageMood  float64 `json:"average_mood"`
	TotalEntries int     `json:"total_entries"`
	MoodTrend    string  `json:"mood_trend"`
	Streak       int     `json:"streak"`
}

func NewJournalEntryResponse(e *db_models.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Content:    e.Content,
		Category:   e.Category,
		MoodRating: e.MoodRating,
		CreatedAt:  e.CreatedAt,
		IsPrivate:  e.IsPrivate,
	}
}

func NewMoodEntryResponse(e *db_models.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		MoodRating: e.MoodRating,
		Notes:      e.Notes,
		Day:        e.Day,
		CreatedAt:  e.CreatedAt,
	}
}
