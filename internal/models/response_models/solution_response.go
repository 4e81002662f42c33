package response_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"carebuilds/internal/catalog"
	"carebuilds/internal/models/db_models"
)

// PlanDocument is a catalog template personalised for one request.
type PlanDocument struct {
	catalog.Template
	PersonalizedIntro string `json:"personalized_intro"`
	// Category is the resolved catalog key, not the caller's raw label.
	Category string `json:"category"`
}

type AnalyzeResponse struct {
	Solution       PlanDocument `json:"solution"`
	SolutionID     uuid.UUID    `json:"solution_id"`
	JournalEntryID uuid.UUID    `json:"journal_entry_id"`
}

type SolutionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Content         json.RawMessage `json:"content"`
	EstimatedTime   string          `json:"estimated_time"`
	DifficultyLevel string          `json:"difficulty_level"`
	CreatedAt       time.Time       `json:"created_at"`
	IsPublished     bool            `json:"is_published"`
	Views           int64           `json:"views"`
}

type UserSolutionSummary struct {
	SolutionResponse
	UserProgress int        `json:"user_progress"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type UserSolutionResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	SolutionID  uuid.UUID  `json:"solution_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Progress    int        `json:"progress"`
	Notes       string     `json:"notes"`
}

type AdminSolutionResponse struct {
	SolutionResponse
	UsageCount int64 `json:"usage_count"`
}

type SolutionPage struct {
	Solutions   []AdminSolutionResponse `json:"solutions"`
	Total       int64                   `json:"total"`
	Pages       int                     `json:"pages"`
	CurrentPage int                     `json:"current_page"`
}

func NewSolutionResponse(s *db_models.Solution) SolutionResponse {
	content := json.RawMessage(s.Content)
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return SolutionResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Content:         content,
		EstimatedTime:   s.EstimatedTime,
		DifficultyLevel: s.DifficultyLevel,
		CreatedAt:       s.CreatedAt,
		IsPublished:     s.IsPublished,
		Views:           s.Views,
	}
}

func NewUserSolutionResponse(l *db_models.UserSolution) UserSolutionResponse {
	return UserSolutionResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		SolutionID:  l.SolutionID,
		StartedAt:   l.StartedAt,
		CompletedAt: l.CompletedAt,
		Progress:    l.Progress,
		Notes:       l.Notes,
	}
}
