package response_models

import (
	"time"

	"github.com/google/uuid"

	"carebuilds/internal/models/db_models"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"is_admin"`
	Language  string     `json:"language"`
	AgeGroup  string     `json:"age_group"`
	Goals     []string   `json:"goals"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `json:"is_active"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type AdminUserResponse struct {
	UserResponse
	JournalEntriesCount int64 `json:"journal_entries_count"`
	SolutionsUsedCount  int64 `json:"solutions_used_count"`
}

type UserPage struct {
	Users       []AdminUserResponse `json:"users"`
	Total       int64               `json:"total"`
	Pages       int                 `json:"pages"`
	CurrentPage int                 `json:"current_page"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	goals := u.Goals
	if goals == nil {
		goals = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Language:  u.Language,
		AgeGroup:  u.AgeGroup,
		Goals:     goals,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}
