package request_models

import "encoding/json"

type AdminUpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

type CreateSolutionRequest struct {
	Title           string          `json:"title" binding:"max=200"`
	Description     string          `json:"description"`
	Category        string          `json:"category" binding:"max=50"`
	Content         json.RawMessage `json:"content"`
	EstimatedTime   string          `json:"estimated_time" binding:"max=50"`
	DifficultyLevel string          `json:"difficulty_level"`
	IsPublished     *bool           `json:"is_published"`
}

type UpdateSolutionRequest struct {
	Title           *string         `json:"title" binding:"omitempty,max=200"`
	Description     *string         `json:"description"`
	Category        *string         `json:"category" binding:"omitempty,max=50"`
	Content         json.RawMessage `json:"content"`
	EstimatedTime   *string         `json:"estimated_time" binding:"omitempty,max=50"`
	DifficultyLevel *string         `json:"difficulty_level"`
	IsPublished     *bool           `json:"is_published"`
}
