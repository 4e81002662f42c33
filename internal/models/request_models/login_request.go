package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,min=6"`
}

// OnboardingRequest keeps the stored language and age group when they are
// omitted; goals are always replaced.
type OnboardingRequest struct {
	Language *string  `json:"language" binding:"omitempty,max=10"`
	AgeGroup *string  `json:"age_group" binding:"omitempty,max=20"`
	Goals    []string `json:"goals"`
}

// UpdateProfileRequest is a partial update; nil fields are left untouched.
type UpdateProfileRequest struct {
	Name     *string   `json:"name" binding:"omitempty,max=100"`
	Language *string   `json:"language" binding:"omitempty,max=10"`
	AgeGroup *string   `json:"age_group" binding:"omitempty,max=20"`
	Goals    *[]string `json:"goals"`
}
