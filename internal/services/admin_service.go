package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"carebuilds/internal/infra"
	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

const DefaultAdminPageSize = 20

type AdminService interface {
	ListUsers(ctx context.Context, page, perPage int, search, status string) (*response_models.UserPage, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.AdminUpdateUserRequest) (*response_models.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error

	ListSolutions(ctx context.Context, page, perPage int, category, status string) (*response_models.SolutionPage, error)
	CreateSolution(ctx context.Context, request request_models.CreateSolutionRequest) (*response_models.SolutionResponse, error)
	UpdateSolution(ctx context.Context, solutionID uuid.UUID, request request_models.UpdateSolutionRequest) (*response_models.SolutionResponse, error)
	DeleteSolution(ctx context.Context, solutionID uuid.UUID) error
}

type adminService struct {
	db               *gorm.DB
	accountRepo      repositories.AccountRepository
	journalRepo      repositories.JournalRepository
	moodRepo         repositories.MoodRepository
	solutionRepo     repositories.SolutionRepository
	userSolutionRepo repositories.UserSolutionRepository
	clock            utils.Clock
	log              *logger.Logger
}

func NewAdminService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	journalRepo repositories.JournalRepository,
	moodRepo repositories.MoodRepository,
	solutionRepo repositories.SolutionRepository,
	userSolutionRepo repositories.UserSolutionRepository,
	clock utils.Clock,
	log *logger.Logger,
) AdminService {
	return &adminService{
		db:               db,
		accountRepo:      accountRepo,
		journalRepo:      journalRepo,
		moodRepo:         moodRepo,
		solutionRepo:     solutionRepo,
		userSolutionRepo: userSolutionRepo,
		clock:            clock,
		log:              log.With("service", "AdminService"),
	}
}

// ---------- Users ----------

func (s *adminService) ListUsers(ctx context.Context, page, perPage int, search, status string) (*response_models.UserPage, error) {
	if err := validatePage(page, perPage); err != nil {
		return nil, err
	}
	if status == "" {
		status = repositories.UserStatusAll
	}
	switch status {
	case repositories.UserStatusAll, repositories.UserStatusActive, repositories.UserStatusInactive:
	default:
		return nil, utils.InvalidInput("status must be one of: all, active, inactive")
	}

	filter := repositories.UserFilter{Search: strings.TrimSpace(search), Status: status}
	users, total, err := s.accountRepo.List(ctx, nil, filter, utils.Offset(page, perPage), perPage)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	journalCounts, err := s.journalRepo.CountByUsers(ctx, nil, ids)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	solutionCounts, err := s.userSolutionRepo.CountByUsers(ctx, nil, ids)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.AdminUserResponse, 0, len(users))
	for i := range users {
		out = append(out, response_models.AdminUserResponse{
			UserResponse:        response_models.NewUserResponse(&users[i]),
			JournalEntriesCount: journalCounts[users[i].ID],
			SolutionsUsedCount:  solutionCounts[users[i].ID],
		})
	}

	return &response_models.UserPage{
		Users:       out,
		Total:       total,
		Pages:       utils.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

func (s *adminService) UpdateUser(ctx context.Context, userID uuid.UUID, request request_models.AdminUpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := s.accountRepo.FindByID(ctx, nil, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, utils.InvalidInput("Name cannot be empty")
		}
		user.Name = name
	}
	if request.Email != nil {
		email := normalizeEmail(*request.Email)
		if email == "" {
			return nil, utils.InvalidInput("Email cannot be empty")
		}
		if email != user.Email {
			other, err := s.accountRepo.FindByEmail(ctx, nil, email)
			if err != nil {
				return nil, utils.DatabaseError(err)
			}
			if other != nil {
				return nil, utils.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}
	if request.IsActive != nil {
		user.IsActive = *request.IsActive
	}
	if request.IsAdmin != nil {
		user.IsAdmin = *request.IsAdmin
	}

	if err := s.accountRepo.Save(ctx, nil, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.DatabaseError(err)
	}

	s.log.Info("Admin updated user", "user_id", user.ID, "is_active", user.IsActive, "is_admin", user.IsAdmin)
	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes the user together with their journal, mood and
// solution-link rows in one transaction.
func (s *adminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return utils.InvalidInput("Cannot delete your own account")
	}

	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.accountRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return utils.DatabaseError(err)
		}
		if user == nil {
			return utils.ErrUserNotFound
		}

		if err := s.journalRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return utils.DatabaseError(err)
		}
		if err := s.userSolutionRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return utils.DatabaseError(err)
		}
		if err := s.moodRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return utils.DatabaseError(err)
		}
		if err := s.accountRepo.Delete(ctx, tx, userID); err != nil {
			return utils.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("Admin deleted user", "user_id", userID, "actor_id", actorID)
	return nil
}

// ---------- Solutions ----------

func (s *adminService) ListSolutions(ctx context.Context, page, perPage int, category, status string) (*response_models.SolutionPage, error) {
	if err := validatePage(page, perPage); err != nil {
		return nil, err
	}
	if status == "" {
		status = repositories.SolutionStatusAll
	}
	switch status {
	case repositories.SolutionStatusAll, repositories.SolutionStatusPublished, repositories.SolutionStatusDraft:
	default:
		return nil, utils.InvalidInput("status must be one of: all, published, draft")
	}

	filter := repositories.SolutionFilter{Category: strings.TrimSpace(category), Status: status}
	solutions, total, err := s.solutionRepo.List(ctx, nil, filter, utils.Offset(page, perPage), perPage)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	ids := make([]uuid.UUID, len(solutions))
	for i := range solutions {
		ids[i] = solutions[i].ID
	}
	usage, err := s.userSolutionRepo.CountBySolutions(ctx, nil, ids)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.AdminSolutionResponse, 0, len(solutions))
	for i := range solutions {
		out = append(out, response_models.AdminSolutionResponse{
			SolutionResponse: response_models.NewSolutionResponse(&solutions[i]),
			UsageCount:       usage[solutions[i].ID],
		})
	}

	return &response_models.SolutionPage{
		Solutions:   out,
		Total:       total,
		Pages:       utils.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

func (s *adminService) CreateSolution(ctx context.Context, request request_models.CreateSolutionRequest) (*response_models.SolutionResponse, error) {
	title := strings.TrimSpace(request.Title)
	category := strings.TrimSpace(request.Category)
	if title == "" || category == "" {
		return nil, utils.InvalidInput("Title and category are required")
	}

	difficulty := strings.TrimSpace(request.DifficultyLevel)
	if difficulty == "" {
		difficulty = db_models.DifficultyBeginner
	}
	if !validDifficulty(difficulty) {
		return nil, utils.InvalidInput("difficulty_level must be one of: beginner, intermediate, advanced")
	}

	content, err := solutionContent(request.Content)
	if err != nil {
		return nil, err
	}

	published := false
	if request.IsPublished != nil {
		published = *request.IsPublished
	}

	solution := &db_models.Solution{
		BaseModel:       db_models.BaseModel{CreatedAt: s.clock.Now().UTC()},
		Title:           title,
		Description:     request.Description,
		Category:        category,
		Content:         content,
		EstimatedTime:   strings.TrimSpace(request.EstimatedTime),
		DifficultyLevel: difficulty,
		IsPublished:     published,
	}
	if err := s.solutionRepo.Create(ctx, nil, solution); err != nil {
		return nil, utils.DatabaseError(err)
	}

	s.log.Info("Admin created solution", "solution_id", solution.ID, "category", category)
	resp := response_models.NewSolutionResponse(solution)
	return &resp, nil
}

func (s *adminService) UpdateSolution(ctx context.Context, solutionID uuid.UUID, request request_models.UpdateSolutionRequest) (*response_models.SolutionResponse, error) {
	solution, err := s.solutionRepo.FindByID(ctx, nil, solutionID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if solution == nil {
		return nil, utils.ErrSolutionNotFound
	}

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title == "" {
			return nil, utils.InvalidInput("Title cannot be empty")
		}
		solution.Title = title
	}
	if request.Description != nil {
		solution.Description = *request.Description
	}
	if request.Category != nil {
		category := strings.TrimSpace(*request.Category)
		if category == "" {
			return nil, utils.InvalidInput("Category cannot be empty")
		}
		solution.Category = category
	}
	if request.Content != nil {
		content, err := solutionContent(request.Content)
		if err != nil {
			return nil, err
		}
		solution.Content = content
	}
	if request.EstimatedTime != nil {
		solution.EstimatedTime = strings.TrimSpace(*request.EstimatedTime)
	}
	if request.DifficultyLevel != nil {
		difficulty := strings.TrimSpace(*request.DifficultyLevel)
		if !validDifficulty(difficulty) {
			return nil, utils.InvalidInput("difficulty_level must be one of: beginner, intermediate, advanced")
		}
		solution.DifficultyLevel = difficulty
	}
	if request.IsPublished != nil {
		solution.IsPublished = *request.IsPublished
	}

	if err := s.solutionRepo.Save(ctx, nil, solution); err != nil {
		return nil, utils.DatabaseError(err)
	}

	// views may have moved since the read above
	saved, err := s.solutionRepo.FindByID(ctx, nil, solutionID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if saved != nil {
		solution = saved
	}

	resp := response_models.NewSolutionResponse(solution)
	return &resp, nil
}

func (s *adminService) DeleteSolution(ctx context.Context, solutionID uuid.UUID) error {
	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		solution, err := s.solutionRepo.FindByID(ctx, tx, solutionID)
		if err != nil {
			return utils.DatabaseError(err)
		}
		if solution == nil {
			return utils.ErrSolutionNotFound
		}

		if err := s.userSolutionRepo.DeleteBySolution(ctx, tx, solutionID); err != nil {
			return utils.DatabaseError(err)
		}
		if err := s.solutionRepo.Delete(ctx, tx, solutionID); err != nil {
			return utils.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("Admin deleted solution", "solution_id", solutionID)
	return nil
}

func validatePage(page, perPage int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if perPage < 1 || perPage > utils.MaxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func validDifficulty(level string) bool {
	switch level {
	case db_models.DifficultyBeginner, db_models.DifficultyIntermediate, db_models.DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// solutionContent accepts any JSON document; an absent body stores {}.
func solutionContent(raw json.RawMessage) (datatypes.JSON, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return datatypes.JSON("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, utils.InvalidInput("content must be valid JSON")
	}
	return datatypes.JSON(raw), nil
}
