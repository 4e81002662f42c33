package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"carebuilds/internal/catalog"
	"carebuilds/internal/infra"
	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

type SolutionService interface {
	RecordTriage(ctx context.Context, userID uuid.UUID, freeText, category string) (*response_models.AnalyzeResponse, error)
	UpdateProgress(ctx context.Context, userID, solutionID uuid.UUID, progress int, notes string) (*response_models.UserSolutionResponse, error)
	ListUserSolutions(ctx context.Context, userID uuid.UUID) ([]response_models.UserSolutionSummary, error)
	GetSolution(ctx context.Context, solutionID uuid.UUID) (*response_models.SolutionResponse, error)
	Categories() []catalog.Category
}

type solutionService struct {
	db               *gorm.DB
	catalog          *catalog.Catalog
	triage           TriageEngine
	journalRepo      repositories.JournalRepository
	solutionRepo     repositories.SolutionRepository
	userSolutionRepo repositories.UserSolutionRepository
	clock            utils.Clock
	log              *logger.Logger
}

func NewSolutionService(
	db *gorm.DB,
	c *catalog.Catalog,
	triage TriageEngine,
	journalRepo repositories.JournalRepository,
	solutionRepo repositories.SolutionRepository,
	userSolutionRepo repositories.UserSolutionRepository,
	clock utils.Clock,
	log *logger.Logger,
) SolutionService {
	return &solutionService{
		db:               db,
		catalog:          c,
		triage:           triage,
		journalRepo:      journalRepo,
		solutionRepo:     solutionRepo,
		userSolutionRepo: userSolutionRepo,
		clock:            clock,
		log:              log.With("service", "SolutionService"),
	}
}

// RecordTriage stores the user's text as a journal entry, finds or creates
// the solution backing the generated plan, counts the view and links the
// user to it. All writes commit together.
func (s *solutionService) RecordTriage(ctx context.Context, userID uuid.UUID, freeText, category string) (*response_models.AnalyzeResponse, error) {
	if strings.TrimSpace(freeText) == "" {
		return nil, utils.InvalidInput("Text input is required")
	}

	var (
		now      = s.clock.Now().UTC()
		plan     = s.triage.GeneratePlan(freeText, category)
		entry    *db_models.JournalEntry
		solution *db_models.Solution
	)

	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		entry = &db_models.JournalEntry{
			BaseModel: db_models.BaseModel{CreatedAt: now},
			UserID:    userID,
			Content:   freeText,
			Category:  optionalString(category),
			IsPrivate: true,
		}
		if err := s.journalRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		found, err := s.solutionRepo.FindOldestByTitleAndCategory(ctx, tx, plan.Title, plan.Category)
		if err != nil {
			return err
		}
		if found == nil {
			content, err := json.Marshal(plan)
			if err != nil {
				return err
			}
			found = &db_models.Solution{
				BaseModel:       db_models.BaseModel{CreatedAt: now},
				Title:           plan.Title,
				Description:     plan.Description,
				Category:        plan.Category,
				Content:         datatypes.JSON(content),
				EstimatedTime:   plan.EstimatedTime,
				DifficultyLevel: db_models.DifficultyBeginner,
				IsPublished:     true,
			}
			if err := s.solutionRepo.Create(ctx, tx, found); err != nil {
				return err
			}
			s.log.Info("Created solution from catalog", "solution_id", found.ID, "category", plan.Category)
		}
		solution = found

		if err := s.solutionRepo.IncrementViews(ctx, tx, solution.ID); err != nil {
			return err
		}

		// A new link per request; repeated triage keeps independent attempts.
		return s.userSolutionRepo.Create(ctx, tx, &db_models.UserSolution{
			UserID:     userID,
			SolutionID: solution.ID,
			StartedAt:  now,
			Progress:   0,
		})
	})
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	return &response_models.AnalyzeResponse{
		Solution:       plan,
		SolutionID:     solution.ID,
		JournalEntryID: entry.ID,
	}, nil
}

// UpdateProgress updates the user's most recently started link to the
// solution. The completion time is stamped once, the first time progress
// reaches 100.
func (s *solutionService) UpdateProgress(ctx context.Context, userID, solutionID uuid.UUID, progress int, notes string) (*response_models.UserSolutionResponse, error) {
	if progress < 0 || progress > 100 {
		return nil, utils.InvalidInput("Progress must be between 0 and 100")
	}

	var link *db_models.UserSolution
	err := infra.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.userSolutionRepo.FindLatest(ctx, tx, userID, solutionID)
		if err != nil {
			return utils.DatabaseError(err)
		}
		if found == nil {
			return utils.ErrUserSolutionNotFound
		}

		found.Progress = progress
		found.Notes = notes
		if progress >= 100 && found.CompletedAt == nil {
			now := s.clock.Now().UTC()
			found.CompletedAt = &now
		}

		if err := s.userSolutionRepo.Save(ctx, tx, found); err != nil {
			return utils.DatabaseError(err)
		}
		link = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := response_models.NewUserSolutionResponse(link)
	return &resp, nil
}

func (s *solutionService) ListUserSolutions(ctx context.Context, userID uuid.UUID) ([]response_models.UserSolutionSummary, error) {
	links, err := s.userSolutionRepo.ListForUser(ctx, nil, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.UserSolutionSummary, 0, len(links))
	for i := range links {
		link := &links[i]
		if link.Solution == nil {
			continue
		}
		out = append(out, response_models.UserSolutionSummary{
			SolutionResponse: response_models.NewSolutionResponse(link.Solution),
			UserProgress:     link.Progress,
			StartedAt:        link.StartedAt,
			CompletedAt:      link.CompletedAt,
		})
	}
	return out, nil
}

func (s *solutionService) GetSolution(ctx context.Context, solutionID uuid.UUID) (*response_models.SolutionResponse, error) {
	solution, err := s.solutionRepo.FindPublishedByID(ctx, nil, solutionID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if solution == nil {
		return nil, utils.ErrSolutionNotFound
	}
	resp := response_models.NewSolutionResponse(solution)
	return &resp, nil
}

func (s *solutionService) Categories() []catalog.Category {
	return s.catalog.Categories()
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
