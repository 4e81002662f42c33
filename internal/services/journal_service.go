package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/utils"
)

const DefaultJournalPageSize = 10

type JournalService interface {
	ListEntries(ctx context.Context, userID uuid.UUID, page, perPage int, category string) (*response_models.JournalPage, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateJournalEntryRequest) (*response_models.JournalEntryResponse, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*response_models.JournalEntryResponse, error)
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, request request_models.UpdateJournalEntryRequest) (*response_models.JournalEntryResponse, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}

type journalService struct {
	journalRepo repositories.JournalRepository
	clock       utils.Clock
}

func NewJournalService(journalRepo repositories.JournalRepository, clock utils.Clock) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		clock:       clock,
	}
}

func (j *journalService) ListEntries(ctx context.Context, userID uuid.UUID, page, perPage int, category string) (*response_models.JournalPage, error) {
	if err := validatePage(page, perPage); err != nil {
		return nil, err
	}

	entries, total, err := j.journalRepo.ListForUser(ctx, nil, userID, strings.TrimSpace(category), utils.Offset(page, perPage), perPage)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	out := make([]response_models.JournalEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, response_models.NewJournalEntryResponse(&entries[i]))
	}

	return &response_models.JournalPage{
		Entries:     out,
		Total:       total,
		Pages:       utils.TotalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

func (j *journalService) CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateJournalEntryRequest) (*response_models.JournalEntryResponse, error) {
	if strings.TrimSpace(request.Content) == "" {
		return nil, utils.InvalidInput("Content is required")
	}
	if err := validateMoodRating(request.MoodRating); err != nil {
		return nil, err
	}

	isPrivate := true
	if request.IsPrivate != nil {
		isPrivate = *request.IsPrivate
	}

	entry := &db_models.JournalEntry{
		BaseModel:  db_models.BaseModel{CreatedAt: j.clock.Now().UTC()},
		UserID:     userID,
		Content:    request.Content,
		Category:   normalizedCategory(request.Category),
		MoodRating: request.MoodRating,
		IsPrivate:  isPrivate,
	}
	if err := j.journalRepo.Create(ctx, nil, entry); err != nil {
		return nil, utils.DatabaseError(err)
	}

	resp := response_models.NewJournalEntryResponse(entry)
	return &resp, nil
}

func (j *journalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*response_models.JournalEntryResponse, error) {
	entry, err := j.findOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewJournalEntryResponse(entry)
	return &resp, nil
}

func (j *journalService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, request request_models.UpdateJournalEntryRequest) (*response_models.JournalEntryResponse, error) {
	entry, err := j.findOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if request.Content != nil {
		if strings.TrimSpace(*request.Content) == "" {
			return nil, utils.InvalidInput("Content cannot be empty")
		}
		entry.Content = *request.Content
	}
	if request.Category != nil {
		entry.Category = normalizedCategory(request.Category)
	}
	if request.MoodRating != nil {
		if err := validateMoodRating(request.MoodRating); err != nil {
			return nil, err
		}
		entry.MoodRating = request.MoodRating
	}
	if request.IsPrivate != nil {
		entry.IsPrivate = *request.IsPrivate
	}

	if err := j.journalRepo.Save(ctx, nil, entry); err != nil {
		return nil, utils.DatabaseError(err)
	}

	resp := response_models.NewJournalEntryResponse(entry)
	return &resp, nil
}

func (j *journalService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := j.findOwned(ctx, userID, entryID); err != nil {
		return err
	}
	if err := j.journalRepo.Delete(ctx, nil, entryID); err != nil {
		return utils.DatabaseError(err)
	}
	return nil
}

// findOwned hides other users' entries behind the same not-found error.
func (j *journalService) findOwned(ctx context.Context, userID, entryID uuid.UUID) (*db_models.JournalEntry, error) {
	entry, err := j.journalRepo.FindForUser(ctx, nil, userID, entryID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if entry == nil {
		return nil, utils.ErrJournalEntryNotFound
	}
	return entry, nil
}

func validateMoodRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return utils.InvalidInput("Mood rating must be between 1 and 5")
	}
	return nil
}

func normalizedCategory(category *string) *string {
	if category == nil {
		return nil
	}
	return optionalString(*category)
}
