package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carebuilds/internal/models/request_models"
	"carebuilds/internal/services"
	"carebuilds/pkg/utils"
)

type JournalController struct {
	journalService services.JournalService
	moodService    services.MoodService
}

func NewJournalController(journalService services.JournalService, moodService services.MoodService) *JournalController {
	return &JournalController{
		journalService: journalService,
		moodService:    moodService,
	}
}

// ListEntries godoc
// @Summary List journal entries
// @Tags Journal
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 10, max 100)"
// @Param category query string false "Exact category filter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries [get]
func (j *JournalController) ListEntries(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	page, perPage, err := utils.ParsePagination(c, services.DefaultJournalPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := j.journalService.ListEntries(c.Request.Context(), userID, page, perPage, c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Journal entries fetched successfully")
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.CreateJournalEntryRequest true "Entry payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries [post]
func (j *JournalController) CreateEntry(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := j.journalService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"entry": entry}, "Journal entry created")
}

// GetEntry godoc
// @Summary Get a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{id} [get]
func (j *JournalController) GetEntry(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := j.journalService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"entry": entry}, "Journal entry fetched successfully")
}

// UpdateEntry godoc
// @Summary Update a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body request_models.UpdateJournalEntryRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{id} [put]
func (j *JournalController) UpdateEntry(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := j.journalService.UpdateEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"entry": entry}, "Journal entry updated")
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{id} [delete]
func (j *JournalController) DeleteEntry(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := j.journalService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry deleted")
}

// ListMoods godoc
// @Summary List mood entries
// @Tags Mood
// @Produce json
// @Param days query int false "Trailing window in days (default 30, max 365)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/entries [get]
func (j *JournalController) ListMoods(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	days, ok := parseDays(c, services.DefaultMoodDays, services.MaxMoodDays)
	if !ok {
		return
	}

	result, err := j.moodService.ListMoods(c.Request.Context(), userID, days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Mood entries fetched successfully")
}

// RecordMood godoc
// @Summary Record today's mood
// @Description Creates today's entry (201) or overwrites it when one exists (200)
// @Tags Mood
// @Accept json
// @Produce json
// @Param request body request_models.MoodEntryRequest true "Mood payload"
// @Success 200 {object} utils.APIResponse
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/entries [post]
func (j *JournalController) RecordMood(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.MoodRating == nil {
		utils.RespondError(c, http.StatusBadRequest, "Mood rating must be between 1 and 5")
		return
	}

	entry, created, err := j.moodService.RecordMood(c.Request.Context(), userID, *req.MoodRating, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if created {
		utils.RespondCreated(c, gin.H{"entry": entry}, "Mood entry created")
		return
	}
	utils.RespondSuccess(c, gin.H{"entry": entry}, "Mood entry updated")
}

// MoodStats godoc
// @Summary Mood statistics
// @Description Average, trend and streak over the last 30 days
// @Tags Mood
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/stats [get]
func (j *JournalController) MoodStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	stats, err := j.moodService.MoodStats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Mood stats fetched successfully")
}
