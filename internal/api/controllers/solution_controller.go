package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carebuilds/internal/catalog"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/services"
	"carebuilds/pkg/utils"
)

type SolutionController struct {
	solutionService services.SolutionService
}

func NewSolutionController(solutionService services.SolutionService) *SolutionController {
	return &SolutionController{solutionService: solutionService}
}

// Analyze godoc
// @Summary Analyze a problem description
// @Description Save the text as a journal entry and return a personalised plan for the category
// @Tags Solutions
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeRequest true "Free text and category (default personal)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /analyze [post]
func (s *SolutionController) Analyze(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category := catalog.DefaultCategory
	if req.Category != nil {
		category = *req.Category
	}

	result, err := s.solutionService.RecordTriage(c.Request.Context(), userID, req.Text, category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plan generated successfully")
}

// ListUserSolutions godoc
// @Summary List my solutions
// @Description Solutions the current user started, with progress, newest first
// @Tags Solutions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /solutions [get]
func (s *SolutionController) ListUserSolutions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	solutions, err := s.solutionService.ListUserSolutions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"solutions": solutions}, "Solutions fetched successfully")
}

// GetSolution godoc
// @Summary Get a published solution
// @Tags Solutions
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /solutions/{id} [get]
func (s *SolutionController) GetSolution(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	solution, err := s.solutionService.GetSolution(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"solution": solution}, "Solution fetched successfully")
}

// UpdateProgress godoc
// @Summary Update solution progress
// @Description Set progress (0-100) and notes on the current user's latest link to the solution
// @Tags Solutions
// @Accept json
// @Produce json
// @Param id path string true "Solution ID"
// @Param request body request_models.UpdateProgressRequest true "Progress payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /solutions/{id}/progress [put]
func (s *SolutionController) UpdateProgress(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	solutionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	link, err := s.solutionService.UpdateProgress(c.Request.Context(), userID, solutionID, req.Progress, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user_solution": link}, "Progress updated")
}

// Categories godoc
// @Summary List problem categories
// @Tags Solutions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /solutions/categories [get]
func (s *SolutionController) Categories(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"categories": s.solutionService.Categories()}, "Categories fetched successfully")
}
