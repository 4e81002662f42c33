package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carebuilds/internal/models/request_models"
	"carebuilds/internal/services"
	"carebuilds/pkg/utils"
)

type AdminController struct {
	adminService services.AdminService
}

func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListUsers godoc
// @Summary List users
// @Description Paginated user list with journal and solution counts
// @Tags Admin
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Param search query string false "Substring match on name or email"
// @Param status query string false "all | active | inactive"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	page, perPage, err := utils.ParsePagination(c, services.DefaultAdminPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := a.adminService.ListUsers(c.Request.Context(), page, perPage, c.Query("search"), c.DefaultQuery("status", "all"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Users fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.AdminUpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (a *AdminController) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.adminService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "User updated")
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user with their journal entries, moods and solution links
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	actorID, ok := requireUser(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.adminService.DeleteUser(c.Request.Context(), actorID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted")
}

// ListSolutions godoc
// @Summary List solutions
// @Tags Admin
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Param category query string false "Exact category filter"
// @Param status query string false "all | published | draft"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/solutions [get]
func (a *AdminController) ListSolutions(c *gin.Context) {
	page, perPage, err := utils.ParsePagination(c, services.DefaultAdminPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := a.adminService.ListSolutions(c.Request.Context(), page, perPage, c.Query("category"), c.DefaultQuery("status", "all"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Solutions fetched successfully")
}

// CreateSolution godoc
// @Summary Create a solution
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateSolutionRequest true "Solution payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/solutions [post]
func (a *AdminController) CreateSolution(c *gin.Context) {
	var req request_models.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	solution, err := a.adminService.CreateSolution(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"solution": solution}, "Solution created")
}

// UpdateSolution godoc
// @Summary Update a solution
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Solution ID"
// @Param request body request_models.UpdateSolutionRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/solutions/{id} [put]
func (a *AdminController) UpdateSolution(c *gin.Context) {
	solutionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	solution, err := a.adminService.UpdateSolution(c.Request.Context(), solutionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"solution": solution}, "Solution updated")
}

// DeleteSolution godoc
// @Summary Delete a solution
// @Tags Admin
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/solutions/{id} [delete]
func (a *AdminController) DeleteSolution(c *gin.Context) {
	solutionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.adminService.DeleteSolution(c.Request.Context(), solutionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Solution deleted")
}
