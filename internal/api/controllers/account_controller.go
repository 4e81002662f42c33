package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carebuilds/internal/infra"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/services"
	"carebuilds/pkg/middleware"
	"carebuilds/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	cookieSecure   bool
}

func NewAccountController(accountService services.AccountServiceInterface, cfg infra.Config) *AccountController {
	return &AccountController{
		accountService: accountService,
		cookieSecure:   cfg.CookieSecure,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account and start a session
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	auth, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSessionCookie(c, auth)
	utils.RespondCreated(c, auth, "Registration successful")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user, return a token and set the session cookie
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setSessionCookie(c, auth)
	utils.RespondSuccess(c, auth, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the current token and clear the session cookie
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := a.accountService.Logout(c.Request.Context(), claims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", a.cookieSecure, true)
	utils.RespondSuccess(c, nil, "Logout successful")
}

// Me godoc
// @Summary Current user
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := a.accountService.Me(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "User fetched successfully")
}

// CompleteOnboarding godoc
// @Summary Complete onboarding
// @Description Store language, age group and goals chosen during onboarding
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.OnboardingRequest true "Onboarding payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /onboarding [post]
func (a *AccountController) CompleteOnboarding(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.CompleteOnboarding(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "Onboarding completed")
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Partially update name, language, age group and goals
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "Profile updated")
}

func (a *AccountController) setSessionCookie(c *gin.Context, auth *response_models.AuthResponse) {
	maxAge := int(time.Until(auth.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, auth.Token, maxAge, "/", "", a.cookieSecure, true)
}
