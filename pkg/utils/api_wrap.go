package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carebuilds/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	TraceIDKey = "trace_id"
	LoggerKey  = "logger"
)

func traceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

func requestLogger(c *gin.Context) *logger.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return logger.NewNop()
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Admin access required")
	case errors.Is(err, ErrAccountDisabled):
		RespondError(c, http.StatusForbidden, "Account is disabled")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrJournalEntryNotFound):
		RespondError(c, http.StatusNotFound, "Journal entry not found")
	case errors.Is(err, ErrUserSolutionNotFound):
		RespondError(c, http.StatusNotFound, "Solution not found for user")
	case errors.Is(err, ErrSolutionNotFound):
		RespondError(c, http.StatusNotFound, "Solution not found")
	case errors.Is(err, ErrDatabaseError):
		requestLogger(c).Error("Database error", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		requestLogger(c).Error("Unknown error", "error", err, "trace_id", traceID(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
