package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carebuilds/pkg/middleware"
	"carebuilds/pkg/utils"
)

// ---- helpers ----

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseDays reads a positive day window from the query string.
func parseDays(c *gin.Context, def, max int) (int, bool) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(def)))
	if err != nil || days < 1 || days > max {
		utils.RespondError(c, http.StatusBadRequest, "days must be between 1 and "+strconv.Itoa(max))
		return 0, false
	}
	return days, true
}
