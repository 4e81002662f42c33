package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mem "carebuilds/pkg/memcache"
	"carebuilds/pkg/utils"
)

const (
	SessionCookieName = "session"

	userIDKey = "user_id"
	roleKey   = "role"
	claimsKey = "claims"
)

// AdminChecker reports whether a user may use the admin endpoints.
type AdminChecker interface {
	IsActiveAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

func JWTAuthMiddleware(tokens *utils.TokenManager, revoked mem.TokenRevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			utils.HandleServiceError(c, utils.DatabaseError(err))
			c.Abort()
			return
		}
		if isRevoked {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set(userIDKey, uuid.MustParse(claims.UserID))
		c.Set(roleKey, claims.Role)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminMiddleware must run after JWTAuthMiddleware. The admin flag is read
// from the database so a demoted admin loses access before the token expires.
func AdminMiddleware(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		isAdmin, err := checker.IsActiveAdmin(c.Request.Context(), userID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !isAdmin {
			utils.RespondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
