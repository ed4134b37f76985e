package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"event-management-api/internal/apperr"
	"event-management-api/internal/auth"
	"event-management-api/internal/model"
)

// context keys set by Auth and read by the handlers
const (
	UserIDKey = "uid"
	RoleKey   = "role"
)

func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// token from Authorization: Bearer <jwt>
		raw := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			raw = strings.TrimPrefix(h, "Bearer ")
		}
		if raw == "" {
			abort(c, http.StatusUnauthorized, apperr.Unauthenticated("missing bearer token"))
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			abort(c, http.StatusUnauthorized, apperr.Unauthenticated("invalid or expired token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

func RequireOrganizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != model.RoleOrganizer {
			abort(c, http.StatusForbidden, apperr.Forbidden("organizer role required"))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, e *apperr.Error) {
	c.AbortWithStatusJSON(status, e)
}
