package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey      = contextKey("userID")
	businessIDsKey = contextKey("businessIDs")
)

// BusinessIDParam is the route parameter naming the business a request acts on.
const BusinessIDParam = "business_id"

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID := c.GetString(string(userIDKey)); userID != "" {
		return userID, true
	}
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// RequireBusinessAccess rejects requests for a business the token does not grant.
// It must run after AuthMiddleware.
func RequireBusinessAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.Param(BusinessIDParam)
		allowed, _ := c.Request.Context().Value(businessIDsKey).([]string)
		for _, id := range allowed {
			if id == "*" || id == businessID {
				c.Request = c.Request.WithContext(WithLogger(c.Request.Context(),
					GetLoggerFromCtx(c.Request.Context()).With(slog.String("business_id", businessID))))
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Business access denied", slog.String("business_id", businessID))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to this business is not allowed"})
	}
}
