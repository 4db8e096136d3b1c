package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/moodtrack/internal/server/auth"
)

const contextUserIDKey = "userID"

// authMiddleware verifies the Bearer access token and stores the user id in
// the request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be Bearer {token}"})
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], []byte(s.config.SecretKey))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		ctx.Set(contextUserIDKey, userID)
		ctx.Next()
	}
}

// currentUserID returns the authenticated user id set by authMiddleware.
func currentUserID(ctx *gin.Context) string {
	return ctx.GetString(contextUserIDKey)
}
