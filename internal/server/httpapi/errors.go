package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/moodtrack/internal/common"
)

// writeError maps service errors onto HTTP status codes. Validation details
// are echoed back to the client; anything unexpected is logged and reduced
// to a generic 500 so internals never leak.
func (s *Server) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		ctx.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		s.log.Error(ctx.Request.Context(), "request failed",
			"method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
