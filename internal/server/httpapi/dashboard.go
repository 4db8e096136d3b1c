package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getDashboard(ctx *gin.Context) {
	summary, err := s.dashboard.GetSummary(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

func (s *Server) createExport(ctx *gin.Context) {
	url, err := s.export.Export(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"download_url": url})
}
