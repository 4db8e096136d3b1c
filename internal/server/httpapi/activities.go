package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/moodtrack/internal/server/services"
)

func (s *Server) createActivity(ctx *gin.Context) {
	var input services.CreateActivityInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	activity, err := s.activities.Create(ctx.Request.Context(), currentUserID(ctx), input)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"activity": activity})
}

func (s *Server) listActivities(ctx *gin.Context) {
	activities, err := s.activities.GetAll(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (s *Server) activitiesByDateRange(ctx *gin.Context) {
	activities, err := s.activities.GetByDateRange(ctx.Request.Context(), currentUserID(ctx),
		ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (s *Server) getActivity(ctx *gin.Context) {
	activity, err := s.activities.GetByID(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"activity": activity})
}

func (s *Server) deleteActivity(ctx *gin.Context) {
	if err := s.activities.Delete(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx)); err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
