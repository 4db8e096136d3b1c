package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/moodtrack/internal/server/services"
)

func (s *Server) createMood(ctx *gin.Context) {
	var input services.CreateMoodInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	mood, err := s.moods.Create(ctx.Request.Context(), currentUserID(ctx), input)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"mood": mood})
}

func (s *Server) listMoods(ctx *gin.Context) {
	moods, err := s.moods.GetAll(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"moods": moods})
}

func (s *Server) moodsByDateRange(ctx *gin.Context) {
	moods, err := s.moods.GetByDateRange(ctx.Request.Context(), currentUserID(ctx),
		ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"moods": moods})
}

func (s *Server) getMood(ctx *gin.Context) {
	mood, err := s.moods.GetByID(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"mood": mood})
}

func (s *Server) deleteMood(ctx *gin.Context) {
	if err := s.moods.Delete(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx)); err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
