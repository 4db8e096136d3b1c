package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/moodtrack/internal/server/services"
)

func (s *Server) createJournalEntry(ctx *gin.Context) {
	var input services.CreateJournalEntryInput
	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := s.journal.Create(ctx.Request.Context(), currentUserID(ctx), input)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (s *Server) listJournalEntries(ctx *gin.Context) {
	entries, err := s.journal.GetAll(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) journalEntriesByDateRange(ctx *gin.Context) {
	entries, err := s.journal.GetByDateRange(ctx.Request.Context(), currentUserID(ctx),
		ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) getJournalEntry(ctx *gin.Context) {
	entry, err := s.journal.GetByID(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (s *Server) deleteJournalEntry(ctx *gin.Context) {
	if err := s.journal.Delete(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx)); err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
