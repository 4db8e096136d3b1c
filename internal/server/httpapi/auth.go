package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (s *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, pair, err := s.users.Register(ctx.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *Server) login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, pair, err := s.users.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	// credential mismatch: deliberately indistinguishable from unknown email
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *Server) refresh(ctx *gin.Context) {
	var req refreshRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pair, err := s.users.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *Server) me(ctx *gin.Context) {
	user, err := s.users.GetUserByID(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) changePassword(ctx *gin.Context) {
	var req changePasswordRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ok, err := s.users.ChangePassword(ctx.Request.Context(), currentUserID(ctx), req.OldPassword, req.NewPassword)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "old password is incorrect"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (s *Server) deleteAccount(ctx *gin.Context) {
	if err := s.users.DeleteUser(ctx.Request.Context(), currentUserID(ctx)); err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
