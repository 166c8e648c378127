package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/apperrors"
	"hospital-api/internal/models"
	"hospital-api/internal/responses"
	"hospital-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, apperrors.Validation("Invalid request body"))
		return
	}

	profile, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    profile,
	})
}
