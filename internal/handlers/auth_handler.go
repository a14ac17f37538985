package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/services"
	"github.com/playforge/rewards-backend/pkg/tokens"
)

// AuthHandler handles account registration and token issuance
type AuthHandler struct {
	authService services.AuthService
	tokenSvc    *tokens.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, tokenSvc *tokens.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenSvc:    tokenSvc,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	account, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "email already registered"})
			return
		}
		log.Printf("[ERROR] Register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid email or password"})
			return
		}
		log.Printf("[ERROR] Login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresIn: int(h.tokenSvc.ExpiresIn().Seconds()),
	})
}
