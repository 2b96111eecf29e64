package handlers

import (
	"errors"
	"log"
	"net/http"

	"sport-predict/internal/auth"
	"sport-predict/internal/repository"
	"sport-predict/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges a username and password for a token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Username and password are required", []string{err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid username or password",
		})
		return
	}
	if err != nil {
		respondError(c, "Failed to authenticate", err)
		return
	}

	respondOK(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetMe returns the currently authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	username, hasName := auth.GetUsername(c)
	if !exists || !hasName {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "User not found")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch user", err)
		return
	}

	// tokens issued before a rename no longer identify the account
	if user.Username != username {
		log.Printf("[Auth] Token for %q does not match user %d (%q)", username, user.ID, user.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
		return
	}

	respondOK(c, user)
}
