package handlers

import (
	"net/http"
	"time"

	"sport-predict/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports service liveness and database reachability
// GET /api/v1/health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		respondError(c, "Database connection failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Sports Prediction API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "Connected",
	})
}
