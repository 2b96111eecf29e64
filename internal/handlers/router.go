package handlers

import (
	"time"

	"sport-predict/internal/auth"
	"sport-predict/internal/repository"
	"sport-predict/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RouterDeps carries everything the HTTP layer needs
type RouterDeps struct {
	DB          *gorm.DB
	Repo        *repository.Repository
	AuthService *services.AuthService
	Tokens      *auth.TokenManager
	FrontendURL string
}

// NewRouter builds the gin engine with middleware and every /api/v1 route
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), RequestIDMiddleware())

	allowedOrigins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if deps.FrontendURL != "" && deps.FrontendURL != allowedOrigins[0] {
		allowedOrigins = append(allowedOrigins, deps.FrontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := NewHealthHandler(deps.DB)
	sportHandler := NewSportHandler(deps.Repo)
	teamHandler := NewTeamHandler(deps.Repo)
	matchHandler := NewMatchHandler(deps.Repo)
	authHandler := NewAuthHandler(deps.AuthService)

	api := router.Group("/api/v1")
	{
		api.GET("/health", healthHandler.Check)

		api.GET("/sports", sportHandler.GetSports)
		api.GET("/sports/:id", sportHandler.GetSport)
		api.GET("/sports/:id/teams", sportHandler.GetSportTeams)
		api.GET("/sports/:id/matches", sportHandler.GetSportMatches)

		api.GET("/teams", teamHandler.GetTeams)
		api.GET("/teams/:id", teamHandler.GetTeam)
		api.GET("/teams/:id/matches", teamHandler.GetTeamMatches)

		api.GET("/matches", matchHandler.GetMatches)
		api.GET("/matches/sport/:sportName", matchHandler.GetMatchesBySport)
		api.GET("/matches/status/:status", matchHandler.GetMatchesByStatus)
		api.GET("/matches/:id", matchHandler.GetMatch)

		api.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	protected := api.Group("/auth")
	protected.Use(deps.Tokens.Middleware())
	{
		protected.GET("/me", authHandler.GetMe)
	}

	return router
}
