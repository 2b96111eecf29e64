package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sport-predict/internal/auth"
	"sport-predict/internal/config"
	"sport-predict/internal/database"
	"sport-predict/internal/handlers"
	"sport-predict/internal/repository"
	"sport-predict/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(cfg.Database, cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hasher := auth.NewPasswordHasher(cfg.IsProduction())

	// Seed reference data
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.SeedMockData(seedCtx, db, hasher)
	cancelSeed()
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize services
	repo := repository.NewRepository(db)
	tokens := auth.NewTokenManager(cfg.App.JWTSecret)
	authService := services.NewAuthService(repo, hasher, tokens)

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          db,
		Repo:        repo,
		AuthService: authService,
		Tokens:      tokens,
		FrontendURL: cfg.Server.FrontendURL,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s (env=%s)", cfg.Server.Port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}

	log.Println("Server exited")
}
