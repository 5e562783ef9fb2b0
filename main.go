package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tuladigital/tula-directory/src/config"
	"github.com/tuladigital/tula-directory/src/database"
	"github.com/tuladigital/tula-directory/src/handlers"
	"github.com/tuladigital/tula-directory/src/logging"
	"github.com/tuladigital/tula-directory/src/middleware"
	"github.com/tuladigital/tula-directory/src/repositories/postgres"
	"github.com/tuladigital/tula-directory/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize token signing
	tokenService, err := services.NewJWTTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Initialize repositories and services
	artisanRepo := postgres.NewArtisanRepository(db.GetPool())
	placeRepo := postgres.NewPlaceRepository(db.GetPool())
	adminRepo := postgres.NewAdminRepository(db.GetPool())
	searchRepo := postgres.NewSearchRepository(db.GetPool())

	authService := services.NewAuthService(adminRepo, tokenService)
	directoryService := services.NewDirectoryService(artisanRepo, placeRepo, searchRepo)

	// Bootstrap the default super admin (if SUPER_ADMIN_EMAIL and
	// SUPER_ADMIN_PASSWORD are set)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureDefaultAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Error().Err(err).Msg("failed to bootstrap default super admin")
		}
	}

	// Seed sample data (if SEED_FILE is set)
	if cfg.SeedFile != "" {
		seedService := services.NewSeedService(artisanRepo, placeRepo)
		if err := seedService.SeedFromFile(context.Background(), cfg.SeedFile); err != nil {
			log.Error().Err(err).Str("file", cfg.SeedFile).Msg("failed to seed sample data")
		}
	}

	// Create Gin router
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, db, tokenService, authService, directoryService, cfg)

	// Create HTTP server with timeouts (protect from Slowloris attack)
	srv := &http.Server{
		Addr:              ":" + fmt.Sprintf("%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(router *gin.Engine, db *database.Database, tokenService services.TokenService, authService *services.AuthService, directoryService *services.DirectoryService, cfg *config.Config) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	artisanHandler := handlers.NewArtisanHandler(directoryService)
	placeHandler := handlers.NewPlaceHandler(directoryService)
	searchHandler := handlers.NewSearchHandler(directoryService)

	// Health check
	router.GET("/health", healthHandler.HandleHealth)

	// Public catalog
	router.GET("/artisans", artisanHandler.HandleList)
	router.GET("/artisans/:id", artisanHandler.HandleGet)
	router.GET("/places", middleware.OptionalAdmin(tokenService), placeHandler.HandleList)
	router.GET("/places/:id", placeHandler.HandleGet)
	router.GET("/search", searchHandler.HandleSearch)

	// Super-admin authentication
	router.POST("/super-admin/login", middleware.LoginRateLimitMiddleware(), authHandler.HandleLogin)

	// Place mutations (require admin authentication)
	router.POST("/places", middleware.RequireAdmin(tokenService), placeHandler.HandleCreate)
	router.PUT("/places/:id", middleware.RequireAdmin(tokenService), placeHandler.HandleUpdate)
	router.DELETE("/places/:id", middleware.RequireAdmin(tokenService), placeHandler.HandleDelete)

	// Static assets (photos)
	router.Static("/public", cfg.StaticDir)
}
