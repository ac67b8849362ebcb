package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/myjobmatch/jobfeed/auth"
	"github.com/myjobmatch/jobfeed/config"
	_ "github.com/myjobmatch/jobfeed/docs"
	"github.com/myjobmatch/jobfeed/gemini"
	"github.com/myjobmatch/jobfeed/handlers"
	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/mcp"
	"github.com/myjobmatch/jobfeed/scraper"
	"github.com/myjobmatch/jobfeed/search"
	"github.com/myjobmatch/jobfeed/storage"
	"github.com/myjobmatch/jobfeed/tools"
)

// @title JobFeed API
// @version 1.0
// @description Job aggregation service: scrapes job boards for several search terms at once and ranks postings against user preferences.

// @contact.name API Support
// @contact.email support@myjobmatch.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Debug, cfg.LogJSON)
	log := logger.Get()

	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Scraper, optionally behind the Redis cache
	var jobScraper scraper.Scraper = scraper.NewClient(cfg)
	if cfg.RedisURL != "" {
		rdb, err := scraper.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, scrape cache disabled")
		} else {
			defer rdb.Close()
			jobScraper = scraper.NewCachedScraper(jobScraper, rdb, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
			log.Info().Dur("ttl", time.Duration(cfg.CacheTTLMinutes)*time.Minute).Msg("Scrape cache enabled")
		}
	}

	// Google Cloud integrations are optional; each one that fails is disabled.
	var (
		explainer search.Explainer
		users     *storage.FirestoreClient
		archiver  handlers.Archiver
	)
	if cfg.CloudEnabled() {
		if geminiClient, err := gemini.NewClient(ctx, cfg); err != nil {
			log.Warn().Err(err).Msg("Gemini unavailable, match explanations disabled")
		} else {
			defer geminiClient.Close()
			explainer = geminiClient
		}

		if fs, err := storage.NewFirestoreClient(ctx, cfg); err != nil {
			log.Warn().Err(err).Msg("Firestore unavailable, accounts disabled")
		} else {
			defer fs.Close()
			users = fs
		}

		if cfg.ResultsBucket != "" {
			if archive, err := storage.NewArchiveClient(ctx, cfg); err != nil {
				log.Warn().Err(err).Msg("Cloud Storage unavailable, result archive disabled")
			} else {
				defer archive.Close()
				archiver = archive
			}
		}
	}

	searchService := search.NewService(jobScraper, explainer, cfg)
	jwtService := auth.NewJWTService(cfg)

	var saved handlers.SavedPreferences
	if users != nil {
		saved = users
	}
	jobsHandler := handlers.NewJobsHandler(searchService, saved, archiver, cfg)

	toolRegistry := tools.NewRegistry(
		tools.NewScrapeJobsTool(searchService, cfg),
		tools.NewScoreJobTool(),
	)
	toolsHandler := handlers.NewToolsHandler(toolRegistry)
	mcpServer := mcp.NewServer(toolRegistry)

	router := gin.New()
	router.Use(handlers.Recovery(cfg.Debug))
	router.Use(logger.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthCheck)

	optionalAuth := auth.OptionalAuthMiddleware(jwtService)
	router.GET("/scrape_jobs", jobsHandler.ScrapeJobs)
	router.GET("/recommend_jobs", optionalAuth, jobsHandler.RecommendJobs)

	api := router.Group("/api")
	{
		api.GET("/jobs/search", jobsHandler.ScrapeJobs)
		api.GET("/jobs/recommend", optionalAuth, jobsHandler.RecommendJobs)
		api.GET("/tools", toolsHandler.GetTools)

		// Accounts need Firestore
		if users != nil {
			authHandler := handlers.NewAuthHandler(users, jwtService, auth.NewGoogleAuthService(cfg))
			authGroup := api.Group("/auth")
			{
				authGroup.POST("/register", authHandler.Register)
				authGroup.POST("/login", authHandler.Login)
				authGroup.POST("/google", authHandler.GoogleLogin)
				authGroup.POST("/refresh", authHandler.RefreshToken)
			}

			prefsHandler := handlers.NewPreferencesHandler(users)
			protected := api.Group("", auth.AuthMiddleware(jwtService))
			{
				protected.GET("/preferences", prefsHandler.GetPreferences)
				protected.PUT("/preferences", prefsHandler.UpdatePreferences)
			}
		}

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      time.Duration(cfg.ScraperTimeoutSeconds+60) * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Bool("cache", cfg.RedisURL != "").
			Bool("accounts", users != nil).Bool("explain", explainer != nil).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server exited gracefully")
}
