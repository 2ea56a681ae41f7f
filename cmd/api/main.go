package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artkov/lancer/lancer-backend/internal/config"
	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/handler"
	"github.com/artkov/lancer/lancer-backend/internal/middleware"
	"github.com/artkov/lancer/lancer-backend/internal/repository/exchange"
	"github.com/artkov/lancer/lancer-backend/internal/repository/messaging"
	"github.com/artkov/lancer/lancer-backend/internal/repository/postgres"
	"github.com/artkov/lancer/lancer-backend/internal/service"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Apply database migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	projectRepo := postgres.NewProjectRepository(pool)
	projectTypeRepo := postgres.NewProjectTypeRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	dayPlanRepo := postgres.NewDayPlanRepository(pool)
	rateSource := exchange.NewHTTPRateSource(cfg.ExchangeRateURL)

	// Telegram is optional: without credentials the notifier is disabled
	// but the rest of the app runs normally.
	var messenger domain.Messenger
	if cfg.TelegramEnabled() {
		tg, err := messaging.NewTelegramMessenger(cfg.Telegram)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Telegram bot, notifications disabled")
		} else {
			messenger = tg
			log.Info().Msg("Telegram notifications enabled")
		}
	}

	// Initialize services
	projectService := service.NewProjectService(projectRepo, projectTypeRepo)
	statsService := service.NewStatsService(projectRepo)
	goalService := service.NewGoalService(goalRepo)
	noteService := service.NewNoteService(noteRepo)
	dayPlanService := service.NewDayPlanService(dayPlanRepo)
	currencyService := service.NewCurrencyService(rateSource)
	notifier := service.NewDeadlineNotifier(projectRepo, messenger, cfg.NotifyRetryOnFailure)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService)
	projectTypeHandler := handler.NewProjectTypeHandler(projectService)
	statsHandler := handler.NewStatsHandler(statsService, goalService)
	goalHandler := handler.NewGoalHandler(goalService)
	noteHandler := handler.NewNoteHandler(noteService)
	dayPlanHandler := handler.NewDayPlanHandler(dayPlanService)
	ratesHandler := handler.NewRatesHandler(currencyService)

	// Background schedules: refresh exchange rates hourly, check deadlines
	// once a day at the configured hour.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 * * * *", func() {
		currencyService.Refresh()
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule rate refresh")
	}
	if _, err := scheduler.AddFunc(fmt.Sprintf("0 %d * * *", cfg.NotifyHour), func() {
		notifier.Run()
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule deadline check")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Rate limiting middleware
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, statsHandler, projectHandler, projectTypeHandler, goalHandler, noteHandler, dayPlanHandler, ratesHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
