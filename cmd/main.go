package main

import (
    "context"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/bilgisen/dayboard/internal/api"
    "github.com/bilgisen/dayboard/internal/cache"
    "github.com/bilgisen/dayboard/internal/config"
    "github.com/bilgisen/dayboard/internal/gcal"
    "github.com/bilgisen/dayboard/internal/ics"
    "github.com/bilgisen/dayboard/internal/logger"
    "github.com/bilgisen/dayboard/internal/middleware"
    "github.com/bilgisen/dayboard/internal/news"
    "github.com/bilgisen/dayboard/internal/schedule"
    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
    // Load and validate configuration
    cfg := config.Load()

    // Initialize logger
    if err := logger.Init(logger.Config{
        Level:  cfg.LogLevel,
        Output: "stdout",
        Pretty: cfg.Env == "development",
    }); err != nil {
        panic(err)
    }

    log := logger.Get()
    log.Info().Msg("Starting application...")

    // One cache instance owns all cached views for the process lifetime.
    store := cache.NewMemory()

    // Remote calendar stage; skipped when credentials are absent.
    var remote schedule.RemoteSource
    if cfg.GoogleCredentialsJSON != "" && cfg.GoogleCalendarID != "" {
        cred, err := gcal.ParseCredential(cfg.GoogleCredentialsJSON)
        if err != nil {
            log.Error().Err(err).Msg("Invalid Google credentials, remote calendar stage disabled")
        } else {
            client, err := gcal.NewClient(context.Background(), cred, cfg.GoogleCalendarID)
            if err != nil {
                log.Error().Err(err).Msg("Failed to initialize remote calendar client, stage disabled")
            } else {
                remote = client
            }
        }
    }

    // Calendar feed stage; skipped when no URL is configured.
    var feed schedule.FeedSource
    if cfg.CalendarICSURL != "" {
        feed = ics.NewSource(cfg.CalendarICSURL)
    }

    resolver := schedule.NewResolver(store, cfg.CacheTTL, remote, feed)
    aggregator := news.NewAggregator(store, cfg.CacheTTL, cfg.NewsFeeds)

    // Create Fiber app with custom config
    app := fiber.New(fiber.Config{
        ReadTimeout:  cfg.HTTPTimeout,
        WriteTimeout: cfg.HTTPTimeout,
        IdleTimeout:  120 * time.Second,
        ErrorHandler: middleware.ErrorHandler,
    })

    // Global middleware
    app.Use(recover.New()) // Recover from panics
    app.Use(middleware.RequestLogger())

    // Setup API routes
    api.SetupRoutes(app, resolver, aggregator)

    // Start server in a goroutine
    go func() {
        log.Info().Str("port", cfg.Port).Msg("Starting server")
        if err := app.Listen(":" + cfg.Port); err != nil {
            log.Fatal().Err(err).Msg("Server error")
        }
    }()

    // Wait for interrupt signal to gracefully shut down the server
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
    <-quit

    log.Info().Msg("Shutting down server...")

    // Create a deadline for graceful shutdown
    ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
    defer cancel()

    // Shutdown the server
    if err := app.ShutdownWithContext(ctx); err != nil {
        log.Error().Err(err).Msg("Server forced to shutdown")
    }

    log.Info().Msg("Server exited properly")
}
