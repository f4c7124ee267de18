package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/algogame/internal/api"
	"github.com/vytor/algogame/internal/catalog"
	"github.com/vytor/algogame/internal/config"
	"github.com/vytor/algogame/internal/db"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/puzzle"
	"github.com/vytor/algogame/internal/quiz"
	"github.com/vytor/algogame/internal/repository/sqlite"
	"github.com/vytor/algogame/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("AlgoGame Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("leaderboard_limit=%d", cfg.LeaderboardLimit)
	log.Debug("shutdown_timeout=%s", cfg.ShutdownTimeout)
	log.Debug("cookie_secure=%t", cfg.CookieSecure)

	// Static tables are parsed once and shared read-only by every request.
	levels, err := catalog.Default()
	if err != nil {
		log.Error("failed to load level catalog: %v", err)
		os.Exit(1)
	}
	bank, err := quiz.Default()
	if err != nil {
		log.Error("failed to load quiz bank: %v", err)
		os.Exit(1)
	}
	log.Debug("catalog loaded: %d algorithms", len(levels.Algorithms()))

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	scoreRepo := sqlite.NewScoreRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)

	srv := &api.Server{
		ProfileService: services.NewProfileService(profileRepo),
		GameService:    services.NewGameService(levels, puzzle.NewGenerator(), bank, progressRepo),
		ScoreService:   services.NewScoreService(scoreRepo, progressRepo, levels, bank, cfg.LeaderboardLimit),
		DB:             database,
		CookieSecure:   cfg.CookieSecure,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case err := <-serverErr:
		log.Error("HTTP server error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("AlgoGame Server Stopped")
	log.Info("===========================================")
}
