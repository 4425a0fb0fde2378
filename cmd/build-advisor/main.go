package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simstore/build-advisor/internal/api"
	"github.com/simstore/build-advisor/internal/catalog"
	"github.com/simstore/build-advisor/internal/cleanup"
	"github.com/simstore/build-advisor/internal/config"
	"github.com/simstore/build-advisor/internal/mail"
	"github.com/simstore/build-advisor/internal/otp"
	"github.com/simstore/build-advisor/internal/storage"

	authpkg "github.com/simstore/build-advisor/internal/auth"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting build-advisor",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Run database migrations
	slog.Info("running database migrations", "dir", cfg.Database.MigrationsDir)
	if err := storage.MigrateFromDSN(initCtx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize database repository
	repo, err := storage.NewPostgresRepository(initCtx, storage.PostgresConfig{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: int32(cfg.Database.MaxOpenConns),
		MaxIdleConns: int32(cfg.Database.MaxIdleConns),
	})
	if err != nil {
		slog.Error("failed to create database repository", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected successfully")

	// Initialize OTP store
	otpStore, err := otp.NewStore(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Auth.OTPTTL)
	if err != nil {
		slog.Error("failed to create otp store", "error", err)
		os.Exit(1)
	}

	// Pick a mail sender
	var mailer mail.Sender
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		slog.Warn("no SMTP host configured, OTP mail will be logged instead")
		mailer = mail.LogSender{}
	}

	// Load the part catalog (read-only for the process lifetime)
	parts := catalog.NewStore()
	if err := parts.LoadFromDir(cfg.Catalog.Dir); err != nil {
		slog.Error("failed to load part catalog", "dir", cfg.Catalog.Dir, "error", err)
		os.Exit(1)
	}

	// Auth service
	authService := authpkg.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Abandoned-cart cleanup worker
	cleaner := cleanup.NewCleaner(repo, cfg.Cleanup.Interval, cfg.Cleanup.CartRetention)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup worker
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, parts, repo, authService, otpStore, mailer, cfg.Static.Dir)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := otpStore.Close(); err != nil {
		slog.Error("otp store close error", "error", err)
	}

	if err := repo.Close(); err != nil {
		slog.Error("repository close error", "error", err)
	}

	slog.Info("build-advisor stopped")
}
