package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymhabit/internal/auth"
	"gymhabit/internal/catalog"
	"gymhabit/internal/config"
	"gymhabit/internal/email"
	"gymhabit/internal/inquiry"
	"gymhabit/internal/logger"
	"gymhabit/internal/server"
)

// @title Gym Habit API
// @version 1.0
// @description Partner gym finder for Habit Health: catalog, proximity search, subscription inquiries.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password
func main() {

	logger.Init()
	logger.Info("Starting Gym Habit application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	catalogRepo := catalog.NewRepository(cfg.GymsCSVPath)
	count, err := catalogRepo.Load(context.Background())
	if err != nil {
		logger.Fatalf("Failed to load gym catalog: %v", err)
	}
	logger.Info("Gym catalog ready", "gyms", count)

	inquiryRepo := inquiry.NewRepository(cfg.RequestsJSONPath)
	if err := inquiryRepo.Load(context.Background()); err != nil {
		logger.Fatalf("Failed to load request log: %v", err)
	}

	verifier, err := auth.NewVerifier(cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		logger.Fatalf("Failed to configure admin gate: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notifier inquiry.Notifier
	if cfg.RedisAddr != "" {
		emailService := email.New(
			cfg.EmailFrom,
			cfg.EmailFromName,
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.RedisAddr,
		)
		defer emailService.Close()
		go emailService.Start(ctx)
		notifier = emailService
		logger.Info("Email service initialized")
	} else {
		logger.Info("Email service disabled (REDIS_ADDR not set)")
	}

	catalogService := catalog.NewService(catalogRepo)
	inquiryService := inquiry.NewService(inquiryRepo, catalogService, notifier, cfg.AdminEmail)

	srv := server.New(cfg, catalogService, inquiryService, verifier)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
