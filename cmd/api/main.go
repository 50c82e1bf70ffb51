package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gianca04/face-recognition/internal/api"
	"github.com/gianca04/face-recognition/internal/api/handler"
	"github.com/gianca04/face-recognition/internal/attendance"
	"github.com/gianca04/face-recognition/internal/config"
	"github.com/gianca04/face-recognition/internal/face"
	"github.com/gianca04/face-recognition/internal/matcher"
	"github.com/gianca04/face-recognition/internal/registry"
	"github.com/gianca04/face-recognition/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting face recognition API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("extractor", cfg.Extractor),
		slog.String("registry", cfg.RegistrySource),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Embedding extractor
	ext, err := face.NewExtractor(cfg)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// Known-face registry
	var (
		source    registry.Source
		mutable   registry.Mutable
		readiness handler.ReadinessChecker
	)
	switch cfg.RegistrySource {
	case "local":
		local, err := registry.NewLocal(ctx, cfg.FacesDir, ext, logger)
		if err != nil {
			return fmt.Errorf("failed to open faces directory: %w", err)
		}
		source, mutable = local, local

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()
		store := registry.NewStore(pool, ext)
		source, mutable = store, store
		readiness = pool

	case "remote", "":
		source = registry.NewRemote(registry.RemoteConfig{
			BaseURL: cfg.EnrollmentAPIURL,
			Timeout: cfg.EnrollmentTimeout,
		})

	default:
		return fmt.Errorf("unknown registry source: %s (supported: local, remote, postgres)", cfg.RegistrySource)
	}

	// Attendance reporter
	reporter := attendance.NewReporter(attendance.Config{
		BaseURL: cfg.AttendanceAPIURL,
		Secret:  cfg.AttendanceSecret,
		Timeout: cfg.AttendanceTimeout,
	}, logger)

	// Recognition pipeline
	recognitionService := service.NewRecognitionService(
		source,
		ext,
		matcher.New(cfg.MatchThreshold),
		reporter,
	)

	// Setup router
	deps := &api.Dependencies{
		RecognitionService: recognitionService,
		FaceRegistry:       mutable,
		Readiness:          readiness,
	}
	router := api.NewRouter(logger, deps)
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
