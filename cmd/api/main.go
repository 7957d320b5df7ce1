package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Rohith-AI-HUB/webhook-repo/config"
	_ "github.com/Rohith-AI-HUB/webhook-repo/docs" // Swagger docs
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/usecase"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/httpserver"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/retention"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/storage"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/webhook"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

// @title       GitHub Webhook Activity API
// @description Receives GitHub push and pull_request webhooks, stores them as normalized events and serves them to the activity dashboard.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File:         cfg.Logger.File,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub webhook receiver...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event store
	repo, err := storage.Open(ctx, cfg.Store, cfg.Webhook.VerifySSL, logger)
	if err != nil {
		return fmt.Errorf("failed to open event store: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Warnf(context.Background(), "Closing event store: %v", cerr)
		}
	}()

	eventUC := usecase.New(repo, logger, usecase.Config{Timeout: cfg.Store.Timeout})

	// 4. Ingestion
	if !cfg.Webhook.VerifySignature {
		logger.Warn(ctx, "Webhook signature verification is disabled")
	}
	webhookHandler, err := webhook.NewHandler(eventUC, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		VerifySignature: cfg.Webhook.VerifySignature,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		MaxPayloadBytes: cfg.Webhook.MaxPayloadBytes,
		ExposeErrors:    cfg.Webhook.ExposeErrors,
	}, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize webhook handler: %w", err)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Host:             cfg.HTTPServer.Host,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		EventUC:          eventUC,
		WebhookHandler:   webhookHandler,
		MaxEventsDisplay: cfg.UI.MaxEventsDisplay,
		RefreshInterval:  cfg.UI.RefreshInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})

	if cfg.Retention.Enabled {
		sweeper, err := retention.New(eventUC, cfg.Retention.Days, cfg.Retention.Interval, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize retention sweeper: %w", err)
		}
		g.Go(func() error {
			return sweeper.Run(gctx)
		})
	} else {
		logger.Info(ctx, "Retention sweeper disabled")
	}

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
