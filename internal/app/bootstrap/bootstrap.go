package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	assetservice "assetverse/contexts/asset-management/asset-service"
	"assetverse/contexts/asset-management/asset-service/adapters/identity"
	stripeadapter "assetverse/contexts/asset-management/asset-service/adapters/stripe"
	workerapp "assetverse/contexts/asset-management/asset-service/application/workers"
	"assetverse/contexts/asset-management/asset-service/ports"
	"assetverse/internal/platform/config"
	"assetverse/internal/platform/httpserver"
	"assetverse/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const moduleName = "internal/app/bootstrap"

type APIApp struct {
	server          *httpserver.Server
	store           *Store
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

type WorkerApp struct {
	store        *Store
	bus          *messaging.Bus
	outboxRelay  workerapp.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateAPI(); err != nil {
		return nil, err
	}

	logger := NewLogger(cfg).With("service", cfg.ServiceName, "process", "api")
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
	}
	if strings.TrimSpace(cfg.StripeSecretKey) == "" {
		logger.Warn("stripe secret key missing; checkout calls will fail",
			"event", "bootstrap_stripe_unconfigured",
			"module", moduleName,
			"layer", "platform",
		)
	}

	module := assetservice.NewModule(moduleDependencies(cfg, store, logger))
	server := httpserver.New(module, httpserver.Options{
		Addr:           normalizeAddr(cfg.HTTPPort),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Health:         store.Repo,
		Logger:         logger,
	})
	return &APIApp{
		server:          server,
		store:           store,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func BuildWorker(ctx context.Context) (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.StoreDriver == config.StoreMemory {
		return nil, errors.New("worker requires STORE_DRIVER postgres or mongo")
	}

	logger := NewLogger(cfg).With("service", cfg.ServiceName, "process", "worker")
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	module := assetservice.NewModule(moduleDependencies(cfg, store, logger))
	return &WorkerApp{
		store:        store,
		bus:          bus,
		outboxRelay:  module.NewOutboxRelay(bus, store.Clock, cfg.OutboxBatchSize, logger),
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func moduleDependencies(cfg config.Config, store *Store, logger *slog.Logger) assetservice.Dependencies {
	verifierOpts := make([]identity.Option, 0, 2)
	if cfg.JWTIssuer != "" {
		verifierOpts = append(verifierOpts, identity.WithIssuer(cfg.JWTIssuer))
	}
	if cfg.JWTAudience != "" {
		verifierOpts = append(verifierOpts, identity.WithAudience(cfg.JWTAudience))
	}

	return assetservice.Dependencies{
		Users:        store.Repo,
		Assets:       store.Repo,
		Requests:     store.Repo,
		Affiliations: store.Repo,
		Payments:     store.Repo,
		Packages:     store.Repo,
		Outbox:       store.Repo,
		Processor:    stripeadapter.NewProcessor(cfg.StripeSecretKey, logger),
		Verifier:     identity.NewJWTVerifier(cfg.JWTSecret, verifierOpts...),
		Clock:        store.Clock,
		IDGenerator:  store.IDs,
		SiteDomain:   cfg.SiteDomain,
		Logger:       logger,
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the shutdown timeout.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", moduleName,
		"layer", "platform",
		"store_driver", a.store.Driver,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (a *APIApp) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	return a.store.Close(ctx)
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.bus.Subscribe(ctx, workerapp.DefaultTopic, "assetverse-event-log", w.logEvent); err != nil {
		return err
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", moduleName,
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if _, err := w.outboxRelay.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) logEvent(_ context.Context, event ports.EventEnvelope) error {
	w.logger.Info("integration event",
		"event", "worker_event_observed",
		"module", moduleName,
		"layer", "platform",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"partition_key", event.PartitionKey,
	)
	return nil
}

func (w *WorkerApp) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return w.store.Close(ctx)
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
