package conceptservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/coasterforge/coasterforge-backend/internal/ai"
	"github.com/coasterforge/coasterforge-backend/internal/ai/openai"
	"github.com/coasterforge/coasterforge-backend/internal/api"
	"github.com/coasterforge/coasterforge-backend/internal/auth"
	"github.com/coasterforge/coasterforge-backend/internal/config"
	"github.com/coasterforge/coasterforge-backend/internal/health"
	"github.com/coasterforge/coasterforge-backend/internal/logger"
	"github.com/coasterforge/coasterforge-backend/internal/store"
	"github.com/coasterforge/coasterforge-backend/internal/store/postgres"
	"github.com/coasterforge/coasterforge-backend/internal/store/sqlite"
)

// Run starts the concept service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("concept-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("ai_base_url", cfg.AIBaseURL).
		Str("ai_model", cfg.AIModel).
		Msg("Concept service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	provider := newCompletionProvider(cfg)
	az := newAuthorizer(cfg, log)

	router := api.NewRouter(st, provider, az)

	// Start health checkers and bind service health
	svcHealth := startHealthCheckers(ctx, cfg, log, st, provider)

	// Block startup until dependencies report healthy; fail fast otherwise
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore opens the configured store adapter.
func newStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("Opening SQLite store")
		return sqlite.New(ctx, cfg.SQLitePath)
	case "postgres":
		if err := postgres.Bootstrap(ctx, cfg.PostgresDSN); err != nil {
			return nil, err
		}
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

// unprobed hides the provider's HealthPing so the health checker assumes it
// is reachable. Used when no API key is configured: enrichment calls will
// fail on their own, but an idle provider must not block startup.
type unprobed struct{ ai.CompletionProvider }

func newCompletionProvider(cfg *config.Config) ai.CompletionProvider {
	p := openai.New(openai.Config{
		BaseURL:   cfg.AIBaseURL,
		APIKey:    cfg.AIAPIKey,
		Model:     cfg.AIModel,
		MaxTokens: cfg.AIMaxTokens,
		Timeout:   60 * time.Second,
	})
	if cfg.AIAPIKey == "" {
		return unprobed{p}
	}
	return p
}

// newAuthorizer picks the API-key resolver. Outside dev mode no keys are
// registered, so every request resolves as anonymous until a real key table
// is wired in.
func newAuthorizer(cfg *config.Config, log zerolog.Logger) auth.Authorizer {
	if cfg.DevMode {
		log.Warn().Msg("Dev mode: local development API key accepted")
		return auth.NewDevAuthorizer()
	}
	return auth.NewStaticAuthorizer(nil)
}

// startHealthCheckers starts component checkers and service-level aggregator; binds health.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store, provider ai.CompletionProvider) *health.ServiceHealthChecker {
	var checkers []health.HealthChecker
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	storeChecker := store.NewStoreHealthChecker(st, log, probeTimeout)
	go storeChecker.Start(ctx, interval)
	checkers = append(checkers, storeChecker)

	providerChecker := ai.NewProviderHealthChecker(provider, log, probeTimeout)
	go providerChecker.Start(ctx, interval)
	checkers = append(checkers, providerChecker)

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns the startup health timeout in seconds,
// calculated as interval*2 with a minimum of 60 seconds.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	// Health checkers start as unhealthy and need time to run their first probe cycle
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
