// Package gatewayservice runs the gateway HTTP server.
package gatewayservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/kj-nakamura/baby-wear-translator/internal/api"
	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
	"github.com/kj-nakamura/baby-wear-translator/internal/config"
	"github.com/kj-nakamura/baby-wear-translator/internal/logger"
	"github.com/kj-nakamura/baby-wear-translator/internal/upstream"
	"github.com/rs/zerolog"
)

// Overrides replace configuration values after the environment is read. Zero values are ignored.
type Overrides struct {
	BackendAPIURL string
	HTTPPort      int
}

// Run starts the gateway HTTP server and blocks until shutdown or error.
func Run(o Overrides) error {
	log := logger.New("babywear-gateway")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if err := applyOverrides(cfg, o); err != nil {
		log.Error().Err(err).Msg("Invalid flag override")
		return err
	}
	log = logger.WithLevel(log, cfg.LogLevel)

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("backend_api_url", cfg.BackendAPIURL).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Msg("Gateway starting")

	cat, err := catalog.LoadEmbedded()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Catalog unavailable")
		return err
	}

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	router := buildRouter(cfg, cat, log)

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

func applyOverrides(cfg *config.Config, o Overrides) error {
	if o.BackendAPIURL == "" && o.HTTPPort == 0 {
		return nil
	}
	if o.BackendAPIURL != "" {
		cfg.BackendAPIURL = o.BackendAPIURL
	}
	if o.HTTPPort != 0 {
		cfg.HTTPPort = o.HTTPPort
	}
	return cfg.ResolveDefaults()
}

// buildRouter wires the upstream client and catalog into the HTTP routes.
func buildRouter(cfg *config.Config, cat *catalog.Catalog, log zerolog.Logger) *mux.Router {
	up := upstream.New(cfg.BackendAPIURL, cfg.UpstreamTimeout, log.With().Str("component", "upstream").Logger())
	return api.NewRouter(up, cat, log)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
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

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
