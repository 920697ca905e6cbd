package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-app/dayflow/internal/api"
	"github.com/dayflow-app/dayflow/internal/app/account"
	"github.com/dayflow-app/dayflow/internal/app/analysis"
	"github.com/dayflow-app/dayflow/internal/health"
	_ "github.com/dayflow-app/dayflow/internal/infra/metrics" // Register Prometheus metrics
	"github.com/dayflow-app/dayflow/internal/infra/sqlite"
)

// Daemon is the dayflow runtime. It wires together all services.
type Daemon struct {
	Config   Config
	DB       *sqlite.DB
	Accounts *account.Service
	Engine   *analysis.Engine
	Server   *api.Server
	Health   *health.Checker
	cancel   context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		dataDir = dayflowHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	accounts := account.NewService(db, nil)
	engine := analysis.NewEngine(db, nil)

	srv := api.NewServer(db, accounts, engine)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:   cfg,
		DB:       db,
		Accounts: accounts,
		Engine:   engine,
		Server:   srv,
		Health:   health.NewChecker(db, dataDir),
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)
	go d.pruneSessions(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("dayflow serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// pruneSessions periodically removes expired login sessions.
func (d *Daemon) pruneSessions(ctx context.Context) {
	interval := parseDuration(d.Config.Sessions.PruneInterval, time.Hour)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Accounts.PruneSessions(ctx); err != nil {
				log.Printf("[daemon] prune sessions: %v", err)
			}
		}
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

// parseDuration parses a duration string, returning a fallback on error.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
