package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/vergerducoin/verger-clients/internal/cart"
	"github.com/vergerducoin/verger-clients/internal/gateway"
	"github.com/vergerducoin/verger-clients/internal/session"
	"github.com/vergerducoin/verger-clients/internal/state"
	"github.com/vergerducoin/verger-clients/pkg/config"
	"github.com/vergerducoin/verger-clients/pkg/db"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/metrics"
	"github.com/vergerducoin/verger-clients/pkg/redis"
)

// Pinger confirms a state backend connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App is the assembled client application state: one cart, one session,
// one gateway, all persisted through the selected state backend.
type App struct {
	Config       *config.Config
	Logger       *logger.Logger
	Store        state.Store
	StateBackend Pinger
	Cart         *cart.Cart
	Session      *session.Session
	Gateway      *gateway.Client

	closers []func() error
}

// Bootstrap loads configuration and wires the full dependency graph.
func Bootstrap(ctx context.Context, appName string, cfg *config.Config, logg *logger.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logg}

	if err := a.openStateStore(ctx); err != nil {
		return nil, err
	}

	sess, err := session.New(ctx, a.Store, logg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	a.Session = sess

	c, err := cart.New(ctx, a.Store, logg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("restoring cart: %w", err)
	}
	a.Cart = c

	gatewayMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)
	gw, err := gateway.NewClient(ctx, cfg.API, sess, logg, gatewayMetrics)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("building gateway: %w", err)
	}
	a.Gateway = gw

	logg.Info(logg.WithFields(ctx, map[string]any{
		"app":           appName,
		"state_backend": cfg.State.Normalized(),
		"api_base_url":  cfg.API.BaseURL,
	}), "application bootstrapped")
	return a, nil
}

func (a *App) openStateStore(ctx context.Context) error {
	cfg := a.Config
	switch cfg.State.Normalized() {
	case config.StateBackendSQLite:
		client, err := db.New(ctx, cfg.State, a.Logger)
		if err != nil {
			return fmt.Errorf("opening state database: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		store, err := state.NewSQLiteStore(client)
		if err != nil {
			a.Close()
			return err
		}
		a.Store = store
		a.StateBackend = client
	case config.StateBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connecting state redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		store, err := state.NewRedisStore(client, cfg.POS.RegisterID)
		if err != nil {
			a.Close()
			return err
		}
		a.Store = store
		a.StateBackend = client
	case config.StateBackendMemory:
		a.Store = state.NewMemoryStore()
	default:
		return fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
	return nil
}

// Close releases every backend connection the bootstrap opened.
func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
