// Package server wires the gateway's services together and owns the HTTP
// listen/serve lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/app/routes"
	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/checkout"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/probe"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/snapshot"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/cache"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/event"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ws"
)

// Gateway is the fully wired service graph.
type Gateway struct {
	Deps     routes.Deps
	Files    *statefile.Store
	Snapshot *snapshot.Store
}

// Wire builds every service the gateway needs. Degradable collaborators
// (redis, the snapshot database, the Mongo log sink) are optional: a
// failure is logged and the gateway runs without them.
func Wire() (*Gateway, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}

	logger.EnableMongoSink()

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable", "err", err)
	}

	files, err := statefile.New(config.StateDir())
	if err != nil {
		return nil, fmt.Errorf("server: open state dir: %w", err)
	}

	var snap *snapshot.Store
	if s, err := snapshot.Open(); err != nil {
		logger.Warn("server: snapshot store unavailable", "err", err)
	} else {
		snap = s
	}

	client := backend.New()
	cartStore := cart.NewStore(cart.OpenDriver(files))
	sessions := adminsession.NewManager(client, files)
	prober := probe.New(client)
	hub := ws.NewHub()

	var provider *catalog.Provider
	if snap != nil {
		provider = catalog.NewProvider(client, snap)
	} else {
		provider = catalog.NewProvider(client, nil)
	}

	// New status clients get the current verdict immediately.
	hub.OnConnect = func(_ *ws.Hub, c *ws.Client) {
		c.SendJSON(prober.Last())
	}

	return &Gateway{
		Deps: routes.Deps{
			Backend:   client,
			Cart:      cartStore,
			Provider:  provider,
			Checkout:  checkout.NewAggregator(cartStore, client),
			Sessions:  sessions,
			Prober:    prober,
			StatusHub: hub,
		},
		Files:    files,
		Snapshot: snap,
	}, nil
}

// StartBackground launches the probe loop and the status fan-out. Returns
// after the goroutines are running.
func (g *Gateway) StartBackground(ctx context.Context) {
	go g.Deps.StatusHub.Run()
	g.Deps.Prober.Start(ctx)

	// Cart badge frames ride the same status socket.
	cartStore := g.Deps.Cart
	event.Listen(event.CartUpdated, func(_ interface{}) {
		g.Deps.StatusHub.BroadcastJSON(map[string]any{
			"cartCount": cartStore.Count(),
		})
	})

	updates, cancel := g.Deps.Prober.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				g.Deps.StatusHub.BroadcastJSON(update)
			}
		}
	}()
}

// Close releases the gateway's local resources.
func (g *Gateway) Close() {
	if g.Snapshot != nil {
		if err := g.Snapshot.Close(); err != nil {
			logger.Warn("server: close snapshot store", "err", err)
		}
	}
}

// Start serves handler until SIGINT/SIGTERM, then drains connections.
func Start(handler http.Handler) error {
	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
