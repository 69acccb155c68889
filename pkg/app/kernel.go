package app

// pkg/app/kernel.go — builds an http.Handler from the Application config.
// This file has NO imports of project-specific code (controllers, routes).
// All project dependencies are injected via the Application builder methods.

import (
	"net/http"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/middleware"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/reqid"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
)

// Handler constructs the HTTP handler from the Application config. It sets
// up the global middleware stack, then calls the route-registration
// callbacks.
func (a *Application) Handler() http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit on the route
	// itself beyond the global stack.
	r.Get("/metrics", "metrics", metrics.Handler())

	// Call every route-registration callback the user supplied.
	for _, fn := range a.routesFns {
		fn(r)
	}

	return r.Handler()
}
