// Package app provides the gateway application runner.
//
// # Minimal usage
//
//	package main
//
//	import (
//	    "github.com/ahmadsvu/stationery-hub-frontend/pkg/app"
//	    "github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
//	)
//
//	func main() {
//	    app.New().
//	        Routes(func(r *router.Router) {
//	            r.Get("/hello", "hello", helloHandler)
//	        }).
//	        Run()
//	}
//
// Then run directly:
//
//	go build -o hub . && ./hub serve
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
)

// ─── Application Builder ──────────────────────────────────────────────────────

// Application is the central configuration object for the gateway binary.
// Build one with New(), attach your configuration, then call Run().
type Application struct {
	routesFns []func(*router.Router)
	startFns  []func(ctx context.Context)
}

// New creates a new Application instance with sensible defaults.
func New() *Application {
	return &Application{}
}

// Routes registers a route-registration callback that will be called when
// the HTTP handler is built. You may call Routes() multiple times; all
// callbacks are executed in order.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// OnStart registers a background-task callback run once when serving
// begins. The context is cancelled at shutdown.
func (a *Application) OnStart(fn func(ctx context.Context)) *Application {
	a.startFns = append(a.startFns, fn)
	return a
}

// Run reads os.Args and dispatches to the appropriate command.
// This is the ONLY function you need to call from your main().
func (a *Application) Run() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "serve", "start", "run", "s":
		err = cmdServe(a)
	case "route:list", "routes":
		err = cmdRouteList(a)
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n\nRun with --help for usage.\n", cmd)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`Stationery Hub — storefront gateway

Usage:
  <program> <command>

  (or: go run . <command>)

Commands:
  serve            Start the gateway HTTP server  (aliases: start, run)
  route:list       List registered API routes

`)
}
