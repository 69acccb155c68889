package app

// pkg/app/commands.go — implementations for the CLI sub-commands reachable
// through Application.Run().

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/server"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
)

// cmdServe boots the HTTP server and the registered background tasks.
func cmdServe(a *Application) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, fn := range a.startFns {
		fn(ctx)
	}

	return server.Start(a.Handler())
}

// cmdRouteList prints all registered routes.
func cmdRouteList(a *Application) error {
	r := router.New()
	for _, fn := range a.routesFns {
		fn(r)
	}

	routes := r.Routes()
	if len(routes) == 0 {
		fmt.Println("No routes registered.")
		return nil
	}

	fmt.Printf("%-8s  %-50s  %s\n", "METHOD", "PATH", "NAME")
	fmt.Println(strings.Repeat("-", 80))
	for _, ri := range routes {
		fmt.Printf("%-8s  %-50s  %s\n", ri.Method, ri.Path, ri.Name)
	}
	return nil
}
