package main

// cmd/server/main.go is the plain gateway binary: it serves the API with
// no CLI bells attached. Use cmd/hub for the full command set.

import (
	"log"

	"github.com/ahmadsvu/stationery-hub-frontend/app/routes"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/server"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/app"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
)

func main() {
	gw, err := server.Wire()
	if err != nil {
		log.Fatal(err)
	}
	defer gw.Close()

	app.New().
		Routes(func(r *router.Router) { routes.RegisterAPI(r, gw.Deps) }).
		OnStart(gw.StartBackground).
		Run()
}
