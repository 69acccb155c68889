package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahmadsvu/stationery-hub-frontend/app/routes"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/server"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/app"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
)

// hub serve — start the gateway HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the gateway HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := server.Wire()
		if err != nil {
			return err
		}
		defer gw.Close()

		application := app.New().
			Routes(func(r *router.Router) { routes.RegisterAPI(r, gw.Deps) })

		gw.StartBackground(cmd.Context())
		return server.Start(application.Handler())
	},
}

// hub route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := server.Wire()
		if err != nil {
			return err
		}
		defer gw.Close()

		r := router.New()
		routes.RegisterAPI(r, gw.Deps)

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		// Sort by path then method.
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
