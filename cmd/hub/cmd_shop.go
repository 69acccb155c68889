package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/probe"
)

// hub probe — one-shot backend reachability check.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the shop backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		client := backend.New()
		p := probe.NewWithCadence(client, config.ProbeInterval(), config.ProbeTimeout())

		status := p.Check(cmd.Context())
		fmt.Printf("%s  %s\n", config.BackendOrigin(), status)
		if status != probe.StatusOnline {
			os.Exit(1)
		}
		return nil
	},
}

var (
	productsQuery    string
	productsCategory string
	productsPrice    string
)

// hub products — list the catalogue from the terminal.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, with the same filters the storefront offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		provider := catalog.NewProvider(backend.New(), nil)
		result := provider.Products(cmd.Context())

		filter := catalog.NewFilter()
		filter.Query = productsQuery
		filter.SetCategory(productsCategory)
		filter.PriceRange = productsPrice

		products := filter.Apply(result.Products)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Price, p.Category)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d products (source: %s)\n", len(products), result.Source)
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVarP(&productsQuery, "query", "q", "", "match against name and description")
	productsCmd.Flags().StringVarP(&productsCategory, "category", "c", catalog.CategoryAll, "category filter")
	productsCmd.Flags().StringVarP(&productsPrice, "price", "p", catalog.PriceRangeAll, "price range id (all, under-10, 10-25, 25-50, over-50)")
}
