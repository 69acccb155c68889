package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "Stationery Hub — storefront gateway CLI",
	Long:  "Stationery Hub is a local gateway for a stationery shop backend. Use this CLI to serve the gateway and poke at the shop from the terminal.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Shop
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(productsCmd)

	// Admin session
	rootCmd.AddCommand(adminCmd)
}
