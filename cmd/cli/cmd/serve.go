// Package cmd - HTTP API server
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"listing-price/api"
	"listing-price/internal/config"
	"listing-price/internal/logging"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the listing calculator over HTTP",
	Long: `Serve the listing calculator as a JSON API.

Endpoints:
  POST /listing                       compute one listing
  POST /compare                       compare every platform
  GET  /platforms                     list platforms
  GET  /platforms/{platform}/categories
  GET  /health, /version`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = config.Get().Server.Addr
		}

		server := api.NewServer(version, eng, logging.Named("api"))
		logging.Info("listening", zap.String("addr", addr))
		fmt.Fprintf(cmd.OutOrStdout(), "listing-price API v%s on http://localhost%s\n", version, addr)
		return server.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
