/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/dw/centidb/pkg/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API over the store",
	Long: `Start centidb's HTTP API: tuple-keyed get/put/delete, a prefix
scan, a liveness probe, and a Prometheus endpoint.

Example:
  centidb serve --config ./centidb.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromCmd(cmd)

		s, closeStore, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()

		return api.StartServer(s, api.ServerConfig{ListenAddr: cfg.ListenAddr()})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
