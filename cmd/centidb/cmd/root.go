/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dw/centidb/pkg/config"
	"github.com/dw/centidb/pkg/keycoder"
	"github.com/dw/centidb/pkg/store"
	"github.com/spf13/cobra"
)

type configKey struct{}

var cfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "centidb",
	Short: "centidb - an embeddable ordered key-value store",
	Long: `centidb packs tuples into order-preserving byte keys and stores them
in a local Pebble instance. Low-level codec subcommands (pack, unpack,
decode-offsets) operate on bytes directly; put/get/delete/serve operate
against a store opened at the configured data directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if cfgPath != "" && config.ConfigExists(cfgPath) {
			loaded, err := config.LoadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
}

// configFromCmd retrieves the loaded config from the command's context.
func configFromCmd(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(configKey{}).(*config.Config)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

// openStore opens the store at cfg.DataDir and returns a close func the
// caller must defer.
func openStore(cfg *config.Config) (*store.Store, func(), error) {
	s, err := store.Open(store.Config{DataDir: cfg.DataDir})
	if err != nil {
		return nil, nil, err
	}
	return s, func() { s.Close() }, nil
}

// parseJSONTuple parses a JSON array string, e.g. `["users",42]`, into a
// keycoder.Tuple, folding whole-number JSON floats to int64.
func parseJSONTuple(raw string) (keycoder.Tuple, error) {
	var elems []interface{}
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("not a JSON array: %w", err)
	}
	tuple := make(keycoder.Tuple, len(elems))
	for i, e := range elems {
		if f, ok := e.(float64); ok && f == float64(int64(f)) {
			tuple[i] = int64(f)
			continue
		}
		tuple[i] = e
	}
	return tuple, nil
}

// tupleToJSON renders a decoded Tuple back to a JSON array for CLI output.
func tupleToJSON(tuple keycoder.Tuple) (string, error) {
	out := make([]interface{}, len(tuple))
	copy(out, tuple)
	b, err := json.Marshal(out)
	return string(b), err
}
