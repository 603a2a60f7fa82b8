package cmd

import (
	"fmt"

	"github.com/dw/centidb/pkg/keycoder"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

// autoKeyTuple signals that put should generate its own tuple key instead
// of parsing one from the command line.
const autoKeyTuple = "-"

var putCmd = &cobra.Command{
	Use:   "put <json-tuple> <value>",
	Short: "Store a value under a tuple key",
	Long: `Put a value into the store at the configured data directory,
keyed by a JSON-encoded tuple. Pass "-" instead of a tuple to have put
generate a single-element tuple from a fresh KSUID, for ad hoc inserts that
don't need a caller-chosen key.

Example:
  centidb put '["users",42]' alice
  centidb put - alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tuple keycoder.Tuple
		if args[0] == autoKeyTuple {
			tuple = keycoder.Tuple{ksuid.New().String()}
		} else {
			parsed, err := parseJSONTuple(args[0])
			if err != nil {
				return fmt.Errorf("invalid tuple: %w", err)
			}
			tuple = parsed
		}

		s, closeStore, err := openStore(configFromCmd(cmd))
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()

		if err := s.Put(tuple, []byte(args[1])); err != nil {
			return fmt.Errorf("put: %w", err)
		}
		out, err := tupleToJSON(tuple)
		if err != nil {
			return err
		}
		cmd.Printf("stored %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
