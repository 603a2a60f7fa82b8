package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/dw/centidb/pkg/keycoder"
	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack <json-tuple>",
	Short: "Pack a JSON-encoded tuple into a hex-encoded key",
	Long: `Pack a JSON array, e.g. ["users",42], into the order-preserving
byte key pkg/keycoder would write for it, printed as hex.

Example:
  centidb pack '["users",42]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tuple, err := parseJSONTuple(args[0])
		if err != nil {
			return fmt.Errorf("invalid tuple: %w", err)
		}
		key, err := keycoder.Pack(nil, tuple)
		if err != nil {
			return fmt.Errorf("pack: %w", err)
		}
		cmd.Println(hex.EncodeToString(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
