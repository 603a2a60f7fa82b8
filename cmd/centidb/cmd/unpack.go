package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/dw/centidb/pkg/keycoder"
	"github.com/spf13/cobra"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <hex>",
	Short: "Decode a hex-encoded key into its JSON tuple",
	Long: `Decode a hex string previously produced by pack (or any
pkg/keycoder producer) back into a JSON array.

Example:
  centidb unpack 32b0c000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		tuple, err := keycoder.Unpack(nil, data)
		if err != nil {
			return fmt.Errorf("unpack: %w", err)
		}
		out, err := tupleToJSON(tuple)
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}
