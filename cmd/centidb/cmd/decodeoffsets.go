package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/dw/centidb/pkg/keycoder"
	"github.com/spf13/cobra"
)

var decodeOffsetsCmd = &cobra.Command{
	Use:   "decode-offsets <hex>",
	Short: "Decode a delta-encoded offset table into absolute positions",
	Long: `Decode a hex-encoded byte string holding a varint count followed by
that many delta varints, printing the absolute position list and the
number of bytes the table occupied.

Example:
  centidb decode-offsets 02050a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		positions, consumed, err := keycoder.DecodeOffsets(data)
		if err != nil {
			return fmt.Errorf("decode-offsets: %w", err)
		}
		cmd.Printf("positions=%v consumed=%d\n", positions, consumed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeOffsetsCmd)
}
