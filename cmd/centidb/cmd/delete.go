package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <json-tuple>",
	Short: "Delete the value stored under a tuple key",
	Long: `Delete the entry stored under a JSON-encoded tuple key.

Example:
  centidb delete '["users",42]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tuple, err := parseJSONTuple(args[0])
		if err != nil {
			return fmt.Errorf("invalid tuple: %w", err)
		}

		s, closeStore, err := openStore(configFromCmd(cmd))
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()

		if err := s.Delete(tuple); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		cmd.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
