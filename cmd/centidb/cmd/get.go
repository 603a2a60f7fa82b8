package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <json-tuple>",
	Short: "Fetch the value stored under a tuple key",
	Long: `Get the value stored under a JSON-encoded tuple key.

Example:
  centidb get '["users",42]'`,
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

		value, err := s.Get(tuple)
		if err != nil {
			return fmt.Errorf("get: %w", err)
		}
		cmd.Println(string(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
