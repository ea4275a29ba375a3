package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikhilps/docledger/backup"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the ledger from a JSON snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var snap backup.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("parsing snapshot: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := backup.Import(cmd.Context(), s, &snap); err != nil {
			return err
		}
		fmt.Printf("imported %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
