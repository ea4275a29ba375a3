package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikhilps/docledger/backup"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to a JSON snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		snap, err := backup.Export(cmd.Context(), s)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		if exportOut == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "ledger-export.json", "Output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}
