package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nikhilps/docledger/transfer"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Copy the local ledger into the remote backend",
	Long: `Transfer reads every record from the local sqlite ledger and upserts
it into Postgres. Records are upserted by id, so reruns are safe: a record
that failed last time is retried, one that succeeded is overwritten in
place. Failures are reported per record and never abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openLocal()
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := openRemote()
		if err != nil {
			return err
		}
		defer dst.Close()

		summary, err := transfer.Run(cmd.Context(), src, dst)
		if err != nil {
			return err
		}
		for _, res := range summary.Results {
			if res.Error != "" {
				slog.Error("record failed", "collection", res.Collection, "id", res.ID, "error", res.Error)
			}
		}
		fmt.Printf("transfer finished: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		if summary.Failed > 0 {
			return fmt.Errorf("%d records failed; rerun to retry", summary.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
}
