package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikhilps/docledger/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending Postgres migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openPostgresDB()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			return err
		}
		fmt.Println("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
