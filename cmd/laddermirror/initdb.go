package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jwjr/ladder-mirror/internal/bootstrap"
	"github.com/jwjr/ladder-mirror/internal/ladder"
	"github.com/jwjr/ladder-mirror/internal/util"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize the database and prefill reference tables",
	Long: `Create the mirror schema and prefill the reference tables (glider
models, launch points, clubs, active pilots) from the ladder's bulk
endpoints. Run once against a fresh database.`,
	RunE: runInitDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	setupLogging()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	client := ladder.NewClient()

	if err := bootstrap.Prefill(context.Background(), db, client); err != nil {
		return err
	}

	util.SuccessLog("Database initialized")
	return nil
}
