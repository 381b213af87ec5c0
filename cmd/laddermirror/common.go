package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jwjr/ladder-mirror/internal/store"
	"github.com/jwjr/ladder-mirror/internal/util"
)

// setupLogging applies the verbosity flags before a command runs
func setupLogging() {
	util.SetVerbose(viper.GetBool("verbose"))
	util.SetQuiet(viper.GetBool("quiet"))
}

// openStore opens the mirror database named by --db
func openStore() (*store.Store, error) {
	dbPath := viper.GetString("db")
	if dbPath == "" {
		return nil, fmt.Errorf("%w: database path is required (use --db or set LADDER_DB)", util.ErrInvalidConfig)
	}

	util.InfoLog("Opening database: %s", dbPath)

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
