package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zenspace/zenspace/internal/api"
	"github.com/zenspace/zenspace/internal/app"
	"github.com/zenspace/zenspace/internal/config"
	"github.com/zenspace/zenspace/internal/logging"
	"github.com/zenspace/zenspace/internal/nav"
	"github.com/zenspace/zenspace/internal/storage"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("auth"); p != "" {
		cfg.AuthPayload = p
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	logPath := cfg.LogPath
	if logPath == "" {
		logPath, err = config.DefaultLogPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, err := logging.New(logPath)
	if err != nil {
		log = logging.Nop()
	}
	defer log.Sync()

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, func() string {
		tok, _, _ := store.Get(context.Background(), storage.KeyAccessToken)
		return tok
	})

	ctl := nav.New(store, log)
	return app.Run(ctl, store, client, log, cfg.AuthPayload)
}
