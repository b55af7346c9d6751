package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zenspace/zenspace/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all local data (session, check-ins, journal)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
		fmt.Println("Local data erased.")
		return nil
	},
}
