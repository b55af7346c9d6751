package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zenspace/zenspace/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "zenspace",
	Short: "Mental wellness companion for students",
	Long:  "Zen Space — terminal companion for student mental wellness: daily check-ins, AI chat, meditation, and journaling.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ZENSPACE_DB env var)")
	rootCmd.Flags().String("auth", "", "Base64url auth payload handed off by the browser login flow")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ZENSPACE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}
