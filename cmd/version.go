package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags on release builds.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the zenspace version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("zenspace %s %s/%s\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
