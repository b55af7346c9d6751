package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/zenspace/zenspace/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update zenspace to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx, version, func(_ selfupdate.Stage, detail string) {
			fmt.Println(detail)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("zenspace is up to date.")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Development builds cannot self-update; install a release build first.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nThe install location is not writable; try: sudo zenspace update", err)
		default:
			return err
		}
	},
}
