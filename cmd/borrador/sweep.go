// ABOUTME: CLI command for the retention sweep.
// ABOUTME: Removes posts and image assets older than the retention window.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/storage"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove posts older than the retention window",
	Long:  "Delete posts and their image assets past the retention cutoff. The window defaults to the cleanup_months setting.",
	RunE:  runSweep,
}

var sweepMonths int

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().IntVar(&sweepMonths, "months", 0, "Retention window in months (default from settings)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	months := sweepMonths
	if months <= 0 {
		months = globalSettings.Load().CleanupMonths
	}

	sweeper := storage.NewSweeper(globalStore, globalLog)
	result, err := sweeper.Sweep(time.Now(), months)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Printf("Removed %d posts and %d image assets older than %d months\n",
		result.PostsRemoved, result.AssetsRemoved, months)
	return nil
}
