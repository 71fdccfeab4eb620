// ABOUTME: CLI command for store statistics.
// ABOUTME: Reports draft, published, and container counts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := globalStore.Stats()
	if err != nil {
		return fmt.Errorf("failed to gather stats: %w", err)
	}

	fmt.Printf("Drafts:     %d\n", stats.Drafts)
	fmt.Printf("Published:  %d\n", stats.Published)
	fmt.Printf("Containers: %d\n", stats.Containers)
	return nil
}
