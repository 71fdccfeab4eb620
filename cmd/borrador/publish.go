// ABOUTME: CLI commands for the publish lifecycle.
// ABOUTME: Provides the publish transition and the published-history listing.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/models"
	"github.com/causa-colectivo/borrador/internal/storage"
)

var publishCmd = &cobra.Command{
	Use:   "publish <titulo>",
	Short: "Mark a draft as published",
	Long:  "Transition a draft to published and append it to the published history.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

var publishedCmd = &cobra.Command{
	Use:   "published",
	Short: "List the published history",
	RunE:  runPublished,
}

var publishDate string

func init() {
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(publishedCmd)

	publishCmd.Flags().StringVar(&publishDate, "date", "", "Post date in YYYY-MM-DD format (default today)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(publishDate)
	if err != nil {
		return err
	}

	if err := globalStore.MarkPublished(date, args[0]); err != nil {
		if errors.Is(err, storage.ErrInvalidTransition) {
			return fmt.Errorf("%q on %s is already published", args[0], date.Format(models.DateFormat))
		}
		return fmt.Errorf("failed to publish: %w", err)
	}

	fmt.Printf("Published %q on %s\n", args[0], date.Format(models.DateFormat))
	return nil
}

func runPublished(cmd *cobra.Command, args []string) error {
	posts, err := globalStore.ListPublished()
	if err != nil {
		return fmt.Errorf("failed to read published history: %w", err)
	}

	if len(posts) == 0 {
		fmt.Println("No published posts yet.")
		return nil
	}

	for _, post := range posts {
		printPost(post)
	}
	return nil
}
