// ABOUTME: CLI commands for draft operations.
// ABOUTME: Provides add, list, show, delete, and set-image subcommands for drafts.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/models"
	"github.com/causa-colectivo/borrador/internal/storage"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage draft posts",
	Long:  "Create, inspect, and delete draft posts awaiting review.",
}

var draftAddCmd = &cobra.Command{
	Use:   "add <titulo>",
	Short: "Create a draft post",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftAdd,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	Long:  "List posts across all containers, with optional date-range and status filters.",
	RunE:  runDraftList,
}

var draftShowCmd = &cobra.Command{
	Use:   "show <titulo>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete <titulo>",
	Short: "Delete a draft post",
	Long:  "Delete the matching post. Deleting a post that does not exist is a no-op.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDelete,
}

var draftSetImageCmd = &cobra.Command{
	Use:   "set-image <titulo> <path>",
	Short: "Attach a generated image to a draft",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftSetImage,
}

// Flags
var (
	draftDate  string
	draftBrief string
	draftBody  string
	listFrom   string
	listTo     string
	listStatus string
)

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftAddCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftDeleteCmd)
	draftCmd.AddCommand(draftSetImageCmd)

	for _, cmd := range []*cobra.Command{draftAddCmd, draftShowCmd, draftDeleteCmd, draftSetImageCmd} {
		cmd.Flags().StringVar(&draftDate, "date", "", "Post date in YYYY-MM-DD format (default today)")
	}
	draftAddCmd.Flags().StringVar(&draftBrief, "image-brief", "", "Free-text brief for image generation")
	draftAddCmd.Flags().StringVar(&draftBody, "body", "", "Post content, may include hashtags")
	_ = draftAddCmd.MarkFlagRequired("body")

	draftListCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date to include (YYYY-MM-DD)")
	draftListCmd.Flags().StringVar(&listTo, "to", "", "Latest date to include (YYYY-MM-DD)")
	draftListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status: draft or published")
}

// parseDateFlag parses a --date value, defaulting to today when empty.
func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return models.Day(time.Now()), nil
	}
	d, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}
	return d, nil
}

func runDraftAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(draftDate)
	if err != nil {
		return err
	}

	post := models.NewPost(date, args[0], draftBrief, draftBody)
	if err := globalStore.Create(post); err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	fmt.Printf("Draft %q saved for %s\n", post.Title, post.Date.Format(models.DateFormat))
	return nil
}

func runDraftList(cmd *cobra.Command, args []string) error {
	var opts storage.ListOptions
	if listFrom != "" {
		from, err := time.Parse(models.DateFormat, listFrom)
		if err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
		opts.From = from
	}
	if listTo != "" {
		to, err := time.Parse(models.DateFormat, listTo)
		if err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
		opts.To = to
	}
	opts.Status = listStatus

	posts, err := globalStore.List(opts)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return nil
	}

	for _, post := range posts {
		printPost(post)
	}
	return nil
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(draftDate)
	if err != nil {
		return err
	}

	post, err := globalStore.Find(date, args[0])
	if err != nil {
		return fmt.Errorf("failed to find post: %w", err)
	}

	printPost(post)
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(draftDate)
	if err != nil {
		return err
	}

	if err := globalStore.Delete(date, args[0]); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	fmt.Printf("Deleted %q on %s (no-op if it did not exist)\n", args[0], date.Format(models.DateFormat))
	return nil
}

func runDraftSetImage(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(draftDate)
	if err != nil {
		return err
	}

	if err := globalStore.UpdateImagePath(date, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set image path: %w", err)
	}

	fmt.Printf("Image %s attached to %q on %s\n", args[1], args[0], date.Format(models.DateFormat))
	return nil
}

// printPost writes a post in the feed format shared by list, show, and published.
func printPost(post *models.Post) {
	fmt.Printf("--- [%s] %s (%s)", post.Date.Format(models.DateFormat), post.Title, post.Status)
	if post.ImagePath != "" {
		fmt.Printf(" img:%s", post.ImagePath)
	}
	fmt.Printf("\n%s\n\n", post.Body)
}
