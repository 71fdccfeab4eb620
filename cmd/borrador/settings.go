// ABOUTME: CLI commands for reading and writing persisted settings.
// ABOUTME: Provides settings get and settings set subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current settings",
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a setting",
	Long:  "Update posts_per_day or cleanup_months. Invalid values are rejected and the stored settings are left untouched.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	settings := globalSettings.Load()
	fmt.Printf("posts_per_day: %d\n", settings.PostsPerDay)
	fmt.Printf("cleanup_months: %d\n", settings.CleanupMonths)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q: expected an integer", args[1])
	}

	settings := globalSettings.Load()
	switch args[0] {
	case "posts_per_day":
		settings.PostsPerDay = value
	case "cleanup_months":
		settings.CleanupMonths = value
	default:
		return fmt.Errorf("%w: unknown key %q", storage.ErrInvalidSetting, args[0])
	}

	if err := globalSettings.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("%s set to %d\n", args[0], value)
	return nil
}
