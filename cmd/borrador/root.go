// ABOUTME: Root Cobra command and global state for the borrador CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and store initialization.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/config"
	"github.com/causa-colectivo/borrador/internal/storage"
)

var globalConfig *config.Config
var globalStore *storage.CSVStore
var globalSettings *storage.SettingsStore
var globalLog zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "borrador",
	Short: "Local draft store for social media content",
	Long: `
██████╗  ██████╗ ██████╗ ██████╗  █████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
██████╔╝██║   ██║██████╔╝██████╔╝███████║██║  ██║██║   ██║██████╔╝
██╔══██╗██║   ██║██╔══██╗██╔══██╗██╔══██║██║  ██║██║   ██║██╔══██╗
██████╔╝╚██████╔╝██║  ██║██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝

Draft, review, and publish social media posts from flat files.
Local-first; drafts stay on disk until a human approves them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		globalLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		baseDir, err := cfg.GetBaseDir()
		if err != nil {
			return fmt.Errorf("failed to resolve publications directory: %w", err)
		}
		store, err := storage.NewCSVStore(baseDir, globalLog)
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		globalStore = store
		globalSettings = storage.NewSettingsStore(store.SettingsPath())

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalStore != nil {
			_ = globalStore.Close()
			globalStore = nil
		}
		return nil
	},
}
