// ABOUTME: CLI command for the interactive settings wizard.
// ABOUTME: Runs the bubbletea setup model and persists the result.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive settings wizard",
	Long:  "Walk through posts-per-day and retention settings with an interactive prompt.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel(globalSettings.Load())
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("setup wizard failed: %w", err)
	}

	result, ok := final.(tui.SetupModel)
	if !ok || !result.ShouldSave() {
		fmt.Println("Setup cancelled; settings unchanged.")
		return nil
	}

	if err := globalSettings.Save(result.Result()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings saved.")
	return nil
}
