// ABOUTME: CLI command for exporting drafts to an image-generation worksheet.
// ABOUTME: Writes a reduced-schema CSV for a single day's drafts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day's drafts for image generation",
	Long:  "Write a temporary CSV with the date, title, image brief, and body of each draft for the given day.",
	RunE:  runExport,
}

var exportDate string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDate, "date", "", "Day to export in YYYY-MM-DD format (default today)")
}

func runExport(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(exportDate)
	if err != nil {
		return err
	}

	path, err := globalStore.ExportForImages(date)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if path == "" {
		fmt.Println("No drafts to export for that day.")
		return nil
	}

	fmt.Printf("Exported drafts to %s\n", path)
	return nil
}
