// ABOUTME: CLI command that runs the MCP server over stdio.
// ABOUTME: Exposes draft tools to agents until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/causa-colectivo/borrador/internal/activities"
	"github.com/causa-colectivo/borrador/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long:  "Expose draft tools to MCP clients on stdin/stdout. Runs until the client disconnects or the process is interrupted.",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	opts := []mcp.ServerOption{}
	if globalConfig.HasActivities() {
		calendar := activities.NewClient(activities.DefaultBaseURL,
			globalConfig.Activities.SheetID, globalConfig.SheetName())
		opts = append(opts, mcp.WithActivities(calendar))
	}

	server, err := mcp.NewServer(globalStore, globalSettings, opts...)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	globalLog.Info().Msg("starting MCP server on stdio")
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
