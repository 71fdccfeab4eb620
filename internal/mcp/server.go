// ABOUTME: MCP server initialization and configuration for borrador.
// ABOUTME: Sets up the server with draft store tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/causa-colectivo/borrador/internal/activities"
	"github.com/causa-colectivo/borrador/internal/storage"
)

// Server wraps the MCP server with draft storage and settings.
type Server struct {
	mcp      *gomcp.Server
	store    storage.PostStore
	settings *storage.SettingsStore
	calendar *activities.Client
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithActivities sets the activities calendar client used by get_activities.
func WithActivities(c *activities.Client) ServerOption {
	return func(s *Server) {
		s.calendar = c
	}
}

// NewServer creates an MCP server exposing the draft store as agent tools.
func NewServer(store storage.PostStore, settings *storage.SettingsStore, opts ...ServerOption) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("draft store is required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings store is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "borrador",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:      mcpServer,
		store:    store,
		settings: settings,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerDraftTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolText creates a plain text result for MCP tool responses.
func toolText(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}
