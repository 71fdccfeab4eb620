// ABOUTME: MCP tool implementations for draft post operations.
// ABOUTME: Registers save_draft, read_publications, update_image_path, mark_published, delete_draft, and get_activities.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/causa-colectivo/borrador/internal/models"
	"github.com/causa-colectivo/borrador/internal/storage"
)

func (s *Server) registerDraftTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "save_draft",
		Description: "Save a new post as a draft after the user has approved its content.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"fecha": {"type": "string", "description": "Publication date in YYYY-MM-DD format."},
				"titulo": {"type": "string", "description": "Post title, short and attention-grabbing.", "minLength": 1},
				"imagen": {"type": "string", "description": "Detailed description for image generation: visual elements, style, colors."},
				"descripcion": {"type": "string", "description": "Full post content including hashtags and call-to-action.", "minLength": 1}
			},
			"required": ["fecha", "titulo", "descripcion"]
		}`),
	}, s.handleSaveDraft)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "read_publications",
		Description: "Read recent publications before creating new content, to avoid repeating topics and keep variety.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"days_back": {"type": "number", "description": "Number of days to look back (default 30)"},
				"include_published": {"type": "boolean", "description": "Whether to include already published posts (default true)"}
			}
		}`),
	}, s.handleReadPublications)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "update_image_path",
		Description: "Link a generated image file to an existing draft post.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"fecha": {"type": "string", "description": "Post date in YYYY-MM-DD format."},
				"titulo": {"type": "string", "description": "Post title, must match exactly."},
				"image_path": {"type": "string", "description": "Path to the generated image file."}
			},
			"required": ["fecha", "titulo", "image_path"]
		}`),
	}, s.handleUpdateImagePath)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "mark_published",
		Description: "Mark a draft as published once the user confirms it went out. This cannot be undone.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"fecha": {"type": "string", "description": "Post date in YYYY-MM-DD format."},
				"titulo": {"type": "string", "description": "Post title, must match exactly."}
			},
			"required": ["fecha", "titulo"]
		}`),
	}, s.handleMarkPublished)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "delete_draft",
		Description: "Delete a draft the user has discarded. Deleting a draft that does not exist is not an error.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"fecha": {"type": "string", "description": "Post date in YYYY-MM-DD format."},
				"titulo": {"type": "string", "description": "Post title, must match exactly."}
			},
			"required": ["fecha", "titulo"]
		}`),
	}, s.handleDeleteDraft)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "get_activities",
		Description: "List the collective's confirmed upcoming activities that need promotion.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleGetActivities)
}

// parseDate parses the fecha argument shared by every draft tool.
func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha must be YYYY-MM-DD, got %q", raw)
	}
	return d, nil
}

func (s *Server) handleSaveDraft(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Fecha       string `json:"fecha"`
		Titulo      string `json:"titulo"`
		Imagen      string `json:"imagen"`
		Descripcion string `json:"descripcion"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Titulo == "" {
		return toolError("titulo is required"), nil
	}
	if args.Descripcion == "" {
		return toolError("descripcion is required"), nil
	}
	date, err := parseDate(args.Fecha)
	if err != nil {
		return toolError("%v", err), nil
	}

	post := models.NewPost(date, args.Titulo, args.Imagen, args.Descripcion)
	if err := s.store.Create(post); err != nil {
		return toolError("failed to save draft: %v", err), nil
	}

	return toolText("Draft saved for %s: %q\nThe post is ready for image generation.",
		args.Fecha, args.Titulo), nil
}

func (s *Server) handleReadPublications(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		DaysBack         int   `json:"days_back"`
		IncludePublished *bool `json:"include_published"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.DaysBack <= 0 {
		args.DaysBack = 30
	}
	includePublished := args.IncludePublished == nil || *args.IncludePublished

	from := models.Day(time.Now().AddDate(0, 0, -args.DaysBack))
	drafts, err := s.store.List(storage.ListOptions{From: from, Status: models.StatusDraft})
	if err != nil {
		return toolError("failed to list drafts: %v", err), nil
	}

	var published []*models.Post
	if includePublished {
		history, err := s.store.ListPublished()
		if err != nil {
			return toolError("failed to list published posts: %v", err), nil
		}
		for _, p := range history {
			if !p.Date.Before(from) {
				published = append(published, p)
			}
		}
	}

	if len(drafts) == 0 && len(published) == 0 {
		return toolText("No publications found in the last %d days. You have a clean slate for new content!", args.DaysBack), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Recent publications (last %d days):\n\n", args.DaysBack)
	if len(drafts) > 0 {
		sb.WriteString("DRAFTS (pending publication):\n")
		writePostSummaries(&sb, drafts)
		sb.WriteString("\n")
	}
	if len(published) > 0 {
		sb.WriteString("PUBLISHED:\n")
		writePostSummaries(&sb, published)
	}
	fmt.Fprintf(&sb, "\nSummary: %d drafts, %d published", len(drafts), len(published))

	return toolText("%s", sb.String()), nil
}

// writePostSummaries appends a capped list of one-line post summaries.
func writePostSummaries(sb *strings.Builder, posts []*models.Post) {
	const maxShown = 10
	for i, p := range posts {
		if i == maxShown {
			fmt.Fprintf(sb, "  ... and %d more\n", len(posts)-maxShown)
			break
		}
		fmt.Fprintf(sb, "- [%s] %s\n", p.Date.Format(models.DateFormat), p.Title)
		if preview := p.Body; preview != "" {
			if len(preview) > 100 {
				preview = preview[:100] + "..."
			}
			fmt.Fprintf(sb, "  Preview: %s\n", preview)
		}
	}
}

func (s *Server) handleUpdateImagePath(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Fecha     string `json:"fecha"`
		Titulo    string `json:"titulo"`
		ImagePath string `json:"image_path"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	date, err := parseDate(args.Fecha)
	if err != nil {
		return toolError("%v", err), nil
	}
	if args.ImagePath == "" {
		return toolError("image_path is required"), nil
	}

	if err := s.store.UpdateImagePath(date, args.Titulo, args.ImagePath); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return toolError("could not find post %q on %s to update image path", args.Titulo, args.Fecha), nil
		}
		return toolError("failed to update image path: %v", err), nil
	}

	return toolText("Image path updated for post %q on %s", args.Titulo, args.Fecha), nil
}

func (s *Server) handleMarkPublished(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Fecha  string `json:"fecha"`
		Titulo string `json:"titulo"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	date, err := parseDate(args.Fecha)
	if err != nil {
		return toolError("%v", err), nil
	}

	if err := s.store.MarkPublished(date, args.Titulo); err != nil {
		switch {
		case errors.Is(err, storage.ErrRecordNotFound):
			return toolError("could not find post %q on %s", args.Titulo, args.Fecha), nil
		case errors.Is(err, storage.ErrInvalidTransition):
			return toolError("post %q on %s is already published", args.Titulo, args.Fecha), nil
		default:
			return toolError("failed to mark published: %v", err), nil
		}
	}

	return toolText("Post %q on %s marked as published and recorded in history.", args.Titulo, args.Fecha), nil
}

func (s *Server) handleDeleteDraft(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Fecha  string `json:"fecha"`
		Titulo string `json:"titulo"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	date, err := parseDate(args.Fecha)
	if err != nil {
		return toolError("%v", err), nil
	}

	if err := s.store.Delete(date, args.Titulo); err != nil {
		return toolError("failed to delete draft: %v", err), nil
	}

	return toolText("Draft %q on %s deleted (no-op if it did not exist).", args.Titulo, args.Fecha), nil
}

func (s *Server) handleGetActivities(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if s.calendar == nil {
		return toolError("activities calendar is not configured - set activities.sheet_id in the config"), nil
	}

	confirmed, err := s.calendar.FetchConfirmed(ctx)
	if err != nil {
		return toolError("error reading activities: %v", err), nil
	}

	if len(confirmed) == 0 {
		return toolText("No confirmed activities found in the calendar. Consider creating content based on news or ephemerides instead."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Confirmed activities (%d total):\n\n", len(confirmed))
	for _, a := range confirmed {
		fmt.Fprintf(&sb, "- %s\n", a.Name)
		if a.Date != "" {
			fmt.Fprintf(&sb, "  Date: %s\n", a.Date)
		}
		if a.Location != "" {
			fmt.Fprintf(&sb, "  Location: %s\n", a.Location)
		}
		if a.Description != "" {
			desc := a.Description
			if len(desc) > 100 {
				desc = desc[:100] + "..."
			}
			fmt.Fprintf(&sb, "  Description: %s\n", desc)
		}
	}

	return toolText("%s", sb.String()), nil
}
