// ABOUTME: HTTP client for the collective's shared activities calendar.
// ABOUTME: Fetches the Google Sheets CSV export and filters to confirmed activities.
package activities

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Google Sheets export endpoint.
const DefaultBaseURL = "https://docs.google.com"

// confirmedStatus is the calendar status marking an activity as ready to promote.
const confirmedStatus = "confirmada"

// Activity is one row of the collective's activities calendar.
type Activity struct {
	Name        string
	Date        string
	Location    string
	Description string
	Status      string
}

// Client fetches activities from a published Google Sheet.
type Client struct {
	baseURL   string
	sheetID   string
	sheetName string
	client    *http.Client
}

// NewClient creates an activities client for the given sheet.
func NewClient(baseURL, sheetID, sheetName string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sheetID:   sheetID,
		sheetName: sheetName,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchConfirmed returns the calendar's confirmed activities. When the sheet
// has no status column every row counts as confirmed, matching how loosely
// the calendar is maintained.
func (c *Client) FetchConfirmed(ctx context.Context) ([]Activity, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, c.sheetID, url.QueryEscape(c.sheetName))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("calendar returned %d: %s", resp.StatusCode, string(body))
	}

	return parseActivities(resp.Body)
}

// parseActivities decodes the sheet's CSV export by column name.
func parseActivities(r io.Reader) ([]Activity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	hasStatus := false
	if _, ok := idx["status"]; ok {
		hasStatus = true
	}

	field := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := idx[name]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var confirmed []Activity
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read calendar row: %w", err)
		}

		a := Activity{
			Name:        field(row, "nombre", "actividad"),
			Date:        field(row, "fecha"),
			Location:    field(row, "lugar"),
			Description: field(row, "descripcion"),
			Status:      field(row, "status"),
		}
		if hasStatus && !strings.EqualFold(a.Status, confirmedStatus) {
			continue
		}
		confirmed = append(confirmed, a)
	}
	return confirmed, nil
}
