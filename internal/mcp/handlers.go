package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/pages"
)

// catalogArg resolves the required catalog argument.
func (s *Server) catalogArg(request mcp.CallToolRequest) (*pages.Catalog, *mcp.CallToolResult) {
	name, err := request.RequireString("catalog")
	if err != nil {
		return nil, mcp.NewToolResultError("missing required parameter: catalog")
	}
	c, ok := s.set.Catalog(name)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("unknown catalog %q: must be one of %s", name, strings.Join(catalogNames, ", ")))
	}
	return c, nil
}

// handleSearchCatalog filters a catalog the way its page does.
func (s *Server) handleSearchCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := s.catalogArg(request)
	if errResult != nil {
		return errResult, nil
	}

	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	st := c.State(catalog.PolicyRetain)
	st = catalog.ReduceAll(st, c.Store,
		catalog.SetCategory{Category: request.GetString("category", "")},
		catalog.SetQuery{Query: strings.TrimSpace(request.GetString("query", ""))},
	)
	results := st.Visible(c.Store)

	if len(results) == 0 {
		return mcp.NewToolResultText("No entries match."), nil
	}

	return mcp.NewToolResultText(formatEntries(results, limit)), nil
}

// handleGetEntry returns one entry with its content.
func (s *Server) handleGetEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := s.catalogArg(request)
	if errResult != nil {
		return errResult, nil
	}
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	e, ok := c.Store.Get(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No entry %q in %s. Use search_catalog to list ids.", id, c.Name)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", e.Title)
	fmt.Fprintf(&sb, "ID: %s\nCategory: %s\n", e.ID, e.Category)
	if e.Filename != "" {
		fmt.Fprintf(&sb, "File: %s\n", e.Path())
	}
	if !e.Static() {
		fmt.Fprintf(&sb, "Status: %s\n", e.Content.Status)
		if e.Content.Available() {
			fmt.Fprintf(&sb, "Size: %s\n", e.SizeLabel())
		}
	}
	fmt.Fprintf(&sb, "\n%s\n", e.Description)

	if body, err := s.details(c, e); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode %s: %v", e.ID, err)), nil
	} else if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			sb.WriteString("\n")
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// details renders the content or structured data behind an entry.
func (s *Server) details(c *pages.Catalog, e catalog.Entry) (string, error) {
	switch c.Name {
	case pages.Analysis:
		if p, ok := s.set.Platform(e.ID); ok {
			return encode(p)
		}
	case pages.Implementation:
		if p, ok := s.set.Phase(e.ID); ok {
			return encode(p)
		}
	case pages.Architecture:
		if v, ok := s.set.View(e.ID); ok {
			return encode(v)
		}
	case pages.Downloads:
		if d, ok := s.set.Download(e.ID); ok {
			return encode(d)
		}
	}

	if def := e.Content.Workflow; def != nil {
		data, err := def.Marshal()
		return string(data), err
	}
	// Placeholder text for unavailable entries.
	return e.Content.Text, nil
}

// handleListCategories lists a catalog's categories with counts.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := s.catalogArg(request)
	if errResult != nil {
		return errResult, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Categories of %s:\n", c.Title)
	for _, cc := range catalog.CategoryCounts(c.Store.Entries()) {
		fmt.Fprintf(&sb, "- %s (%d)\n", cc.Name, cc.Count)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatEntries converts matching entries into a text listing for agents.
func formatEntries(entries []catalog.Entry, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d entr%s:\n", len(entries), plural(len(entries))))

	for i, e := range entries {
		if i == limit {
			sb.WriteString(fmt.Sprintf("\n... %d more not shown\n", len(entries)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("\n--- %s ---\n", e.ID))
		sb.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
		sb.WriteString(fmt.Sprintf("Category: %s\n", e.Category))
		if !e.Static() && !e.Content.Available() {
			sb.WriteString(fmt.Sprintf("Status: %s\n", e.Content.Status))
		}
		sb.WriteString(e.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func encode(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
