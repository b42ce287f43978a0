package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/showcase/internal/pages"
)

var catalogNames = []string{
	pages.Documentation,
	pages.Workflows,
	pages.Architecture,
	pages.Implementation,
	pages.Analysis,
	pages.Downloads,
}

// searchCatalogTool defines the search_catalog MCP tool.
var searchCatalogTool = mcp.NewTool("search_catalog",
	mcp.WithDescription("Search one showcase catalog by free text and category. Matches titles, descriptions and loaded document text, case-insensitively."),
	mcp.WithString("catalog",
		mcp.Required(),
		mcp.Description("Catalog to search"),
		mcp.Enum(catalogNames...),
	),
	mcp.WithString("query",
		mcp.Description("Substring to look for; empty matches everything"),
	),
	mcp.WithString("category",
		mcp.Description("Category to restrict to (default All)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

// getEntryTool defines the get_entry MCP tool.
var getEntryTool = mcp.NewTool("get_entry",
	mcp.WithDescription("Get one catalog entry with its content: markdown text for documents, JSON for workflows, structured details for platforms, phases and architecture views."),
	mcp.WithString("catalog",
		mcp.Required(),
		mcp.Description("Catalog holding the entry"),
		mcp.Enum(catalogNames...),
	),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id, as returned by search_catalog"),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List the categories of a catalog with entry counts. \"All\" comes first."),
	mcp.WithString("catalog",
		mcp.Required(),
		mcp.Description("Catalog to list"),
		mcp.Enum(catalogNames...),
	),
)
