package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/showcase/internal/pages"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the showcase catalogs.
type Server struct {
	set *pages.Set
	mcp *server.MCPServer
}

// NewServer creates a new MCP server over a loaded page set.
func NewServer(set *pages.Set) *Server {
	s := &Server{set: set}

	s.mcp = server.NewMCPServer(
		"showcase",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchCatalogTool, s.handleSearchCatalog)
	s.mcp.AddTool(getEntryTool, s.handleGetEntry)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
