package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/ziadkadry99/showcase/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing the
showcase catalogs to AI agents: search_catalog, get_entry and
list_categories. Content is loaded once at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validConfig(); err != nil {
			return err
		}

		set, err := buildSet(context.Background(), newLoader(cfg, logger), nil)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("showcase MCP server started on stdio",
			zap.Int("documents", set.Docs.Store.Len()-len(set.Docs.Store.Unavailable())),
			zap.Int("workflows", set.Workflows.Store.Len()-len(set.Workflows.Store.Unavailable())),
		)

		return mcpserver.NewServer(set).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
