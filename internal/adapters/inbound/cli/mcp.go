package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/fsdcoach/fsd-coach/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the fsd-coach MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the fsd-coach MCP server (stdio)",
		Long:  "Start the fsd-coach MCP server using stdio transport. AI coding assistants can audit the project, list its slices and validate slice names before creating them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewFSDCoachMCPServer(root, newLogger(cmd))
			return server.ServeStdio(s)
		},
	}
}
