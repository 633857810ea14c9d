package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewFSDCoachMCPServer creates a new MCP server with all fsd-coach tools and
// resources registered. The projectPath is the root directory of the project
// to audit.
func NewFSDCoachMCPServer(projectPath string, log *zap.SugaredLogger) *server.MCPServer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	s := server.NewMCPServer(
		"fsd-coach",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, log)
	registerResources(s, projectPath, log)

	return s
}
