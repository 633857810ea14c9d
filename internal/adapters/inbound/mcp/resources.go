package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
	"github.com/fsdcoach/fsd-coach/internal/application"
)

const auditURI = "fsd://audit"

// registerResources registers all fsd-coach MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, log *zap.SugaredLogger) {
	s.AddResource(
		mcplib.NewResource(
			auditURI,
			"FSD Audit",
			mcplib.WithResourceDescription("Current Feature-Sliced Design audit of the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleAuditResource(projectPath, log),
	)
}

func handleAuditResource(projectPath string, log *zap.SugaredLogger) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		opts, err := auditOptions(projectPath, nil)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		result, err := application.NewAuditService(scanner.New(), parser.New(), log).Audit(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling audit: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      auditURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
