package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/detector"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/naming"
)

// registerTools registers all fsd-coach MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, log *zap.SugaredLogger) {
	// 1. fsd_audit
	s.AddTool(
		mcplib.NewTool("fsd_audit",
			mcplib.WithDescription("Audits the project against the Feature-Sliced Design rules and returns the result as JSON"),
			mcplib.WithBoolean("strict",
				mcplib.Description("Fail on warnings as well as errors (defaults to lint.strict from the config)"),
			),
			mcplib.WithBoolean("cycles",
				mcplib.Description("Also report circular dependencies between slices"),
			),
		),
		handleAudit(projectPath, log),
	)

	// 2. fsd_list_slices
	s.AddTool(
		mcplib.NewTool("fsd_list_slices",
			mcplib.WithDescription("Lists the features, entities and widgets of the project"),
		),
		handleListSlices(projectPath),
	)

	// 3. fsd_validate_name
	s.AddTool(
		mcplib.NewTool("fsd_validate_name",
			mcplib.WithDescription("Checks whether a name is a valid slice name (kebab-case, at most 50 characters, not reserved)"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Proposed slice name"),
			),
			mcplib.WithString("layer",
				mcplib.Description("Slice layer: features, entities or widgets (default features)"),
			),
		),
		handleValidateName(),
	)

	// 4. fsd_plan_feature
	s.AddTool(
		mcplib.NewTool("fsd_plan_feature",
			mcplib.WithDescription("Returns the directories and files add:feature (or add:entity, add:widget) would create, without writing anything"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Slice name"),
			),
			mcplib.WithString("layer",
				mcplib.Description("Slice layer: features, entities or widgets (default features)"),
			),
			mcplib.WithString("segments",
				mcplib.Description("Comma-separated segments (default: from config)"),
			),
		),
		handlePlanFeature(projectPath, log),
	)
}

// auditOptions resolves the audit options of projectPath from its config and
// the tool arguments.
func auditOptions(projectPath string, args map[string]any) (application.AuditOptions, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return application.AuditOptions{}, err
	}
	opts := application.OptionsFromConfig(projectPath, cfg)
	if strict, ok := args["strict"].(bool); ok {
		opts.Strict = strict
	}
	if cycles, ok := args["cycles"].(bool); ok && cycles {
		opts.CheckCycles = true
	}
	return opts, nil
}

func handleAudit(projectPath string, log *zap.SugaredLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts, err := auditOptions(projectPath, request.GetArguments())
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewAuditService(scanner.New(), parser.New(), log)
		result, err := svc.Audit(ctx, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleListSlices(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		structure, err := application.NewStructureService(detector.New()).List(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(structure)
	}
}

// nameCheck is the result of fsd_validate_name.
type nameCheck struct {
	Name       string `json:"name"`
	Layer      string `json:"layer"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func handleValidateName() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		layer, err := sliceLayer(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		check := nameCheck{Name: name, Layer: string(layer), Valid: true}
		if err := naming.CheckSliceName(name, layer); err != nil {
			check.Valid = false
			check.Error = err.Error()
			if ce, ok := domain.IsCoachError(err); ok {
				check.Suggestion, _ = ce.Context["suggestion"].(string)
			}
		}
		return jsonResult(check)
	}
}

func handlePlanFeature(projectPath string, log *zap.SugaredLogger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		layer, err := sliceLayer(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		segments, _ := request.GetArguments()["segments"].(string)

		svc := application.NewScaffoldService(config.New(), writer.New(true), log)
		plan, err := svc.Plan(projectPath, layer, name, splitAndTrim(segments))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(plan)
	}
}

// sliceLayer reads the optional layer argument, defaulting to features.
func sliceLayer(request mcplib.CallToolRequest) (domain.Layer, error) {
	raw, _ := request.GetArguments()["layer"].(string)
	if raw == "" {
		return domain.LayerFeatures, nil
	}
	layer, ok := domain.ParseLayer(raw)
	if !ok {
		return "", fmt.Errorf("unknown layer %q", raw)
	}
	return layer, nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
