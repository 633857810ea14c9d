package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

var addExamples = map[domain.Layer]string{
	domain.LayerFeatures: "auth, campaigns, profile",
	domain.LayerEntities: "user, session, campaign",
	domain.LayerWidgets:  "header, sidebar, user-card",
}

// newAddCmd builds add:feature, add:entity or add:widget.
func newAddCmd(layer domain.Layer) *cobra.Command {
	var (
		segments   string
		dryRun     bool
		jsonOutput bool
	)

	kind := strings.TrimSuffix(string(layer), "s")
	if layer == domain.LayerEntities {
		kind = "entity"
	}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("add:%s <name>", kind),
		Short: fmt.Sprintf("Create a new %s slice following FSD conventions", kind),
		Long: fmt.Sprintf("Create src/%s/<name> with a README of guiding questions, an index.ts public API "+
			"and one folder per segment. Names are kebab-case (e.g. %s).", layer, addExamples[layer]),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}

			svc := application.NewScaffoldService(config.New(), writer.New(dryRun), newLogger(cmd))
			add := map[domain.Layer]func(string, string, []string) (domain.ScaffoldResult, error){
				domain.LayerFeatures: svc.AddFeature,
				domain.LayerEntities: svc.AddEntity,
				domain.LayerWidgets:  svc.AddWidget,
			}[layer]

			result, err := add(root, args[0], splitSegments(segments))
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScaffold(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&segments, "segments", "s", "", "Comma-separated segments (default: from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, fmt.Sprintf("Simulate %s creation without writing files", kind))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

func splitSegments(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
