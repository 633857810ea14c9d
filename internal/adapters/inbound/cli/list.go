package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/detector"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

func newListCmd() *cobra.Command {
	var (
		features   bool
		entities   bool
		widgets    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the features, entities and widgets of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}

			structure, err := application.NewStructureService(detector.New()).List(root)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, structure)
			}

			var layers []domain.Layer
			if features {
				layers = append(layers, domain.LayerFeatures)
			}
			if entities {
				layers = append(layers, domain.LayerEntities)
			}
			if widgets {
				layers = append(layers, domain.LayerWidgets)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStructure(structure, layers...))
			return nil
		},
	}

	cmd.Flags().BoolVar(&features, "features", false, "List only features")
	cmd.Flags().BoolVar(&entities, "entities", false, "List only entities")
	cmd.Flags().BoolVar(&widgets, "widgets", false, "List only widgets")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
