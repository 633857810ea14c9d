package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		template string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new project structure guided by FSD Coach",
		Long:  "Create src/ with the seven FSD layers, an FSD primer (README.fsd.md) and a .fsdcoach.yaml configuration file. Existing files are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}

			svc := application.NewScaffoldService(config.New(), writer.New(dryRun), newLogger(cmd))
			result, err := svc.InitProject(root, domain.Template(template))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScaffold(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", string(domain.TemplateNextApp), "Project template (next-app, fastapi, fullstack)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate project initialization without writing files")

	return cmd
}
