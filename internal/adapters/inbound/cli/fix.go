package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/application"
)

func newFixCmd() *cobra.Command {
	var (
		flags      auditFlags
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Apply safe fixes for audit violations",
		Long:  "Audit the project and create an index.ts public API for every slice missing one. Existing files are never modified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd)

			opts, err := flags.options(cmd, root)
			if err != nil {
				return err
			}
			closeCache := flags.openCache(root, &opts, log)
			defer closeCache()

			audit := application.NewAuditService(scanner.New(), parser.New(), log)
			plan, err := application.NewFixService(audit, writer.New(false), log).Fix(cmd.Context(), opts, dryRun)
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, plan)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixPlan(plan, root))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the fixes without applying them")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the fix plan as JSON")

	return cmd
}
