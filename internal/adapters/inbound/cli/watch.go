package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/watcher"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
)

func newWatchCmd() *cobra.Command {
	var (
		flags    auditFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the audit whenever a source file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			if !hasSourceDir(root) {
				return fmt.Errorf("no %s/ directory to watch in %s", fsd.SourceDir, root)
			}
			log := newLogger(cmd)

			opts, err := flags.options(cmd, root)
			if err != nil {
				return err
			}
			closeCache := flags.openCache(root, &opts, log)
			defer closeCache()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := application.NewAuditService(scanner.New(), parser.New(), log)
			run := func() {
				result, err := svc.Audit(ctx, opts)
				if err != nil {
					if ctx.Err() == nil {
						log.Errorf("audit failed: %v", err)
					}
					return
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditResult(result, root))
			}

			w, err := watcher.New(filepath.Join(root, fsd.SourceDir), debounce, log)
			if err != nil {
				return err
			}

			run()
			log.Infof("Watching %s for changes (Ctrl+C to stop)", filepath.Join(root, fsd.SourceDir))
			return w.Run(ctx, run)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before re-running the audit")

	return cmd
}
