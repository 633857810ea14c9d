package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/cache"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/gitinfo"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/history"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/parser"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/scanner"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/tui"
	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/application"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
)

// ErrAuditFailed is returned when an audit finds violations that fail the run.
var ErrAuditFailed = errors.New("audit failed: FSD violations found")

// auditFlags are shared by the commands that run an audit.
type auditFlags struct {
	strict  bool
	cycles  bool
	noCache bool
	workers int
}

func (f *auditFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.strict, "strict", "s", false, "Fail on warnings as well as errors")
	cmd.Flags().BoolVar(&f.cycles, "cycles", false, "Also report circular dependencies between slices")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Do not read or write the import cache")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Files read in parallel (default: number of CPUs)")
}

// options resolves the audit options of root from its config, then the flags.
func (f *auditFlags) options(cmd *cobra.Command, root string) (application.AuditOptions, error) {
	cfg, err := config.New().Load(root)
	if err != nil {
		return application.AuditOptions{}, fmt.Errorf("loading config: %w", err)
	}

	opts := application.OptionsFromConfig(root, cfg)
	if cmd.Flags().Changed("strict") {
		opts.Strict = f.strict
	}
	if f.cycles {
		opts.CheckCycles = true
	}
	opts.Workers = f.workers
	return opts, nil
}

// openCache opens the import cache of root. The returned func closes it.
func (f *auditFlags) openCache(root string, opts *application.AuditOptions, log *zap.SugaredLogger) func() {
	if f.noCache || !hasSourceDir(root) {
		return func() {}
	}
	store, err := cache.Open(root)
	if err != nil {
		log.Debugf("import cache disabled: %v", err)
		return func() {}
	}
	opts.Cache = store
	return func() { _ = store.Close() }
}

func hasSourceDir(root string) bool {
	info, err := os.Stat(filepath.Join(root, fsd.SourceDir))
	return err == nil && info.IsDir()
}

// auditReport is the JSON output of audit: the result plus any fixes applied.
type auditReport struct {
	*domain.AuditResult
	Fix *domain.FixPlan `json:"fix,omitempty"`
}

func newAuditCmd() *cobra.Command {
	var (
		flags      auditFlags
		fix        bool
		dryRun     bool
		jsonOutput bool
		noHistory  bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the project against Feature-Sliced Design rules",
		Long:  "Scan src/ for imports that break the FSD layer hierarchy, cross feature boundaries or bypass a slice's public API. Exits 1 when the audit fails.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd)
			defer func() { _ = log.Sync() }()

			opts, err := flags.options(cmd, root)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			closeCache := flags.openCache(root, &opts, log)
			defer closeCache()

			svc := application.NewAuditService(scanner.New(), parser.New(), log)

			var plan *domain.FixPlan
			if fix {
				plan, err = application.NewFixService(svc, writer.New(false), log).Fix(ctx, opts, dryRun)
				if err != nil {
					return fmt.Errorf("fix failed: %w", err)
				}
			}

			result, err := svc.Audit(ctx, opts)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("audit timed out after %s", timeout)
				}
				return fmt.Errorf("audit failed: %w", err)
			}

			if !noHistory && hasSourceDir(root) {
				recordHistory(history.New(), gitinfo.New(), root, opts.Strict, result, log)
			}

			if jsonOutput {
				if err := renderJSON(cmd, auditReport{AuditResult: result, Fix: plan}); err != nil {
					return err
				}
			} else {
				if plan != nil {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixPlan(plan, root))
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditResult(result, root))
			}

			if !result.Passed {
				return ErrAuditFailed
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&fix, "fix", false, "Create missing public API files before reporting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "With --fix, list the fixes without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the audit history")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the audit after this duration (0 means no limit)")

	return cmd
}

// recordHistory appends the run to the project's audit history. Failures are
// logged and otherwise ignored.
func recordHistory(store domain.AuditHistory, git domain.GitInfo, root string, strict bool, result *domain.AuditResult, log *zap.SugaredLogger) {
	entry := domain.AuditEntry{
		ID:         uuid.NewString(),
		Timestamp:  result.ScannedAt.Format(time.RFC3339),
		Passed:     result.Passed,
		Strict:     strict,
		TotalFiles: result.TotalFiles,
		Summary:    result.Summary,
	}
	if git.IsGitRepo(root) {
		if hash, err := git.CommitHash(root); err == nil {
			entry.CommitHash = hash
		}
	}
	if err := store.Save(root, entry); err != nil {
		log.Debugf("saving audit history: %v", err)
	}
}
