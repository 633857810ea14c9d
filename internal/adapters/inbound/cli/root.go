package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fsd-coach",
		Short:         "Your personal Feature-Sliced Design coach",
		Long:          "fsd-coach scaffolds Feature-Sliced Design projects and audits their imports against the layer rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("cwd", ".", "Project root directory")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAddCmd(domain.LayerFeatures))
	cmd.AddCommand(newAddCmd(domain.LayerEntities))
	cmd.AddCommand(newAddCmd(domain.LayerWidgets))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrAuditFailed) {
		verbose, _ := cmd.PersistentFlags().GetBool("verbose")
		reportError(cmd.ErrOrStderr(), err, verbose)
	}
	return err
}

func reportError(w io.Writer, err error, verbose bool) {
	if ce, ok := domain.IsCoachError(err); ok {
		fmt.Fprintf(w, "✖ %s\n", ce.Message)
		if verbose {
			fmt.Fprintln(w, ce.Detail())
		}
		return
	}
	fmt.Fprintf(w, "✖ %v\n", err)
}

// projectRoot returns the absolute --cwd of cmd.
func projectRoot(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		cwd = "."
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func newLogger(cmd *cobra.Command) *zap.SugaredLogger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logger.New(verbose, cmd.ErrOrStderr())
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
