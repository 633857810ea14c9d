package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/cache"
)

func newCacheCmd() *cobra.Command {
	var (
		clearCache bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the import cache",
		Long:  "Show statistics of the import cache used by audit, or clear it with --clear.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}

			if _, err := os.Stat(filepath.Join(root, cache.Dir)); os.IsNotExist(err) {
				if jsonOutput {
					return renderJSON(cmd, cache.Stats{})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No cache found. Run audit to create cache.")
				return nil
			}

			store, err := cache.Open(root)
			if err != nil {
				return err
			}
			defer store.Close()

			if clearCache {
				if err := store.Clear(); err != nil {
					return fmt.Errorf("clearing cache: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared successfully")
				return nil
			}

			stats, err := store.Stats()
			if err != nil {
				return fmt.Errorf("reading cache stats: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, stats)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache Statistics:")
			fmt.Fprintf(cmd.OutOrStdout(), "  Files:      %d\n", stats.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "  Total size: %.2f KB\n", float64(stats.SizeBytes)/1024)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&clearCache, "clear", "c", false, "Clear all cached imports")
	cmd.Flags().Bool("stats", true, "Show cache statistics")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output statistics as JSON")

	return cmd
}
