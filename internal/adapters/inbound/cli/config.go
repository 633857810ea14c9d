package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage FSD Coach configuration",
		Long:  "Create, inspect and edit the project's .fsdcoach.yaml. Keys are dotted paths such as rootDir.features or lint.strict.",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigResetCmd())
	cmd.AddCommand(newConfigDeleteCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			loader := config.New()

			if existing, ok := loader.Find(root); ok && !force {
				return domain.NewCoachError(domain.ErrFileExists,
					"Config file already exists. Use --force to overwrite.",
					map[string]any{"path": existing})
			}

			path, err := loader.Save(root, domain.DefaultConfig())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), `Run "fsd-coach config show" to see the current configuration.`)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		defaults   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			loader := config.New()

			cfg := domain.DefaultConfig()
			if !defaults {
				if cfg, err = loader.Load(root); err != nil {
					return err
				}
			}

			if jsonOutput {
				return renderJSON(cmd, cfg)
			}

			if path, ok := loader.Find(root); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "# Config file: %s\n", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# Using default configuration (no config file found)")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&defaults, "defaults", "d", false, "Show the default configuration")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.New().Load(root)
			if err != nil {
				return err
			}

			value, ok := config.Get(cfg, args[0])
			if !ok {
				return domain.NewCoachError(domain.ErrInvalidConfig,
					fmt.Sprintf("Config key %q not found", args[0]),
					map[string]any{"key": args[0]})
			}
			data, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encoding value: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], data)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a configuration value. The value is parsed as YAML, so true, 42 and ["ui","model"] keep their types; anything else is a string.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			loader := config.New()

			if _, ok := loader.Find(root); !ok {
				return domain.NewCoachError(domain.ErrConfigNotFound,
					`No config file found. Run "fsd-coach config init" first.`,
					map[string]any{"projectPath": root})
			}
			cfg, err := loader.Load(root)
			if err != nil {
				return err
			}

			updated, err := config.Set(cfg, args[0], args[1])
			if err != nil {
				return err
			}
			if _, err := loader.Save(root, updated); err != nil {
				return err
			}

			value, _ := config.Get(updated, args[0])
			data, _ := json.Marshal(value)
			fmt.Fprintf(cmd.OutOrStdout(), "Config updated: %s = %s\n", args[0], data)
			return nil
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			loader := config.New()

			if _, ok := loader.Find(root); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No config file found to reset")
				return nil
			}
			if !yes {
				fmt.Fprintln(cmd.OutOrStdout(), "This will reset your configuration to defaults. Use --yes to confirm.")
				return nil
			}

			if _, err := loader.Delete(root); err != nil {
				return err
			}
			path, err := loader.Save(root, domain.DefaultConfig())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config reset to defaults: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newConfigDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			loader := config.New()

			if _, ok := loader.Find(root); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No config file found to delete")
				return nil
			}
			if !yes {
				fmt.Fprintln(cmd.OutOrStdout(), "This will delete your configuration file. Use --yes to confirm.")
				return nil
			}

			path, err := loader.Delete(root)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file deleted: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
