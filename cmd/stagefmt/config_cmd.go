package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/git"
	"github.com/raphi011/stagefmt/internal/log"
	"github.com/raphi011/stagefmt/internal/output"
	"github.com/raphi011/stagefmt/internal/ui/static"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage stagefmt configuration.

Config file: .stagefmt.toml (current directory or repository root),
overridable with --config or STAGEFMT_CONFIG.`,
		Example: `  stagefmt config init     # Create .stagefmt.toml at the repo root
  stagefmt config show     # Show configured tasks
  stagefmt config path     # Show which config file is used`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create .stagefmt.toml with the default Biome task.

The file is written to the repository root, or to the current directory
outside a repository.`,
		Example: `  stagefmt config init      # Create config
  stagefmt config init -f   # Overwrite existing config
  stagefmt config init -s   # Print config to stdout`,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultTemplate())
				return nil
			}

			dir := config.WorkDirFromContext(ctx)
			if root := git.TopLevelOrEmpty(ctx, dir); root != "" {
				dir = root
			}

			path, err := config.Init(dir, force)
			if errors.Is(err, config.ErrExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		tomlOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  stagefmt config show          # Table of tasks
  stagefmt config show --json   # Output as JSON
  stagefmt config show --toml   # Output as TOML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			switch {
			case jsonOutput:
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg.OrderedTasks())
			case tomlOutput:
				data, err := config.Marshal(*cfg)
				if err != nil {
					return err
				}
				out.Print(string(data))
				return nil
			}

			l.Printf("Config: %s\n\n", displayConfigPath(*cfg))
			out.Print(static.RenderTaskTable(*cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&tomlOutput, "toml", false, "Output as TOML")
	cmd.MarkFlagsMutuallyExclusive("json", "toml")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			output.FromContext(ctx).Println(displayConfigPath(*config.FromContext(ctx)))
			return nil
		},
	}
}
