package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/git"
	"github.com/raphi011/stagefmt/internal/log"
	"github.com/raphi011/stagefmt/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// annotationNoConfig marks commands that must work without a loadable config.
const annotationNoConfig = "stagefmt/no-config"

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	verbose bool
	quiet   bool
	config  string
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "stagefmt",
		Short: "Compute formatter commands for staged files",
		Long: `stagefmt turns the staged files handed over by a pre-commit hook runner
into the formatter commands that should run against them.

Paths inside editor configuration directories (.vscode) are dropped. When
no path is left, nothing is printed, so the formatter never falls back to
formatting the whole working tree.

stagefmt never runs the commands itself; the hook runner executes them.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupContext(cmd, flags)
		},
		// Run is not set - shows help when no subcommand provided
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show config resolution and external commands")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (default: .stagefmt.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newCommandsCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setupContext attaches logger, printer and config to the command context.
func setupContext(cmd *cobra.Command, flags globalFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Diagnostics go to stderr, downsampled so pipes never receive ANSI codes
	l := log.New(colorprofile.NewWriter(cmd.ErrOrStderr(), os.Environ()), flags.verbose, flags.quiet)
	ctx = log.WithLogger(ctx, l)
	ctx = output.WithTerminalPrinter(ctx, cmd.OutOrStdout())

	if _, skip := cmd.Annotations[annotationNoConfig]; skip || cmd.Name() == "help" || cmd.Name() == "__complete" {
		cmd.SetContext(ctx)
		return nil
	}

	cfg, err := loadConfig(ctx, flags.config)
	if err != nil {
		return err
	}
	l.Debug("loaded config", "path", displayConfigPath(cfg), "tasks", cfg.TaskNames())

	cmd.SetContext(config.WithConfig(ctx, &cfg))
	return nil
}

// loadConfig finds and loads the config for the context's working directory.
func loadConfig(ctx context.Context, explicit string) (config.Config, error) {
	workDir := config.WorkDirFromContext(ctx)
	repoRoot := git.TopLevelOrEmpty(ctx, workDir)
	return config.Load(config.Find(explicit, repoRoot, workDir))
}

// displayConfigPath describes where cfg came from.
func displayConfigPath(cfg config.Config) string {
	if cfg.Path == "" {
		return "(built-in defaults)"
	}
	return cfg.Path
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stagefmt: failed to get working directory: %v\n", err)
		os.Exit(1)
	}
	ctx = config.WithWorkDir(ctx, workDir)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "stagefmt: %v\n", err)
		os.Exit(1)
	}
}
