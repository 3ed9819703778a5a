package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/log"
	"github.com/raphi011/stagefmt/internal/output"
	"github.com/raphi011/stagefmt/internal/tasks"
)

func newFilterCmd() *cobra.Command {
	var (
		taskName string
		match    bool
		nul      bool
	)

	cmd := &cobra.Command{
		Use:     "filter [path...]",
		Short:   "Print the paths a task would format",
		GroupID: GroupCore,
		Args:    cobra.ArbitraryArgs,
		Long: `Print the staged paths that survive a task's exclusions.

Useful for hook runners that build their own command lines. Paths are
read like for "stagefmt commands". With -z, input and output are
NUL-separated.`,
		Example: `  stagefmt filter a.ts .vscode/settings.json   # Prints a.ts
  git diff --cached --name-only -z | stagefmt filter -z --match | xargs -0 npx biome check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			paths, err := readPaths(cmd, args, nul)
			if err != nil {
				return err
			}

			var names []string
			if taskName != "" {
				names = []string{taskName}
			}
			selected, err := tasks.Select(*cfg, names)
			if err != nil {
				return err
			}
			if len(selected) != 1 {
				return fmt.Errorf("filter needs a single task, pass --task (available: %s)", config.FormatOptions(cfg.TaskNames()))
			}

			result := tasks.Resolve(selected, paths, match)[0]
			l.Debug("filtered paths", "task", result.Task.Name, "in", len(paths), "out", len(result.Paths))

			for _, p := range result.Paths {
				if nul {
					out.Printf("%s\x00", p)
				} else {
					out.Println(p)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskName, "task", "t", "", "Task to use (required when several are configured)")
	cmd.Flags().BoolVarP(&match, "match", "m", false, "Apply the task's glob pattern to the paths first")
	cmd.Flags().BoolVarP(&nul, "null", "z", false, "Read and write NUL-separated paths")
	cmd.RegisterFlagCompletionFunc("task", completeTaskNames)

	return cmd
}
