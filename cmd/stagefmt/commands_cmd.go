package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/log"
	"github.com/raphi011/stagefmt/internal/output"
	"github.com/raphi011/stagefmt/internal/tasks"
)

// errAmbiguousTasks is returned when several tasks would receive the same unmatched paths.
var errAmbiguousTasks = errors.New("multiple tasks configured: pass --task to pick one or --match to split paths by pattern")

func newCommandsCmd() *cobra.Command {
	var (
		taskNames  []string
		match      bool
		jsonOutput bool
		nul        bool
		copyOutput bool
	)

	cmd := &cobra.Command{
		Use:     "commands [path...]",
		Short:   "Print formatter commands for staged paths",
		Aliases: []string{"cmds"},
		GroupID: GroupCore,
		Long: `Print the formatter commands to run for the given staged paths.

Paths come from the arguments or, when none are given, from piped stdin
(one per line, or NUL-separated with -z). They are assumed to be already
matched against the task pattern by the hook runner; use --match when the
runner passes every staged file.

Paths inside excluded directories (.vscode by default) are dropped. If no
path remains, nothing is printed and the exit status is 0.

Each command is printed on its own line with shell quoting applied. Use
--json for argv lists that need no shell at all.`,
		Example: `  stagefmt commands src/a.ts package.json     # Print commands for two files
  git diff --cached --name-only -z | stagefmt commands -z --match
  stagefmt commands --json a.ts               # argv lists as JSON
  stagefmt commands -t biome --copy a.ts      # Also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			paths, err := readPaths(cmd, args, nul)
			if err != nil {
				return err
			}

			selected, err := tasks.Select(*cfg, taskNames)
			if err != nil {
				return err
			}
			if len(selected) > 1 && !match {
				return errAmbiguousTasks
			}

			results := tasks.Resolve(selected, paths, match)
			for _, r := range results {
				l.Debug("planned task", "task", r.Task.Name, "paths", len(r.Paths), "commands", len(r.Commands))
			}
			cmds := tasks.Commands(results)

			if jsonOutput {
				if cmds == nil {
					cmds = []tasks.Command{}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cmds)
			}

			if len(cmds) == 0 {
				l.Debug("no paths left after filtering, nothing to run")
				return nil
			}

			lines := make([]string, len(cmds))
			for i, c := range cmds {
				lines[i] = c.String()
				out.Println(lines[i])
			}

			if copyOutput {
				if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
					l.Warnf("failed to copy to clipboard: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&taskNames, "task", "t", nil, "Task to use (repeatable, default: all)")
	cmd.Flags().BoolVarP(&match, "match", "m", false, "Apply each task's glob pattern to the paths first")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output commands as JSON argv lists")
	cmd.Flags().BoolVarP(&nul, "null", "z", false, "Read NUL-separated paths from stdin")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Also copy the commands to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("json", "copy")
	cmd.RegisterFlagCompletionFunc("task", completeTaskNames)

	return cmd
}
