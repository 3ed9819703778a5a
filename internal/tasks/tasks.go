package tasks

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/filter"
)

// Command is one formatter invocation as an argv token list.
type Command struct {
	Task string   `json:"task"`
	Args []string `json:"args"`
}

// safeToken matches words that need no quoting in a POSIX shell.
var safeToken = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// shellQuote escapes a string for safe use in shell commands.
// Plain words are returned unchanged; anything else is wrapped in single
// quotes with embedded single quotes escaped, e.g. "it's" becomes 'it'\''s'.
func shellQuote(s string) string {
	if safeToken.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// String renders the command as a single shell line with each token quoted as needed.
func (c Command) String() string {
	quoted := make([]string, len(c.Args))
	for i, a := range c.Args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

// ComputeCommands returns the commands for the built-in Biome task:
// paths inside .vscode are dropped and, if any remain, a format-fix and a
// check-write command are returned in that order. No paths left means no commands.
func ComputeCommands(paths []string) []Command {
	return Plan(config.DefaultTask(), paths)
}

// Plan filters paths through the task's exclusions and expands every command
// template over the survivors. It returns nil when nothing survives, so a
// formatter is never started without explicit targets.
func Plan(task config.Task, paths []string) []Command {
	files := filter.Exclude(paths, task.Exclude...)
	if len(files) == 0 {
		return nil
	}

	cmds := make([]Command, 0, len(task.Commands))
	for _, tmpl := range task.Commands {
		cmds = append(cmds, Command{Task: task.Name, Args: expandTemplate(tmpl, files)})
	}
	return cmds
}

// expandTemplate replaces every {files} token with files, or appends files
// when the template has no such token. The template is never modified.
func expandTemplate(tmpl, files []string) []string {
	if !slices.Contains(tmpl, config.FilesPlaceholder) {
		args := make([]string, 0, len(tmpl)+len(files))
		args = append(args, tmpl...)
		return append(args, files...)
	}

	var args []string
	for _, tok := range tmpl {
		if tok == config.FilesPlaceholder {
			args = append(args, files...)
			continue
		}
		args = append(args, tok)
	}
	return args
}

// Match reports whether path matches the task's glob pattern.
func Match(task config.Task, path string) bool {
	ok, err := doublestar.Match(task.Pattern, filepath.ToSlash(path))
	return err == nil && ok
}

// MatchAll returns the paths matching the task's pattern, keeping order.
func MatchAll(task config.Task, paths []string) []string {
	var matched []string
	for _, p := range paths {
		if Match(task, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Result is the outcome of planning one task.
type Result struct {
	Task     config.Task
	Paths    []string  // paths left after matching and exclusion
	Commands []Command // empty when Paths is empty
}

// Resolve plans every task over paths. With match set each task first keeps
// only the paths matching its pattern; otherwise paths are assumed to be
// pre-matched by the hook runner.
func Resolve(tasks []config.Task, paths []string, match bool) []Result {
	results := make([]Result, 0, len(tasks))
	for _, t := range tasks {
		candidates := paths
		if match {
			candidates = MatchAll(t, paths)
		}
		results = append(results, Result{
			Task:     t,
			Paths:    filter.Exclude(candidates, t.Exclude...),
			Commands: Plan(t, candidates),
		})
	}
	return results
}

// Commands flattens the commands of all results in order.
func Commands(results []Result) []Command {
	var cmds []Command
	for _, r := range results {
		cmds = append(cmds, r.Commands...)
	}
	return cmds
}
