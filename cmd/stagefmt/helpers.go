package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/stagefmt/internal/pathlist"
)

// readPaths returns the candidate paths from args or piped stdin.
func readPaths(cmd *cobra.Command, args []string, nul bool) ([]string, error) {
	in := cmd.InOrStdin()
	piped := true
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		piped = pathlist.StdinIsPiped()
	}
	return pathlist.FromArgsOrStdin(args, in, piped, nul)
}

// completeTaskNames provides completion for --task flag values.
func completeTaskNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var explicit string
	if f := cmd.Flag("config"); f != nil {
		explicit = f.Value.String()
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(ctx, explicit)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, name := range cfg.TaskNames() {
		if strings.HasPrefix(name, toComplete) {
			t := cfg.Tasks[name]
			if t.Description != "" {
				name += "\t" + t.Description
			}
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
