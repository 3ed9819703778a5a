package main

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "completion <shell>",
		Short:       "Generate completion script",
		GroupID:     GroupConfig,
		Long:        `Generate shell completion script.`,
		ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
		Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations: map[string]string{annotationNoConfig: "true"},
		Example: `  # Fish
  stagefmt completion fish > ~/.config/fish/completions/stagefmt.fish

  # Bash
  stagefmt completion bash > ~/.local/share/bash-completion/completions/stagefmt

  # Zsh
  stagefmt completion zsh > ~/.zfunc/_stagefmt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
