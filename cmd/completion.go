package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/repostatus/internal/render"
)

// completionShells lists the shells completion scripts can be generated for.
var completionShells = []string{"bash", "zsh", "fish"}

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	generators := map[string]func(io.Writer) error{
		"bash": rootCmd.GenBashCompletion,
		"zsh":  rootCmd.GenZshCompletion,
		"fish": func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	}
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for repostatus.

  zsh:  repostatus completion zsh > "${fpath[1]}/_repostatus"
  bash: source <(repostatus completion bash)
  fish: repostatus completion fish > ~/.config/fish/completions/repostatus.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: completionShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
			return gen(cmd.OutOrStdout())
		},
	}
}

// completeShellModes completes the --shell flag with the shells that get
// prompt escapes.
func completeShellModes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := []string{string(render.ModeZsh), string(render.ModeBash)}
	return slices.DeleteFunc(modes, func(m string) bool {
		return !strings.HasPrefix(m, toComplete)
	}), cobra.ShellCompDirectiveNoFileComp
}
