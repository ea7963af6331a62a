package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	repocontext "github.com/wasabi0522/repostatus/internal/context"
)

var version = "dev"

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitNotRepository = 2
)

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repostatus [path]",
		Short: "Print a compact git status line for shell prompts",
		Long: `Print a compact git status line for shell prompts.

The line shows any in-progress operation (R rebase, M merge, C cherry-pick,
B bisect, V revert), a superproject marker, the branch, ahead/behind counts,
staged, modified and deleted files, stashes, untracked and conflicted files.
Exits with status 2 when path is not inside a git repository.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return a.runStatus(cmd, path)
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("repostatus version %s\n", version))

	flags := rootCmd.Flags()
	flags.BoolVarP(&a.fake, "fake", "f", false, "Show fake status with every field populated")
	flags.BoolVarP(&a.interactive, "interactive", "i", false, "Interactive mode (don't print shell escapes)")
	flags.StringVar(&a.shell, "shell", "", "Shell to format escapes for (zsh, bash); detected from the parent process by default")
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	_ = rootCmd.RegisterFlagCompletionFunc("shell", completeShellModes)
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, repocontext.ErrNotRepository):
		return exitNotRepository
	default:
		return exitFailure
	}
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	err := cmd.Execute()
	if err != nil && app.verbose {
		fmt.Fprintln(os.Stderr, "repostatus:", err)
	}
	os.Exit(exitCode(err))
}
