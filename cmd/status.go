package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/repostatus/internal/render"
	"github.com/wasabi0522/repostatus/internal/shell"
	"github.com/wasabi0522/repostatus/internal/ui"
)

func (a *App) runStatus(cmd *cobra.Command, path string) error {
	d, err := a.resolveDeps(path, a.configPath)
	if err != nil {
		return err
	}

	repoInfo, err := d.aggregator(a.aggregatorOpts(d.cfg)...).Collect(d.ctx)
	if err != nil {
		return err
	}
	if a.fake {
		repoInfo = repoInfo.Fake(d.cfg.FakeValue)
	}

	override := a.shell
	if override == "" {
		override = d.cfg.Shell
	}
	mode, err := shell.Resolve(d.exec, shell.Options{
		Override:  override,
		Plain:     a.interactive || a.stdoutIsTerminal(),
		NoColor:   ui.ColorDisabled(),
		ParentPID: a.parentPID(),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), render.Render(repoInfo, render.NewTemplates(mode, d.cfg.Symbols)))
	return err
}
