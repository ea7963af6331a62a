package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wasabi0522/repostatus/internal/config"
	repocontext "github.com/wasabi0522/repostatus/internal/context"
	rsexec "github.com/wasabi0522/repostatus/internal/exec"
	"github.com/wasabi0522/repostatus/internal/git"
	"github.com/wasabi0522/repostatus/internal/info"
	"golang.org/x/term"
)

// App holds the dependency resolution functions and builds the CLI command tree.
type App struct {
	resolveDeps      func(path, configPath string) (*deps, error)
	stdoutIsTerminal func() bool
	parentPID        func() int

	verbose     bool
	fake        bool
	interactive bool
	shell       string
	configPath  string
}

// NewApp creates an App with default dependency resolvers.
func NewApp() *App {
	return &App{
		resolveDeps: defaultResolveDeps,
		stdoutIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		parentPID: os.Getppid,
	}
}

type deps struct {
	exec rsexec.Executor
	git  git.Client
	ctx  *repocontext.Context
	cfg  *config.Config
}

func defaultResolveDeps(path, configPath string) (*deps, error) {
	return resolveDepsWithExec(rsexec.NewDefaultExecutor(), path, configPath)
}

func resolveDepsWithExec(e rsexec.Executor, path, configPath string) (*deps, error) {
	ctx, err := repocontext.NewResolver().Resolve(path)
	if err != nil {
		return nil, err
	}
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &deps{exec: e, git: git.NewClient(e), ctx: ctx, cfg: cfg}, nil
}

func (a *App) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (a *App) aggregatorOpts(cfg *config.Config) []info.Option {
	opts := []info.Option{info.WithUnbornBranch(cfg.UnbornBranch)}
	if a.verbose {
		opts = append(opts, info.WithLogger(a.logger()))
	}
	return opts
}

func (d *deps) aggregator(opts ...info.Option) *info.Aggregator {
	return info.NewAggregator(d.git, opts...)
}
