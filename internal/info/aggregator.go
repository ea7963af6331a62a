package info

import (
	"fmt"

	repocontext "github.com/wasabi0522/repostatus/internal/context"
	"github.com/wasabi0522/repostatus/internal/divergence"
	"github.com/wasabi0522/repostatus/internal/git"
	"github.com/wasabi0522/repostatus/internal/stash"
	"github.com/wasabi0522/repostatus/internal/state"
	"github.com/wasabi0522/repostatus/internal/status"
)

// DefaultUnbornBranch is shown for a repository without commits.
const DefaultUnbornBranch = "master"

// Logger receives debug output about each collected value.
type Logger interface {
	Debug(msg string, args ...any)
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger for debug output.
func WithLogger(l Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithUnbornBranch sets the branch name shown for a repository without commits.
func WithUnbornBranch(name string) Option {
	return func(a *Aggregator) { a.unbornBranch = name }
}

// Aggregator assembles a RepoInfo from the individual detectors.
type Aggregator struct {
	git          git.Client
	unbornBranch string
	logger       Logger
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// NewAggregator creates an Aggregator running collaborator commands through g.
func NewAggregator(g git.Client, opts ...Option) *Aggregator {
	a := &Aggregator{
		git:          g,
		unbornBranch: DefaultUnbornBranch,
		logger:       nopLogger{},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Collect builds the RepoInfo for the repository described by ctx.
// The first detector error aborts collection.
func (a *Aggregator) Collect(ctx *repocontext.Context) (RepoInfo, error) {
	head, err := ctx.Head()
	if err != nil {
		return RepoInfo{}, err
	}
	a.logger.Debug("resolved HEAD", "branch", head.Branch, "detached", head.Detached, "unborn", head.Unborn)

	pair, err := divergence.AheadBehind(ctx.Repo, head)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("computing ahead/behind: %w", err)
	}
	a.logger.Debug("divergence", "ahead", pair.Ahead, "behind", pair.Behind)

	counts, err := status.Collect(ctx.Repo)
	if err != nil {
		return RepoInfo{}, err
	}
	a.logger.Debug("status counts", "staged", counts.Staged(), "files", counts)

	repoState, err := state.Detect(ctx.ControlFS())
	if err != nil {
		return RepoInfo{}, err
	}
	a.logger.Debug("repository state", "state", repoState)

	parent, err := a.parent(ctx)
	if err != nil {
		return RepoInfo{}, err
	}

	branch, err := a.branch(ctx, head)
	if err != nil {
		return RepoInfo{}, err
	}

	stashes, err := a.stashes(ctx, head)
	if err != nil {
		return RepoInfo{}, err
	}
	a.logger.Debug("stashes", "keys", stashes.Total(), "autostash", stashes.Autostash())

	return RepoInfo{
		State:      repoState,
		Parent:     parent,
		Branch:     branch,
		Ahead:      pair.Ahead,
		Behind:     pair.Behind,
		Staged:     counts.Staged(),
		Modified:   counts[status.WorktreeModified] + counts[status.WorktreeTypeChange],
		Deleted:    counts[status.WorktreeDeleted],
		Stashed:    stashes.Render(head.Branch),
		Untracked:  counts[status.WorktreeNew],
		Conflicted: counts[status.Conflicted],
	}, nil
}

// parent returns the superproject working tree. A bare repository cannot be
// a checked-out submodule, so git is not consulted for one.
func (a *Aggregator) parent(ctx *repocontext.Context) (string, error) {
	if ctx.Bare {
		return "", nil
	}
	parent, err := a.git.SuperprojectWorkingTree(ctx.Dir())
	if err != nil {
		return "", fmt.Errorf("resolving superproject: %w", err)
	}
	return parent, nil
}

func (a *Aggregator) branch(ctx *repocontext.Context, head repocontext.Head) (string, error) {
	switch {
	case head.Detached:
		desc, err := a.git.DescribeHead(ctx.Dir())
		if err != nil {
			return "", fmt.Errorf("describing HEAD: %w", err)
		}
		return desc, nil
	case head.Unborn:
		return a.unbornBranch, nil
	default:
		return head.Branch, nil
	}
}

func (a *Aggregator) stashes(ctx *repocontext.Context, head repocontext.Head) (stash.Counter, error) {
	if ctx.Bare {
		return stash.Counter{}, nil
	}
	return stash.List(a.git, ctx.Dir(), head.Unborn)
}
