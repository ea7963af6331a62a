package context

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrNotRepository is returned when a path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Context holds resolved repository information.
type Context struct {
	// WorkDir is the root of the working tree, empty for a bare repository.
	WorkDir string
	// GitDir is the repository control directory (".git" for a working tree).
	GitDir string
	Bare   bool
	Repo   *gogit.Repository
}

// Head describes what HEAD points at.
type Head struct {
	// Branch is the short branch name HEAD refers to, empty when detached.
	Branch   string
	Hash     plumbing.Hash
	Detached bool
	// Unborn is true when HEAD names a branch that has no commits yet.
	Unborn bool
}

// Resolver locates the repository enclosing a path.
type Resolver struct {
	open func(path string) (*gogit.Repository, error)
}

// NewResolver creates a Resolver backed by go-git.
func NewResolver() *Resolver {
	return &Resolver{open: openRepository}
}

// openRepository walks up from path to the first directory that either
// contains a .git entry or is itself a repository control directory.
func openRepository(path string) (*gogit.Repository, error) {
	for dir := path; ; {
		fs := osfs.New(dir)
		if _, err := fs.Lstat(gogit.GitDirName); err == nil || isControlDir(fs) {
			return gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
				EnableDotGitCommonDir: true,
			})
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, gogit.ErrRepositoryNotExists
		}
		dir = parent
	}
}

// isControlDir reports whether fs looks like a bare repository: a HEAD file
// next to objects and refs directories.
func isControlDir(fs billy.Filesystem) bool {
	head, err := fs.Stat("HEAD")
	if err != nil || head.IsDir() {
		return false
	}
	for _, name := range []string{"objects", "refs"} {
		fi, err := fs.Stat(name)
		if err != nil || !fi.IsDir() {
			return false
		}
	}
	return true
}

// Resolve finds the nearest repository enclosing path.
// It returns ErrNotRepository when there is none.
func (r *Resolver) Resolve(path string) (*Context, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	repo, err := r.open(abs)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, abs)
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", abs, err)
	}

	ctx := &Context{Repo: repo}
	if st, ok := repo.Storer.(*filesystem.Storage); ok {
		ctx.GitDir = st.Filesystem().Root()
	}

	wt, err := repo.Worktree()
	switch {
	case errors.Is(err, gogit.ErrIsBareRepository):
		ctx.Bare = true
	case err != nil:
		return nil, fmt.Errorf("opening worktree: %w", err)
	default:
		ctx.WorkDir = wt.Filesystem.Root()
	}

	return ctx, nil
}

// Dir returns the directory external git commands should run in.
func (c *Context) Dir() string {
	if c.WorkDir != "" {
		return c.WorkDir
	}
	return c.GitDir
}

// ControlFS returns a filesystem rooted at the control directory.
func (c *Context) ControlFS() billy.Filesystem {
	return osfs.New(c.GitDir)
}

// Head resolves HEAD without requiring it to point at a commit.
func (c *Context) Head() (Head, error) {
	ref, err := c.Repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return Head{}, fmt.Errorf("reading HEAD: %w", err)
	}

	if ref.Type() == plumbing.HashReference {
		return Head{Hash: ref.Hash(), Detached: true}, nil
	}

	head := Head{Branch: ref.Target().Short()}
	resolved, err := c.Repo.Reference(ref.Target(), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		head.Unborn = true
		return head, nil
	}
	if err != nil {
		return Head{}, fmt.Errorf("resolving %s: %w", ref.Target(), err)
	}
	head.Hash = resolved.Hash()
	return head, nil
}
