package divergence

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	repocontext "github.com/wasabi0522/repostatus/internal/context"
)

// Pair holds the number of commits only on the local branch (Ahead) and only
// on its upstream (Behind).
type Pair struct {
	Ahead  int
	Behind int
}

// AheadBehind compares the branch HEAD points at with its configured upstream.
// An unborn or detached HEAD, a branch without upstream configuration and an
// upstream ref that does not exist all yield a zero Pair.
func AheadBehind(repo *gogit.Repository, head repocontext.Head) (Pair, error) {
	if head.Unborn || head.Detached {
		return Pair{}, nil
	}

	upstream, err := Upstream(repo, head.Branch)
	if err != nil {
		return Pair{}, err
	}
	if upstream == "" {
		return Pair{}, nil
	}

	ref, err := repo.Reference(upstream, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Pair{}, nil
	}
	if err != nil {
		return Pair{}, fmt.Errorf("resolving upstream %s: %w", upstream, err)
	}

	return Count(repo, head.Hash, ref.Hash())
}

// Upstream returns the ref the given local branch tracks, or "" when the
// branch has no upstream configured.
func Upstream(repo *gogit.Repository, branch string) (plumbing.ReferenceName, error) {
	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return "", nil
	}

	// "." tracks another local branch.
	if b.Remote == "." {
		return b.Merge, nil
	}

	if remote, ok := cfg.Remotes[b.Remote]; ok {
		for _, rs := range remote.Fetch {
			if rs.Match(b.Merge) {
				return rs.Dst(b.Merge), nil
			}
		}
	}
	return plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short()), nil
}

// Count returns how many commits are reachable from local but not upstream,
// and the reverse.
func Count(repo *gogit.Repository, local, upstream plumbing.Hash) (Pair, error) {
	if local == upstream {
		return Pair{}, nil
	}

	localSet, err := reachable(repo, local)
	if err != nil {
		return Pair{}, err
	}
	upstreamSet, err := reachable(repo, upstream)
	if err != nil {
		return Pair{}, err
	}

	return Pair{
		Ahead:  difference(localSet, upstreamSet),
		Behind: difference(upstreamSet, localSet),
	}, nil
}

func reachable(repo *gogit.Repository, from plumbing.Hash) (map[plumbing.Hash]bool, error) {
	commit, err := repo.CommitObject(from)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", from, err)
	}

	seen := make(map[plumbing.Hash]bool)
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", from, err)
	}
	return seen, nil
}

func difference(a, b map[plumbing.Hash]bool) int {
	n := 0
	for h := range a {
		if !b[h] {
			n++
		}
	}
	return n
}
