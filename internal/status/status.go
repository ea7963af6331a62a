package status

import (
	"errors"
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
)

// Counts maps every known flag to the number of files carrying it.
// Flags that no file carries are present with a zero count.
type Counts map[Flag]int

// NewCounts returns Counts with every known flag set to zero.
func NewCounts() Counts {
	c := make(Counts, len(flagTable))
	for _, f := range flagTable {
		c[f] = 0
	}
	return c
}

// Staged returns the number of index changes across all index flags.
func (c Counts) Staged() int {
	total := 0
	for f, n := range c {
		if f.IsIndex() {
			total += n
		}
	}
	return total
}

// Aggregate decomposes every mask into its flags and totals them.
// A mask with several bits set counts once towards each of them.
func Aggregate(masks []Flag) Counts {
	counts := NewCounts()
	for _, mask := range masks {
		for _, f := range mask.Split() {
			counts[f]++
		}
	}
	return counts
}

// Collect reads the working tree status of repo and aggregates it.
// A bare repository has no working tree and yields all-zero counts.
func Collect(repo *gogit.Repository) (Counts, error) {
	wt, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return NewCounts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	excludes, err := Excludes(repo)
	if err != nil {
		return nil, err
	}
	wt.Excludes = append(wt.Excludes, excludes...)

	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	conflicted, err := Unmerged(repo)
	if err != nil {
		return nil, err
	}
	return Aggregate(Masks(CollapseNested(wt.Filesystem, st), conflicted)), nil
}

// Unmerged returns the paths with conflict stages in the index. Entries at
// stage 0 are merged; stages 1 to 3 are the base, ours and theirs versions.
func Unmerged(repo *gogit.Repository) (map[string]bool, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	paths := make(map[string]bool)
	for _, e := range idx.Entries {
		if e.Stage >= index.AncestorMode {
			paths[e.Name] = true
		}
	}
	return paths, nil
}

// CollapseNested replaces the untracked files of a nested repository with a
// single untracked entry for its directory, named with a trailing slash.
func CollapseNested(fs billy.Filesystem, st gogit.Status) gogit.Status {
	repos := make(map[string]bool)
	isRepo := func(dir string) bool {
		found, seen := repos[dir]
		if !seen {
			_, err := fs.Lstat(path.Join(dir, gogit.GitDirName))
			found = err == nil
			repos[dir] = found
		}
		return found
	}
	// The outermost repository wins, as with git.
	nestedRoot := func(file string) string {
		root := ""
		for dir := path.Dir(file); dir != "."; dir = path.Dir(dir) {
			if isRepo(dir) {
				root = dir
			}
		}
		return root
	}

	out := make(gogit.Status, len(st))
	for file, s := range st {
		if s.Worktree == gogit.Untracked {
			if root := nestedRoot(file); root != "" {
				out[root+"/"] = &gogit.FileStatus{Staging: gogit.Untracked, Worktree: gogit.Untracked}
				continue
			}
		}
		out[file] = s
	}
	return out
}

// Masks converts a go-git status into one bitmask per file. Paths in
// conflicted are reported as Conflicted whatever their status codes say.
func Masks(st gogit.Status, conflicted map[string]bool) []Flag {
	masks := make([]Flag, 0, len(st)+len(conflicted))
	for path, fs := range st {
		if conflicted[path] {
			continue
		}
		if mask := FromCodes(fs.Staging, fs.Worktree); mask != Current {
			masks = append(masks, mask)
		}
	}
	for range conflicted {
		masks = append(masks, Conflicted)
	}
	return masks
}

// FromCodes builds the bitmask for a file from its staging and worktree codes.
func FromCodes(staging, worktree gogit.StatusCode) Flag {
	if staging == gogit.UpdatedButUnmerged || worktree == gogit.UpdatedButUnmerged {
		return Conflicted
	}

	var mask Flag
	switch staging {
	case gogit.Added, gogit.Copied:
		mask |= IndexNew
	case gogit.Modified:
		mask |= IndexModified
	case gogit.Deleted:
		mask |= IndexDeleted
	case gogit.Renamed:
		mask |= IndexRenamed
	}
	switch worktree {
	case gogit.Untracked:
		mask |= WorktreeNew
	case gogit.Modified:
		mask |= WorktreeModified
	case gogit.Deleted:
		mask |= WorktreeDeleted
	case gogit.Renamed:
		mask |= WorktreeRenamed
	}
	return mask
}
