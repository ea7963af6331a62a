package git

//go:generate moq -out git_mock.go . Client

// Client abstracts the git commands whose output has no go-git equivalent.
// Every method runs inside the given working directory.
type Client interface {
	// StashList returns the raw output of `git stash list`.
	StashList(dir string) (string, error)
	// SuperprojectWorkingTree returns the root of the superproject embedding
	// dir as a submodule, or "" when there is none.
	SuperprojectWorkingTree(dir string) (string, error)
	// DescribeHead returns a human readable name for a detached HEAD, such as
	// "tags/v1.0", "main~2" or an abbreviated commit id.
	DescribeHead(dir string) (string, error)
}
