package git

import (
	"strings"

	"github.com/wasabi0522/repostatus/internal/exec"
)

var _ Client = (*client)(nil)

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

func (c *client) StashList(dir string) (string, error) {
	return c.exec.Output(dir, "git", "stash", "list")
}

func (c *client) SuperprojectWorkingTree(dir string) (string, error) {
	out, err := c.exec.Output(dir, "git", "rev-parse", "--show-superproject-working-tree")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) DescribeHead(dir string) (string, error) {
	out, err := c.exec.Output(dir, "git", "describe", "--all", "--contains", "--always", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
