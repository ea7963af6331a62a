package stash

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wasabi0522/repostatus/internal/git"
)

// AutostashKey is the Counter key for stashes created by --autostash. The
// leading dash keeps it from colliding with a branch name.
const AutostashKey = "-autostash"

var branchPattern = regexp.MustCompile(`^[^:]+:[^:]+?(\S+):`)

// Counter maps the branch a stash was made on, or AutostashKey, to a count.
type Counter map[string]int

// Parse counts the entries of `git stash list` output. Lines of the form
// "stash@{N}: WIP on <branch>: ..." count towards <branch>, lines of the form
// "stash@{N}: autostash" count towards AutostashKey. Anything else is skipped.
func Parse(text string) Counter {
	c := Counter{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := branchPattern.FindStringSubmatch(line); m != nil {
			c[m[1]]++
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) > 1 && strings.TrimSpace(fields[1]) == "autostash" {
			c[AutostashKey]++
		}
	}
	return c
}

// List runs `git stash list` in dir and parses it. A repository without
// commits cannot have stashes, so an unborn HEAD returns an empty Counter
// without running git.
func List(g git.Client, dir string, unborn bool) (Counter, error) {
	if unborn {
		return Counter{}, nil
	}
	out, err := g.StashList(dir)
	if err != nil {
		return nil, fmt.Errorf("listing stashes: %w", err)
	}
	return Parse(out), nil
}

// Total returns the number of distinct keys in the counter.
func (c Counter) Total() int {
	return len(c)
}

// Autostash returns the number of autostash entries.
func (c Counter) Autostash() int {
	return c[AutostashKey]
}

// Render renders the counter for the given branch: the branch count
// (omitted when zero) followed by "A" when autostashes exist, with the
// autostash count appended only when it is above one. "1A", "A2", "3".
// An empty counter renders as "".
func (c Counter) Render(branch string) string {
	if len(c) == 0 {
		return ""
	}

	var b strings.Builder
	if n := c[branch]; n != 0 {
		b.WriteString(strconv.Itoa(n))
	}
	if n := c.Autostash(); n > 0 {
		b.WriteString("A")
		if n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}
