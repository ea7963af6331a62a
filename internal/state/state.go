// Package state detects an in-progress repository operation from the marker
// files git leaves in the control directory.
package state

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// State letters.
const (
	Rebase     = "R"
	Merge      = "M"
	CherryPick = "C"
	Bisect     = "B"
	Revert     = "V"
)

var markers = map[string]string{
	"rebase-merge":     Rebase,
	"rebase-apply":     Rebase,
	"MERGE_HEAD":       Merge,
	"CHERRY_PICK_HEAD": CherryPick,
	"BISECT_LOG":       Bisect,
	"REVERT_HEAD":      Revert,
}

// Detect returns the sorted, deduplicated state letters for the markers
// present at the root of fs, or "" when the repository is in a normal state.
func Detect(fs billy.Filesystem) (string, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("reading control directory: %w", err)
	}

	var letters []string
	for _, e := range entries {
		if letter, ok := markers[e.Name()]; ok {
			letters = append(letters, letter)
		}
	}
	slices.Sort(letters)
	return strings.Join(slices.Compact(letters), ""), nil
}
