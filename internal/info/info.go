package info

import (
	"strconv"
)

// Field identifies one RepoInfo field. The constant order is the display
// order and must not change.
type Field int

const (
	FieldState Field = iota
	FieldParent
	FieldBranch
	FieldAhead
	FieldBehind
	FieldStaged
	FieldModified
	FieldDeleted
	FieldStashed
	FieldUntracked
	FieldConflicted
)

var fieldNames = [...]string{
	FieldState:      "state",
	FieldParent:     "parent",
	FieldBranch:     "branch",
	FieldAhead:      "ahead",
	FieldBehind:     "behind",
	FieldStaged:     "staged",
	FieldModified:   "modified",
	FieldDeleted:    "deleted",
	FieldStashed:    "stashed",
	FieldUntracked:  "untracked",
	FieldConflicted: "conflicted",
}

// String returns the lower-case field name.
func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// RepoInfo is the status of a repository at one point in time.
type RepoInfo struct {
	// State holds in-progress operation letters, see package state.
	State string
	// Parent is the superproject working tree, empty outside a submodule.
	Parent string
	// Branch is the branch name, a detached HEAD description, or the
	// configured name for an unborn branch.
	Branch     string
	Ahead      int
	Behind     int
	Staged     int
	Modified   int
	Deleted    int
	Stashed    string
	Untracked  int
	Conflicted int
}

// Entry is one field of a RepoInfo in display form. Value is empty when the
// field has nothing to show: an empty string or a zero count.
type Entry struct {
	Field Field
	Value string
}

// Fields returns every field in display order.
func (i RepoInfo) Fields() []Entry {
	return []Entry{
		{FieldState, i.State},
		{FieldParent, i.Parent},
		{FieldBranch, i.Branch},
		{FieldAhead, count(i.Ahead)},
		{FieldBehind, count(i.Behind)},
		{FieldStaged, count(i.Staged)},
		{FieldModified, count(i.Modified)},
		{FieldDeleted, count(i.Deleted)},
		{FieldStashed, i.Stashed},
		{FieldUntracked, count(i.Untracked)},
		{FieldConflicted, count(i.Conflicted)},
	}
}

func count(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Fake returns a copy of i with every field except Branch set to value, so
// that every display fragment is rendered.
func (i RepoInfo) Fake(value int) RepoInfo {
	s := strconv.Itoa(value)
	return RepoInfo{
		State:      s,
		Parent:     s,
		Branch:     i.Branch,
		Ahead:      value,
		Behind:     value,
		Staged:     value,
		Modified:   value,
		Deleted:    value,
		Stashed:    s,
		Untracked:  value,
		Conflicted: value,
	}
}
