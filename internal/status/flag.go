package status

import (
	"slices"
	"strings"
)

// Flag is a single bit of a per-file status bitmask. A file's mask may carry
// several flags at once, e.g. IndexModified|WorktreeModified.
type Flag uint32

// Current is the zero mask of an unchanged file. It is not part of the table.
const Current Flag = 0

const (
	IndexNew           Flag = 1 << 0
	IndexModified      Flag = 1 << 1
	IndexDeleted       Flag = 1 << 2
	IndexRenamed       Flag = 1 << 3
	IndexTypeChange    Flag = 1 << 4
	WorktreeNew        Flag = 1 << 7
	WorktreeModified   Flag = 1 << 8
	WorktreeDeleted    Flag = 1 << 9
	WorktreeTypeChange Flag = 1 << 10
	WorktreeRenamed    Flag = 1 << 11
	WorktreeUnreadable Flag = 1 << 12
	Ignored            Flag = 1 << 14
	Conflicted         Flag = 1 << 15
)

var flagNames = map[Flag]string{
	IndexNew:           "INDEX_NEW",
	IndexModified:      "INDEX_MODIFIED",
	IndexDeleted:       "INDEX_DELETED",
	IndexRenamed:       "INDEX_RENAMED",
	IndexTypeChange:    "INDEX_TYPECHANGE",
	WorktreeNew:        "WT_NEW",
	WorktreeModified:   "WT_MODIFIED",
	WorktreeDeleted:    "WT_DELETED",
	WorktreeTypeChange: "WT_TYPECHANGE",
	WorktreeRenamed:    "WT_RENAMED",
	WorktreeUnreadable: "WT_UNREADABLE",
	Ignored:            "IGNORED",
	Conflicted:         "CONFLICTED",
}

// flagTable lists every known flag ordered from the largest weight down.
var flagTable = func() []Flag {
	flags := make([]Flag, 0, len(flagNames))
	for f := range flagNames {
		flags = append(flags, f)
	}
	slices.Sort(flags)
	slices.Reverse(flags)
	return flags
}()

const indexMask = IndexNew | IndexModified | IndexDeleted | IndexRenamed | IndexTypeChange

// Flags returns every known flag, largest weight first.
func Flags() []Flag {
	return slices.Clone(flagTable)
}

// String returns the symbolic name of a single flag, or the names of every
// known flag in a combined mask joined by "|".
func (f Flag) String() string {
	if f == Current {
		return "CURRENT"
	}
	if name, ok := flagNames[f]; ok {
		return name
	}
	var names []string
	for _, known := range f.Split() {
		names = append(names, flagNames[known])
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return other != Current && f&other == other
}

// IsIndex reports whether f is one of the index (staging area) flags.
func (f Flag) IsIndex() bool {
	return f != Current && f&^indexMask == 0
}

// Split decomposes a mask into the known flags it carries, largest first.
func (f Flag) Split() []Flag {
	var out []Flag
	for _, known := range flagTable {
		if f.Has(known) {
			out = append(out, known)
		}
	}
	return out
}
