package ui

import (
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

var colorDisabled = sync.OnceValue(func() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
})

// ColorDisabled reports whether NO_COLOR is set.
func ColorDisabled() bool {
	return colorDisabled()
}

// SetNoColor overrides the color-disabled flag for testing.
func SetNoColor(disabled bool) {
	colorDisabled = func() bool { return disabled }
}

// Escape wraps raw escape sequences in the markers a shell uses to exclude
// them from the prompt width.
type Escape struct {
	Open  string
	Close string
}

var (
	// ZshEscape marks escapes with %{ %}.
	ZshEscape = Escape{Open: "%{", Close: "%}"}
	// BashEscape marks escapes with \[ \].
	BashEscape = Escape{Open: `\[`, Close: `\]`}
	// NoEscape leaves escapes unmarked, for direct terminal output.
	NoEscape = Escape{}
)

// Style returns the SGR sequence for colors, wrapped for the shell.
func (e Escape) Style(colors ...text.Color) string {
	return e.Open + text.Colors(colors).EscapeSeq() + e.Close
}

// Reset returns the SGR reset sequence, wrapped for the shell.
func (e Escape) Reset() string {
	return e.Style(text.Reset)
}
