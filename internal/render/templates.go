package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/wasabi0522/repostatus/internal/info"
	"github.com/wasabi0522/repostatus/internal/ui"
)

// Mode selects how escape sequences are wrapped for the invoking shell.
type Mode string

const (
	ModeZsh   Mode = "zsh"
	ModeBash  Mode = "bash"
	ModePlain Mode = "plain"
	// ModeNoColor emits symbols and values without any escape sequences.
	ModeNoColor Mode = "nocolor"
)

// ParseMode maps a shell name to its Mode. Unknown shells get ModePlain.
func ParseMode(shell string) Mode {
	switch Mode(shell) {
	case ModeZsh, ModeBash:
		return Mode(shell)
	default:
		return ModePlain
	}
}

func (m Mode) escape() ui.Escape {
	switch m {
	case ModeZsh:
		return ui.ZshEscape
	case ModeBash:
		return ui.BashEscape
	default:
		return ui.NoEscape
	}
}

// Symbols are the glyphs placed before each field's value.
type Symbols struct {
	Parent     string `koanf:"parent"`
	Ahead      string `koanf:"ahead"`
	Behind     string `koanf:"behind"`
	Staged     string `koanf:"staged"`
	Modified   string `koanf:"modified"`
	Deleted    string `koanf:"deleted"`
	Stashed    string `koanf:"stashed"`
	Untracked  string `koanf:"untracked"`
	Conflicted string `koanf:"conflicted"`
}

// DefaultSymbols returns the stock glyph set.
func DefaultSymbols() Symbols {
	return Symbols{
		Parent:     ">",
		Ahead:      "↑",
		Behind:     "↓",
		Staged:     "●",
		Modified:   "+",
		Deleted:    "-",
		Stashed:    "⚑",
		Untracked:  "…",
		Conflicted: "✖",
	}
}

// Template renders one field as a styled fragment.
type Template struct {
	open   string
	symbol string
	close  string
	// hideValue prints only the symbol, as for the superproject marker.
	hideValue bool
}

// Format renders value through the template.
func (t Template) Format(value string) string {
	if t.hideValue {
		return t.open + t.symbol + t.close
	}
	return t.open + t.symbol + value + t.close
}

// Templates holds one Template per RepoInfo field and the separator placed
// after the state and branch fields.
type Templates struct {
	State      Template
	Parent     Template
	Branch     Template
	Ahead      Template
	Behind     Template
	Staged     Template
	Modified   Template
	Deleted    Template
	Stashed    Template
	Untracked  Template
	Conflicted Template
	Space      string
}

// NewTemplates builds the template set for mode.
func NewTemplates(mode Mode, sym Symbols) Templates {
	e := mode.escape()
	tpl := func(symbol string, colors ...text.Color) Template {
		if mode == ModeNoColor {
			return Template{symbol: symbol}
		}
		return Template{open: e.Style(colors...), symbol: symbol, close: e.Reset()}
	}

	parent := tpl(sym.Parent, text.FgYellow, text.Bold)
	parent.hideValue = true

	return Templates{
		State:      tpl("", text.FgMagenta),
		Parent:     parent,
		Branch:     tpl("", text.FgYellow),
		Ahead:      tpl(sym.Ahead, text.FgGreen),
		Behind:     tpl(sym.Behind, text.FgRed),
		Staged:     tpl(sym.Staged, text.FgGreen),
		Modified:   tpl(sym.Modified, text.FgYellow),
		Deleted:    tpl(sym.Deleted, text.FgRed),
		Stashed:    tpl(sym.Stashed, text.FgBlue),
		Untracked:  tpl(sym.Untracked, text.FgCyan),
		Conflicted: tpl(sym.Conflicted, text.FgRed),
		Space:      " ",
	}
}

// For returns the template for field f.
func (t Templates) For(f info.Field) Template {
	switch f {
	case info.FieldState:
		return t.State
	case info.FieldParent:
		return t.Parent
	case info.FieldBranch:
		return t.Branch
	case info.FieldAhead:
		return t.Ahead
	case info.FieldBehind:
		return t.Behind
	case info.FieldStaged:
		return t.Staged
	case info.FieldModified:
		return t.Modified
	case info.FieldDeleted:
		return t.Deleted
	case info.FieldStashed:
		return t.Stashed
	case info.FieldUntracked:
		return t.Untracked
	case info.FieldConflicted:
		return t.Conflicted
	default:
		panic(fmt.Sprintf("render: no template for field %s", f))
	}
}
