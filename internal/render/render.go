package render

import (
	"strings"
	"unicode"

	"github.com/wasabi0522/repostatus/internal/info"
)

// Render formats every non-empty field of i through its template, in field
// order. A separator follows the branch and a non-empty state; trailing
// whitespace is trimmed.
func Render(i info.RepoInfo, t Templates) string {
	var b strings.Builder
	for _, e := range i.Fields() {
		if e.Value != "" {
			b.WriteString(t.For(e.Field).Format(e.Value))
		}
		if e.Field == info.FieldBranch || (e.Field == info.FieldState && e.Value != "") {
			b.WriteString(t.Space)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
