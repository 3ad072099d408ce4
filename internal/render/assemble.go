package render

import (
	"fmt"
	"strings"

	"github.com/mfreitas/gh-activity/internal/domain"
)

// emptyPlaceholder is written when no renderable activity was found, so the
// destination document is never left with an empty section.
const emptyPlaceholder = "_No recent activity to show._"

// Assemble formats the rendered lines as a single block of text, preserving
// their order. The style maps to a fixed line prefix applied uniformly.
func Assemble(lines []string, style domain.Style) string {
	if len(lines) == 0 {
		return emptyPlaceholder
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch style {
		case domain.StyleList:
			b.WriteString("- ")
		default:
			fmt.Fprintf(&b, "%d. ", i+1)
		}
		b.WriteString(line)
	}
	return b.String()
}
