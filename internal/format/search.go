package format

import (
	"fmt"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/search"
)

// Highlight renders a decorated line with every matched span in the
// highlight style.
func Highlight(d search.Decorated) string {
	return d.Render(func(s string) string {
		return styled(highlightStyle, s)
	})
}

// MatchLine formats one result as `"<line>" - line <n>` with a 1-based n.
func MatchLine(m search.Match) string {
	return `"` + Highlight(m.Line) + `" ` + styled(labelStyle, fmt.Sprintf("- line %d", m.Index+1))
}

// Summary formats the total occurrence count.
func Summary(count int) string {
	return styled(successStyle, fmt.Sprintf("Found query %d times in file", count))
}

// Results formats every match followed by a blank line and the summary.
func Results(query string, matches []search.Match, count int) string {
	var sb strings.Builder
	if len(matches) == 0 {
		sb.WriteString(Gray(NoResultsMessage(query)))
		sb.WriteByte('\n')
	}
	for _, m := range matches {
		sb.WriteString(MatchLine(m))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(Summary(count))
	sb.WriteByte('\n')
	return sb.String()
}

// NoResultsMessage is printed instead of results when nothing matched.
func NoResultsMessage(query string) string {
	return fmt.Sprintf("No results found for '%s'.", query)
}
