package search

import "strings"

// Span is a matched byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Decorated is a line together with the spans that matched the query. The
// text is never modified; renderers decide how a span is shown.
type Decorated struct {
	Text  string
	Spans []Span
}

// Segment is a piece of a decorated line.
type Segment struct {
	Text  string
	Match bool
}

// Segments splits the line into alternating plain and matched pieces. Empty
// plain pieces are omitted.
func (d Decorated) Segments() []Segment {
	segs := make([]Segment, 0, 2*len(d.Spans)+1)
	pos := 0
	for _, sp := range d.Spans {
		if sp.Start > pos {
			segs = append(segs, Segment{Text: d.Text[pos:sp.Start]})
		}
		segs = append(segs, Segment{Text: d.Text[sp.Start:sp.End], Match: true})
		pos = sp.End
	}
	if pos < len(d.Text) {
		segs = append(segs, Segment{Text: d.Text[pos:]})
	}
	return segs
}

// Render returns the line with every matched span passed through mark.
func (d Decorated) Render(mark func(string) string) string {
	if len(d.Spans) == 0 {
		return d.Text
	}
	var sb strings.Builder
	for _, seg := range d.Segments() {
		if seg.Match {
			sb.WriteString(mark(seg.Text))
		} else {
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// Highlight finds every case-insensitive occurrence of query in line, left to
// right and without overlap. Spans address the original casing of line.
func Highlight(line, query string) Decorated {
	if query == "" {
		return Decorated{Text: line}
	}
	return Decorated{Text: line, Spans: findAll(Fold(line), Fold(query))}
}

// findAll returns the non-overlapping occurrences of needle in haystack,
// resuming each scan at the end of the previous match.
func findAll(haystack, needle string) []Span {
	var spans []Span
	pos := 0
	for {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			return spans
		}
		start := pos + idx
		spans = append(spans, Span{Start: start, End: start + len(needle)})
		pos = start + len(needle)
	}
}
