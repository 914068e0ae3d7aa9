// Package search implements line-oriented literal search: finding the lines
// that contain a query, locating every occurrence inside those lines, and
// counting occurrences across a whole text. Every function is pure.
package search

import "strings"

// Match is a line that contains the query, with its zero-based index in the
// input.
type Match struct {
	Index int
	Line  Decorated
}

// Search returns the lines of text containing query, in document order. With
// caseSensitive false, lines are compared after folding and the spans keep the
// line's own casing.
func Search(query, text string, caseSensitive bool) []Match {
	if caseSensitive {
		return SearchCaseSensitive(query, text)
	}
	return SearchCaseInsensitive(query, text)
}

// SearchCaseSensitive matches query byte for byte.
func SearchCaseSensitive(query, text string) []Match {
	if query == "" {
		return nil
	}
	var results []Match
	for i, line := range Lines(text) {
		if !strings.Contains(line, query) {
			continue
		}
		results = append(results, Match{
			Index: i,
			Line:  Decorated{Text: line, Spans: findAll(line, query)},
		})
	}
	return results
}

// SearchCaseInsensitive matches query after lowercasing both sides.
func SearchCaseInsensitive(query, text string) []Match {
	if query == "" {
		return nil
	}
	var results []Match
	for i, line := range Lines(text) {
		d := Highlight(line, query)
		if len(d.Spans) == 0 {
			continue
		}
		results = append(results, Match{Index: i, Line: d})
	}
	return results
}

// Lines splits text on '\n'. Terminators are not included and a trailing
// newline does not start another line. A '\r' before the newline is kept.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Count returns the number of non-overlapping occurrences of query in text.
// Occurrences are counted anywhere, not only on matching lines.
func Count(query, text string, caseSensitive bool) int {
	if query == "" {
		return 0
	}
	if caseSensitive {
		return strings.Count(text, query)
	}
	return strings.Count(Fold(text), Fold(query))
}
