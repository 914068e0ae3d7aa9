package format

import (
	"encoding/json"

	"github.com/seabearDEV/minigrep-go/internal/search"
)

// ToJSON formats a value as pretty-printed JSON.
func ToJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

type jsonMatch struct {
	Line  int      `json:"line"`
	Text  string   `json:"text"`
	Spans [][2]int `json:"spans"`
}

type jsonResults struct {
	Matches []jsonMatch `json:"matches"`
	Count   int         `json:"count"`
}

// ResultsJSON formats matches and the occurrence count as JSON. Line numbers
// are 1-based and spans are [start, end) byte offsets into the line as read.
// encoding/json replaces invalid UTF-8 in text with U+FFFD, so for such lines
// the offsets no longer line up with the emitted text.
func ResultsJSON(matches []search.Match, count int) string {
	out := jsonResults{Matches: make([]jsonMatch, 0, len(matches)), Count: count}
	for _, m := range matches {
		spans := make([][2]int, 0, len(m.Line.Spans))
		for _, sp := range m.Line.Spans {
			spans = append(spans, [2]int{sp.Start, sp.End})
		}
		out.Matches = append(out.Matches, jsonMatch{
			Line:  m.Index + 1,
			Text:  m.Line.Text,
			Spans: spans,
		})
	}
	return ToJSON(out)
}
