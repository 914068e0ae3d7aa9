package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fold lowercases s rune by rune. The result always has the same length as s:
// a rune whose lowercase form encodes to a different number of bytes is kept
// as is, and invalid UTF-8 bytes are copied through untouched. Byte offsets
// found in the folded string are therefore valid offsets into s.
func Fold(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(c)
			i++
			continue
		}
		if lr := unicode.ToLower(r); utf8.RuneLen(lr) == size {
			sb.WriteRune(lr)
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}
