// Package input loads the text to search, either from a file or from
// standard input, into memory.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxLineSize caps a single line read from a stream.
const maxLineSize = 64 << 20

// ErrNoInput is returned when no file is given and stdin is an interactive
// terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe text on stdin")

// Source selects where the text comes from. An empty Path or "-" means stdin.
type Source struct {
	Path string
}

// IsStdin reports whether the source reads standard input.
func (s Source) IsStdin() bool {
	return s.Path == "" || s.Path == "-"
}

// String returns a display name for the source.
func (s Source) String() string {
	if s.IsStdin() {
		return "stdin"
	}
	return s.Path
}

// Read returns the whole text of the source. stdin is only consulted when the
// source is stdin.
func (s Source) Read(stdin io.Reader) (string, error) {
	if !s.IsStdin() {
		return ReadFile(s.Path)
	}
	if isTerminal(stdin) {
		return "", ErrNoInput
	}
	return ReadAll(stdin)
}

// ReadFile reads an entire file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// ReadAll reads r line by line, terminating every line with '\n'.
func ReadAll(r io.Reader) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return sb.String(), nil
}

// isTerminal returns true if r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
