package format

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle   = textStyle().Foreground(lipgloss.Color("3"))         // Yellow
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	grayStyle    = textStyle().Foreground(lipgloss.Color("8"))         // Gray

	themes = map[string]lipgloss.Style{
		"default": textStyle().Foreground(lipgloss.Color("1")).Bold(true),  // Red bold
		"dark":    textStyle().Foreground(lipgloss.Color("13")).Bold(true), // Bright magenta bold
		"light":   textStyle().Foreground(lipgloss.Color("4")).Bold(true),  // Blue bold
	}
	highlightStyle = themes["default"]
)

// textStyle is the base for styles that wrap input text. Render must leave
// the text byte for byte intact, so tabs are not expanded.
func textStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// colorsEnabled controls whether output is colorized.
var colorsEnabled = true

// SetColorsEnabled enables or disables color output.
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// SetTheme selects the style used for matched text. Unknown names keep the
// current style.
func SetTheme(name string) {
	if s, ok := themes[name]; ok {
		highlightStyle = s
	}
}

func styled(s lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return s.Render(text)
}

// Success formats a success message with a green checkmark prefix.
func Success(msg string) string {
	return styled(successStyle, "✓ ") + msg
}

// Error formats an error message with a red X prefix.
func Error(msg string) string {
	return styled(errorStyle, "✗ ") + msg
}

// Gray returns gray-styled text.
func Gray(text string) string {
	return styled(grayStyle, text)
}
