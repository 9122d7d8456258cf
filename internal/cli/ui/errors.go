package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a formatted message.
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting.
type ErrorOptions struct {
	Problem     string
	Suggestions []string
	Level       ErrorLevel
	NoColor     bool
}

// FormatError renders a one-problem, optional-suggestions message, colored
// by level: red for errors, yellow for warnings, cyan for info.
//
// Example output:
//
//	[line 3:7] Undefined variable 'cnt'.
//	   Did you mean: count?
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	var c *color.Color
	switch opts.Level {
	case ErrorLevelWarning:
		c = color.New(color.FgYellow, color.Bold)
	case ErrorLevelInfo:
		c = color.New(color.FgCyan, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	if opts.NoColor {
		c.DisableColor()
	}

	c.Fprintf(&b, "%s\n", opts.Problem)

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	return b.String()
}

// WriteError writes a formatted message to w.
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess renders a green checkmarked success line.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to w.
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}
