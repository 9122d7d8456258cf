// Package errs implements MiniLang's error taxonomy: lexical, syntax and
// runtime errors rooted at one sum type so a single catch point (the CLI,
// the REPL driver) can handle all three uniformly, differentiated by a
// Kind tag rather than by Go type identity.
package errs

import (
	"fmt"

	"github.com/minilang/minilang/internal/cli/ui"
)

// Kind distinguishes which pipeline stage raised an Error.
type Kind int

const (
	// LexKind marks an unrecognized character or unterminated string.
	LexKind Kind = iota
	// ParseKind marks an unexpected token, missing punctuation, or an
	// invalid assignment target.
	ParseKind
	// RuntimeKind marks an undefined variable, a bad operand type, or
	// division by zero.
	RuntimeKind
)

func (k Kind) String() string {
	switch k {
	case LexKind:
		return "LexError"
	case ParseKind:
		return "ParseError"
	case RuntimeKind:
		return "RuntimeError"
	default:
		return "MiniLangError"
	}
}

// Error is MiniLang's single error type. Every error that carries a known
// source location renders with the "[line L:C]" prefix required by
// spec.md §7.
type Error struct {
	Kind        Kind
	Message     string
	Line        int
	Column      int
	Suggestions []string // candidate names, nearest first (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d:%d] %s", e.Line, e.Column, e.Message)
}

// NewLexError builds a lexical error at line:column.
func NewLexError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: LexKind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// NewParseError builds a syntax error at line:column.
func NewParseError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: ParseKind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// NewRuntimeError builds a runtime error at line:column, optionally with
// fuzzy-matched "did you mean" suggestions drawn from known identifiers.
func NewRuntimeError(line, column int, known []string, format string, args ...interface{}) *Error {
	e := &Error{Kind: RuntimeKind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
	if len(known) > 0 {
		e.Suggestions = ui.FindSimilar(suggestionTarget(e.Message), known, nil)
	}
	return e
}

// suggestionTarget pulls the quoted identifier out of an "Undefined
// variable 'x'." style message so fuzzy matching has something to compare
// against; messages without a quoted name yield no suggestions.
func suggestionTarget(message string) string {
	start := -1
	for i, r := range message {
		if r == '\'' {
			if start == -1 {
				start = i + 1
			} else {
				return message[start:i]
			}
		}
	}
	return ""
}

// Render formats the error for terminal output, coloring the message red
// and appending a "Did you mean" line when suggestions were attached.
func Render(err *Error, noColor bool) string {
	return ui.FormatError(ui.ErrorOptions{
		Level:       ui.ErrorLevelError,
		Problem:     err.Error(),
		Suggestions: err.Suggestions,
		NoColor:     noColor,
	})
}
