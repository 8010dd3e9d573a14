// Package diagnostics implements the error model shared by the lexer
// and parser: a structured error carrying an optional heading, a
// message, and a source position, plus the stable caret-style
// rendering used to print it.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/Sk3pz/boulder/internal/position"
)

// Error is the envelope every lexical or syntactic failure shares.
// Heading is the taxonomy tag (e.g. "Expected an expression",
// "Unexpected character"); when empty the message renders as a single
// line with no "error: HEADING: " prefix.
type Error struct {
	Heading string
	Detail  string
	At      position.Position
}

// New builds an Error with both a heading and a detail message.
func New(heading, detail string, at position.Position) *Error {
	return &Error{Heading: heading, Detail: detail, At: at}
}

// NewSingular builds an Error with no heading: Error() returns just the
// detail message.
func NewSingular(detail string, at position.Position) *Error {
	return &Error{Detail: detail, At: at}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Heading == "" {
		return e.Detail
	}
	return fmt.Sprintf("error: %s: %s", e.Heading, e.Detail)
}

// Render produces the stable, multi-line caret-style rendering:
//
//	error: <heading>: <detail>
//	  --> <file>:<line>:<col>
//	  |
//	L | <source line with trailing comments stripped>
//	  |   ^ <heading>
//
// source is the full text of the file the error occurred in; file is
// the path to show in the "-->" line (empty renders as "<input>").
func (e *Error) Render(source, file string) string {
	var sb strings.Builder

	if e.Heading != "" {
		fmt.Fprintf(&sb, "error: %s: %s\n", e.Heading, e.Detail)
	} else {
		fmt.Fprintf(&sb, "error: %s\n", e.Detail)
	}

	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", file, e.At.Line, e.At.Column)
	sb.WriteString("  |\n")

	line, col := sourceLineAndColumn(source, e.At.Line, e.At.Column)
	fmt.Fprintf(&sb, "%d | %s\n", e.At.Line, line)

	gutterWidth := len(fmt.Sprintf("%d | ", e.At.Line))
	sb.WriteString(strings.Repeat(" ", gutterWidth-2) + "| " + strings.Repeat(" ", col-1))
	sb.WriteString("^")
	if e.Heading != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Heading)
	}
	sb.WriteString("\n")

	return sb.String()
}

// sourceLineAndColumn extracts line (1-indexed) from source, strips a
// trailing line-comment and leading whitespace for display, and
// returns an adjusted column counted over the stripped line.
func sourceLineAndColumn(source string, lineNum, column int) (string, int) {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return "", column
	}
	raw := lines[lineNum-1]

	trimmed := strings.TrimLeft(raw, " \t")
	removed := len(raw) - len(trimmed)

	display := trimmed
	if idx := strings.Index(display, "//"); idx >= 0 {
		display = display[:idx]
	}

	col := column - removed
	if col < 1 {
		col = 1
	}
	return display, col
}

// FormatAll renders a batch of errors, one after another separated by
// a blank line. Used by the driver when a pass collects more than one
// diagnostic before aborting (the core itself always stops at the
// first failure; FormatAll exists for callers that gather several,
// e.g. when reporting import-resolution errors across files).
func FormatAll(errs []*Error, source, file string) string {
	var sb strings.Builder
	for i, e := range errs {
		sb.WriteString(e.Render(source, file))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
