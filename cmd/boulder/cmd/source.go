package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
	"github.com/Sk3pz/boulder/internal/parser"
)

// readSource reads path, or stdin if path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

// parseFile lexes and parses path (or stdin for "-"), returning the
// source text alongside the result so callers can render a diagnostic
// against it on failure.
func parseFile(path string) (*ast.Program, string, *diagnostics.Error) {
	source, err := readSource(path)
	if err != nil {
		exitWithError("%v", err)
		return nil, "", nil
	}

	tokens, lexErr := lexer.Lex(path, source)
	if lexErr != nil {
		return nil, source, lexErr
	}

	program, perr := parser.New(tokens).ParseProgram()
	if perr != nil {
		return nil, source, perr
	}
	return program, source, nil
}

// printRendered writes a rendered diagnostic to stderr, wrapping the
// whole rendering in ANSI bold red when color is requested. Styling beyond
// this single toggle is out of scope for this front end.
func printRendered(rendered string) {
	if !useColor {
		fmt.Fprint(os.Stderr, rendered)
		return
	}
	fmt.Fprint(os.Stderr, "\033[1;31m"+rendered+"\033[0m")
}
