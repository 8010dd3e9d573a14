package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
)

// FileReader resolves the contents of a "use"-imported file. It is
// injected so the parser never hard-codes file-I/O: tests supply an
// in-memory FileReader, the CLI driver supplies osFileReader.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// osFileReader reads imported files straight from disk.
type osFileReader struct{}

func (osFileReader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// validateBoulderFile checks that path exists, is a regular file, and
// carries the ".rock" extension, mirroring the source language's own
// validate_boulder_file/validate_file checks.
func validateBoulderFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("File %s does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("File %s is not a file", path)
	}
	if filepath.Ext(path) != ".rock" {
		return fmt.Errorf("File %s is not a boulder file", path)
	}
	return nil
}

// parseUse parses "use" <string literal>, resolves it relative to the
// importing file's directory, validates it, and recursively lexes and
// parses it, wrapping the result as Use. With the on-disk reader the
// path is checked with validateBoulderFile before reading; with an
// injected reader the extension is checked and a failed read is the
// "Invalid boulder file import" error. A file already on the active
// import chain is a cyclic-import error rather than unbounded
// recursion (the source language does not detect this; this parser
// does).
func parseUse(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'use'
	if _, err := p.tokens.ExpectWhitespace(); err != nil {
		return nil, err
	}
	fileTok, err := p.tokens.Expect(lexer.StringLit)
	if err != nil {
		return nil, err
	}

	filePath := fileTok.Lexeme
	if fileTok.Start.File != "" {
		filePath = filepath.Join(filepath.Dir(fileTok.Start.File), filePath)
	}

	_, onDisk := p.fileReader.(osFileReader)
	if onDisk {
		if verr := validateBoulderFile(filePath); verr != nil {
			return nil, diagnostics.New("Invalid boulder file import", verr.Error(), fileTok.Start)
		}
	} else if filepath.Ext(filePath) != ".rock" {
		return nil, diagnostics.New("Invalid boulder file import", fmt.Sprintf("File %s is not a boulder file", filePath), fileTok.Start)
	}

	canon := filepath.Clean(filePath)
	if p.importing[canon] {
		return nil, diagnostics.New("Cyclic boulder file import", fmt.Sprintf("%q is already being imported", filePath), fileTok.Start)
	}
	p.importing[canon] = true
	defer delete(p.importing, canon)

	source, rerr := p.fileReader.ReadFile(filePath)
	if rerr != nil {
		if !onDisk {
			return nil, diagnostics.New("Invalid boulder file import", fmt.Sprintf("File %s does not exist", filePath), fileTok.Start)
		}
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", filePath, rerr)
		source = ""
	}

	fileTokens, lexErr := lexer.Lex(filePath, source)
	if lexErr != nil {
		return nil, lexErr
	}

	body, perr := p.parseFileTokens(fileTokens)
	if perr != nil {
		return nil, perr
	}
	return &ast.Use{Body: body}, nil
}
