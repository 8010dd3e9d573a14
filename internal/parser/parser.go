package parser

import (
	"fmt"

	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
)

// Parser holds the cursor-owning token list plus the state that must
// survive recursive descent into imported files: the file reader used
// to resolve "use" targets and the set of files currently being
// imported, used to detect cyclic imports.
type Parser struct {
	tokens     *lexer.List
	fileReader FileReader
	importing  map[string]bool
}

// New builds a Parser reading imported files from disk.
func New(tokens *lexer.List) *Parser {
	return NewWithFileReader(tokens, osFileReader{})
}

// NewWithFileReader builds a Parser with an injected file reader,
// useful for tests that never touch the filesystem.
func NewWithFileReader(tokens *lexer.List, fr FileReader) *Parser {
	return &Parser{tokens: tokens, fileReader: fr, importing: make(map[string]bool)}
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, *diagnostics.Error) {
	body, err := parseFile(p)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

// parseFileTokens parses a full, independent token list (an imported
// file) using this Parser's shared file reader and import-cycle set,
// then restores the caller's cursor.
func (p *Parser) parseFileTokens(tokens *lexer.List) ([]ast.Statement, *diagnostics.Error) {
	saved := p.tokens
	p.tokens = tokens
	defer func() { p.tokens = saved }()
	return parseFile(p)
}

// parseFile loops until EOF, skipping whitespace at the outer level
// and delegating every other token to parseGlobal.
func parseFile(p *Parser) ([]ast.Statement, *diagnostics.Error) {
	var body []ast.Statement
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case lexer.Whitespace:
			p.tokens.Consume()
			continue
		case lexer.EOF:
			p.tokens.Consume()
			return body, nil
		default:
			stmt, err := parseGlobal(p)
			if err != nil {
				return nil, err
			}
			body = append(body, stmt)
		}
	}
	return body, nil
}

// parseGlobal accepts only Fn, NOP, or Use at the top level.
func parseGlobal(p *Parser) (ast.Statement, *diagnostics.Error) {
	tok, ok := peekNonWhitespace(p)
	if !ok {
		return nil, diagnostics.NewSingular("Reached end of file without finding an expression!", p.tokens.EOF())
	}
	switch tok.Kind {
	case lexer.Fn:
		return parseFn(p)
	case lexer.NOP:
		p.tokens.Consume()
		return &ast.NOP{}, nil
	case lexer.Use:
		return parseUse(p)
	default:
		return nil, diagnostics.New("Expected an expression", fmt.Sprintf("found: %s", tok.Kind), tok.Start)
	}
}

// parseStatement parses one statement/expression inside a function
// body, control-flow arm, or any other nested position.
func parseStatement(p *Parser) (ast.Statement, *diagnostics.Error) {
	tok, ok := peekNonWhitespace(p)
	if !ok {
		return nil, diagnostics.NewSingular("Reached end of file without finding an expression!", p.tokens.EOF())
	}
	switch tok.Kind {
	case lexer.LBrace:
		return parseBlock(p)
	case lexer.LParen:
		return shuntingYard(p, false, nil)
	case lexer.Let:
		return parseDeclaration(p)
	case lexer.If:
		return parseIf(p)
	case lexer.While:
		return parseWhile(p)
	case lexer.Loop:
		return parseLoop(p)
	case lexer.For:
		return parseFor(p)
	case lexer.Assert:
		return parseAssert(p)
	case lexer.Return:
		return parseReturn(p)
	case lexer.NumberLit:
		return parseNumberLit(p)
	case lexer.Ident:
		return parseIdentifier(p, true)
	case lexer.OperatorTok:
		return shuntingYard(p, true, nil)
	case lexer.Panic:
		return parsePanic(p)
	case lexer.BoolTrue:
		p.tokens.Consume()
		return &ast.BoolLiteral{Value: true}, nil
	case lexer.BoolFalse:
		p.tokens.Consume()
		return &ast.BoolLiteral{Value: false}, nil
	case lexer.BinLit:
		t, _ := p.tokens.Consume()
		return &ast.BinaryLiteral{Text: t.Lexeme}, nil
	case lexer.HexLit:
		t, _ := p.tokens.Consume()
		return &ast.HexLiteral{Text: t.Lexeme}, nil
	case lexer.NOP:
		p.tokens.Consume()
		return &ast.NOP{}, nil
	case lexer.StringLit:
		t, _ := p.tokens.Consume()
		return &ast.StringLiteral{Value: t.Lexeme}, nil
	default:
		return nil, diagnostics.New("Expected an expression", fmt.Sprintf("found: %s", tok.Kind), tok.Start)
	}
}

// parseBlock parses a brace-delimited statement sequence. A ';'
// separating statements is skipped rather than kept as a NOP node.
// Reaching the EOF token before a closing brace is an error: the EOF
// token is handed to parseStatement, which rejects it.
func parseBlock(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove '{'
	var body []ast.Statement
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		if tok.Kind == lexer.Whitespace || tok.Kind == lexer.NOP {
			p.tokens.Consume()
			continue
		}
		if tok.Kind == lexer.RBrace {
			p.tokens.Consume()
			break
		}
		stmt, err := parseStatement(p)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Block{Body: body}, nil
}

// peekNonWhitespace skips whitespace and returns the next token
// without consuming it, or false at EOF.
func peekNonWhitespace(p *Parser) (lexer.Token, bool) {
	p.tokens.OptionalWhitespace()
	return p.tokens.Peek()
}

// peekAfterWhitespaceIs reports whether the next non-whitespace token
// has kind k, without consuming anything.
func peekAfterWhitespaceIs(p *Parser, k lexer.Kind) bool {
	for n := 0; ; n++ {
		tok, ok := p.tokens.PeekNth(n)
		if !ok {
			return false
		}
		if tok.Kind != lexer.Whitespace {
			return tok.Kind == k
		}
	}
}
