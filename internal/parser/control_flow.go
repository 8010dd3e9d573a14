package parser

import (
	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
)

// parseIf parses "if" cond body ["else" body].
func parseIf(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'if'
	cond, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	var elseBody ast.Statement
	p.tokens.OptionalWhitespace()
	if p.tokens.NextIs(lexer.Else) {
		p.tokens.Consume()
		elseBody, err = parseStatement(p)
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: body, Else: elseBody}, nil
}

// parseWhile parses "while" cond body.
func parseWhile(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'while'
	cond, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseLoop parses "loop" body.
func parseLoop(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'loop'
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Body: body}, nil
}

// parseFor parses "for" ident "in" iterable body.
func parseFor(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'for'
	identTok, err := p.tokens.Expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.Expect(lexer.In); err != nil {
		return nil, err
	}
	iter, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.For{Ident: &ast.Identifier{Name: identTok.Lexeme}, Iter: iter, Body: body}, nil
}

// parseReturn parses "return" [value]; an immediately-following '}'
// (modulo whitespace) means the return value is Void.
func parseReturn(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'return'
	if peekAfterWhitespaceIs(p, lexer.RBrace) {
		p.tokens.OptionalWhitespace()
		return &ast.Return{Value: &ast.Void{}}, nil
	}
	if _, err := p.tokens.ExpectWhitespace(); err != nil {
		return nil, err
	}
	value, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

// parseAssert parses "assert" expr.
func parseAssert(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'assert'
	expr, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.Assert{Expr: expr}, nil
}

// parsePanic parses "?" [value]; an immediately-following ')' (modulo
// whitespace) means the panic value is Void.
func parsePanic(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove '?'
	if peekAfterWhitespaceIs(p, lexer.RParen) {
		p.tokens.OptionalWhitespace()
		return &ast.Panic{Value: &ast.Void{}}, nil
	}
	value, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.Panic{Value: value}, nil
}
