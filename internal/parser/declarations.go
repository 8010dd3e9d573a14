package parser

import (
	"fmt"

	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
	"github.com/Sk3pz/boulder/internal/operator"
)

// parseFn parses a function declaration: "fn" name "(" params ")"
// ["->" type] body.
func parseFn(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'fn'
	if _, err := p.tokens.ExpectWhitespace(); err != nil {
		return nil, err
	}
	nameTok, err := p.tokens.Expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	params, err := defineParams(p)
	if err != nil {
		return nil, err
	}
	var returnType ast.Statement = &ast.Void{}
	if _, has := p.tokens.OptionalOp(operator.Move); has {
		returnType, err = getType(p, false)
		if err != nil {
			return nil, err
		}
	}
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &ast.Fn{
		Ident:      &ast.Identifier{Name: nameTok.Lexeme},
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// defineParams parses "(" <ident> ":" <type> ["," ...] ")". A default
// value after a parameter's type is rejected: the source language
// never shipped support for it.
func defineParams(p *Parser) ([]ast.Statement, *diagnostics.Error) {
	var params []ast.Statement
	if _, err := p.tokens.Expect(lexer.LParen); err != nil {
		return nil, err
	}
	for {
		identTok, ok := p.tokens.OptionalExpect(lexer.Ident)
		if !ok {
			break
		}
		paramType, err := getType(p, true)
		if err != nil {
			return nil, err
		}
		p.tokens.OptionalWhitespace()
		if p.tokens.IsEmpty() {
			return nil, diagnostics.New("Expected parameter or closing ')'", "Found end of file", p.tokens.EOF())
		}
		nextTok, _ := p.tokens.Peek()
		if _, has := p.tokens.OptionalOp(operator.Assign); has {
			return nil, diagnostics.New("Invalid Assignment", "Default parameter values are not yet supported!", nextTok.Start)
		}
		params = append(params, &ast.Declaration{
			Ident: &ast.Identifier{Name: identTok.Lexeme},
			Type:  paramType,
		})
		if _, ok := p.tokens.OptionalExpect(lexer.Comma); !ok {
			break
		}
	}
	if _, err := p.tokens.Expect(lexer.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// getType parses a type: an optional leading ':', zero or more
// modifier operators ('&' -> Reference, '*' -> Pointer), then either
// an array type ("[" element ";" size "]") or a plain identifier.
func getType(p *Parser, expectColon bool) (ast.Statement, *diagnostics.Error) {
	if expectColon {
		if _, err := p.tokens.Expect(lexer.Colon); err != nil {
			return nil, err
		}
	}
	var modifiers []ast.Statement
	for {
		opTok, ok := p.tokens.OptionalExpect(lexer.OperatorTok)
		if !ok {
			break
		}
		switch opTok.Op {
		case operator.And:
			modifiers = append(modifiers, &ast.Reference{})
		case operator.Mul:
			modifiers = append(modifiers, &ast.Pointer{})
		default:
			return nil, diagnostics.New("Expected &, *, [...], or nothing", fmt.Sprintf("found %s", opTok.Op), opTok.Start)
		}
	}
	p.tokens.OptionalWhitespace()
	if p.tokens.NextIs(lexer.LBracket) {
		return parseArrayDec(p, modifiers)
	}
	identTok, err := p.tokens.Expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	return &ast.Type{Modifiers: modifiers, Ident: &ast.Identifier{Name: identTok.Lexeme}}, nil
}

// parseArrayDec parses "[" element ";" size "]" given the modifiers
// already consumed by getType.
func parseArrayDec(p *Parser, mods []ast.Statement) (ast.Statement, *diagnostics.Error) {
	if _, err := p.tokens.Expect(lexer.LBracket); err != nil {
		return nil, err
	}
	element, err := getType(p, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.Expect(lexer.NOP); err != nil {
		return nil, err
	}
	size, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.Expect(lexer.RBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayType{Element: element, Size: size, Modifiers: mods}, nil
}

// parseDeclaration parses "let" ident ":" type ["=" value]. Inferred
// types are a stated non-goal: a missing ':' is a hard error.
func parseDeclaration(p *Parser) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove 'let'
	if _, err := p.tokens.ExpectWhitespace(); err != nil {
		return nil, err
	}
	identTok, err := p.tokens.Expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	var declType ast.Statement
	if _, ok := p.tokens.OptionalExpect(lexer.Colon); ok {
		declType, err = getType(p, false)
		if err != nil {
			return nil, err
		}
	} else {
		pos := p.tokens.EOF()
		if tok, ok := p.tokens.Peek(); ok {
			pos = tok.Start
		}
		return nil, diagnostics.New("Inferred types are not yet implemented!", "Variable types must be defined!", pos)
	}
	var declValue ast.Statement
	if _, has := p.tokens.OptionalOp(operator.Assign); has {
		declValue, err = parseStatement(p)
		if err != nil {
			return nil, err
		}
	}
	return &ast.Declaration{
		Ident: &ast.Identifier{Name: identTok.Lexeme},
		Type:  declType,
		Value: declValue,
	}, nil
}
