package parser

import (
	"github.com/Sk3pz/boulder/internal/ast"
	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/lexer"
	"github.com/Sk3pz/boulder/internal/operator"
)

// parseFnCall parses "(" <statement> ["," ...] ")" and wraps callee.
func parseFnCall(p *Parser, callee ast.Statement) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove '('
	var args []ast.Statement
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		if tok.Kind == lexer.RParen {
			p.tokens.Consume()
			break
		}
		stmt, err := parseStatement(p)
		if err != nil {
			return nil, err
		}
		args = append(args, stmt)
		if _, ok := p.tokens.OptionalExpect(lexer.Comma); !ok {
			if _, err := p.tokens.Expect(lexer.RParen); err != nil {
				return nil, err
			}
			break
		}
	}
	return &ast.FnCall{Callee: callee, Args: args}, nil
}

// parseIndex parses "[" <statement> "]" and wraps accessed as
// ArrayAccess.
func parseIndex(p *Parser, accessed ast.Statement) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove '['
	if _, ok := p.tokens.Peek(); !ok {
		return nil, diagnostics.New("Expected closing ']'", "found end of file", p.tokens.EOF())
	}
	index, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.Expect(lexer.RBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayAccess{Target: accessed, Index: index}, nil
}

// parsePropertyAtom resolves a property name into a call or index
// expression when immediately followed by '(' or '[', otherwise
// returns name unchanged. It deliberately does not look past that one
// step: a further '.' is left for the enclosing chain loop, which is
// what keeps a.b.c() grouping left-associatively instead of recursing
// into a right-nested tree.
func parsePropertyAtom(p *Parser, name ast.Statement) (ast.Statement, *diagnostics.Error) {
	p.tokens.OptionalWhitespace()
	tok, ok := p.tokens.Peek()
	if !ok {
		return name, nil
	}
	switch tok.Kind {
	case lexer.LParen:
		return parseFnCall(p, name)
	case lexer.LBracket:
		return parseIndex(p, name)
	default:
		return name, nil
	}
}

// parseProperty parses "." <ident> and wraps accessed as
// PropertyAccess, resolving a trailing call/index against the
// property name via parsePropertyAtom.
func parseProperty(p *Parser, accessed ast.Statement) (ast.Statement, *diagnostics.Error) {
	p.tokens.Consume() // remove '.'
	nameTok, err := p.tokens.Expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	property, err := parsePropertyAtom(p, &ast.Identifier{Name: nameTok.Lexeme})
	if err != nil {
		return nil, err
	}
	return &ast.PropertyAccess{Expr: accessed, Property: property}, nil
}

// parseNumberLit parses a numeric literal and always funnels it into
// shunting-yard as the leading operand, unless a property access
// follows immediately.
func parseNumberLit(p *Parser) (ast.Statement, *diagnostics.Error) {
	tok, _ := p.tokens.Consume()
	var number ast.Statement = &ast.NumberLiteral{Value: ast.Number{Text: tok.Lexeme, Negative: false}}
	p.tokens.OptionalWhitespace()
	if next, ok := p.tokens.Peek(); ok && next.Kind == lexer.Dot {
		return parseProperty(p, number)
	}
	return shuntingYard(p, false, number)
}

// parseIdentStatement resolves one chain step (call, index, property,
// or — when shunt is true — a binary/unary operator run) applied to
// left. Returns (nil, false, nil) when no chain step applies.
func parseIdentStatement(p *Parser, left ast.Statement, shunt bool) (ast.Statement, bool, *diagnostics.Error) {
	p.tokens.OptionalWhitespace()
	tok, ok := p.tokens.Peek()
	if !ok {
		return nil, false, nil
	}
	switch tok.Kind {
	case lexer.LParen:
		stmt, err := parseFnCall(p, left)
		if err != nil {
			return nil, false, err
		}
		return stmt, true, nil
	case lexer.LBracket:
		stmt, err := parseIndex(p, left)
		if err != nil {
			return nil, false, err
		}
		return stmt, true, nil
	case lexer.Dot:
		stmt, err := parseProperty(p, left)
		if err != nil {
			return nil, false, err
		}
		return stmt, true, nil
	case lexer.OperatorTok:
		if !shunt {
			return nil, false, nil
		}
		if tok.Op == operator.Assign {
			p.tokens.Consume()
			value, err := parseStatement(p)
			if err != nil {
				return nil, false, err
			}
			return &ast.Assignment{Target: left, Value: value}, true, nil
		}
		stmt, err := shuntingYard(p, false, left)
		if err != nil {
			return nil, false, err
		}
		return stmt, true, nil
	default:
		return nil, false, nil
	}
}

// parseIdentifier consumes an identifier and then repeatedly resolves
// chain steps (call/index/property, plus shunting-yard hand-off when
// shunt is true) against the accumulated expression.
func parseIdentifier(p *Parser, shunt bool) (ast.Statement, *diagnostics.Error) {
	tok, _ := p.tokens.Consume()
	expr := ast.Statement(&ast.Identifier{Name: tok.Lexeme})
	p.tokens.OptionalWhitespace()
	for {
		stmt, has, err := parseIdentStatement(p, expr, shunt)
		if err != nil {
			return nil, err
		}
		if !has {
			break
		}
		expr = stmt
	}
	return expr, nil
}

// parseShuntingYardLeadingOp decodes an operator token encountered
// where an operand was expected: a standalone '-' is reported by
// returning true (the next numeric operand is marked negative; an
// identifier operand is preceded by a Sub operator); "++"/"--" push
// Add/Sub followed by the operand 1 immediately. Any other operator here is a
// contract violation: a binary operator can't follow another one.
func parseShuntingYardLeadingOp(opTok lexer.Token, postfix *ast.ShuntedStack) (bool, *diagnostics.Error) {
	switch opTok.Op {
	case operator.Sub:
		return true, nil
	case operator.Inc:
		postfix.Push(ast.OperatorItem(operator.Add))
		postfix.Push(ast.OperandItem(&ast.NumberLiteral{Value: ast.Number{Text: "1"}}))
	case operator.Dec:
		postfix.Push(ast.OperatorItem(operator.Sub))
		postfix.Push(ast.OperandItem(&ast.NumberLiteral{Value: ast.Number{Text: "1"}}))
	default:
		return false, diagnostics.New("Unexpected operator", "found binary operator after another binary operator", opTok.Start)
	}
	return false, nil
}

// precedenceOf returns op's precedence, or -1 for operators with no
// defined precedence (assignment, arrow, range): these never reach
// the shunting-yard in well-formed input, but a -1 keeps the compare
// below total instead of panicking on a missing table entry.
func precedenceOf(op operator.Operator) int {
	if prec, ok := operator.Precedence(op); ok {
		return prec
	}
	return -1
}

// shuntingYard runs the shunting-yard algorithm over the token stream,
// producing a Postfix statement wrapping the reverse-Polish stack.
// leading, if non-nil, is an operand already parsed (a number,
// identifier chain, or parenthesized expression) that starts the run.
// unaryStart indicates the very next token is a leading unary operator
// rather than an operand.
func shuntingYard(p *Parser, unaryStart bool, leading ast.Statement) (ast.Statement, *diagnostics.Error) {
	postfix := ast.NewShuntedStack()
	var opStack []lexer.Token

	if leading != nil {
		postfix.Push(ast.OperandItem(leading))
	}

	var lastOp *operator.Operator
	negative := false

	if unaryStart {
		opTok, err := p.tokens.Expect(lexer.OperatorTok)
		if err != nil {
			return nil, err
		}
		neg, err := parseShuntingYardLeadingOp(opTok, postfix)
		if err != nil {
			return nil, err
		}
		negative = neg
	}

loop:
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case lexer.NumberLit:
			p.tokens.Consume()
			postfix.Push(ast.OperandItem(&ast.NumberLiteral{Value: ast.Number{Text: tok.Lexeme, Negative: negative}}))
			lastOp = nil
			negative = false

		case lexer.Ident:
			stmt, err := parseIdentifier(p, false)
			if err != nil {
				return nil, err
			}
			if negative {
				// a pending '-' against an identifier: Sub, then the operand.
				postfix.Push(ast.OperatorItem(operator.Sub))
			}
			postfix.Push(ast.OperandItem(stmt))
			lastOp = nil
			negative = false

		case lexer.OperatorTok:
			p.tokens.Consume()
			op := tok.Op

			if lastOp != nil {
				neg, err := parseShuntingYardLeadingOp(tok, postfix)
				if err != nil {
					return nil, err
				}
				negative = neg
				o := op
				lastOp = &o
				continue
			}

			if op == operator.Inc || op == operator.Dec {
				postfix.Push(ast.OperatorItem(op))
				continue
			}

			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if top.Kind == lexer.LParen {
					break
				}
				if top.Kind != lexer.OperatorTok {
					return nil, diagnostics.NewSingular("unexpected error found in op_stack during shunting yard algorithm", top.Start)
				}
				// equal precedence also pops: left-associative.
				if precedenceOf(top.Op) < precedenceOf(op) {
					break
				}
				opStack = opStack[:len(opStack)-1]
				postfix.Push(ast.OperatorItem(top.Op))
			}
			opStack = append(opStack, tok)
			o := op
			lastOp = &o

		case lexer.LParen:
			p.tokens.Consume()
			opStack = append(opStack, tok)
			sentinel := operator.AddAssign // non-binary: marks "not a pending operand"
			lastOp = &sentinel

		case lexer.RParen:
			found := false
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if top.Kind == lexer.LParen {
					found = true
					break
				}
				if top.Kind != lexer.OperatorTok {
					return nil, diagnostics.NewSingular("unexpected error found in op_stack during shunting yard algorithm", tok.Start)
				}
				postfix.Push(ast.OperatorItem(top.Op))
			}
			if !found {
				// belongs to an enclosing construct (a call, a paren group).
				break loop
			}
			p.tokens.Consume()
			lastOp = nil
			negative = false

		case lexer.Whitespace:
			p.tokens.Consume()
			continue

		default:
			break loop
		}
	}

	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if top.Kind == lexer.LParen {
			return nil, diagnostics.New("Open found with no close", "mismatched parentheses", top.Start)
		}
		if top.Kind != lexer.OperatorTok {
			return nil, diagnostics.NewSingular("unexpected error found in op_stack during shunting yard algorithm", top.Start)
		}
		postfix.Push(ast.OperatorItem(top.Op))
	}

	return &ast.Postfix{Stack: postfix}, nil
}
