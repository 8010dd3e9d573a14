// Package lexer turns boulder source text into a stream of tokens.
//
// It is a single-pass, longest-match, position-preserving scanner.
// Whitespace and comments are emitted as Whitespace tokens rather than
// silently skipped — this keeps the lexer a pure function of its
// input with no implicit filtering policy, and it is the parser's
// TokenList helpers (OptionalWhitespace, Expect(Whitespace)) that
// strip them where the grammar allows.
package lexer

import (
	"strings"
	"unicode"

	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/operator"
	"github.com/Sk3pz/boulder/internal/position"
)

// reader is the character-stream half of the lexer: an eager,
// random-access buffer of runes plus the position cursor. Kept as a
// random-access slice (not an io.Reader) because the lexer peeks past
// the cursor: after a number it looks one character beyond a '.' to
// tell a decimal point from a property access.
type reader struct {
	runes []rune
	idx   int
	pos   Position
}

func newReader(file, input string) *reader {
	return &reader{runes: []rune(input), pos: position.NewPosition(file)}
}

func (r *reader) peekAt(n int) (rune, bool) {
	i := r.idx + n
	if i < 0 || i >= len(r.runes) {
		return 0, false
	}
	return r.runes[i], true
}

func (r *reader) peek() (rune, bool) {
	return r.peekAt(0)
}

// consume returns the next rune (if any), advances the cursor, and
// updates the position: Next is always called, Newline is called
// additionally when the consumed rune is '\n'.
func (r *reader) consume() (rune, bool) {
	ch, ok := r.peek()
	if !ok {
		return 0, false
	}
	r.idx++
	r.pos.Next()
	if ch == '\n' {
		r.pos.Newline()
	}
	return ch, true
}

// Lex scans the entire input and returns a List terminated by a
// single EOF token. A lex error aborts immediately — the source
// language's lexer has no error-recovery mode, so neither does this
// one: the returned error is the first (and only) failure encountered.
func Lex(file, input string) (*List, *diagnostics.Error) {
	r := newReader(file, input)
	var tokens []Token

	for {
		ch, ok := r.peek()
		if !ok {
			break
		}
		start := r.pos
		tok, err := lexOne(r, ch, start)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, NewToken(EOF, r.pos, r.pos))
	return NewList(tokens), nil
}

func lexOne(r *reader, ch rune, start Position) (Token, *diagnostics.Error) {
	switch {
	case ch == ' ' || ch == '\n' || ch == '\t':
		r.consume()
		return NewToken(Whitespace, start, r.pos), nil
	case ch == ';':
		r.consume()
		return NewToken(NOP, start, r.pos), nil
	case ch == '(':
		r.consume()
		return NewToken(LParen, start, r.pos), nil
	case ch == ')':
		r.consume()
		return NewToken(RParen, start, r.pos), nil
	case ch == '{':
		r.consume()
		return NewToken(LBrace, start, r.pos), nil
	case ch == '}':
		r.consume()
		return NewToken(RBrace, start, r.pos), nil
	case ch == '[':
		r.consume()
		return NewToken(LBracket, start, r.pos), nil
	case ch == ']':
		r.consume()
		return NewToken(RBracket, start, r.pos), nil
	case ch == ',':
		r.consume()
		return NewToken(Comma, start, r.pos), nil
	case ch == '@':
		r.consume()
		return NewToken(Interrupt, start, r.pos), nil
	case ch == '?':
		r.consume()
		return NewToken(Panic, start, r.pos), nil
	case ch == ':':
		r.consume()
		if n, ok := r.peek(); ok && n == ':' {
			r.consume()
			return NewToken(DoubleColon, start, r.pos), nil
		}
		return NewToken(Colon, start, r.pos), nil
	case ch == '.':
		return lexDot(r, start)
	case ch == '"':
		return lexString(r, start)
	case ch == '\'':
		return lexChar(r, start)
	case ch == '+':
		return lexPlus(r, start)
	case ch == '-':
		return lexMinus(r, start)
	case ch == '*':
		return lexOpOrAssign(r, start, '*', operator.Mul, operator.MulAssign)
	case ch == '/':
		return lexSlash(r, start)
	case ch == '%':
		return lexOpOrAssign(r, start, '%', operator.Mod, operator.ModAssign)
	case ch == '^':
		return lexOpOrAssign(r, start, '^', operator.Xor, operator.XorAssign)
	case ch == '&':
		return lexAmpOrPipe(r, start, '&', operator.BoolAnd, operator.And, operator.AndAssign)
	case ch == '|':
		return lexAmpOrPipe(r, start, '|', operator.BoolOr, operator.Or, operator.OrAssign)
	case ch == '=':
		return lexEquals(r, start)
	case ch == '<':
		return lexLess(r, start)
	case ch == '>':
		return lexGreater(r, start)
	case ch == '!':
		return lexBang(r, start)
	case ch == '0':
		return lexZero(r, start)
	case isIdentStart(ch):
		return lexIdent(r, start), nil
	case unicode.IsDigit(ch):
		return lexNumber(r, start)
	default:
		r.consume()
		return Token{}, diagnostics.New("Unexpected character", "'"+string(ch)+"'", start)
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentCont(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func lexDot(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '.'
	n, ok := r.peek()
	if !ok || n != '.' {
		return NewToken(Dot, start, r.pos), nil
	}
	r.consume() // second '.'
	if n2, ok := r.peek(); ok && n2 == '=' {
		r.consume()
		return NewOp(operator.IRange, start, r.pos), nil
	}
	return NewOp(operator.Range, start, r.pos), nil
}

func lexString(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // opening '"'
	var sb strings.Builder
	for {
		ch, ok := r.consume()
		if !ok {
			return Token{}, diagnostics.New("String literal with no close", "reached end of file", start)
		}
		if ch == '"' {
			return NewLit(StringLit, sb.String(), start, r.pos), nil
		}
		sb.WriteRune(ch)
	}
}

func lexChar(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // opening '\''
	ch, ok := r.consume()
	if !ok {
		return Token{}, diagnostics.New("Character literal with no close", "reached end of file", start)
	}
	closing, ok := r.consume()
	if !ok || closing != '\'' {
		return Token{}, diagnostics.New("Character literal with no close", "expected closing '\\''", start)
	}
	return NewLit(CharLit, string(ch), start, r.pos), nil
}

func lexPlus(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '+'
	if n, ok := r.peek(); ok {
		if n == '+' {
			r.consume()
			return NewOp(operator.Inc, start, r.pos), nil
		}
		if n == '=' {
			r.consume()
			return NewOp(operator.AddAssign, start, r.pos), nil
		}
	}
	return NewOp(operator.Add, start, r.pos), nil
}

func lexMinus(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '-'
	if n, ok := r.peek(); ok {
		if n == '-' {
			r.consume()
			return NewOp(operator.Dec, start, r.pos), nil
		}
		if n == '>' {
			r.consume()
			return NewOp(operator.Move, start, r.pos), nil
		}
		if n == '=' {
			r.consume()
			return NewOp(operator.SubAssign, start, r.pos), nil
		}
	}
	return NewOp(operator.Sub, start, r.pos), nil
}

// lexOpOrAssign handles the simple "op" / "op=" pairs: * % ^.
func lexOpOrAssign(r *reader, start Position, _ rune, op, assignOp operator.Operator) (Token, *diagnostics.Error) {
	r.consume()
	if n, ok := r.peek(); ok && n == '=' {
		r.consume()
		return NewOp(assignOp, start, r.pos), nil
	}
	return NewOp(op, start, r.pos), nil
}

func lexSlash(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '/'
	n, ok := r.peek()
	if ok && n == '/' {
		r.consume()
		for {
			c, ok := r.peek()
			if !ok {
				break
			}
			r.consume()
			if c == '\n' {
				break
			}
		}
		return NewToken(Whitespace, start, r.pos), nil
	}
	if ok && n == '*' {
		r.consume()
		for {
			c, ok := r.consume()
			if !ok {
				return Token{}, diagnostics.New("Unterminated block comment", "reached end of file", start)
			}
			if c == '*' {
				if c2, ok := r.peek(); ok && c2 == '/' {
					r.consume()
					break
				}
			}
		}
		return NewToken(Whitespace, start, r.pos), nil
	}
	if ok && n == '=' {
		r.consume()
		return NewOp(operator.DivAssign, start, r.pos), nil
	}
	return NewOp(operator.Div, start, r.pos), nil
}

// lexAmpOrPipe handles '&'/'|': doubled becomes the boolean form,
// otherwise the bitwise form or its compound-assignment variant.
func lexAmpOrPipe(r *reader, start Position, self rune, boolOp, bitOp, assignOp operator.Operator) (Token, *diagnostics.Error) {
	r.consume()
	if n, ok := r.peek(); ok {
		if n == self {
			r.consume()
			return NewOp(boolOp, start, r.pos), nil
		}
		if n == '=' {
			r.consume()
			return NewOp(assignOp, start, r.pos), nil
		}
	}
	return NewOp(bitOp, start, r.pos), nil
}

func lexEquals(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '='
	if n, ok := r.peek(); ok {
		if n == '>' {
			r.consume()
			return NewOp(operator.Right, start, r.pos), nil
		}
		if n == '=' {
			r.consume()
			return NewOp(operator.Eq, start, r.pos), nil
		}
	}
	return NewOp(operator.Assign, start, r.pos), nil
}

// lexLess lexes everything starting with '<': the shift operators
// "<<"/"<<<"/"<<=", and the comparison operators. The source language
// this lexer reimplements swaps Gt/Gte onto '<'/'<=' by mistake; here
// '<' correctly yields Lt and '<=' correctly yields Lte.
func lexLess(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '<'
	if n, ok := r.peek(); ok && n == '<' {
		r.consume()
		if n2, ok := r.peek(); ok && n2 == '<' {
			r.consume()
			return NewOp(operator.Shlu, start, r.pos), nil
		}
		if n2, ok := r.peek(); ok && n2 == '=' {
			r.consume()
			return NewOp(operator.ShlAssign, start, r.pos), nil
		}
		return NewOp(operator.Shl, start, r.pos), nil
	}
	if n, ok := r.peek(); ok && n == '=' {
		r.consume()
		return NewOp(operator.Lte, start, r.pos), nil
	}
	return NewOp(operator.Lt, start, r.pos), nil
}

// lexGreater is symmetric to lexLess for '>'/'>>'/'>>>'/'>>='/'>='.
func lexGreater(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '>'
	if n, ok := r.peek(); ok && n == '>' {
		r.consume()
		if n2, ok := r.peek(); ok && n2 == '>' {
			r.consume()
			return NewOp(operator.Shru, start, r.pos), nil
		}
		if n2, ok := r.peek(); ok && n2 == '=' {
			r.consume()
			return NewOp(operator.ShrAssign, start, r.pos), nil
		}
		return NewOp(operator.Shr, start, r.pos), nil
	}
	if n, ok := r.peek(); ok && n == '=' {
		r.consume()
		return NewOp(operator.Gte, start, r.pos), nil
	}
	return NewOp(operator.Gt, start, r.pos), nil
}

func lexBang(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '!'
	if n, ok := r.peek(); ok && n == '=' {
		r.consume()
		return NewOp(operator.Neq, start, r.pos), nil
	}
	return NewOp(operator.Not, start, r.pos), nil
}

func lexZero(r *reader, start Position) (Token, *diagnostics.Error) {
	r.consume() // '0'
	if n, ok := r.peek(); ok && n == 'x' {
		r.consume()
		var sb strings.Builder
		for {
			c, ok := r.peek()
			if !ok || !isHexDigit(c) {
				break
			}
			r.consume()
			sb.WriteRune(c)
		}
		return NewLit(HexLit, sb.String(), start, r.pos), nil
	}
	if n, ok := r.peek(); ok && n == 'b' {
		r.consume()
		var sb strings.Builder
		for {
			c, ok := r.peek()
			if !ok || (c != '0' && c != '1') {
				break
			}
			r.consume()
			sb.WriteRune(c)
		}
		return NewLit(BinLit, sb.String(), start, r.pos), nil
	}
	return lexNumberFrom(r, start, "0")
}

func isHexDigit(c rune) bool {
	return unicode.IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func lexNumber(r *reader, start Position) (Token, *diagnostics.Error) {
	return lexNumberFrom(r, start, "")
}

// lexNumberFrom scans decimal digits, with prefix already consumed
// (e.g. the leading "0" in lexZero's fallthrough case). A '.' followed
// by a digit is rejected: floating-point literals are an explicit
// non-goal. A '.' followed by a non-digit terminates the literal
// (it belongs to a following property access, e.g. "3.to_string()").
func lexNumberFrom(r *reader, start Position, prefix string) (Token, *diagnostics.Error) {
	var sb strings.Builder
	sb.WriteString(prefix)
	for {
		c, ok := r.peek()
		if !ok || !unicode.IsDigit(c) {
			break
		}
		r.consume()
		sb.WriteRune(c)
	}
	if c, ok := r.peek(); ok && c == '.' {
		if n, ok := r.peekAt(1); ok && unicode.IsDigit(n) {
			return Token{}, diagnostics.New("Unexpected Token", "Decimals/floating point numbers are not yet supported", r.pos)
		}
	}
	return NewLit(NumberLit, sb.String(), start, r.pos), nil
}

func lexIdent(r *reader, start Position) Token {
	var sb strings.Builder
	for {
		c, ok := r.peek()
		if !ok || !isIdentCont(c) {
			break
		}
		r.consume()
		sb.WriteRune(c)
	}
	text := sb.String()
	if kind, ok := keywords[text]; ok {
		return NewToken(kind, start, r.pos)
	}
	return NewIdent(text, start, r.pos)
}
