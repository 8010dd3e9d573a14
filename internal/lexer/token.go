package lexer

import (
	"fmt"
	"strings"

	"github.com/Sk3pz/boulder/internal/diagnostics"
	"github.com/Sk3pz/boulder/internal/operator"
	"github.com/Sk3pz/boulder/internal/position"
)

// Position is an alias for the shared source-position type, kept in
// its own package since both the lexer and diagnostics depend on it.
type Position = position.Position

// Kind is the closed set of token kinds the lexer can produce.
type Kind int

const (
	// Structural punctuation.
	NOP Kind = iota // a lone ';'
	LParen
	RParen
	LBrace // '{'
	RBrace // '}'
	LBracket // '['
	RBracket // ']'
	Comma
	Dot
	Colon
	DoubleColon
	Interrupt // '@'
	Panic     // '?'

	// Literals and identifiers.
	Ident
	StringLit
	CharLit
	NumberLit
	HexLit
	BinLit

	// The operator token: payload carried in Token.Op, never Token.Lexeme.
	OperatorTok

	// Keywords.
	Fn
	Let
	If
	Else
	While
	For
	Loop
	Return
	Match
	Struct
	Assert
	In
	Use
	BoolTrue
	BoolFalse

	Whitespace
	EOF
)

var kindNames = [...]string{
	NOP: "NOP", LParen: "LParen", RParen: "RParen",
	LBrace: "LBrace", RBrace: "RBrace", LBracket: "LBracket", RBracket: "RBracket",
	Comma: "Comma", Dot: "Dot", Colon: "Colon", DoubleColon: "DoubleColon",
	Interrupt: "Interrupt", Panic: "Panic",
	Ident: "Ident", StringLit: "StringLit", CharLit: "CharLit",
	NumberLit: "NumberLit", HexLit: "HexLit", BinLit: "BinLit",
	OperatorTok: "Operator",
	Fn:          "Fn", Let: "Let", If: "If", Else: "Else", While: "While",
	For: "For", Loop: "Loop", Return: "Return", Match: "Match", Struct: "Struct",
	Assert: "Assert", In: "In", Use: "Use", BoolTrue: "BoolTrue", BoolFalse: "BoolFalse",
	Whitespace: "Whitespace", EOF: "EOF",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(invalid)"
	}
	return kindNames[k]
}

// keywords maps identifier text to its keyword Kind. "macro" is
// deliberately absent: the source language reserves the word but
// never lexes it specially (a full macro system is a stated
// non-goal), so "macro" lexes as a plain Ident.
var keywords = map[string]Kind{
	"fn": Fn, "let": Let, "if": If, "else": Else, "while": While,
	"for": For, "loop": Loop, "return": Return, "match": Match,
	"struct": Struct, "assert": Assert, "in": In, "use": Use,
	"true": BoolTrue, "false": BoolFalse,
}

// Token is one lexed unit: a kind, an optional lexeme or operator
// payload (never both), and a start/end span.
type Token struct {
	Kind   Kind
	Lexeme string // set for Ident/StringLit/CharLit/NumberLit/HexLit/BinLit
	HasLex bool
	Op     operator.Operator
	HasOp  bool
	Start  Position
	End    Position
}

// NewToken builds a payload-free structural/keyword/whitespace/EOF token.
func NewToken(kind Kind, start, end Position) Token {
	return Token{Kind: kind, Start: start, End: end}
}

// NewLit builds a token carrying a lexeme payload.
func NewLit(kind Kind, lexeme string, start, end Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, HasLex: true, Start: start, End: end}
}

// NewIdent builds an Ident token.
func NewIdent(lexeme string, start, end Position) Token {
	return NewLit(Ident, lexeme, start, end)
}

// NewOp builds an Operator token carrying an operator tag.
func NewOp(op operator.Operator, start, end Position) Token {
	return Token{Kind: OperatorTok, Op: op, HasOp: true, Start: start, End: end}
}

// String renders "Kind" or "Kind: payload" for debugging and for the
// postfix/token-stream display properties in the testable-properties
// section of the spec.
func (t Token) String() string {
	switch {
	case t.HasLex:
		return fmt.Sprintf("%s: %s", t.Kind, t.Lexeme)
	case t.HasOp:
		return fmt.Sprintf("%s: %s", t.Kind, t.Op)
	default:
		return t.Kind.String()
	}
}

// List is an ordered, cursor-owning sequence of tokens terminated by
// exactly one EOF token. It owns the consumption cursor directly
// (peek/consume operate relative to an internal index), the idiomatic
// Go analogue of the source language's TokenList.
type List struct {
	tokens []Token
	cursor int
	eofPos Position
}

// NewList wraps tokens (which must end with an EOF token) into a List.
func NewList(tokens []Token) *List {
	eofPos := Position{}
	if len(tokens) > 0 {
		eofPos = tokens[len(tokens)-1].Start
	}
	return &List{tokens: tokens, eofPos: eofPos}
}

// EOF returns the retained EOF position, valid even after the EOF
// token itself has been consumed — used by the parser to report
// unexpected-end-of-file diagnostics.
func (l *List) EOF() Position {
	return l.eofPos
}

// PeekNth returns the token n places ahead of the cursor without
// consuming it, and whether one exists.
func (l *List) PeekNth(n int) (Token, bool) {
	idx := l.cursor + n
	if idx < 0 || idx >= len(l.tokens) {
		return Token{}, false
	}
	return l.tokens[idx], true
}

// Peek returns the next token without consuming it.
func (l *List) Peek() (Token, bool) {
	return l.PeekNth(0)
}

// Consume removes and returns the next token, if any.
func (l *List) Consume() (Token, bool) {
	t, ok := l.PeekNth(0)
	if ok {
		l.cursor++
	}
	return t, ok
}

// IsEmpty reports whether there are no more tokens to consume.
func (l *List) IsEmpty() bool {
	return l.cursor >= len(l.tokens)
}

// Len returns the number of tokens remaining.
func (l *List) Len() int {
	return len(l.tokens) - l.cursor
}

// NextIs reports whether the next token (if any) has the given kind.
func (l *List) NextIs(k Kind) bool {
	t, ok := l.Peek()
	return ok && t.Kind == k
}

// OptionalWhitespace consumes tokens until the next non-Whitespace
// token or EOF.
func (l *List) OptionalWhitespace() {
	for {
		t, ok := l.Peek()
		if !ok || t.Kind != Whitespace {
			return
		}
		l.Consume()
	}
}

// ExpectWhitespace requires at least one Whitespace token, consumes it
// along with any further whitespace, and returns the first one.
func (l *List) ExpectWhitespace() (Token, *diagnostics.Error) {
	t, ok := l.Consume()
	if !ok {
		return Token{}, diagnostics.New("Unexpected EOF", "expected Whitespace", l.EOF())
	}
	if t.Kind != Whitespace {
		return Token{}, diagnostics.New("Unexpected token", "expected Whitespace", t.Start)
	}
	l.OptionalWhitespace()
	return t, nil
}

// Expect requires the next non-whitespace token (whitespace is
// skipped first, unless kind itself is Whitespace) to have kind, and
// consumes it.
func (l *List) Expect(kind Kind) (Token, *diagnostics.Error) {
	if kind == Whitespace {
		return l.ExpectWhitespace()
	}
	l.OptionalWhitespace()
	t, ok := l.Consume()
	if !ok {
		return Token{}, diagnostics.New("Unexpected EOF", fmt.Sprintf("expected %s", kind), l.EOF())
	}
	if t.Kind != kind {
		return Token{}, diagnostics.New(fmt.Sprintf("Expected %s", kind), fmt.Sprintf("But found %s", t.Kind), t.Start)
	}
	return t, nil
}

// OptionalExpect skips any whitespace (unless kind itself is
// Whitespace), then consumes and returns the next token if it has
// kind; otherwise that token stays in place and it returns false.
func (l *List) OptionalExpect(kind Kind) (Token, bool) {
	if kind == Whitespace {
		t, ok := l.Peek()
		if !ok || t.Kind != Whitespace {
			return Token{}, false
		}
		l.Consume()
		l.OptionalWhitespace()
		return t, true
	}
	l.OptionalWhitespace()
	t, ok := l.Peek()
	if !ok || t.Kind != kind {
		return Token{}, false
	}
	l.Consume()
	return t, true
}

// ExpectOp requires an Operator token whose tag is op and returns it.
func (l *List) ExpectOp(op operator.Operator) (operator.Operator, *diagnostics.Error) {
	t, err := l.Expect(OperatorTok)
	if err != nil {
		return 0, err
	}
	if t.Op != op {
		return 0, diagnostics.New(fmt.Sprintf("Expected %s", op), fmt.Sprintf("But found %s", t.Op), t.Start)
	}
	return t.Op, nil
}

// OptionalOp skips any whitespace, then consumes and returns the next
// token's operator tag if that token is an Operator token whose tag is
// op; otherwise that token stays in place and it returns false.
func (l *List) OptionalOp(op operator.Operator) (operator.Operator, bool) {
	l.OptionalWhitespace()
	t, ok := l.Peek()
	if !ok || t.Kind != OperatorTok || t.Op != op {
		return 0, false
	}
	l.Consume()
	return t.Op, true
}

// String renders the remaining tokens, five per line, matching the
// source language's own debug Display for a token list.
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	remaining := l.tokens[l.cursor:]
	for i, t := range remaining {
		if i != 0 && i%5 == 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.String())
		if i != len(remaining)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
