package lexer

import (
	"testing"

	"github.com/Sk3pz/boulder/internal/operator"
)

func kinds(t *testing.T, l *List) []Kind {
	t.Helper()
	var ks []Kind
	for {
		tok, ok := l.Consume()
		if !ok {
			break
		}
		ks = append(ks, tok.Kind)
	}
	return ks
}

func TestLexEmptyInput(t *testing.T) {
	l, err := Lex("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	if len(ks) != 1 || ks[0] != EOF {
		t.Fatalf("expected just EOF, got %v", ks)
	}
}

func TestLexLoneSemicolon(t *testing.T) {
	l, err := Lex("", ";")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	if len(ks) != 2 || ks[0] != NOP || ks[1] != EOF {
		t.Fatalf("got %v", ks)
	}
}

func TestLexLoneBlockComment(t *testing.T) {
	l, err := Lex("", "/* nothing here */")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	if len(ks) != 2 || ks[0] != Whitespace || ks[1] != EOF {
		t.Fatalf("got %v", ks)
	}
}

func TestLexKeywordsAndIdent(t *testing.T) {
	l, err := Lex("", "fn main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	want := []Kind{Fn, Whitespace, Ident, EOF}
	if len(ks) != len(want) {
		t.Fatalf("got %v want %v", ks, want)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, ks[i], want[i])
		}
	}
}

func TestLexMacroIsPlainIdent(t *testing.T) {
	l, err := Lex("", "macro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, _ := l.Peek()
	if tok.Kind != Ident || tok.Lexeme != "macro" {
		t.Fatalf("got %v, want Ident(macro)", tok)
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	cases := map[string]operator.Operator{
		"<<<": operator.Shlu,
		">>>": operator.Shru,
		"..=": operator.IRange,
		"<<=": operator.ShlAssign,
		">>=": operator.ShrAssign,
		"<<":  operator.Shl,
		">>":  operator.Shr,
		"..":  operator.Range,
		"++":  operator.Inc,
		"--":  operator.Dec,
		"->":  operator.Move,
		"=>":  operator.Right,
		"<=":  operator.Lte,
		">=":  operator.Gte,
		"==":  operator.Eq,
		"!=":  operator.Neq,
		"&&":  operator.BoolAnd,
		"||":  operator.BoolOr,
	}
	for src, want := range cases {
		l, err := Lex("", src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		tok, ok := l.Peek()
		if !ok || tok.Kind != OperatorTok || tok.Op != want {
			t.Fatalf("%q: got %v, want Operator(%v)", src, tok, want)
		}
	}
}

func TestLexLtGtAreNotSwapped(t *testing.T) {
	for src, want := range map[string]operator.Operator{
		"<": operator.Lt, "<=": operator.Lte,
		">": operator.Gt, ">=": operator.Gte,
	} {
		l, _ := Lex("", src)
		tok, _ := l.Peek()
		if tok.Op != want {
			t.Fatalf("%q lexed as %v, want %v (source bug must be fixed, not preserved)", src, tok.Op, want)
		}
	}
}

func TestLexNumericLiterals(t *testing.T) {
	l, err := Lex("", "123")
	if err != nil || len(l.tokens) != 2 {
		t.Fatalf("unexpected: %v %v", l, err)
	}
	tok, _ := l.Peek()
	if tok.Kind != NumberLit || tok.Lexeme != "123" {
		t.Fatalf("got %v", tok)
	}
}

func TestLexHexAndBinLiterals(t *testing.T) {
	l, _ := Lex("", "0xFF")
	tok, _ := l.Peek()
	if tok.Kind != HexLit || tok.Lexeme != "FF" {
		t.Fatalf("hex: got %v", tok)
	}

	l2, _ := Lex("", "0b101")
	tok2, _ := l2.Peek()
	if tok2.Kind != BinLit || tok2.Lexeme != "101" {
		t.Fatalf("bin: got %v", tok2)
	}
}

func TestLexHexWithNoDigitsIsEmptyLexeme(t *testing.T) {
	l, err := Lex("", "0x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, _ := l.Peek()
	if tok.Kind != HexLit || tok.Lexeme != "" {
		t.Fatalf("got %v, want empty HexLit (preserved behavior)", tok)
	}
}

func TestLexDecimalPointRejected(t *testing.T) {
	_, err := Lex("", "3.14")
	if err == nil {
		t.Fatal("expected an error for a decimal literal")
	}
}

func TestLexDotAfterNumberIsPropertyAccess(t *testing.T) {
	l, err := Lex("", "3.to_string")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	want := []Kind{NumberLit, Dot, Ident, EOF}
	if len(ks) != len(want) {
		t.Fatalf("got %v want %v", ks, want)
	}
}

func TestLexStringLiteral(t *testing.T) {
	l, err := Lex("", `"hello"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, _ := l.Peek()
	if tok.Kind != StringLit || tok.Lexeme != "hello" {
		t.Fatalf("got %v", tok)
	}
}

func TestLexUnterminatedStringErrors(t *testing.T) {
	_, err := Lex("", `"hello`)
	if err == nil || err.Heading != "String literal with no close" {
		t.Fatalf("got %v", err)
	}
}

func TestLexStringWithTrailingNewlineIncludesIt(t *testing.T) {
	l, err := Lex("", "\"a\nb\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, _ := l.Peek()
	if tok.Lexeme != "a\nb" {
		t.Fatalf("got %q", tok.Lexeme)
	}
}

func TestLexCharLiteral(t *testing.T) {
	l, err := Lex("", "'x'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, _ := l.Peek()
	if tok.Kind != CharLit || tok.Lexeme != "x" {
		t.Fatalf("got %v", tok)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := Lex("", "$")
	if err == nil || err.Heading != "Unexpected character" {
		t.Fatalf("got %v", err)
	}
}

func TestLexLineComment(t *testing.T) {
	l, err := Lex("", "// comment\nfn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ks := kinds(t, l)
	want := []Kind{Whitespace, Fn, EOF}
	if len(ks) != len(want) {
		t.Fatalf("got %v want %v", ks, want)
	}
}

func TestTokenSpanOrdering(t *testing.T) {
	l, err := Lex("", "fn main() {\n  return 1;\n}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for {
		tok, ok := l.Consume()
		if !ok {
			break
		}
		if tok.End.Line < tok.Start.Line {
			t.Fatalf("token %v has end line before start", tok)
		}
		if tok.End.Line == tok.Start.Line && tok.End.Column < tok.Start.Column {
			t.Fatalf("token %v has end column before start on same line", tok)
		}
	}
}
