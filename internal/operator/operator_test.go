package operator

import "testing"

func TestLexemeCorrectsDivBug(t *testing.T) {
	if got := Div.Lexeme(); got != "/" {
		t.Fatalf("Div.Lexeme() = %q, want %q (the source language's own as_raw() returns %q by mistake)", got, "/", "+")
	}
}

func TestLexeme(t *testing.T) {
	cases := map[Operator]string{
		Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
		Lt: "<", Lte: "<=", Gt: ">", Gte: ">=",
		Shl: "<<", Shlu: "<<<", Shr: ">>", Shru: ">>>",
		BoolAnd: "&&", BoolOr: "||",
		Inc: "++", Dec: "--",
		Move: "->", Right: "=>",
		Range: "..", IRange: "..=",
	}
	for op, want := range cases {
		if got := op.Lexeme(); got != want {
			t.Errorf("%v.Lexeme() = %q, want %q", op, got, want)
		}
	}
}

func TestPrecedenceBuckets(t *testing.T) {
	bucket0 := []Operator{Add, Sub, Lt, Gt}
	bucket1 := []Operator{Mul, Div, Mod, Lte, Gte, BoolAnd, BoolOr}
	bucket2 := []Operator{Xor, And, Or, Not, Shl, Shr, Shlu, Shru, Eq, Neq}

	check := func(ops []Operator, want int) {
		for _, op := range ops {
			p, ok := Precedence(op)
			if !ok {
				t.Errorf("Precedence(%v) undefined, want bucket %d", op, want)
				continue
			}
			if p != want {
				t.Errorf("Precedence(%v) = %d, want %d", op, p, want)
			}
		}
	}
	check(bucket0, 0)
	check(bucket1, 1)
	check(bucket2, 2)
}

func TestPrecedenceUndefinedForNonBinary(t *testing.T) {
	for _, op := range []Operator{Assign, AddAssign, Move, Right, Range, IRange, Inc, Dec} {
		if _, ok := Precedence(op); ok {
			t.Errorf("Precedence(%v) should be undefined", op)
		}
	}
}

func TestIsBoolean(t *testing.T) {
	boolean := []Operator{Eq, Neq, Lt, Lte, Gt, Gte, BoolAnd, BoolOr}
	for _, op := range boolean {
		if !IsBoolean(op) {
			t.Errorf("IsBoolean(%v) = false, want true", op)
		}
	}
	notBoolean := []Operator{Add, Sub, Mul, Div, Mod, And, Or, Xor, Not}
	for _, op := range notBoolean {
		if IsBoolean(op) {
			t.Errorf("IsBoolean(%v) = true, want false", op)
		}
	}
}

func TestIsCompoundAssign(t *testing.T) {
	for _, op := range []Operator{AddAssign, SubAssign, MulAssign, DivAssign, ModAssign, XorAssign, AndAssign, OrAssign, ShlAssign, ShrAssign} {
		if !IsCompoundAssign(op) {
			t.Errorf("IsCompoundAssign(%v) = false, want true", op)
		}
	}
	if IsCompoundAssign(Assign) {
		t.Error("IsCompoundAssign(Assign) should be false: plain assignment is not compound")
	}
}
