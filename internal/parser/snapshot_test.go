package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestSnapshotScenarios snapshots the AST String() rendering for six
// representative inputs, so a
// change in either rendering shows up as a diff against the recorded
// golden file rather than a silent behavior change.
func TestSnapshotScenarios(t *testing.T) {
	scenarios := map[string]string{
		"fn_return":             "fn main() { return 0; }",
		"arithmetic_precedence": "fn f() { let x: i32 = 1 + 2 * 3; }",
		"leading_unary_minus":   "fn f() { -x + 4; }",
		"property_chain":        "fn f() { a.b.c(); }",
		"if_else":               "fn f() { if x < 10 { } else { } }",
		"assignment":            "fn f() { a = b + c; }",
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			program := parse(t, src)
			snaps.MatchSnapshot(t, name, program.String())
		})
	}
}
