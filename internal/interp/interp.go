// Package interp is a stub for the tree-walking interpreter. Execution
// semantics are an external collaborator's concern for this module
// (see the front end's stated scope); this package only validates that
// it was handed a well-formed root and reports that running is not yet
// supported.
package interp

import (
	"github.com/Sk3pz/boulder/internal/ast"
)

// RuntimeError is the error type a future interpreter will return;
// kept separate from diagnostics.Error since runtime failures aren't
// tied to a source position the way lex/parse errors are.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

// Run validates ast is a Program and reports that interpretation is
// not yet implemented.
func Run(program *ast.Program) error {
	if program == nil {
		return &RuntimeError{Msg: "nil program"}
	}
	return &RuntimeError{Msg: "interpretation is not yet implemented"}
}
