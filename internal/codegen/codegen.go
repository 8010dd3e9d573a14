// Package codegen is a stub for the C code emitter. Code generation is
// an external collaborator's concern for this module (see the front
// end's stated scope); this package only reports that emitting is not
// yet supported.
package codegen

import (
	"fmt"

	"github.com/Sk3pz/boulder/internal/ast"
)

// EmitError is returned by Emit; kept distinct from diagnostics.Error
// since it is not tied to a source position.
type EmitError struct {
	Msg string
}

func (e *EmitError) Error() string { return e.Msg }

// Emit would lower program to C source; not yet implemented.
func Emit(program *ast.Program) (string, error) {
	if program == nil {
		return "", &EmitError{Msg: "nil program"}
	}
	return "", &EmitError{Msg: fmt.Sprintf("C code generation is not yet implemented (%d top-level statements)", len(program.Body))}
}
