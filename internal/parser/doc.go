// Package parser implements the source language's parser.
//
// It is a two-tier recursive-descent parser: one grammar for top-level
// declarations (imports, functions), another for statement/expression
// bodies inside a function. Mixed arithmetic and boolean expressions
// are delegated to a shunting-yard routine that produces a
// reverse-Polish postfix stream embedded directly in the AST (see
// ast.Postfix / ast.ShuntedStack).
//
// Example usage:
//
//	tokens, err := lexer.Lex("main.rock", source)
//	if err != nil {
//	    // handle lex error
//	}
//	program, perr := parser.New(tokens).ParseProgram()
//	if perr != nil {
//	    // handle parse error
//	}
package parser
