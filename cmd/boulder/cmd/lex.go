package cmd

import (
	"fmt"

	"github.com/Sk3pz/boulder/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <input.rock>",
	Short: "Tokenize a .rock file and print the resulting tokens",
	Long: `Tokenize a boulder source file and print its token stream.

Pass "-" to read from stdin instead of a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err != nil {
		return err
	}

	tokens, lexErr := lexer.Lex(path, source)
	if lexErr != nil {
		printRendered(lexErr.Render(source, path))
		exitWithError("lexing failed")
		return nil
	}

	count := 0
	for {
		tok, ok := tokens.Consume()
		if !ok {
			break
		}
		count++
		if !quiet {
			if showPos {
				fmt.Printf("%s @%d:%d\n", tok.String(), tok.Start.Line, tok.Start.Column)
			} else {
				fmt.Println(tok.String())
			}
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Printf("---\ntotal tokens: %d\n", count)
	}
	return nil
}
