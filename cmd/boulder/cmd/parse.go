package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input.rock>",
	Short: "Parse a .rock file and print its AST",
	Long: `Parse a boulder source file and print the resulting Program AST.

Pass "-" to read from stdin instead of a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]
	program, source, perr := parseFile(path)
	if perr != nil {
		printRendered(perr.Render(source, path))
		exitWithError("parsing failed")
		return nil
	}
	if !quiet {
		fmt.Println(program.String())
	}
	return nil
}
