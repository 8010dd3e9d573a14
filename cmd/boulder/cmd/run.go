package cmd

import (
	"fmt"

	"github.com/Sk3pz/boulder/internal/interp"
	"github.com/spf13/cobra"
)

var dumpASTRun bool

var runCmd = &cobra.Command{
	Use:     "run <input.rock>",
	Aliases: []string{"int", "interpret"},
	Short:   "Interpret a .rock file (not yet implemented)",
	Long: `Run a boulder program.

The interpreter is not yet implemented upstream of this front end; this
command lexes and parses its input and then reports that execution
isn't supported, unless --dump-ast is given, in which case it prints
the parsed AST instead of attempting to run it.`,
	Args: cobra.ExactArgs(1),
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpASTRun, "dump-ast", false, "print the parsed AST instead of running it")
}

func runInterpret(_ *cobra.Command, args []string) error {
	path := args[0]
	program, source, perr := parseFile(path)
	if perr != nil {
		printRendered(perr.Render(source, path))
		exitWithError("parsing failed")
		return nil
	}

	if dumpASTRun {
		if !quiet {
			fmt.Println(program.String())
		}
		return nil
	}

	if err := interp.Run(program); err != nil {
		exitWithError("%v", err)
	}
	return nil
}
