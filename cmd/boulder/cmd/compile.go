package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sk3pz/boulder/internal/codegen"
	"github.com/spf13/cobra"
)

var (
	compileOutput  string
	dumpASTCompile bool
)

var compileCmd = &cobra.Command{
	Use:     "compile <input.rock>",
	Aliases: []string{"cmp"},
	Short:   "Compile a .rock file to C (not yet implemented)",
	Long: `Compile a boulder program to C.

The C emitter is not yet implemented upstream of this front end; this
command lexes and parses its input and then reports that emission
isn't supported, unless --dump-ast is given, in which case it prints
the parsed AST instead of attempting to emit anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: <input>.c)")
	compileCmd.Flags().BoolVar(&dumpASTCompile, "dump-ast", false, "print the parsed AST instead of compiling it")
}

func runCompile(_ *cobra.Command, args []string) error {
	path := args[0]
	program, source, perr := parseFile(path)
	if perr != nil {
		printRendered(perr.Render(source, path))
		exitWithError("parsing failed")
		return nil
	}

	if dumpASTCompile {
		if !quiet {
			fmt.Println(program.String())
		}
		return nil
	}

	code, err := codegen.Emit(program)
	if err != nil {
		exitWithError("%v", err)
		return nil
	}

	outFile := compileOutput
	if outFile == "" {
		ext := filepath.Ext(path)
		if ext != "" {
			outFile = strings.TrimSuffix(path, ext) + ".c"
		} else {
			outFile = path + ".c"
		}
	}
	if err := os.WriteFile(outFile, []byte(code), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}
	if verbose {
		fmt.Printf("wrote %s\n", outFile)
	}
	return nil
}
