package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	debugMode   bool
	releaseMode bool
	quiet       bool
	verbose     bool
	useColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "boulder",
	Short:   "The boulder language front end",
	Version: Version,
	Long: `boulder lexes and parses .rock source files.

This is a Go port of the boulder front end: the lexer, the two-tier
recursive-descent parser, and the shunting-yard expression grammar.
Code generation and interpretation remain stubs.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "build/run in debug mode")
	rootCmd.PersistentFlags().BoolVarP(&releaseMode, "release", "r", false, "build/run in release mode (overrides --debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "i", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&useColor, "color", "c", false, "colorize diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
