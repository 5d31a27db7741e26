// Package commands provides the CLI commands for the lamcalc tool.
package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// MaxStepsEnv supplies the default for --max-steps.
const MaxStepsEnv = "LAMCALC_MAX_STEPS"

var asciiOutput bool

var rootCmd = &cobra.Command{
	Use:   "lamcalc",
	Short: "Untyped lambda calculus evaluator",
	Long: `lamcalc normalizes untyped lambda terms built from a library of
Church-encoded combinators.

Usage:
  lamcalc eval plus 2 3         Apply plus to the numerals 2 and 3
  lamcalc eval not true         Apply not to true
  lamcalc list                  Show every combinator in the library
  lamcalc version               Print version`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&asciiOutput, "ascii", "a", false, `Render λ as \`)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
