package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vic/lamcalc/pkg/church"
	"github.com/vic/lamcalc/pkg/lambda"
)

var (
	evalMaxSteps uint64
	evalStats    bool
	evalDecode   bool
	evalTrace    int
)

var evalCmd = &cobra.Command{
	Use:   "eval NAME [ARG...]",
	Short: "Normalize a combinator applied to arguments",
	Long: `Eval applies the first word to each following word in turn and prints
the normal form. A word is either a combinator name (see 'lamcalc list') or
a decimal number, which stands for its Church numeral.

Examples:
  lamcalc eval plus 2 3               # λf.λx.(f (f (f (f (f x)))))
  lamcalc eval pred 0 --decode        # λf.λx.x = 0
  lamcalc eval omega --max-steps 1000 # fails instead of looping`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Uint64VarP(&evalMaxSteps, "max-steps", "m", 0,
		"Beta steps allowed before giving up, 0 for no limit (default from $"+MaxStepsEnv+")")
	evalCmd.Flags().BoolVar(&evalStats, "stats", stderrIsTerminal(), "Print reduction statistics to stderr")
	evalCmd.Flags().BoolVarP(&evalDecode, "decode", "d", false, "Decode numeral and boolean results")
	evalCmd.Flags().IntVar(&evalTrace, "trace", 0, "Print the first N reduction events to stderr")
}

func runEval(cmd *cobra.Command, args []string) error {
	terms := make([]lambda.Term, len(args))
	for i, word := range args {
		t, err := church.ParseArg(word)
		if err != nil {
			return err
		}
		terms[i] = t
	}

	maxSteps := evalMaxSteps
	if !cmd.Flags().Changed("max-steps") {
		var err error
		if maxSteps, err = maxStepsFromEnv(); err != nil {
			return err
		}
	}

	ev := lambda.NewEvaluator(lambda.Config{MaxSteps: maxSteps})
	if evalTrace > 0 {
		ev.EnableTrace(evalTrace)
	}

	start := time.Now()
	var res lambda.Term
	var err error
	if len(terms) == 1 {
		res, err = ev.Simplify(terms[0])
	} else {
		res, err = ev.ApplyAll(terms[0], terms[1:]...)
	}
	elapsed := time.Since(start)

	if evalTrace > 0 {
		printTrace(cmd.ErrOrStderr(), ev)
	}
	if evalStats {
		printStats(cmd.ErrOrStderr(), ev.Stats(), elapsed)
	}
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	out := render(ev, res)
	if evalDecode {
		out += decode(res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func maxStepsFromEnv() (uint64, error) {
	s := os.Getenv(MaxStepsEnv)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid $%s: %w", MaxStepsEnv, err)
	}
	return n, nil
}

func decode(t lambda.Term) string {
	n, isInt := church.ToInt(t)
	b, isBool := church.ToBool(t)
	switch {
	case isInt && isBool:
		return fmt.Sprintf(" = %d (%t)", n, b)
	case isInt:
		return fmt.Sprintf(" = %d", n)
	case isBool:
		return fmt.Sprintf(" = %t", b)
	default:
		return ""
	}
}

func printTrace(w io.Writer, ev *lambda.Evaluator) {
	for _, e := range ev.TraceSnapshot() {
		if u, ok := e.Arg.(lambda.Var); ok && e.Rule == lambda.RuleRename {
			fmt.Fprintf(w, "%6d %-6s %s -> %s\n", e.Step, e.Rule, e.Param.Name, u.Name)
			continue
		}
		fmt.Fprintf(w, "%6d %-6s %s <- %s\n", e.Step, e.Rule, e.Param.Name, render(ev, e.Arg))
	}
}

func printStats(w io.Writer, stats lambda.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Reductions: %d", stats.TotalReductions)
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(stats.TotalReductions)/seconds)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "\nBreakdown:\n")
	fmt.Fprintf(w, "  Beta:          %6d\n", stats.BetaReductions)
	fmt.Fprintf(w, "  Substitutions: %6d\n", stats.Substitutions)
	fmt.Fprintf(w, "  Renames:       %6d\n", stats.Renames)
	fmt.Fprintf(w, "  Stuck:         %6d\n", stats.StuckApplications)
}
