package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vic/lamcalc/pkg/church"
	"github.com/vic/lamcalc/pkg/lambda"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the combinator library",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ev := lambda.NewEvaluator(lambda.Config{})
		for _, name := range church.Names() {
			t, _ := church.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, render(ev, t))
		}
	},
}

func render(ev *lambda.Evaluator, t lambda.Term) string {
	if asciiOutput {
		return ev.RenderASCII(t)
	}
	return ev.Render(t)
}
