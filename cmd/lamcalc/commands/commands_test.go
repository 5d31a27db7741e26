package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/lamcalc/pkg/church"
	"github.com/vic/lamcalc/pkg/lambda"
)

// execute runs the root command with fresh flag values and returns what
// it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestEvalPlus(t *testing.T) {
	out, _, err := execute(t, "eval", "plus", "2", "3", "--decode", "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, "λf.λx.(f (f (f (f (f x))))) = 5\n", out)
}

func TestEvalASCII(t *testing.T) {
	out, _, err := execute(t, "eval", "not", "true", "--ascii", "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, "\\x.\\y.y\n", out)
}

func TestEvalSingleWord(t *testing.T) {
	out, _, err := execute(t, "eval", "zero", "--decode", "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, "λf.λx.x = 0 (false)\n", out)
}

func TestEvalBudget(t *testing.T) {
	_, _, err := execute(t, "eval", "omega", "--max-steps", "20", "--stats=false")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lambda.ErrBudgetExceeded))
	assert.Contains(t, err.Error(), "evaluation failed")
}

func TestEvalBudgetFromEnv(t *testing.T) {
	t.Setenv(MaxStepsEnv, "20")
	_, _, err := execute(t, "eval", "omega", "--stats=false")
	assert.True(t, errors.Is(err, lambda.ErrBudgetExceeded))

	t.Setenv(MaxStepsEnv, "lots")
	_, _, err = execute(t, "eval", "omega", "--stats=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid $"+MaxStepsEnv)

	// The flag wins over the environment.
	out, _, err := execute(t, "eval", "I", "one", "--max-steps", "5", "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, "λf.λx.(f x)\n", out)
}

func TestEvalUnknownName(t *testing.T) {
	_, _, err := execute(t, "eval", "plus", "nope")
	var unknown *church.UnknownNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
}

func TestEvalNeedsArguments(t *testing.T) {
	_, _, err := execute(t, "eval")
	assert.Error(t, err)
}

func TestEvalStatsAndTrace(t *testing.T) {
	out, errOut, err := execute(t, "eval", "K", "a", "--stats", "--trace", "5")
	require.Error(t, err, "a is not a combinator")
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	out, errOut, err = execute(t, "eval", "K", "1", "2", "--stats", "--trace", "5")
	require.NoError(t, err)
	assert.Equal(t, "λf.λx.(f x)\n", out)
	assert.Contains(t, errOut, "Total Reductions: 2")
	assert.Contains(t, errOut, "Beta")
	assert.Contains(t, errOut, "Rename")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "true     λx.λy.x\n")
	assert.Contains(t, out, "succ     λn.λf.λx.(f ((n f) x))\n")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lamcalc version dev\n", out)
}
