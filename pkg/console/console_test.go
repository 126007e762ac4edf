package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/formula_tree/pkg/engine"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig(), log.NewNopLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewSession(e, strings.NewReader(input), &out, nil).Run())
	return out.String()
}

func TestSession_Evaluate(t *testing.T) {
	out := runSession(t, "a*c + b*c\ny\n2\n3\n4\n")

	assert.Contains(t, out, "Original:   ((a * c) + (b * c))")
	assert.Contains(t, out, "Simplified: ((a + b) * c)")
	assert.Contains(t, out, "Value of 'a': ")
	assert.Contains(t, out, "Value of 'b': ")
	assert.Contains(t, out, "Value of 'c': ")
	assert.Contains(t, out, "Result: 20")
}

func TestSession_VariablesPromptedInSortedOrder(t *testing.T) {
	out := runSession(t, "z - a\ny\n1\n5\n")

	assert.Less(t, strings.Index(out, "Value of 'a'"), strings.Index(out, "Value of 'z'"))
	assert.Contains(t, out, "Result: 4")
}

func TestSession_RetriesInvalidInteger(t *testing.T) {
	out := runSession(t, "x + 1\ny\nseven\n7\n")

	assert.Equal(t, 1, strings.Count(out, "an integer is required"))
	assert.Contains(t, out, "Result: 8")
}

func TestSession_SkipEvaluation(t *testing.T) {
	out := runSession(t, "2 + 3*4\nn\n")

	assert.Contains(t, out, "Simplified: 14")
	assert.NotContains(t, out, "Result:")
}

func TestSession_Errors(t *testing.T) {
	out := runSession(t, "(a+b\na/b\ny\n5\n0\n")

	assert.Contains(t, out, "Error: syntax error at position 4: expected closing parenthesis")
	assert.Contains(t, out, "Error: division by zero")
}

func TestSession_StopsOnEmptyLine(t *testing.T) {
	out := runSession(t, "\na+b\n")

	assert.NotContains(t, out, "Original:")
}

func TestSession_MultipleFormulas(t *testing.T) {
	out := runSession(t, "1+1\ny\n2*3\ny\n")

	assert.Contains(t, out, "Result: 2")
	assert.Contains(t, out, "Result: 6")
}

func TestSession_LogsRejectedFormula(t *testing.T) {
	e, err := engine.New(engine.DefaultConfig(), log.NewNopLogger())
	require.NoError(t, err)

	var out, logs bytes.Buffer
	require.NoError(t, NewSession(e, strings.NewReader("a+\n"), &out, log.NewLogfmtLogger(&logs)).Run())
	assert.Contains(t, logs.String(), "formula rejected")
}
