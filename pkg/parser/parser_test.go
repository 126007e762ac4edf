package parser

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

func mustParse(t *testing.T, text string) expr.Node {
	t.Helper()
	node, err := Parse(text)
	require.NoError(t, err, text)
	return node
}

func TestParse_Rendering(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"x", "x"},
		{"007", "7"},
		{"1234567", "1234567"},
		{"a+b", "(a + b)"},
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b / c", "((a / b) / c)"},
		{"a - b + c", "((a - b) + c)"},
		{"a * b / c * d", "(((a * b) / c) * d)"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a * (b - c)", "(a * (b - c))"},
		{"-a", "-(a)"},
		{"--a", "-(-(a))"},
		{"-5", "-(5)"},
		{"-a * b", "(-(a) * b)"},
		{"a * -b", "(a * -(b))"},
		{"a - -b", "(a - -(b))"},
		{"-(a + b)", "-((a + b))"},
		{"((((x))))", "x"},
		{" 1 2 + 3", "(12 + 3)"},
		{"a\t*\n c", "(a * c)"},
		{"ж + 1", "(ж + 1)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, mustParse(t, tc.in).String())
		})
	}
}

func TestParse_TreeShape(t *testing.T) {
	node := mustParse(t, "a*c+b*c")
	want := &expr.BinaryNode{
		Op:    expr.OpAdd,
		Left:  &expr.BinaryNode{Op: expr.OpMul, Left: &expr.Variable{Name: "a"}, Right: &expr.Variable{Name: "c"}},
		Right: &expr.BinaryNode{Op: expr.OpMul, Left: &expr.Variable{Name: "b"}, Right: &expr.Variable{Name: "c"}},
	}
	assert.True(t, expr.Equal(want, node), node.String())

	lit, ok := mustParse(t, "42").(*expr.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Val)

	_, ok = mustParse(t, "-42").(*expr.UnaryMinus)
	assert.True(t, ok, "unary minus is a node, not part of the literal")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in  string
		msg string
	}{
		{"", "unexpected end of formula"},
		{"   ", "unexpected end of formula"},
		{"(a+b", "expected closing parenthesis"},
		{"a+", "unexpected end of formula"},
		{"a+*b", "unexpected character"},
		{"*a", "unexpected character"},
		{"a)", "trailing characters"},
		{"ab", "trailing characters"},
		{"a b", "trailing characters"},
		{"2a", "trailing characters"},
		{"a(b)", "trailing characters"},
		{"()", "unexpected character"},
		{"a % b", "trailing characters"},
		{"a ^ 2", "trailing characters"},
		{"1.5", "trailing characters"},
		{"$", "unexpected character"},
		{"99999999999999999999", "out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("a + b c")
	var perr *Error
	require.True(t, errors.As(err, &perr))
	// Whitespace is removed first, so "c" sits at offset 3 of "a+bc".
	assert.Equal(t, 3, perr.Pos)
}

func nested(depth int) string {
	return strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
}

func TestParse_NestingLimit(t *testing.T) {
	_, err := Parse(nested(10))
	require.NoError(t, err)

	_, err = Parse(nested(11))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Contains(t, err.Error(), "nested deeper than 10")

	// Sibling groups do not add up: only currently open parentheses count.
	_, err = Parse(nested(10) + "+" + nested(10))
	require.NoError(t, err)

	// Unary minus does not open a group of its own.
	_, err = Parse("-" + nested(10))
	require.NoError(t, err)
}

func TestParser_WithMaxNesting(t *testing.T) {
	p := New(WithMaxNesting(2))
	assert.Equal(t, 2, p.MaxNesting())

	_, err := p.Parse("((a))")
	require.NoError(t, err)
	_, err = p.Parse("(((a)))")
	require.Error(t, err)

	_, err = New(WithMaxNesting(0)).Parse("(a)")
	require.Error(t, err)
	_, err = New(WithMaxNesting(0)).Parse("a+b")
	require.NoError(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	a, b, c := &expr.Variable{Name: "a"}, &expr.Variable{Name: "b"}, &expr.Variable{Name: "c"}
	trees := []expr.Node{
		&expr.Literal{Val: 0},
		&expr.BinaryNode{Op: expr.OpSub, Left: a, Right: &expr.BinaryNode{Op: expr.OpSub, Left: b, Right: c}},
		&expr.BinaryNode{Op: expr.OpDiv, Left: &expr.BinaryNode{Op: expr.OpDiv, Left: a, Right: b}, Right: c},
		&expr.UnaryMinus{Child: &expr.UnaryMinus{Child: &expr.Literal{Val: 3}}},
		&expr.BinaryNode{Op: expr.OpMul,
			Left:  &expr.UnaryMinus{Child: &expr.BinaryNode{Op: expr.OpAdd, Left: a, Right: &expr.Literal{Val: 12}}},
			Right: &expr.BinaryNode{Op: expr.OpSub, Left: b, Right: &expr.UnaryMinus{Child: c}},
		},
	}
	for _, tree := range trees {
		parsed := mustParse(t, tree.String())
		assert.True(t, expr.Equal(tree, parsed), "%s parsed as %s", tree.String(), parsed.String())
	}
}

func TestParse_EndToEnd(t *testing.T) {
	simplify := func(text string) expr.Node {
		t.Helper()
		s, err := expr.Simplify(mustParse(t, text))
		require.NoError(t, err)
		return s
	}

	s := simplify("2+3*4")
	assert.IsType(t, &expr.Literal{}, s)
	assert.False(t, expr.ContainsVar(s))
	v, err := expr.Evaluate(s, expr.Vars{})
	require.NoError(t, err)
	assert.Equal(t, int64(14), v)

	assert.True(t, expr.Equal(simplify("(a+b)*c"), simplify("a*c+b*c")))
	assert.Equal(t, "((a + b) * c)", simplify("a*c+b*c").String())
	assert.True(t, expr.Equal(mustParse(t, "(a*(b-c))"), simplify("a*b-a*c")))

	_, err = expr.Evaluate(mustParse(t, "a/b"), expr.Vars{"a": 5, "b": 0})
	assert.True(t, errors.Is(err, expr.ErrDivisionByZero))

	v, err = expr.Evaluate(mustParse(t, "5/2"), expr.Vars{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = expr.Evaluate(mustParse(t, "-5/2"), expr.Vars{})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), v)

	_, err = expr.Evaluate(mustParse(t, "x+1"), expr.Vars{})
	assert.True(t, errors.Is(err, expr.ErrUndefinedVariable))

	_, err = expr.Simplify(mustParse(t, "a + 4/(2-2)"))
	assert.True(t, errors.Is(err, expr.ErrDivisionByZero))
}
