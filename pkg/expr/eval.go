package expr

import (
	"fmt"
	"sort"
)

// Vars maps single-letter variable names to their values.
type Vars map[string]int64

// Evaluate computes the value of node under vars. Division floors toward
// negative infinity.
func Evaluate(node Node, vars Vars) (int64, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Val, nil

	case *Variable:
		v, ok := vars[n.Name]
		if !ok {
			return 0, &UndefinedVariableError{Name: n.Name}
		}
		return v, nil

	case *UnaryMinus:
		child, err := Evaluate(n.Child, vars)
		if err != nil {
			return 0, err
		}
		return -child, nil

	case *BinaryNode:
		left, err := Evaluate(n.Left, vars)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right, vars)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, left, right)

	default:
		panic(fmt.Sprintf("expr: unknown node type %T", node))
	}
}

func apply(op BinaryOp, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return floorDiv(a, b), nil
	default:
		panic(fmt.Sprintf("expr: unknown operator %d", op))
	}
}

// floorDiv divides rounding toward negative infinity. Go's / truncates
// toward zero, so a non-exact quotient with operands of opposite sign is
// one too large.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Variables returns the distinct variable names in node, sorted.
func Variables(node Node) []string {
	seen := map[string]struct{}{}
	collectVariables(node, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(node Node, seen map[string]struct{}) {
	switch n := node.(type) {
	case *Variable:
		seen[n.Name] = struct{}{}
	case *UnaryMinus:
		collectVariables(n.Child, seen)
	case *BinaryNode:
		collectVariables(n.Left, seen)
		collectVariables(n.Right, seen)
	}
}

// ContainsVar reports whether the expression tree contains any variable.
func ContainsVar(node Node) bool {
	switch n := node.(type) {
	case *Variable:
		return true
	case *UnaryMinus:
		return ContainsVar(n.Child)
	case *BinaryNode:
		return ContainsVar(n.Left) || ContainsVar(n.Right)
	default:
		return false
	}
}
