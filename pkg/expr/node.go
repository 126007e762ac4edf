package expr

import (
	"unicode"
	"unicode/utf8"
)

// Node is the interface for all expression tree nodes. The set of
// implementations is closed: Literal, Variable, UnaryMinus and BinaryNode.
type Node interface {
	String() string
	LaTeX() string
	Clone() Node
	NodeCount() int
	Depth() int

	node()
}

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Priority returns the binding strength of op: 1 for + and -, 2 for * and /.
func (op BinaryOp) Priority() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

// Symbol returns the operator character as written in a formula.
func (op BinaryOp) Symbol() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return "?"
}

// LookupOp maps an operator character to its BinaryOp.
func LookupOp(r rune) (BinaryOp, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	default:
		return 0, false
	}
}

// Literal represents an integer constant.
type Literal struct {
	Val int64
}

// Variable represents a single-letter variable.
type Variable struct {
	Name string
}

// IsVariableName reports whether name is exactly one letter.
func IsVariableName(name string) bool {
	r, size := utf8.DecodeRuneInString(name)
	return size > 0 && size == len(name) && unicode.IsLetter(r)
}

// UnaryMinus negates its child expression.
type UnaryMinus struct {
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

func (*Literal) node()    {}
func (*Variable) node()   {}
func (*UnaryMinus) node() {}
func (*BinaryNode) node() {}
