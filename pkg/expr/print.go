package expr

import (
	"fmt"
	"strconv"
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// String methods render fully parenthesized infix that parses back to an
// equal tree.

func (l *Literal) String() string {
	return strconv.FormatInt(l.Val, 10)
}

func (v *Variable) String() string {
	return v.Name
}

func (u *UnaryMinus) String() string {
	return fmt.Sprintf("-(%s)", u.Child.String())
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Symbol(), b.Right.String())
}

// LaTeX methods

func (l *Literal) LaTeX() string {
	return strconv.FormatInt(l.Val, 10)
}

func (v *Variable) LaTeX() string {
	return v.Name
}

func (u *UnaryMinus) LaTeX() string {
	return fmt.Sprintf("-\\left(%s\\right)", u.Child.LaTeX())
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("\\left(%s + %s\\right)", left, right)
	case OpSub:
		return fmt.Sprintf("\\left(%s - %s\\right)", left, right)
	case OpMul:
		return fmt.Sprintf("\\left(%s \\cdot %s\\right)", left, right)
	case OpDiv:
		return fmt.Sprintf("\\left\\lfloor \\frac{%s}{%s} \\right\\rfloor", left, right)
	default:
		return ""
	}
}
