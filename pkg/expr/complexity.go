package expr

func (l *Literal) NodeCount() int    { return 1 }
func (v *Variable) NodeCount() int   { return 1 }
func (u *UnaryMinus) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (l *Literal) Depth() int    { return 1 }
func (v *Variable) Depth() int   { return 1 }
func (u *UnaryMinus) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// Nesting returns how many parentheses deep the rendered infix of node goes.
// Every non-leaf renders inside one pair of parentheses, so this is the tree
// depth minus one for the leaves.
func Nesting(node Node) int {
	return node.Depth() - 1
}
