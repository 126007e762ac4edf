package expr

func (l *Literal) Clone() Node {
	return &Literal{Val: l.Val}
}

func (v *Variable) Clone() Node {
	return &Variable{Name: v.Name}
}

func (u *UnaryMinus) Clone() Node {
	return &UnaryMinus{Child: u.Child.Clone()}
}

func (b *BinaryNode) Clone() Node {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}
