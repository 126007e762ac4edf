package expr

// Simplify rewrites node bottom-up. It folds unary minus over literals,
// factors sums and differences of products sharing a factor:
//
//	f1*f3 ± f2*f3  =>  (f1 ± f2) * f3
//	f1*f2 ± f1*f3  =>  f1 * (f2 ± f3)
//
// and folds binary nodes with two literal operands. The right-factor rule is
// tried first and at most one rule applies per node. The input tree is left
// untouched.
//
// The only error is ErrDivisionByZero, from folding a literal division by a
// literal zero.
func Simplify(node Node) (Node, error) {
	switch n := node.(type) {
	case *Literal, *Variable:
		return node, nil

	case *UnaryMinus:
		child, err := Simplify(n.Child)
		if err != nil {
			return nil, err
		}
		if c, ok := child.(*Literal); ok {
			return &Literal{Val: -c.Val}, nil
		}
		return &UnaryMinus{Child: child}, nil

	case *BinaryNode:
		left, err := Simplify(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Simplify(n.Right)
		if err != nil {
			return nil, err
		}

		if n.Op == OpAdd || n.Op == OpSub {
			if factored, ok, err := factor(n.Op, left, right); ok || err != nil {
				return factored, err
			}
		}

		lc, lok := left.(*Literal)
		rc, rok := right.(*Literal)
		if lok && rok {
			v, err := apply(n.Op, lc.Val, rc.Val)
			if err != nil {
				return nil, err
			}
			return &Literal{Val: v}, nil
		}

		return &BinaryNode{Op: n.Op, Left: left, Right: right}, nil

	default:
		return node, nil
	}
}

// factor applies one of the two factoring identities to left op right when
// both operands are products. ok is false when neither pattern matches.
func factor(op BinaryOp, left, right Node) (result Node, ok bool, err error) {
	lm, lok := left.(*BinaryNode)
	rm, rok := right.(*BinaryNode)
	if !lok || !rok || lm.Op != OpMul || rm.Op != OpMul {
		return nil, false, nil
	}

	l1, l2 := lm.Left, lm.Right
	r1, r2 := rm.Left, rm.Right

	switch {
	case Equal(l2, r2):
		inner, err := Simplify(&BinaryNode{Op: op, Left: l1, Right: r1})
		if err != nil {
			return nil, true, err
		}
		result, err = Simplify(&BinaryNode{Op: OpMul, Left: inner, Right: l2})
		return result, true, err

	case Equal(l1, r1):
		inner, err := Simplify(&BinaryNode{Op: op, Left: l2, Right: r2})
		if err != nil {
			return nil, true, err
		}
		result, err = Simplify(&BinaryNode{Op: OpMul, Left: l1, Right: inner})
		return result, true, err

	default:
		return nil, false, nil
	}
}

// Equal reports whether a and b are structurally equal: the same node type
// with equal contents, compared recursively in left/right order.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Val == y.Val
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *UnaryMinus:
		y, ok := b.(*UnaryMinus)
		return ok && Equal(x.Child, y.Child)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}
