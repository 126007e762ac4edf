package pool

import (
	"math/rand"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

func init() {
	Register("kitchensink", func() Pool { return &KitchenSinkPool{} })
}

// KitchenSinkPool uses every letter, ints up to 999 and all operators, and
// often plants sums and differences of products that share a factor so the
// factoring rewrites fire.
type KitchenSinkPool struct{}

func (p *KitchenSinkPool) Name() string { return "kitchensink" }

const kitchenSinkLetters = "abcdefghijklmnopqrstuvwxyz"

func (p *KitchenSinkPool) RandomLeaf(rng *rand.Rand) expr.Node {
	r := rng.Float64()
	switch {
	case r < 0.45:
		return randomVariable(rng, kitchenSinkLetters)
	case r < 0.85:
		return &expr.Literal{Val: int64(rng.Intn(10))}
	default:
		return &expr.Literal{Val: int64(rng.Intn(1000))}
	}
}

var kitchenSinkBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

func (p *KitchenSinkPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return kitchenSinkBinary[rng.Intn(len(kitchenSinkBinary))]
}

func (p *KitchenSinkPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	// A factorable shape needs three levels: the sum, two products, and leaves.
	if maxDepth >= 3 && rng.Float64() < 0.35 {
		return p.factorable(rng, maxDepth)
	}
	return randomTree(p, rng, maxDepth, 0.1)
}

// factorable builds x*f ± y*f or f*x ± f*y with a shared subtree f.
func (p *KitchenSinkPool) factorable(rng *rand.Rand, maxDepth int) expr.Node {
	op := expr.OpAdd
	if rng.Intn(2) == 0 {
		op = expr.OpSub
	}
	shared := p.RandomTree(rng, maxDepth-2)
	x := p.RandomTree(rng, maxDepth-2)
	y := p.RandomTree(rng, maxDepth-2)

	if rng.Intn(2) == 0 {
		return &expr.BinaryNode{
			Op:    op,
			Left:  &expr.BinaryNode{Op: expr.OpMul, Left: x, Right: shared},
			Right: &expr.BinaryNode{Op: expr.OpMul, Left: y, Right: shared.Clone()},
		}
	}
	return &expr.BinaryNode{
		Op:    op,
		Left:  &expr.BinaryNode{Op: expr.OpMul, Left: shared, Right: x},
		Right: &expr.BinaryNode{Op: expr.OpMul, Left: shared.Clone(), Right: y},
	}
}
