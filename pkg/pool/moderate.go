package pool

import (
	"math/rand"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

func init() {
	Register("moderate", func() Pool { return &ModeratePool{} })
}

// ModeratePool extends conservative with d and e, ints up to 20, division
// and unary minus.
type ModeratePool struct{}

func (p *ModeratePool) Name() string { return "moderate" }

func (p *ModeratePool) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < 0.5 {
		return randomVariable(rng, "abcde")
	}
	return &expr.Literal{Val: int64(rng.Intn(21))}
}

var moderateBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

func (p *ModeratePool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return moderateBinary[rng.Intn(len(moderateBinary))]
}

func (p *ModeratePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth, 0.15)
}
