package pool

import (
	"math/rand"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return &ConservativePool{} })
}

// ConservativePool provides basic building blocks: a, b, c, ints 0-9,
// addition, subtraction and multiplication. Its trees never divide.
type ConservativePool struct{}

func (p *ConservativePool) Name() string { return "conservative" }

func (p *ConservativePool) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < 0.5 {
		return randomVariable(rng, "abc")
	}
	return &expr.Literal{Val: int64(rng.Intn(10))}
}

var conservativeBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
}

func (p *ConservativePool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return conservativeBinary[rng.Intn(len(conservativeBinary))]
}

func (p *ConservativePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth, 0)
}
