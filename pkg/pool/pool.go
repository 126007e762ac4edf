// Package pool generates random expression trees for property checks.
package pool

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
// Literals are never negative so that rendered trees parse back unchanged.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomBinary(rng *rand.Rand) expr.BinaryOp
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown pool: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// randomTree is a shared helper for building random trees. unaryRate is the
// share of inner nodes that are a unary minus.
func randomTree(p Pool, rng *rand.Rand, maxDepth int, unaryRate float64) expr.Node {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.3:
		return p.RandomLeaf(rng)
	case r < 0.3+unaryRate:
		return &expr.UnaryMinus{Child: randomTree(p, rng, maxDepth-1, unaryRate)}
	default:
		return &expr.BinaryNode{
			Op:    p.RandomBinary(rng),
			Left:  randomTree(p, rng, maxDepth-1, unaryRate),
			Right: randomTree(p, rng, maxDepth-1, unaryRate),
		}
	}
}

func randomVariable(rng *rand.Rand, letters string) expr.Node {
	return &expr.Variable{Name: string(letters[rng.Intn(len(letters))])}
}
