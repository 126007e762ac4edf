package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"conservative", "kitchensink", "moderate"}, Names())

	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pool")
}

// walk calls fn for every node of tree.
func walk(tree expr.Node, fn func(expr.Node)) {
	fn(tree)
	switch n := tree.(type) {
	case *expr.UnaryMinus:
		walk(n.Child, fn)
	case *expr.BinaryNode:
		walk(n.Left, fn)
		walk(n.Right, fn)
	}
}

func TestPools_TreeShape(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name())

			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 500; i++ {
				tree := p.RandomTree(rng, 5)
				require.LessOrEqual(t, tree.Depth(), 5, tree.String())
				walk(tree, func(n expr.Node) {
					switch v := n.(type) {
					case *expr.Literal:
						assert.GreaterOrEqual(t, v.Val, int64(0), "literals must render without a sign")
					case *expr.Variable:
						assert.True(t, expr.IsVariableName(v.Name), v.Name)
					}
				})
			}
		})
	}
}

func TestConservativePool_NoDivisionOrUnary(t *testing.T) {
	p, err := Get("conservative")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		walk(p.RandomTree(rng, 4), func(n expr.Node) {
			switch v := n.(type) {
			case *expr.UnaryMinus:
				t.Fatalf("unexpected unary minus in %s", v.String())
			case *expr.BinaryNode:
				assert.NotEqual(t, expr.OpDiv, v.Op)
			}
		})
	}
}

func TestKitchenSinkPool_PlantsFactorableShapes(t *testing.T) {
	p, err := Get("kitchensink")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	rewritten := 0
	total := 500
	for i := 0; i < total; i++ {
		tree := p.RandomTree(rng, 4)
		simplified, err := expr.Simplify(tree)
		if err != nil {
			continue
		}
		if simplified.NodeCount() < tree.NodeCount() {
			rewritten++
		}
	}

	// At least 10% of trees should shrink under simplification
	assert.Greater(t, rewritten, total/10)
	t.Logf("Kitchensink pool: %d/%d trees shrank", rewritten, total)
}

func TestRandomTree_DepthOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range Names() {
		p, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, 1, p.RandomTree(rng, 1).Depth())
	}
}
