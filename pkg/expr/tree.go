package expr

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders node as an indented ASCII tree, one node per line.
func Tree(node Node) string {
	tree := treeprint.NewWithRoot(label(node))
	addChildren(node, tree)
	return tree.String()
}

func addChildren(node Node, tree treeprint.Tree) {
	switch n := node.(type) {
	case *UnaryMinus:
		addChild(n.Child, tree)
	case *BinaryNode:
		addChild(n.Left, tree)
		addChild(n.Right, tree)
	}
}

func addChild(child Node, tree treeprint.Tree) {
	switch child.(type) {
	case *Literal, *Variable:
		tree.AddNode(label(child))
	default:
		addChildren(child, tree.AddBranch(label(child)))
	}
}

func label(node Node) string {
	switch n := node.(type) {
	case *Literal:
		return fmt.Sprintf("%d", n.Val)
	case *Variable:
		return n.Name
	case *UnaryMinus:
		return "neg"
	case *BinaryNode:
		return n.Op.Symbol()
	default:
		return "?"
	}
}
