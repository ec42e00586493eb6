package bst

import (
	"fmt"

	"github.com/pterm/pterm"
)

// ToTreeNode converts the tree into a pterm.TreeNode, labelling every child
// with the side it hangs on ("L" or "R").
func ToTreeNode[T any](t *Tree[T]) pterm.TreeNode {
	if t.root == nil {
		return pterm.TreeNode{Text: "(empty)"}
	}
	return toTreeNode(t.root, "")
}

func toTreeNode[T any](n *Node[T], side string) pterm.TreeNode {
	text := fmt.Sprint(n.value)
	if side != "" {
		text = side + " " + text
	}

	node := pterm.TreeNode{Text: text}
	if n.left != nil {
		node.Children = append(node.Children, toTreeNode(n.left, "L"))
	}
	if n.right != nil {
		node.Children = append(node.Children, toTreeNode(n.right, "R"))
	}
	return node
}

// Render draws the structure of the tree, one node per line.
func Render[T any](t *Tree[T]) (string, error) {
	return pterm.DefaultTree.WithRoot(ToTreeNode(t)).Srender()
}
