package bst

// Node is a single cell of a Tree, holding one value and up to two children.
// Nodes are created and linked only by the tree that owns them.
type Node[T any] struct {
	value T        // immutable after creation
	left  *Node[T] // values strictly less than value
	right *Node[T] // values strictly greater than value
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the root of the left subtree, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the root of the right subtree, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// checks if the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}
