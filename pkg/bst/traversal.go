package bst

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Nigel2392/go-datastructures/stack"
)

// a pending step of a depth-first walk: either expand node into its
// children, or emit its value
type frame[T any] struct {
	node  *Node[T]
	emit  bool
	depth int
}

// Preorder yields every value as self, left subtree, right subtree.
func (t *Tree[T]) Preorder() iter.Seq[T] {
	return t.Traverse(Preorder)
}

// Inorder yields every value as left subtree, self, right subtree,
// which is strictly ascending order.
func (t *Tree[T]) Inorder() iter.Seq[T] {
	return t.Traverse(Inorder)
}

// Postorder yields every value as left subtree, right subtree, self.
func (t *Tree[T]) Postorder() iter.Seq[T] {
	return t.Traverse(Postorder)
}

// Traverse returns a lazy sequence over all values in the given order.
//
// The walk uses an explicit stack, so degenerate trees do not grow the call stack.
// Each value is yielded exactly once; an empty tree yields nothing. The consumer
// may stop early, which leaves the tree untouched. Ranging over the sequence
// again starts a fresh walk.
//
// Panics:
//   - if order is not one of Preorder, Inorder or Postorder
func (t *Tree[T]) Traverse(order Order) iter.Seq[T] {
	if order != Preorder && order != Inorder && order != Postorder {
		panic(fmt.Sprintf("[BUG] Traverse: unsupported order %s", order))
	}

	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}

		pending := &stack.Stack[frame[T]]{}
		pending.Push(frame[T]{node: t.root})

		for {
			f, ok := pending.PopOK()
			if !ok {
				return
			}
			if f.emit {
				if !yield(f.node.value) {
					return
				}
				continue
			}

			// frames are pushed in reverse, the first one to handle goes last
			self := frame[T]{node: f.node, emit: true}
			switch order {
			case Preorder:
				pushChild(pending, f.node.right)
				pushChild(pending, f.node.left)
				pending.Push(self)
			case Inorder:
				pushChild(pending, f.node.right)
				pending.Push(self)
				pushChild(pending, f.node.left)
			case Postorder:
				pending.Push(self)
				pushChild(pending, f.node.right)
				pushChild(pending, f.node.left)
			}
		}
	}
}

// Walk calls visit with every value in the given order.
func (t *Tree[T]) Walk(order Order, visit func(T)) {
	for v := range t.Traverse(order) {
		visit(v)
	}
}

// Values collects a traversal into a slice of length Count().
func (t *Tree[T]) Values(order Order) []T {
	return slices.AppendSeq(make([]T, 0, t.count), t.Traverse(order))
}

func pushChild[T any](pending *stack.Stack[frame[T]], child *Node[T]) {
	if child != nil {
		pending.Push(frame[T]{node: child})
	}
}

// walkDepth visits every node together with its depth, the root being at depth 1.
func (t *Tree[T]) walkDepth(f func(n *Node[T], depth int)) {
	if t.root == nil {
		return
	}

	pending := &stack.Stack[frame[T]]{}
	pending.Push(frame[T]{node: t.root, depth: 1})

	for {
		current, ok := pending.PopOK()
		if !ok {
			return
		}
		f(current.node, current.depth)

		if current.node.right != nil {
			pending.Push(frame[T]{node: current.node.right, depth: current.depth + 1})
		}
		if current.node.left != nil {
			pending.Push(frame[T]{node: current.node.left, depth: current.depth + 1})
		}
	}
}
