// Package bstree bundles helpers built on top of pkg/bst for working with
// whole trees: building one from a slice and comparing two trees.
package bstree

import (
	"cmp"
	"iter"

	"github.com/khalid-nowaf/bstree/pkg/bst"
)

// FromValues builds a tree by inserting values in order.
//
// Returns:
//   - the populated tree
//   - the number of values rejected as duplicates
func FromValues[T cmp.Ordered](values ...T) (*bst.Tree[T], int) {
	tree := bst.New[T]()
	inserted := tree.InsertAll(values...)
	return tree, len(values) - inserted
}

// Equivalent reports whether a and b hold the same set of values, regardless
// of their shape. Both trees are expected to use the same ordering; values are
// compared with a's comparison through a.Contains.
func Equivalent[T any](a, b *bst.Tree[T]) bool {
	if a.Count() != b.Count() {
		return false
	}

	// same size, so it is enough that every value of b is in a
	for v := range b.Inorder() {
		if !a.Contains(v) {
			return false
		}
	}
	return true
}

// SameShape reports whether a and b are structurally identical, with equal
// values at every position. Two trees have the same shape iff their preorder
// and inorder sequences match.
func SameShape[T comparable](a, b *bst.Tree[T]) bool {
	if a.Count() != b.Count() {
		return false
	}
	return seqEqual(a.Preorder(), b.Preorder()) && seqEqual(a.Inorder(), b.Inorder())
}

// seqEqual pulls both sequences in lock step and stops at the first difference.
func seqEqual[T comparable](a, b iter.Seq[T]) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		va, okA := nextA()
		vb, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if va != vb {
			return false
		}
	}
}
