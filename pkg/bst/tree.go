package bst

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Tree is an unbalanced binary search tree holding distinct values of type T.
//
// The zero value is not usable; create trees with New or NewFunc.
// A Tree is not safe for concurrent use, callers must serialize access.
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare func(a, b T) int
	log     zerolog.Logger
}

// New creates an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty tree ordered by compare, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
//
// Panics:
//   - if compare is nil
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Tree[T] {
	if compare == nil {
		panic("[BUG] NewFunc: a comparison function is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}

	return &Tree[T]{
		compare: compare,
		log:     o.logger,
	}
}

// Insert adds value to the tree unless an equal value is already present.
//
// Returns:
//   - Inserted if a new node was attached, the count grows by one.
//   - DuplicateIgnored if an equal value exists, the tree is left untouched.
//
// The walk starts at the root and, at every node, checks equality first,
// then goes left for smaller values and right for greater ones, attaching
// the new node at the first empty slot.
func (t *Tree[T]) Insert(value T) Outcome {
	if t.root == nil {
		t.root = newNode(value)
		t.count++
		t.log.Debug().
			Interface("value", value).
			Stringer("outcome", Inserted).
			Bool("root", true).
			Msgf("%v entered - this is the root", value)
		return Inserted
	}

	current := t.root
	for {
		c := t.compare(value, current.value)
		if c == 0 {
			t.log.Debug().
				Interface("value", value).
				Stringer("outcome", DuplicateIgnored).
				Msgf("%v entered - duplicate value ignored", value)
			return DuplicateIgnored
		}

		// pick the slot on the side the value belongs to
		slot := &current.right
		if c < 0 {
			slot = &current.left
		}

		if *slot == nil {
			*slot = newNode(value)
			t.count++
			t.log.Debug().
				Interface("value", value).
				Stringer("outcome", Inserted).
				Int("count", t.count).
				Msgf("%v entered", value)
			return Inserted
		}
		current = *slot
	}
}

// InsertAll inserts the values in order and returns how many were new.
func (t *Tree[T]) InsertAll(values ...T) (inserted int) {
	for _, v := range values {
		if t.Insert(v) == Inserted {
			inserted++
		}
	}
	return inserted
}

// Find returns the node holding a value equal to value, or nil.
// It walks the tree exactly the way Insert does, so a value is found
// iff Insert would report it as a duplicate.
func (t *Tree[T]) Find(value T) *Node[T] {
	current := t.root
	for current != nil {
		c := t.compare(value, current.value)
		switch {
		case c == 0:
			return current
		case c < 0:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// Contains reports whether a value equal to value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}

// Count returns the number of values in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

// IsEmpty reports whether nothing was inserted yet.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// An empty tree has height 0, a chain built from sorted input has height Count().
func (t *Tree[T]) Height() int {
	height := 0
	t.walkDepth(func(_ *Node[T], depth int) {
		if depth > height {
			height = depth
		}
	})
	return height
}

// String returns the values in ascending order separated by single spaces.
func (t *Tree[T]) String() string {
	var b strings.Builder
	first := true
	for v := range t.Inorder() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		first = false
	}
	return b.String()
}
