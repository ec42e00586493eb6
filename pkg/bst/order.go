package bst

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned by ParseOrder for names that are not a traversal order.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Order selects one of the depth-first traversals.
type Order int

const (
	Preorder  Order = iota // self, left, right
	Inorder                // left, self, right
	Postorder              // left, right, self
)

// Orders returns every traversal order, in the order they are usually printed.
func Orders() []Order {
	return []Order{Preorder, Inorder, Postorder}
}

func (o Order) String() string {
	switch o {
	case Preorder:
		return "preorder"
	case Inorder:
		return "inorder"
	case Postorder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Title is the capitalized name of the order, e.g. "Preorder".
func (o Order) Title() string {
	s := o.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseOrder converts a name such as "inorder" or "in" to an Order.
// Matching is case-insensitive.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "preorder", "pre":
		return Preorder, nil
	case "inorder", "in":
		return Inorder, nil
	case "postorder", "post":
		return Postorder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
