// ## Overview
// Package bst implements a generic, unbalanced binary search tree.
// The tree keeps every value at most once, ordered by a three-way comparison,
// and exposes the three depth-first traversals (preorder, inorder, postorder)
// as lazy sequences. There is no rebalancing and no deletion: the shape of the
// tree depends only on the insertion order.
//
// ## Example usage:
//
//	tree := bst.New[int]()
//	for _, v := range []int{16, 24, 15, 13, 18, 56, 13, 19, 17} {
//		if tree.Insert(v) == bst.DuplicateIgnored {
//			fmt.Println(v, "ignored")
//		}
//	}
//
//	fmt.Println(tree.Count()) // Output: 8
//
//	// Inorder always yields the values in ascending order
//	for v := range tree.Inorder() {
//		fmt.Print(v, " ") // Output: 13 15 16 17 18 19 24 56
//	}
//
//	// Membership
//	fmt.Println(tree.Contains(24), tree.Contains(99)) // Output: true false
//
// Values that are not cmp.Ordered can be stored with NewFunc and a custom
// comparison function.
package bst
