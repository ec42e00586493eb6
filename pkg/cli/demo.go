package cli

import (
	"fmt"

	"github.com/khalid-nowaf/bstree/pkg/bst"
)

// the insertion order of the classic example, the second 13 is rejected
var demoValues = []int{16, 24, 15, 13, 18, 56, 13, 19, 17}

type DemoCmd struct {
	Values []int    `help:"Values to insert instead of the built-in sequence"`
	Search []int    `help:"Values to look up after the traversals" default:"24"`
	Order  []string `help:"Traversal orders to print (preorder, inorder, postorder)"`
	Tree   bool     `help:"Print the structure of the tree"`
}

// Run executes the demo command.
func (cmd *DemoCmd) Run(ctx *Context) error {
	orders, err := parseOrders(pickOrders(cmd.Order, ctx.config.Orders))
	if err != nil {
		return err
	}

	values := cmd.Values
	if len(values) == 0 {
		values = demoValues
	}

	fmt.Fprintln(ctx.out, "********************************************")
	fmt.Fprintln(ctx.out, "*******      Binary Tree Example     *******")
	fmt.Fprintln(ctx.out, "********************************************")

	tree := bst.New[int](bst.WithLogger(ctx.log))
	duplicates := 0
	for _, value := range values {
		wasEmpty := tree.IsEmpty()
		switch tree.Insert(value) {
		case bst.DuplicateIgnored:
			duplicates++
			fmt.Fprintf(ctx.out, "%d entered - duplicate value ignored\n", value)
		case bst.Inserted:
			if wasEmpty {
				fmt.Fprintf(ctx.out, "%d entered - this is the root\n", value)
			} else {
				fmt.Fprintf(ctx.out, "%d entered\n", value)
			}
		}
	}
	fmt.Fprintln(ctx.out, "Binary tree node insertion complete!")

	newReport(tree, duplicates, orders, cmd.Search).Print(ctx.out)

	if cmd.Tree {
		return printTree(ctx, tree)
	}
	return nil
}

func pickOrders(flag []string, configured []string) []string {
	if len(flag) > 0 {
		return flag
	}
	return configured
}
