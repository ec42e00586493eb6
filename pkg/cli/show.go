package cli

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/bstree/pkg/bst"
)

type ShowCmd struct {
	Values []int `arg:"" help:"Values to insert, in order"`
}

// Run executes the show command.
func (cmd *ShowCmd) Run(ctx *Context) error {
	tree := bst.New[int](bst.WithLogger(ctx.log))
	tree.InsertAll(cmd.Values...)

	if err := printTree(ctx, tree); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out, "Count: %d, Height: %d\n", tree.Count(), tree.Height())
	return nil
}

func printTree(ctx *Context, tree *bst.Tree[int]) error {
	rendered, err := bst.Render(tree)
	if err != nil {
		return fmt.Errorf("can not render tree: %w", err)
	}
	_, err = fmt.Fprintln(ctx.out, strings.TrimRight(rendered, "\n"))
	return err
}
