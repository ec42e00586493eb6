package cli

import (
	"fmt"

	"github.com/khalid-nowaf/bstree/pkg/bst"
)

type LoadCmd struct {
	Files    []string `arg:"" type:"existingfile" help:"Input files holding the values, in CSV, TSV or JSON format"`
	ValueKey string   `help:"Column (CSV/TSV) or field (JSON) holding the values"`
	Order    []string `help:"Traversal orders to print (preorder, inorder, postorder)"`
	Search   []int    `help:"Values to look up after loading"`
	Output   string   `help:"Directory to write the traversal report to" type:"existingdir"`
	Format   string   `help:"Report format: csv, tsv or json"`
	Tree     bool     `help:"Print the structure of the tree"`
}

// Run executes the load command.
func (cmd *LoadCmd) Run(ctx *Context) error {
	valueKey := pick(cmd.ValueKey, ctx.config.ValueKey)
	format := pick(cmd.Format, ctx.config.Format)
	if err := validateFormat(format); err != nil {
		return err
	}
	orders, err := parseOrders(pickOrders(cmd.Order, ctx.config.Orders))
	if err != nil {
		return err
	}

	tree := bst.New[int](bst.WithLogger(ctx.log))
	total, duplicates := 0, 0

	for _, file := range cmd.Files {
		if err := loadValues(ctx, tree, file, valueKey, &total, &duplicates); err != nil {
			return err
		}
	}

	fmt.Fprintf(ctx.out, "Read %d values from %d files, %d duplicate values ignored.\n", total, len(cmd.Files), duplicates)
	report := newReport(tree, duplicates, orders, cmd.Search)
	report.Print(ctx.out)

	if cmd.Tree {
		if err := printTree(ctx, tree); err != nil {
			return err
		}
	}

	if cmd.Output == "" {
		return nil
	}
	writer, err := newWriter(format)
	if err != nil {
		return err
	}
	path, err := writer.Write(report, cmd.Output)
	if err != nil {
		return fmt.Errorf("can not write report: %w", err)
	}
	ctx.log.Info().Str("path", path).Msg("report written")
	return nil
}

// loadValues parses a file and inserts its values into the tree.
func loadValues(ctx *Context, tree *bst.Tree[int], file string, valueKey string, total *int, duplicates *int) error {
	before := tree.Count()
	err := parseFile(file, valueKey, func(value int) error {
		*total++
		if tree.Insert(value) == bst.DuplicateIgnored {
			*duplicates++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("can not load %s: %w", file, err)
	}

	ctx.log.Info().
		Str("file", file).
		Int("inserted", tree.Count()-before).
		Int("count", tree.Count()).
		Msg("values loaded")
	return nil
}
