package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/khalid-nowaf/bstree/pkg/bst"
)

const separatorLine = "**************************************************"

// Report is what a command found out about a tree.
type Report struct {
	Count      int         `json:"count"`
	Height     int         `json:"height"`
	Duplicates int         `json:"duplicates"`
	Traversals []Traversal `json:"traversals"`
	Searches   []Search    `json:"searches,omitempty"`
}

type Traversal struct {
	Order  string `json:"order"`
	Values []int  `json:"values"`
}

type Search struct {
	Value int  `json:"value"`
	Found bool `json:"found"`
}

func newReport(tree *bst.Tree[int], duplicates int, orders []bst.Order, searches []int) *Report {
	report := &Report{
		Count:      tree.Count(),
		Height:     tree.Height(),
		Duplicates: duplicates,
	}

	for _, order := range orders {
		report.Traversals = append(report.Traversals, Traversal{
			Order:  order.String(),
			Values: tree.Values(order),
		})
	}

	for _, value := range searches {
		report.Searches = append(report.Searches, Search{
			Value: value,
			Found: tree.Contains(value),
		})
	}

	return report
}

// Print writes the report in the layout of the classic console example.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "There are %d nodes in total.\n", r.Count)

	for _, traversal := range r.Traversals {
		order, err := bst.ParseOrder(traversal.Order)
		if err != nil {
			panic("[BUG] Print: report holds an unknown order " + traversal.Order)
		}
		fmt.Fprintln(w, separatorLine)
		fmt.Fprintf(w, "%s traversal of elements ...\n", order.Title())
		fmt.Fprintln(w, joinValues(traversal.Values))
	}

	for _, search := range r.Searches {
		fmt.Fprintln(w, separatorLine)
		if search.Found {
			fmt.Fprintf(w, "%d found!\n", search.Value)
		} else {
			fmt.Fprintf(w, "%d not found\n", search.Value)
		}
	}

	fmt.Fprintln(w, separatorLine)
}

func joinValues(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
