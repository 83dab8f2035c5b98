package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pennywise/internal/category"
	"github.com/Veraticus/pennywise/internal/ledger"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/charmbracelet/lipgloss/tree"
)

const noRecord = "NO RECORD"

func itoa(n int) string {
	return strconv.Itoa(n)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeHeader(tw *tabwriter.Writer, columns []string, widths []int) {
	styled := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, col := range columns {
		styled[i] = TableHeaderStyle.Render(col)
		rules[i] = strings.Repeat("=", widths[i])
	}
	fmt.Fprintln(tw, strings.Join(styled, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))
}

func categoryCell(rec model.Record) string {
	if !rec.HasCategory() {
		return SubtleStyle.Render("(none)")
	}
	return rec.Category
}

// RenderRecords writes every record with its 1-based id, followed by the balance.
func RenderRecords(w io.Writer, records []model.Record, balance int) {
	fmt.Fprintln(w, "Here's your expense and income records:")

	tw := newTable(w)
	writeHeader(tw, []string{"Id", "Category", "Description", "Amount"}, []int{5, 20, 20, 10})

	if len(records) == 0 {
		fmt.Fprintf(tw, "\t%s\t\t\n", SubtleStyle.Render(noRecord))
	}
	for i, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, categoryCell(rec), rec.Description, FormatAmount(rec.Amount))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "Now you have %d dollars.\n", balance)
}

// RenderFind writes the records matched by a category query and their total.
// A known category with no matches still gets the header and a zero total.
func RenderFind(w io.Writer, result ledger.Result) {
	fmt.Fprintf(w, "Records under category '%s':\n", result.Category)

	tw := newTable(w)
	writeHeader(tw, []string{"Category", "Description", "Amount"}, []int{20, 20, 10})

	for _, rec := range result.Matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Category, rec.Description, FormatAmount(rec.Amount))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "The total amount above is: %d\n", result.Total)
}

// RenderUnknownCategory reports a query for a category that does not exist.
func RenderUnknownCategory(w io.Writer, name string) {
	fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("No records found for category '%s'.", name)))
}

// RenderHierarchy writes the category hierarchy with one leading space per
// nesting level before each "- name" line.
func RenderHierarchy(w io.Writer, categories *category.Tree) {
	categories.Walk(func(n category.Node, depth int) {
		fmt.Fprintf(w, "%s- %s\n", strings.Repeat(" ", depth), CategoryStyle.Render(n.Name))
	})
}

// RenderHierarchyTree writes the category hierarchy as a box-drawn tree.
func RenderHierarchyTree(w io.Writer, categories *category.Tree) {
	root := tree.New().Enumerator(tree.RoundedEnumerator)
	for _, n := range categories.Roots() {
		root.Child(nodeTree(n))
	}
	fmt.Fprintln(w, root.String())
}

func nodeTree(n category.Node) any {
	name := CategoryStyle.Render(n.Name)
	if n.IsLeaf() {
		return name
	}

	t := tree.Root(name).Enumerator(tree.RoundedEnumerator)
	for _, child := range n.Children {
		t.Child(nodeTree(child))
	}
	return t
}
