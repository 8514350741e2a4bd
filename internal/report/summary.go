package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/btraven00/pdflinks/internal/frequency"
)

// PrintSummary prints the top entries of both tables as console tables.
// top <= 0 prints every entry.
func PrintSummary(w io.Writer, links, domains *frequency.Table, top int) {
	printTable(w, SectionLinks, "Link", links, top)
	printTable(w, SectionDomains, "Domain", domains, top)
}

func printTable(w io.Writer, title, column string, table *frequency.Table, top int) {
	if table == nil || table.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s (%d distinct, %d total):\n", title, table.Len(), table.Total())

	RenderEntries(w, column, table.Top(top))
}

// RenderEntries writes entries as a two-column console table.
func RenderEntries(w io.Writer, column string, entries []frequency.Entry) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{column, "Count"})
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, entry := range entries {
		tw.Append([]string{entry.Key, strconv.Itoa(entry.Count)})
	}

	tw.Render()
}
