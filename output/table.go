package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/opencivic/nyc311/record"
	"github.com/opencivic/nyc311/store"
)

// TableFormatter outputs records as an aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the compact column subset as a table.
func (t *TableFormatter) Format(recs []*record.ServiceRequest) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)

	for _, r := range recs {
		table.Append(rowValues(r))
	}
	table.Render()
	return nil
}

// RenderSummary writes the dataset statistics digest as a series of
// small tables: totals, borough and status distributions, and the
// top-complaint ranking.
func RenderSummary(w io.Writer, sum store.Summary) {
	fmt.Fprintln(w, "=== DATA STATISTICS ===")
	fmt.Fprintf(w, "Total records : %d\n", sum.TotalRecords)
	fmt.Fprintf(w, "Skipped rows  : %d\n", sum.SkippedRows)
	if sum.EarliestCreated != "" {
		fmt.Fprintf(w, "Date range    : %s to %s\n", sum.EarliestCreated, sum.LatestCreated)
	}
	fmt.Fprintf(w, "Open / Closed : %d / %d\n", sum.OpenCount, sum.ClosedCount)

	if len(sum.BoroughCounts) > 0 {
		fmt.Fprintln(w, "\nBorough distribution:")
		renderCounts(w, "BOROUGH", sum.BoroughCounts)
	}
	if len(sum.StatusCounts) > 0 {
		fmt.Fprintln(w, "\nStatus distribution:")
		renderCounts(w, "STATUS", sum.StatusCounts)
	}
	if len(sum.TopComplaints) > 0 {
		fmt.Fprintln(w, "\nTop complaint types:")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"COMPLAINT TYPE", "RECORDS"})
		for _, cc := range sum.TopComplaints {
			table.Append([]string{cc.ComplaintType, strconv.Itoa(cc.Count)})
		}
		table.Render()
	}
}

// renderCounts prints a name-count map as a table, sorted by name for
// stable output.
func renderCounts(w io.Writer, header string, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{header, "RECORDS"})
	for _, name := range names {
		label := name
		if label == "" {
			label = "(blank)"
		}
		table.Append([]string{label, strconv.Itoa(counts[name])})
	}
	table.Render()
}
