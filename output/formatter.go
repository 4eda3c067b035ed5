// Package output renders query results and load statistics for the CLI.
//
// Three Formatter implementations exist: JSON Lines (one object per
// line, suitable for piping into other tools), CSV (header row plus a
// compact column subset), and an aligned text table built on
// github.com/olekukonko/tablewriter. RenderSummary prints the dataset
// statistics digest.
//
// Formatters receive non-owning record pointers straight from a query
// result; nothing here copies or mutates records.
package output

import (
	"io"

	"github.com/opencivic/nyc311/record"
)

// Formatter renders a sequence of records to an output writer.
type Formatter interface {
	// Format writes recs in the formatter's specific format.
	Format(recs []*record.ServiceRequest) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}

// columns is the compact column subset shared by the CSV and table
// formatters. The full 40-field record is too wide for a terminal; the
// JSON formatter carries the larger field set instead.
var columns = []string{
	"unique_key",
	"created_date",
	"agency",
	"complaint_type",
	"status",
	"borough",
	"incident_zip",
	"latitude",
	"longitude",
}

// rowValues renders one record as the compact column subset, in the
// same order as columns.
func rowValues(r *record.ServiceRequest) []string {
	return []string{
		formatUint(r.UniqueKey),
		r.CreatedDate.String(),
		r.Agency,
		r.ComplaintType,
		r.Status,
		r.Borough,
		formatUint(uint64(r.IncidentZip)),
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
	}
}
