package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/opencivic/nyc311/record"
)

// CSVFormatter outputs records as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the compact column subset as CSV, header first.
func (c *CSVFormatter) Format(recs []*record.ServiceRequest) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(columns); err != nil {
		return err
	}
	for _, r := range recs {
		if err := csvWriter.Write(rowValues(r)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// formatUint renders an unsigned field, empty for the 0 sentinel so
// absent zips and keys do not print as literal zeros.
func formatUint(v uint64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatUint(v, 10)
}

// formatFloat renders a coordinate, empty for the 0.0 sentinel.
func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
