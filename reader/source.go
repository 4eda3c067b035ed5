package reader

import "github.com/opencivic/nyc311/record"

// Source is the capability a record store consumes: open a dataset,
// stream or materialize its decoded records, and report data-quality
// counters. Concrete transports (raw CSV, parquet) implement it so the
// store never depends on a file format.
type Source interface {
	// Open prepares the source for reading. The caller must not read
	// from a source whose Open returned an error.
	Open(path string) error

	// ReadAll decodes every remaining row into memory and returns the
	// successfully decoded records.
	ReadAll() ([]record.ServiceRequest, error)

	// ReadChunk is the streaming variant: it invokes fn once per
	// successfully decoded row without materializing a collection, and
	// returns the number of data rows processed.
	ReadChunk(fn func(record.ServiceRequest)) (int, error)

	// Close releases underlying handles. Idempotent.
	Close() error

	// SkippedRows reports how many rows were dropped as malformed
	// (too few columns) during the last read.
	SkippedRows() int

	// TotalRows reports how many data rows were processed during the
	// last read, skipped ones included, header and blank lines excluded.
	TotalRows() int
}
