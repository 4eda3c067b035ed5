package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/opencivic/nyc311/record"
)

// ParquetSource reads a parquet encoding of the 311 dataset. It
// implements Source, so a store loads from parquet without any change to
// its query code.
//
// Rows are read as name-keyed maps and reassembled into the positional
// layout of record.Columns before decoding, so the sentinel policy for
// absent or malformed values is exactly the CSV one. Columns missing
// from the parquet schema decode as empty fields. Parquet files carry no
// header row, so nothing is skipped on Open.
type ParquetSource struct {
	file   *os.File
	pqFile *parquet.File

	skipped int
	total   int
}

// NewParquetSource returns an unopened parquet source.
func NewParquetSource() *ParquetSource {
	return &ParquetSource{}
}

// Open opens and validates the parquet file at path.
func (s *ParquetSource) Open(path string) error {
	s.skipped = 0
	s.total = 0

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}

	s.file = f
	s.pqFile = pqFile
	return nil
}

// ReadAll decodes every row into memory.
func (s *ParquetSource) ReadAll() ([]record.ServiceRequest, error) {
	out := make([]record.ServiceRequest, 0, 1024)
	err := s.readRows(func(r record.ServiceRequest) {
		out = append(out, r)
	})
	return out, err
}

// ReadChunk streams decoded records to fn without storing them and
// returns the number of rows processed.
func (s *ParquetSource) ReadChunk(fn func(record.ServiceRequest)) (int, error) {
	err := s.readRows(fn)
	return s.total, err
}

// readRows drives the shared row loop for ReadAll and ReadChunk.
func (s *ParquetSource) readRows(fn func(record.ServiceRequest)) error {
	if s.pqFile == nil {
		return fmt.Errorf("parquet source is not open")
	}

	pr := parquet.NewReader(s.pqFile)
	defer func() { _ = pr.Close() }()

	fields := make([]string, record.MinFields)

	for {
		row := make(map[string]interface{})
		if err := pr.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read row: %w", err)
		}
		s.total++

		for i := 0; i < record.MinFields; i++ {
			fields[i] = stringifyValue(row[record.Columns[i]])
		}
		rec, ok := record.FromFields(fields)
		if !ok {
			s.skipped++
			continue
		}
		fn(rec)
	}
	return nil
}

// stringifyValue renders one parquet cell the way it would appear in the
// raw CSV, so the shared decoder sees identical input.
func stringifyValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Close releases the file handle. Safe to call multiple times.
func (s *ParquetSource) Close() error {
	s.pqFile = nil
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// SkippedRows reports rows dropped as malformed during the last read.
func (s *ParquetSource) SkippedRows() int { return s.skipped }

// TotalRows reports rows processed during the last read.
func (s *ParquetSource) TotalRows() int { return s.total }
