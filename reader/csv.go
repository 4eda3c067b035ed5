package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/opencivic/nyc311/record"
)

// ioBufSize is the scanner buffer ceiling. A multi-megabyte buffer
// amortises syscall overhead on the multi-gigabyte full export and
// leaves headroom for rows with very long quoted resolution text.
const ioBufSize = 4 << 20

// CSVSource reads the raw comma-delimited 311 export. It implements
// Source.
//
// The first line after Open is unconditionally discarded as the header,
// whatever its content. Inputs ending in .gz or .zst are decompressed
// transparently.
type CSVSource struct {
	file    *os.File
	decomp  io.Closer // non-nil when the input is compressed
	scanner *bufio.Scanner

	skipped int
	total   int
}

// NewCSVSource returns an unopened CSV source.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Open opens the file at path, arranges decompression when the extension
// calls for it, and consumes the header line.
func (s *CSVSource) Open(path string) error {
	s.skipped = 0
	s.total = 0

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		s.decomp = zr
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to open zstd stream %s: %w", path, err)
		}
		s.decomp = zr.IOReadCloser()
		r = zr
	}

	s.file = f
	s.scanner = bufio.NewScanner(r)
	s.scanner.Buffer(make([]byte, 0, 64*1024), ioBufSize)

	// Discard the header line regardless of content.
	s.scanner.Scan()
	return nil
}

// ReadAll decodes every remaining row into memory.
//
// Rows with fewer than record.MinFields columns are dropped and counted
// in SkippedRows; blank lines are skipped without counting. After a
// successful ReadAll, TotalRows == len(result) + SkippedRows.
func (s *CSVSource) ReadAll() ([]record.ServiceRequest, error) {
	if s.scanner == nil {
		return nil, fmt.Errorf("csv source is not open")
	}

	out := make([]record.ServiceRequest, 0, 1024)
	var fields []string

	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			continue
		}
		s.total++

		fields = SplitLine(line, fields)
		rec, ok := record.FromFields(fields)
		if !ok {
			s.skipped++
			continue
		}
		out = append(out, rec)
	}

	if err := s.scanner.Err(); err != nil {
		return out, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}

// ReadChunk streams decoded records to fn without storing them. It
// returns the number of data rows processed, skipped ones included.
func (s *CSVSource) ReadChunk(fn func(record.ServiceRequest)) (int, error) {
	if s.scanner == nil {
		return 0, fmt.Errorf("csv source is not open")
	}

	var fields []string

	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			continue
		}
		s.total++

		fields = SplitLine(line, fields)
		rec, ok := record.FromFields(fields)
		if !ok {
			s.skipped++
			continue
		}
		fn(rec)
	}

	if err := s.scanner.Err(); err != nil {
		return s.total, fmt.Errorf("failed to read rows: %w", err)
	}
	return s.total, nil
}

// Close releases the file handle and any decompressor. Safe to call
// multiple times.
func (s *CSVSource) Close() error {
	s.scanner = nil
	if s.decomp != nil {
		_ = s.decomp.Close()
		s.decomp = nil
	}
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// SkippedRows reports rows dropped as malformed during the last read.
func (s *CSVSource) SkippedRows() int { return s.skipped }

// TotalRows reports data rows processed during the last read.
func (s *CSVSource) TotalRows() int { return s.total }
