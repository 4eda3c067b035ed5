// Package store owns the in-memory 311 record collection and answers
// predicate queries against it by full scan.
//
// A DataStore loads records through an injected reader.Source, so the
// same query code runs over the raw CSV export or a parquet encoding.
// Every filter is a single O(n) pass returning a Result of stable
// indices into the store; record payloads are never copied. There is no
// index and no planner; the linear scan is the deliberate baseline, and
// an index would bolt on here if one were ever needed.
//
// The store assumes a single writer: do not call Load concurrently with
// queries. Concurrent read-only queries against an unmodified store are
// safe. Calling Load again replaces the collection and invalidates every
// previously returned Result; stale results report ErrStaleResult
// instead of silently reading replaced data.
package store

import (
	"fmt"

	"github.com/opencivic/nyc311/datetime"
	"github.com/opencivic/nyc311/reader"
	"github.com/opencivic/nyc311/record"
)

// DataStore is the facade for loading and querying service requests.
type DataStore struct {
	source  reader.Source
	records []record.ServiceRequest

	// generation increments on every Load so outstanding Results can
	// detect that their indices refer to a replaced collection.
	generation uint64
}

// New creates a DataStore that loads through the given source.
func New(src reader.Source) *DataStore {
	return &DataStore{source: src}
}

// Load replaces the store's contents with the records at path.
//
// It returns the number of records now held. An open failure leaves the
// store empty and returns the error alongside a zero count; an empty
// store is a normal outcome the caller may keep querying. A single
// malformed row never aborts the load; it is dropped and counted in
// SkippedRows.
func (s *DataStore) Load(path string) (int, error) {
	s.records = nil
	s.generation++

	if err := s.source.Open(path); err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer func() { _ = s.source.Close() }()

	recs, err := s.source.ReadAll()
	s.records = recs
	if err != nil {
		return len(s.records), fmt.Errorf("failed to load %s: %w", path, err)
	}
	return len(s.records), nil
}

// Size returns the number of records held.
func (s *DataStore) Size() int { return len(s.records) }

// SkippedRows reports rows the source dropped as malformed during the
// last Load.
func (s *DataStore) SkippedRows() int {
	if s.source == nil {
		return 0
	}
	return s.source.SkippedRows()
}

// TotalRows reports data rows the source processed during the last Load.
func (s *DataStore) TotalRows() int {
	if s.source == nil {
		return 0
	}
	return s.source.TotalRows()
}

// Records exposes the full collection for read-only iteration. Callers
// must not mutate or retain the slice across a Load.
func (s *DataStore) Records() []record.ServiceRequest { return s.records }

// FilterByDateRange returns the records whose created date is valid and
// falls within [start, end], both ends inclusive.
func (s *DataStore) FilterByDateRange(start, end datetime.DateTime) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return r.CreatedDate.Valid &&
			start.LessEq(r.CreatedDate) &&
			r.CreatedDate.LessEq(end)
	})
}

// FilterByBorough returns the records filed in the given borough,
// compared ASCII case-insensitively.
func (s *DataStore) FilterByBorough(borough string) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return EqualFold(r.Borough, borough)
	})
}

// FilterByAgency returns the records handled by the given agency code
// (e.g. "NYPD", "DOT"), compared ASCII case-insensitively.
func (s *DataStore) FilterByAgency(agency string) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return EqualFold(r.Agency, agency)
	})
}

// FilterByStatus returns the records with the given status (e.g. "Open",
// "Closed"), compared ASCII case-insensitively.
func (s *DataStore) FilterByStatus(status string) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return EqualFold(r.Status, status)
	})
}

// FilterByComplaintType returns the records whose complaint type
// contains keyword, ASCII case-insensitively. An empty keyword matches
// every record.
func (s *DataStore) FilterByComplaintType(keyword string) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return ContainsFold(r.ComplaintType, keyword)
	})
}

// FilterByZip returns the records with the given incident zip code.
// Plain integer equality; a zip of 0 matches records whose zip column
// was absent or malformed (sentinel overlap, see package record).
func (s *DataStore) FilterByZip(zip uint32) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return r.IncidentZip == zip
	})
}

// FilterByCouncilDistrict returns the records in the given council
// district. District -1 matches records whose district column was empty.
func (s *DataStore) FilterByCouncilDistrict(district int16) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return r.CouncilDistrict == district
	})
}

// FilterByLatLonBox returns the records whose coordinates fall inside
// the bounding box, all four bounds inclusive. The box is not validated:
// an inverted box returns an empty result.
func (s *DataStore) FilterByLatLonBox(minLat, maxLat, minLon, maxLon float64) Result {
	return s.scan(func(r *record.ServiceRequest) bool {
		return r.Latitude >= minLat && r.Latitude <= maxLat &&
			r.Longitude >= minLon && r.Longitude <= maxLon
	})
}

// scan runs one linear pass collecting the indices of matching records
// in insertion order.
func (s *DataStore) scan(match func(*record.ServiceRequest) bool) Result {
	res := Result{store: s, generation: s.generation}
	for i := range s.records {
		if match(&s.records[i]) {
			res.indices = append(res.indices, i)
		}
	}
	return res
}
