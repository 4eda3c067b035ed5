package store

import "sort"

// ComplaintCount is one entry of the top-complaint ranking.
type ComplaintCount struct {
	ComplaintType string
	Count         int
}

// Summary is a one-pass statistical digest of the loaded collection.
type Summary struct {
	TotalRecords int
	SkippedRows  int

	// EarliestCreated/LatestCreated span only valid created dates and
	// are empty when no record carries one.
	EarliestCreated string
	LatestCreated   string

	BoroughCounts map[string]int
	StatusCounts  map[string]int
	TopComplaints []ComplaintCount

	OpenCount   int
	ClosedCount int
}

// topComplaintLimit caps the complaint ranking in a Summary.
const topComplaintLimit = 10

// Stats computes a Summary over the loaded records in a single pass.
func (s *DataStore) Stats() Summary {
	sum := Summary{
		TotalRecords:  len(s.records),
		SkippedRows:   s.SkippedRows(),
		BoroughCounts: make(map[string]int),
		StatusCounts:  make(map[string]int),
	}

	complaints := make(map[string]int)
	minDate, maxDate := "", ""

	for i := range s.records {
		r := &s.records[i]
		sum.BoroughCounts[r.Borough]++
		sum.StatusCounts[r.Status]++
		complaints[r.ComplaintType]++

		switch {
		case EqualFold(r.Status, "Open"):
			sum.OpenCount++
		case EqualFold(r.Status, "Closed"):
			sum.ClosedCount++
		}

		if r.CreatedDate.Valid {
			d := r.CreatedDate.String()[:10]
			if minDate == "" || d < minDate {
				minDate = d
			}
			if d > maxDate {
				maxDate = d
			}
		}
	}

	sum.EarliestCreated = minDate
	sum.LatestCreated = maxDate

	ranked := make([]ComplaintCount, 0, len(complaints))
	for ct, n := range complaints {
		ranked = append(ranked, ComplaintCount{ComplaintType: ct, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ComplaintType < ranked[j].ComplaintType
	})
	if len(ranked) > topComplaintLimit {
		ranked = ranked[:topComplaintLimit]
	}
	sum.TopComplaints = ranked

	return sum
}
