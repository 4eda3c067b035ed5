package store

import (
	"errors"

	"github.com/opencivic/nyc311/record"
)

// ErrStaleResult is returned when a Result is read after its store has
// been reloaded.
var ErrStaleResult = errors.New("store: result invalidated by reload")

// Result is an ordered set of references into a DataStore, produced by
// one filter pass. It holds stable indices rather than pointers, plus
// the store generation it was computed against: reading a Result after
// the store has been reloaded yields ErrStaleResult rather than rows
// from the wrong dataset.
//
// A Result never copies record payloads.
type Result struct {
	store      *DataStore
	generation uint64
	indices    []int
}

// Len returns the number of matching records.
func (r Result) Len() int { return len(r.indices) }

// At returns the i-th matching record in scan order. The pointer aliases
// the store's collection and must not be retained across a Load.
func (r Result) At(i int) (*record.ServiceRequest, error) {
	if r.generation != r.store.generation {
		return nil, ErrStaleResult
	}
	return &r.store.records[r.indices[i]], nil
}

// Records returns pointers to every matching record in scan order.
func (r Result) Records() ([]*record.ServiceRequest, error) {
	if r.generation != r.store.generation {
		return nil, ErrStaleResult
	}
	out := make([]*record.ServiceRequest, len(r.indices))
	for i, idx := range r.indices {
		out[i] = &r.store.records[idx]
	}
	return out, nil
}

// Intersect returns a Result holding the indices present in both r and
// o, preserving r's scan order. Both results must come from the same
// store generation; otherwise the stale one wins and the intersection is
// reported stale on read.
func (r Result) Intersect(o Result) Result {
	in := make(map[int]struct{}, len(o.indices))
	for _, idx := range o.indices {
		in[idx] = struct{}{}
	}
	out := Result{store: r.store, generation: r.generation}
	if o.generation != r.generation {
		// Mismatched generations cannot be combined meaningfully.
		out.generation = ^uint64(0)
		return out
	}
	for _, idx := range r.indices {
		if _, ok := in[idx]; ok {
			out.indices = append(out.indices, idx)
		}
	}
	return out
}
