package statesort

import (
	"cmp"
	"slices"
)

// Compare orders two records. It returns a negative number when a sorts
// before b, a positive number when b sorts before a, and zero otherwise.
// Comparators must define a strict weak ordering and must accept nil
// records and records without a State.
type Compare func(a, b *Record) int

// ByResource orders records by the identity of their texture resource.
// Records without a texture sort first.
func ByResource(a, b *Record) int {
	return cmp.Compare(KeyOf(a, SlotTexture), KeyOf(b, SlotTexture))
}

// BySlot orders records by the identity of the resource in slot.
func BySlot(slot Slot) Compare {
	return func(a, b *Record) int {
		return cmp.Compare(KeyOf(a, slot), KeyOf(b, slot))
	}
}

// BySlots orders records lexicographically by the resources in slots,
// most significant first. With no slots every record compares equal.
func BySlots(slots ...Slot) Compare {
	slots = slices.Clone(slots)
	return func(a, b *Record) int {
		for _, s := range slots {
			if c := cmp.Compare(KeyOf(a, s), KeyOf(b, s)); c != 0 {
				return c
			}
		}
		return 0
	}
}

// ByPipeline orders records by their State's pipeline settings.
// Records without a State sort first.
func ByPipeline(a, b *Record) int {
	pa, pb := pipelineOf(a), pipelineOf(b)
	switch {
	case pa == nil && pb == nil:
		return 0
	case pa == nil:
		return -1
	case pb == nil:
		return 1
	}
	return comparePipeline(pa, pb)
}

func pipelineOf(rec *Record) *PipelineState {
	if rec == nil || rec.state == nil {
		return nil
	}
	return &rec.state.Pipeline
}

// Then chains comparators: later ones break ties left by earlier ones.
func Then(cmps ...Compare) Compare {
	cmps = slices.Clone(cmps)
	return func(a, b *Record) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Sort reorders records in place so that records with equal keys under
// c are adjacent and in ascending key order. Records that compare equal
// keep their relative order, so sorting a sorted slice is a no-op.
// A nil c means ByResource.
//
// Sort does not allocate and never mutates records or states.
func Sort(records []*Record, c Compare) {
	if c == nil {
		c = ByResource
	}
	slices.SortStableFunc(records, c)
}

// Sorted returns a sorted copy of records, leaving the input untouched.
func Sorted(records []*Record, c Compare) []*Record {
	out := slices.Clone(records)
	Sort(out, c)
	return out
}

// IsSorted reports whether records are already in c order.
func IsSorted(records []*Record, c Compare) bool {
	if c == nil {
		c = ByResource
	}
	return slices.IsSortedFunc(records, c)
}

// SorterOption configures a BatchSorter.
type SorterOption func(*sorterOptions)

type sorterOptions struct {
	cmp Compare
}

// WithCompare sets the ordering used by the sorter.
func WithCompare(c Compare) SorterOption {
	return func(o *sorterOptions) {
		o.cmp = c
	}
}

// WithSlots orders by the given slots, most significant first.
//
//	s := statesort.NewBatchSorter(statesort.WithSlots(statesort.SlotShader, statesort.SlotTexture))
func WithSlots(slots ...Slot) SorterOption {
	return func(o *sorterOptions) {
		o.cmp = BySlots(slots...)
	}
}

// BatchSorter groups records that share resources so a draw pass changes
// state as rarely as possible. It keeps only its configuration between
// calls; the zero value sorts by texture.
type BatchSorter struct {
	cmp Compare
}

// NewBatchSorter creates a sorter. Without options it sorts by texture.
func NewBatchSorter(opts ...SorterOption) *BatchSorter {
	o := sorterOptions{cmp: ByResource}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cmp == nil {
		o.cmp = ByResource
	}
	return &BatchSorter{cmp: o.cmp}
}

// Sort reorders records in place. See the package-level Sort.
func (s *BatchSorter) Sort(records []*Record) {
	Sort(records, s.cmp)
}

// Sorted returns a sorted copy of records.
func (s *BatchSorter) Sorted(records []*Record) []*Record {
	return Sorted(records, s.cmp)
}

// Compare returns the ordering in use.
func (s *BatchSorter) Compare() Compare {
	if s.cmp == nil {
		return ByResource
	}
	return s.cmp
}
