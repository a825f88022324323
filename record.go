package statesort

// Record is one drawable unit. It references a State that it does not own.
//
// Records are created per frame (see frame.Arena) and sorted by the
// resources their State references before being submitted.
type Record struct {
	state *State
}

// NewRecord returns a record referencing s. s may be nil.
func NewRecord(s *State) *Record {
	return &Record{state: s}
}

// State returns the referenced state, which may be nil.
func (r *Record) State() *State { return r.state }

// SetState replaces the referenced state.
func (r *Record) SetState(s *State) { r.state = s }

// Key is the sort key of a record for one slot: the identity of the
// resource reachable through the record's State, or EmptyKey.
type Key uint64

// EmptyKey is the key of a nil record, a record without a State, or a
// State with an empty slot. It is less than every resource key.
const EmptyKey Key = 0

// KeyOf returns the key of rec for slot.
func KeyOf(rec *Record, slot Slot) Key {
	return resourceKey(ResourceOf(rec, slot))
}

// ResourceOf returns the resource reachable from rec in slot, or nil when
// any link in the chain is missing.
func ResourceOf(rec *Record, slot Slot) *Resource {
	if rec == nil || rec.state == nil {
		return nil
	}
	return rec.state.Slot(slot)
}
