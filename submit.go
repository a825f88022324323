package statesort

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNilBinder is returned by Submit when no Binder is given.
var ErrNilBinder = errors.New("statesort: nil binder")

// Binder receives the state changes and draws of a submit pass.
// It is implemented by the renderer that owns the device.
type Binder interface {
	// Bind makes r current for slot. r is nil when the slot becomes empty.
	Bind(slot Slot, r *Resource) error
	// Draw issues the draw for rec with the current bindings.
	Draw(rec *Record) error
}

// SubmitStats summarizes a submit pass.
type SubmitStats struct {
	Records int // records visited, including nil ones
	Draws   int
	Skipped int // nil records
	Binds   [NumSlots]int
}

// TotalBinds returns the number of Bind calls across all slots.
func (s SubmitStats) TotalBinds() int {
	n := 0
	for _, b := range s.Binds {
		n += b
	}
	return n
}

// Submit walks records in order and draws each one, calling Bind for a
// slot only when its resource differs from the one bound before. Every slot
// starts unbound, so the first record with a resource in a slot binds it.
// With no slots listed, all slots are tracked.
//
// nil records are skipped. A Bind or Draw error stops the pass; the
// returned stats cover the work done up to that point.
func Submit(records []*Record, b Binder, slots ...Slot) (SubmitStats, error) {
	var stats SubmitStats
	if b == nil {
		return stats, ErrNilBinder
	}
	if len(slots) == 0 {
		slots = allSlots[:]
	}

	var bound [NumSlots]*Resource
	for i, rec := range records {
		stats.Records++
		if rec == nil {
			stats.Skipped++
			continue
		}
		for _, s := range slots {
			if !s.Valid() {
				continue
			}
			r := ResourceOf(rec, s)
			if r == bound[s] {
				continue
			}
			if err := b.Bind(s, r); err != nil {
				return stats, fmt.Errorf("statesort: record %d: bind %s: %w", i, s, err)
			}
			bound[s] = r
			stats.Binds[s]++
		}
		if err := b.Draw(rec); err != nil {
			return stats, fmt.Errorf("statesort: record %d: draw: %w", i, err)
		}
		stats.Draws++
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("statesort: submit",
			slog.Int("records", stats.Records),
			slog.Int("draws", stats.Draws),
			slog.Int("skipped", stats.Skipped),
			slog.Int("binds", stats.TotalBinds()))
	}
	return stats, nil
}
