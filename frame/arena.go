package frame

import (
	"context"
	"log/slog"

	"github.com/gogpu/statesort"
)

// DefaultChunkSize is the number of States or Records per backing chunk.
const DefaultChunkSize = 256

// Option configures an Arena.
type Option func(*options)

type options struct {
	chunkSize int
}

// WithChunkSize sets how many States or Records each backing chunk holds.
// Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// chunks is a growable store of fixed-size slabs. Elements never move once
// handed out, so pointers stay valid until Reset.
type chunks[T any] struct {
	slabs [][]T
	used  int // elements handed out across all slabs
	size  int
}

func (c *chunks[T]) next() *T {
	slab, idx := c.used/c.size, c.used%c.size
	if slab == len(c.slabs) {
		c.slabs = append(c.slabs, make([]T, c.size))
	}
	c.used++
	return &c.slabs[slab][idx]
}

// reset zeroes every handed-out element so nothing outlives the frame.
func (c *chunks[T]) reset() {
	var zero T
	for i := 0; i < c.used; i++ {
		c.slabs[i/c.size][i%c.size] = zero
	}
	c.used = 0
}

func (c *chunks[T]) capacity() int { return len(c.slabs) * c.size }

// Arena owns the States and Records of one frame and releases them in bulk.
//
// Typical use:
//
//	a := frame.NewArena()
//	for each frame {
//	    for _, obj := range visible {
//	        a.NewRecord(a.NewState(obj.Texture))
//	    }
//	    statesort.Sort(a.Records(), statesort.ByResource)
//	    statesort.Submit(a.Records(), renderer)
//	    a.Reset()
//	}
//
// Arena is not safe for concurrent use.
type Arena struct {
	states  chunks[statesort.State]
	records chunks[statesort.Record]
	list    []*statesort.Record
}

// NewArena creates an empty arena.
func NewArena(opts ...Option) *Arena {
	o := options{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize <= 0 {
		o.chunkSize = DefaultChunkSize
	}
	return &Arena{
		states:  chunks[statesort.State]{size: o.chunkSize},
		records: chunks[statesort.Record]{size: o.chunkSize},
	}
}

// NewState returns a cleared State owned by the arena with its texture slot
// set to tex.
func (a *Arena) NewState(tex *statesort.Resource) *statesort.State {
	s := a.states.next()
	s.SetResource(tex)
	return s
}

// NewRecord returns a Record owned by the arena referencing s and appends
// it to Records.
func (a *Arena) NewRecord(s *statesort.State) *statesort.Record {
	r := a.records.next()
	r.SetState(s)
	a.list = append(a.list, r)
	return r
}

// Records returns the frame's records in creation order. The slice is owned
// by the arena; callers may reorder it in place but must not retain it past
// Reset.
func (a *Arena) Records() []*statesort.Record { return a.list }

// Len returns the number of records created this frame.
func (a *Arena) Len() int { return len(a.list) }

// States returns the number of states created this frame.
func (a *Arena) States() int { return a.states.used }

// Cap returns how many records fit before the arena allocates again.
func (a *Arena) Cap() int { return a.records.capacity() }

// Reset releases every State and Record at once. Backing memory is kept for
// the next frame.
func (a *Arena) Reset() {
	if l := statesort.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("frame: arena reset",
			slog.Int("records", len(a.list)),
			slog.Int("states", a.states.used))
	}

	a.states.reset()
	a.records.reset()
	clear(a.list)
	a.list = a.list[:0]
}

// Warmup pre-allocates room for n states and n records so the first frames
// do not allocate.
func (a *Arena) Warmup(n int) {
	for a.states.capacity() < n {
		a.states.slabs = append(a.states.slabs, make([]statesort.State, a.states.size))
	}
	for a.records.capacity() < n {
		a.records.slabs = append(a.records.slabs, make([]statesort.Record, a.records.size))
	}
	if cap(a.list) < n {
		list := make([]*statesort.Record, len(a.list), n)
		copy(list, a.list)
		a.list = list
	}
}
