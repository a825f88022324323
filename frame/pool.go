package frame

import "sync"

// Pool manages reusable arenas, for renderers that prepare several frames
// concurrently (one arena per in-flight frame).
//
// Usage:
//
//	pool := frame.NewPool()
//	a := pool.Get()
//	defer pool.Put(a)
type Pool struct {
	pool sync.Pool
}

// NewPool creates a pool whose arenas are built with opts.
func NewPool(opts ...Option) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return NewArena(opts...)
			},
		},
	}
}

// Get returns an empty arena.
func (p *Pool) Get() *Arena {
	a := p.pool.Get().(*Arena)
	a.Reset()
	return a
}

// Put returns an arena to the pool. It is reset on the next Get.
func (p *Pool) Put(a *Arena) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
