package resource

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/statesort"
)

// Errors returned by Cache.
var (
	// ErrEmptyName is returned when a resource is requested without a name.
	ErrEmptyName = errors.New("resource: empty name")

	// ErrKindMismatch is returned when a name is already cached as a
	// different kind of resource.
	ErrKindMismatch = errors.New("resource: kind mismatch")

	// ErrFormatMismatch is returned when a texture name is already cached
	// with a different format.
	ErrFormatMismatch = errors.New("resource: texture format mismatch")
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	shardMask = ShardCount - 1
)

// hashName computes the FNV-1a hash of a resource name.
func hashName(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Cache owns long-lived resources and interns them by name, so every
// request for a name yields the same identity and records referencing it
// batch together.
//
// Entries are never evicted implicitly: dropping a resource that records
// still reference would split their batch. Call Release when a resource is
// no longer drawn.
//
// Cache is safe for concurrent use and must not be copied.
type Cache struct {
	shards [ShardCount]*shard

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]*statesort.Resource
}

// Stats contains cache statistics.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]*statesort.Resource)}
	}
	return c
}

func (c *Cache) shardFor(name string) *shard {
	return c.shards[hashName(name)&shardMask]
}

// Texture returns the texture cached under name, creating it with format
// on first use.
func (c *Cache) Texture(name string, format gputypes.TextureFormat) (*statesort.Resource, error) {
	r, err := c.getOrCreate(name, statesort.KindTexture, func() (*statesort.Resource, error) {
		return statesort.NewTexture(name, format), nil
	})
	if err != nil {
		return nil, err
	}
	if r.Format() != format {
		return nil, fmt.Errorf("%w: %q is %s, requested %s", ErrFormatMismatch, name, r.Format(), format)
	}
	return r, nil
}

// Sampler returns the sampler cached under name, creating it on first use.
func (c *Cache) Sampler(name string) (*statesort.Resource, error) {
	return c.getOrCreate(name, statesort.KindSampler, func() (*statesort.Resource, error) {
		return statesort.NewResource(statesort.KindSampler, name), nil
	})
}

// Buffer returns the buffer cached under name, creating it on first use.
func (c *Cache) Buffer(name string) (*statesort.Resource, error) {
	return c.getOrCreate(name, statesort.KindBuffer, func() (*statesort.Resource, error) {
		return statesort.NewResource(statesort.KindBuffer, name), nil
	})
}

// Shader returns the shader cached under name. On first use the WGSL
// source is compiled to SPIR-V; a compile error is returned and nothing is
// cached. Later calls return the cached shader without looking at wgsl.
func (c *Cache) Shader(name, wgsl string) (*statesort.Resource, error) {
	return c.getOrCreate(name, statesort.KindShader, func() (*statesort.Resource, error) {
		spirv, err := naga.Compile(wgsl)
		if err != nil {
			return nil, fmt.Errorf("resource: compile shader %q: %w", name, err)
		}
		statesort.Logger().Debug("resource: shader compiled",
			slog.String("name", name),
			slog.Int("spirv_bytes", len(spirv)))
		return statesort.NewShader(name, spirv), nil
	})
}

// getOrCreate returns the entry for name or creates it. create runs with
// the shard lock held so concurrent callers never build the same resource
// twice; other shards stay available meanwhile.
func (c *Cache) getOrCreate(name string, kind statesort.Kind, create func() (*statesort.Resource, error)) (*statesort.Resource, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	s := c.shardFor(name)

	s.mu.RLock()
	r, ok := s.entries[name]
	s.mu.RUnlock()

	if !ok {
		s.mu.Lock()
		// Re-check after acquiring the write lock.
		if r, ok = s.entries[name]; !ok {
			created, err := create()
			if err != nil {
				s.mu.Unlock()
				return nil, err
			}
			s.entries[name] = created
			s.mu.Unlock()
			c.misses.Add(1)
			return created, nil
		}
		s.mu.Unlock()
	}

	c.hits.Add(1)
	if r.Kind() != kind {
		return nil, fmt.Errorf("%w: %q is a %s, requested %s", ErrKindMismatch, name, r.Kind(), kind)
	}
	return r, nil
}

// Get returns the resource cached under name.
func (c *Cache) Get(name string) (*statesort.Resource, bool) {
	s := c.shardFor(name)
	s.mu.RLock()
	r, ok := s.entries[name]
	s.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return r, ok
}

// Release removes name from the cache. Records that still reference the
// resource keep a valid identity, but a later request for name creates a
// new one. Returns true if the entry existed.
func (c *Cache) Release(name string) bool {
	s := c.shardFor(name)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	return true
}

// Clear removes all entries.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*statesort.Resource)
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (c *Cache) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, s := range c.shards {
		s.mu.RLock()
		lens[i] = len(s.entries)
		s.mu.RUnlock()
	}
	return lens
}

// Stats returns current statistics. Counters are read atomically.
func (c *Cache) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:     c.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
	}
}

// ResetStats resets the hit and miss counters.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
