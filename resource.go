package statesort

import (
	"cmp"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// Kind identifies what a Resource binds to.
type Kind uint8

const (
	// KindTexture is a sampled texture.
	KindTexture Kind = iota
	// KindShader is a compiled shader module.
	KindShader
	// KindSampler is a sampler object.
	KindSampler
	// KindBuffer is a uniform or storage buffer.
	KindBuffer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindShader:
		return "shader"
	case KindSampler:
		return "sampler"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// nextResourceID hands out resource identities. ID 0 is never issued;
// it is reserved for EmptyKey.
var nextResourceID atomic.Uint64

// Resource is an opaque, identity-comparable handle for a bindable GPU
// resource. Two resources are the same only if they are the same value
// returned by a constructor; contents never take part in comparison.
//
// A Resource is immutable after construction and safe to share between
// goroutines. Its lifetime is owned by the caller, normally a resource.Cache.
type Resource struct {
	id     uint64
	kind   Kind
	label  string
	format gputypes.TextureFormat
	spirv  []byte
}

// NewResource creates a resource of the given kind with a fresh identity.
func NewResource(kind Kind, label string) *Resource {
	return &Resource{
		id:    nextResourceID.Add(1),
		kind:  kind,
		label: label,
	}
}

// NewTexture creates a texture resource with the given pixel format.
func NewTexture(label string, format gputypes.TextureFormat) *Resource {
	r := NewResource(KindTexture, label)
	r.format = format
	return r
}

// NewShader creates a shader resource holding compiled SPIR-V.
// The slice is retained, not copied.
func NewShader(label string, spirv []byte) *Resource {
	r := NewResource(KindShader, label)
	r.spirv = spirv
	return r
}

// ID returns the resource identity. IDs increase in creation order.
func (r *Resource) ID() uint64 { return r.id }

// Kind returns what the resource binds to.
func (r *Resource) Kind() Kind { return r.kind }

// Label returns the debug label given at construction.
func (r *Resource) Label() string { return r.label }

// Format returns the texture format, or TextureFormatUndefined for
// non-texture resources.
func (r *Resource) Format() gputypes.TextureFormat { return r.format }

// SPIRV returns the compiled shader words for shader resources.
func (r *Resource) SPIRV() []byte { return r.spirv }

// String implements fmt.Stringer.
func (r *Resource) String() string {
	if r == nil {
		return "<none>"
	}
	if r.label == "" {
		return fmt.Sprintf("%s#%d", r.kind, r.id)
	}
	return fmt.Sprintf("%s#%d(%s)", r.kind, r.id, r.label)
}

// CompareResources orders resources by identity.
// nil sorts before every non-nil resource.
func CompareResources(a, b *Resource) int {
	return cmp.Compare(resourceKey(a), resourceKey(b))
}

func resourceKey(r *Resource) Key {
	if r == nil {
		return EmptyKey
	}
	return Key(r.id)
}
