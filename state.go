package statesort

import (
	"cmp"

	"github.com/gogpu/gputypes"
)

// Slot selects one resource binding within a State.
type Slot uint8

const (
	// SlotTexture is the primary texture binding.
	SlotTexture Slot = iota
	// SlotShader is the shader module binding.
	SlotShader
	// SlotSampler is the sampler binding.
	SlotSampler

	// NumSlots is the number of resource slots in a State.
	NumSlots = 3
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotTexture:
		return "texture"
	case SlotShader:
		return "shader"
	case SlotSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// Valid reports whether s addresses a real slot.
func (s Slot) Valid() bool { return s < NumSlots }

// allSlots lists every slot in binding order.
var allSlots = [NumSlots]Slot{SlotTexture, SlotShader, SlotSampler}

// PipelineState is the fixed-function part of a draw configuration.
// The zero value is a triangle list with no culling and no blending.
type PipelineState struct {
	Topology gputypes.PrimitiveTopology
	Cull     gputypes.CullMode
	Blend    gputypes.BlendState
}

// comparePipeline orders pipeline states field by field.
func comparePipeline(a, b *PipelineState) int {
	if c := cmp.Compare(a.Topology, b.Topology); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Cull, b.Cull); c != 0 {
		return c
	}
	if c := compareBlend(a.Blend.Color, b.Blend.Color); c != 0 {
		return c
	}
	return compareBlend(a.Blend.Alpha, b.Blend.Alpha)
}

func compareBlend(a, b gputypes.BlendComponent) int {
	if c := cmp.Compare(a.SrcFactor, b.SrcFactor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DstFactor, b.DstFactor); c != 0 {
		return c
	}
	return cmp.Compare(a.Operation, b.Operation)
}

// State is a draw configuration: one resource per slot plus pipeline state.
// A State is shared by many Records and is not owned by any of them.
//
// The zero value has every slot empty and is ready to use.
type State struct {
	slots [NumSlots]*Resource

	// Pipeline holds fixed-function settings used by ByPipeline.
	Pipeline PipelineState
}

// NewState returns a State with its texture slot set to tex (which may be nil).
func NewState(tex *Resource) *State {
	s := &State{}
	s.slots[SlotTexture] = tex
	return s
}

// Resource returns the texture slot.
func (s *State) Resource() *Resource { return s.slots[SlotTexture] }

// SetResource sets the texture slot.
func (s *State) SetResource(r *Resource) { s.slots[SlotTexture] = r }

// Slot returns the resource bound to slot, or nil if slot is out of range.
func (s *State) Slot(slot Slot) *Resource {
	if !slot.Valid() {
		return nil
	}
	return s.slots[slot]
}

// SetSlot binds r to slot. Out-of-range slots are ignored.
func (s *State) SetSlot(slot Slot, r *Resource) {
	if !slot.Valid() {
		return
	}
	s.slots[slot] = r
}

// Reset clears every slot and the pipeline state.
func (s *State) Reset() {
	*s = State{}
}
