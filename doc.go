// Package statesort batches draw records by the GPU resources they use.
//
// # Overview
//
// A renderer that draws records in arbitrary order pays for a state change
// every time consecutive records use different textures, shaders or
// samplers. statesort reorders a frame's records so records sharing a
// resource are adjacent, then drives a draw pass that rebinds a resource
// only when it actually changes.
//
// # Data Model
//
//   - Resource: opaque identity of a bindable object (texture, shader, ...)
//   - State: one Resource per Slot plus fixed-function PipelineState
//   - Record: one drawable unit referencing a shared State
//
// Resources are ordered by identity, never by contents. A record with no
// State, or whose State has an empty slot, has the key EmptyKey, which sorts
// before every resource.
//
// # Quick Start
//
//	brick := statesort.NewTexture("brick", gputypes.TextureFormatRGBA8Unorm)
//	grass := statesort.NewTexture("grass", gputypes.TextureFormatRGBA8Unorm)
//
//	records := []*statesort.Record{
//	    statesort.NewRecord(statesort.NewState(grass)),
//	    statesort.NewRecord(statesort.NewState(brick)),
//	    statesort.NewRecord(statesort.NewState(grass)),
//	}
//	statesort.Sort(records, statesort.ByResource)
//	stats, err := statesort.Submit(records, myBinder)
//
// # Ownership
//
// Resources live in a long-lived resource.Cache. States and Records are
// per-frame and are best allocated from a frame.Arena, which releases them
// in bulk once the frame is drawn.
//
// # Thread Safety
//
// Sort and Submit assume exclusive access to the records and states for the
// duration of the call. Resources are immutable and may be shared freely.
package statesort
