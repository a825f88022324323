// Package frame provides per-frame ownership of statesort States and Records.
//
// A renderer builds a fresh set of records every frame. Allocating each one
// on the heap makes the garbage collector pay for objects that live a few
// milliseconds. An Arena hands out States and Records from reusable chunks
// and releases all of them with a single Reset once the frame is drawn.
//
// Resources are not owned by the arena; they live in a longer-lived
// resource.Cache.
package frame
