// Package resource owns long-lived statesort resources.
//
// Batching only works if two records that mean the same texture hold the
// same Resource identity. Cache interns resources by name:
//
//	cache := resource.NewCache()
//	brick, _ := cache.Texture("brick", gputypes.TextureFormatRGBA8Unorm)
//	again, _ := cache.Texture("brick", gputypes.TextureFormatRGBA8Unorm) // same identity
//
// Shader resources are compiled from WGSL to SPIR-V with naga on first use:
//
//	sh, err := cache.Shader("sprite", spriteWGSL)
//
// # Thread Safety
//
// Cache uses 16 independently locked shards selected by an FNV-1a hash of
// the name, so loader goroutines can populate it concurrently.
package resource
