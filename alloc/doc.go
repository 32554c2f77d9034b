// Package alloc provides the pluggable allocator identity and preallocation
// sizing hint a grid.SpatialHash is constructed with (§4.D.1's "allocator"
// construction parameter). It does not implement a custom memory allocator
// itself — Go has none of the manual-arena concerns the source language
// did — but it gives a grid instance a stable label and a host-aware
// headroom suggestion for PrepareFreePlace, the same way Geek0x0-pdf probes
// AVX2 to size a batching constant rather than hard-coding one.
package alloc
