//go:build amd64
// +build amd64

package alloc

import "golang.org/x/sys/cpu"

// hasWideSIMD reports whether the host can usefully touch larger
// preallocated regions without thrashing cache lines, mirroring
// Geek0x0-pdf's simsys_amd64.go AVX2 probe.
func hasWideSIMD() bool {
	return cpu.X86.HasAVX2
}
