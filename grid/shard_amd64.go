//go:build amd64
// +build amd64

package grid

import "golang.org/x/sys/cpu"

// hasWideSIMD reports whether the host can usefully run wider per-shard
// batches of bucket appends without thrashing cache lines.
func hasWideSIMD() bool {
	return cpu.X86.HasAVX2
}
