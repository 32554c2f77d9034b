//go:build !amd64
// +build !amd64

package grid

// hasWideSIMD is conservative off amd64: narrower shard counts avoid
// over-sharding small grids on hosts without an AVX2 probe.
func hasWideSIMD() bool {
	return false
}
