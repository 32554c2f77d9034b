//go:build !amd64
// +build !amd64

package alloc

// hasWideSIMD is conservative off amd64.
func hasWideSIMD() bool {
	return false
}
