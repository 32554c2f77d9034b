package vecmath

import (
	"encoding/binary"

	"github.com/dgryski/go-farm"
)

// HashCell returns a well-mixed 32-bit hash of a cell coordinate, used as
// the bucket key in the grid's forward index. Hash collisions across
// distinct cells are acceptable by design (see grid package): query
// pruning re-filters by actual bounds intersection, never by hash alone.
//
// The coordinate is packed little-endian into 12 bytes and run through
// Google's farmhash (the same family grailbio-bio uses to hash k-mer
// keys), rather than a hand-rolled XOR-and-multiply mixer.
func HashCell(c Int3) uint32 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(c.X))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(c.Y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(c.Z))

	return farm.Hash32(buf[:])
}
