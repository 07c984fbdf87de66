package identity

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash digests the cell address. Equal ids hash equally; the value is meaningless once
// the id is no longer alive.
func (id UniqueId) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id.Uintptr()))
	return xxhash.Sum64(buf[:])
}
