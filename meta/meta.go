package meta

import (
	"encoding/binary"
	"hash"
	"hash/fnv"

	"github.com/wippyai/ffi-boundary/bind"
)

// ContractVersion identifies the coercion contract between the two
// sides of the boundary. Both sides must agree on it before exchanging
// values; bump it whenever an observable coercion rule changes.
const ContractVersion uint32 = 1

// Checksum fingerprints a bound signature: contract version, qualified
// name, parameter descriptors, and result descriptor all feed the hash.
// The value is deterministic across runs and platforms, so a stale
// generated binding on one side shows up as a checksum mismatch instead
// of silent corruption.
func Checksum(b *bind.BoundFunc) uint16 {
	h := fnv.New64a()

	writeU64(h, uint64(ContractVersion))
	writeString(h, b.Name())

	params := b.Params()
	writeU64(h, uint64(len(params)))
	for _, d := range params {
		writeString(h, d.String())
	}

	// Option framing: absent results hash differently from any present one.
	if d, ok := b.Result(); ok {
		writeU64(h, 1)
		writeString(h, d.String())
	} else {
		writeU64(h, 0)
	}

	return uint16(h.Sum64())
}

// Strings are terminated with a sentinel byte so "ab","c" and "a","bc"
// cannot collide.
func writeString(h hash.Hash64, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0xff})
}

func writeU64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}
