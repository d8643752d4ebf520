package geowords

import (
	"crypto/sha256"
	"encoding/binary"
)

// keystream expands a key into bitPrecision deterministic pseudorandom bits:
// the low bitPrecision bits of the big-endian integer formed by the first
// eight bytes of SHA-256 over the exact key bytes. The same key always yields
// the same keystream, in-process and across machines.
//
// The empty key is an explicit identity branch, not SHA-256(""): with no key
// the codec behaves as a plain grid-to-words encoding.
//
// SHA-256 here provides determinism and key spreading, not secrecy. The
// keyspace is searchable by anyone holding a known coordinate/words pair;
// see the package documentation.
func keystream(key string, bitPrecision int) uint64 {
	if key == "" {
		return 0
	}
	sum := sha256.Sum256([]byte(key))
	ks := binary.BigEndian.Uint64(sum[:8])
	return ks & (1<<uint(bitPrecision) - 1)
}

// transformCell XORs the cell index with the key-derived keystream. XOR is
// self-inverse, so the same call both applies and inverts the transform; it
// is an exact bijection on [0, 2^bitPrecision).
func transformCell(cell uint64, key string, bitPrecision int) uint64 {
	return cell ^ keystream(key, bitPrecision)
}
