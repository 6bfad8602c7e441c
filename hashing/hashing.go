package hashing

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/twmb/murmur3"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required digest for 160-bit key hashes
)

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sum256d returns the double SHA-256 digest of data.
func Sum256d(data []byte) []byte {
	sum := sha256.Sum256(data)
	sum = sha256.Sum256(sum[:])
	return sum[:]
}

// Hash160 returns RIPEMD-160 of the SHA-256 of data, the 20-byte digest
// used for short identifiers of public keys and scripts.
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// Murmur32 returns the 32-bit Murmur3 hash of data with the given seed.
func Murmur32(data []byte, seed uint32) uint32 {
	return murmur3.SeedSum32(seed, data)
}

// Murmur128 returns the 128-bit Murmur3 hash of data with the given seed
// as a 16-byte little-endian value.
func Murmur128(data []byte, seed uint32) []byte {
	h1, h2 := murmur3.SeedSum128(uint64(seed), uint64(seed), data)
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[:8], h1)
	binary.LittleEndian.PutUint64(out[8:], h2)
	return out
}
