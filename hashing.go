// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"encoding/binary"
	"hash"
)

// FastIntHash avalanches a 32-bit key with two multiplicative rounds.
// Sequential keys, the dominant workload for the integer containers,
// spread across the full 32-bit range instead of clustering.
func FastIntHash(value int32) uint32 {
	x := uint32(value)
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = (x >> 16) ^ x
	return x
}

// FastLongHash avalanches a 64-bit key SplitMix64-style and truncates
// the result to 32 bits.
func FastLongHash(value int64) uint32 {
	x := uint64(value)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x = x ^ (x >> 31)
	return uint32(x)
}

// MixHash applies the Murmur3 32-bit finalizer to an existing hash.
// The integer containers use MixHash(FastIntHash(k)) for slot placement.
func MixHash(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// CompoundHash combines two 32-bit keys into a single hash using the
// 31-multiplier accumulation over their avalanched forms.
func CompoundHash(a, b int32) uint32 {
	result := uint32(1)
	result = 31*result + FastIntHash(a)
	result = 31*result + FastIntHash(b)
	return result
}

// Hasher is a byte-stream hash that folds 8-byte little-endian chunks
// through FastLongHash into a running 64-bit state. It implements
// hash.Hash64. The zero value is ready to use.
//
// The integer containers do not use Hasher; it serves callers that need
// to hash buffer contents, such as DirectBuffer equality keyed lookups.
type Hasher struct {
	state uint64
}

var _ hash.Hash64 = (*Hasher)(nil)

// NewHasher returns a Hasher with zeroed state.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Write folds p into the hash state. The final chunk of fewer than
// 8 bytes is zero-padded. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) >= SizeOfUint64 {
		h.state += uint64(FastLongHash(int64(binary.LittleEndian.Uint64(p))))
		p = p[SizeOfUint64:]
	}
	if len(p) > 0 {
		var chunk uint64
		for i, b := range p {
			chunk |= uint64(b) << (i * 8)
		}
		h.state += uint64(FastLongHash(int64(chunk)))
	}
	return n, nil
}

// WriteUint32 folds a single 32-bit value into the hash state.
func (h *Hasher) WriteUint32(v uint32) {
	h.state += uint64(FastIntHash(int32(v)))
}

// WriteUint64 folds a single 64-bit value into the hash state.
func (h *Hasher) WriteUint64(v uint64) {
	h.state += uint64(FastLongHash(int64(v)))
}

// Sum64 returns the current hash state.
func (h *Hasher) Sum64() uint64 {
	return h.state
}

// Sum appends the current state in big-endian form to b.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.state)
}

// Reset zeroes the hash state.
func (h *Hasher) Reset() {
	h.state = 0
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int { return SizeOfUint64 }

// BlockSize returns the hash block size.
func (h *Hasher) BlockSize() int { return SizeOfUint64 }
