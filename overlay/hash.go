// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"scrim.dev/scrim/f32"
)

// Hasher accumulates a layout fingerprint. Overlays write every value
// that affects their computed layout into it; the toolkit compares
// Sum64 across frames and skips the layout pass when the digest is
// unchanged. All helpers write fixed-width little-endian bytes, so
// equal state always produces equal digests.
type Hasher struct {
	d xxhash.Digest
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	h := new(Hasher)
	h.d.Reset()
	return h
}

// Reset restores h to its empty state.
func (h *Hasher) Reset() {
	h.d.Reset()
}

// Sum64 returns the digest of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// WriteString hashes s along with its length, so consecutive strings
// hash unambiguously.
func (h *Hasher) WriteString(s string) {
	h.WriteUint32(uint32(len(s)))
	h.d.WriteString(s)
}

// WriteUint32 hashes v.
func (h *Hasher) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	h.d.Write(buf[:])
}

// WriteFloat32 hashes the bit pattern of v.
func (h *Hasher) WriteFloat32(v float32) {
	h.WriteUint32(math.Float32bits(v))
}

// WriteBool hashes v.
func (h *Hasher) WriteBool(v bool) {
	var b uint32
	if v {
		b = 1
	}
	h.WriteUint32(b)
}

// WritePoint hashes p.
func (h *Hasher) WritePoint(p f32.Point) {
	h.WriteFloat32(p.X)
	h.WriteFloat32(p.Y)
}

// WriteSize hashes sz.
func (h *Hasher) WriteSize(sz f32.Size) {
	h.WriteFloat32(sz.Width)
	h.WriteFloat32(sz.Height)
}
