// Package codec implements the bitstream codec core: the pair of
// directional transforms between a chip.Model and a flat frame-memory
// image, built from three sub-codecs (I/O blocks, logic LUTs, routing
// switches) that share the frame-addressing scheme in this file and the
// default-bit table in defaults.go.
package codec

import (
	"encoding/binary"

	"github.com/xc6lx9/bitstream/chip"
)

// Buffer is the flat frame-memory image the codec reads and writes.
type Buffer struct {
	d []byte
}

// NewBuffer allocates a zeroed frame buffer sized for the model's chip
// variant.
func NewBuffer(m *chip.Model) *Buffer {
	size := chip.XC6SLX9Rows * chip.FramesPerRow(m.Variant) * chip.FrameSize
	return &Buffer{d: make([]byte, size)}
}

// Bytes exposes the underlying buffer, e.g. for cmd/bitview or serialising
// to the chip-specific on-wire format.
func (b *Buffer) Bytes() []byte { return b.d }

// firstMinorOffset returns the byte offset of minor 0 of (row, major),
// mirroring get_first_minor.
func firstMinorOffset(v chip.Variant, row, major int) int {
	frames := 0
	for i := 0; i < major; i++ {
		frames += chip.MinorsInMajor(v, i)
	}
	return (row*chip.FramesPerRow(v) + frames) * chip.FrameSize
}

// frameOffset returns the byte offset of the start of frame (row, major,
// minor).
func frameOffset(v chip.Variant, row, major, minor int) int {
	return firstMinorOffset(v, row, major) + minor*chip.FrameSize
}

// BitGet reads a single bit from frame (row, major, minor).
func (b *Buffer) BitGet(v chip.Variant, row, major, minor, bit int) bool {
	base := frameOffset(v, row, major, minor)
	byteIdx, within := bit>>3, uint(bit&7)
	return b.d[base+byteIdx]&(1<<within) != 0
}

// BitSet sets a single bit in frame (row, major, minor).
func (b *Buffer) BitSet(v chip.Variant, row, major, minor, bit int) {
	base := frameOffset(v, row, major, minor)
	byteIdx, within := bit>>3, uint(bit&7)
	b.d[base+byteIdx] |= 1 << within
}

// BitClear clears a single bit in frame (row, major, minor).
func (b *Buffer) BitClear(v chip.Variant, row, major, minor, bit int) {
	base := frameOffset(v, row, major, minor)
	byteIdx, within := bit>>3, uint(bit&7)
	b.d[base+byteIdx] &^= 1 << within
}

// WordGetU32 reads a little-endian 32-bit word at a byte offset within
// frame (row, major, minor).
func (b *Buffer) WordGetU32(v chip.Variant, row, major, minor, byteOff int) uint32 {
	base := frameOffset(v, row, major, minor) + byteOff
	return binary.LittleEndian.Uint32(b.d[base : base+4])
}

// WordSetU32 writes a little-endian 32-bit word at a byte offset within
// frame (row, major, minor).
func (b *Buffer) WordSetU32(v chip.Variant, row, major, minor, byteOff int, val uint32) {
	base := frameOffset(v, row, major, minor) + byteOff
	binary.LittleEndian.PutUint32(b.d[base:base+4], val)
}

// WordGetU64 reads a little-endian 64-bit word at a byte offset within
// frame (row, major, minor).
func (b *Buffer) WordGetU64(v chip.Variant, row, major, minor, byteOff int) uint64 {
	base := frameOffset(v, row, major, minor) + byteOff
	return binary.LittleEndian.Uint64(b.d[base : base+8])
}

// WordSetU64 writes a little-endian 64-bit word at a byte offset within
// frame (row, major, minor).
func (b *Buffer) WordSetU64(v chip.Variant, row, major, minor, byteOff int, val uint64) {
	base := frameOffset(v, row, major, minor) + byteOff
	binary.LittleEndian.PutUint64(b.d[base:base+8], val)
}

// directSlice returns a raw byte slice directly by flat offset, used by the I/O
// codec, which is indexed by a flat part index rather than
// (row, major, minor).
func (b *Buffer) directSlice(offset, length int) []byte {
	return b.d[offset : offset+length]
}

// RowLocalByteOffset computes the in-frame byte offset for a tile's row-local
// position, mirroring the original's row/row_pos addressing (spec.md §4.1).
// row_pos == HCLKPos is the mid-row horizontal-clock position: it carries no
// addressable device bits and is rejected outright.
func RowLocalByteOffset(rowPos int) (int, error) {
	if rowPos == chip.HCLKPos {
		return 0, NewError(InvalidBitstream, "frame", -1, -1,
			"row_pos %d is the mid-row horizontal-clock position and is not addressable", rowPos)
	}
	if rowPos > chip.HCLKPos {
		return (rowPos-1)*8 + chip.HCLKBytes, nil
	}
	return rowPos * 8, nil
}

// AllZero reports whether every byte in the buffer is zero, used to check
// the residual-zero invariant (spec.md §8 item 2).
func (b *Buffer) AllZero() bool {
	for _, v := range b.d {
		if v != 0 {
			return false
		}
	}
	return true
}

// putU32 and getU32 access a little-endian word within an already-sliced
// byte range, used by the I/O codec's flat (non-row/major/minor)
// addressing.
func putU32(s []byte, val uint32) { binary.LittleEndian.PutUint32(s, val) }
func getU32(s []byte) uint32      { return binary.LittleEndian.Uint32(s) }
