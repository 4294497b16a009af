// This file contains the byte-granularity reader (spec.md §4.1),
// modeled after repparser.sliceReader's positional little-endian reads.

package demoparser

import (
	"encoding/binary"
	"math"
)

// byteReader aids reading data from a byte slice at byte granularity.
// Reads past the end of b panic with a Truncated *ParseError rather than
// the raw runtime slice-bounds panic, so callers (and the top-level
// recover) see a uniform error shape.
type byteReader struct {
	// b is the byte slice being read.
	b []byte

	// pos is the index of the next byte to read.
	pos int
}

// newByteReader returns a byteReader positioned at the start of b.
func newByteReader(b []byte) *byteReader {
	return &byteReader{b: b}
}

// require panics with Truncated if fewer than n bytes remain.
func (r *byteReader) require(n int) {
	if r.pos < 0 || n < 0 || r.pos+n > len(r.b) {
		fail(Truncated, int64(r.pos), false, "byte read past end of input")
	}
}

// readBytes returns the next n bytes as a slice sharing r's backing array.
func (r *byteReader) readBytes(n int) []byte {
	r.require(n)
	b := r.b[r.pos : r.pos+n]
	r.pos += n
	return b
}

// readU8 returns the next byte.
func (r *byteReader) readU8() byte {
	r.require(1)
	b := r.b[r.pos]
	r.pos++
	return b
}

// readI32LE returns the next 4 bytes as a little-endian int32.
func (r *byteReader) readI32LE() int32 {
	return int32(r.readU32LE())
}

// readU32LE returns the next 4 bytes as a little-endian uint32.
func (r *byteReader) readU32LE() uint32 {
	r.require(4)
	v := binary.LittleEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v
}

// readI16LE returns the next 2 bytes as a little-endian int16.
func (r *byteReader) readI16LE() int16 {
	return int16(r.readU16LE())
}

// readU16LE returns the next 2 bytes as a little-endian uint16.
func (r *byteReader) readU16LE() uint16 {
	r.require(2)
	v := binary.LittleEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v
}

// readF32LE returns the next 4 bytes as an IEEE-754 little-endian float32.
func (r *byteReader) readF32LE() float32 {
	return math.Float32frombits(r.readU32LE())
}

// readString reads n bytes and strips everything from the first NUL
// (spec.md §4.1: "strips all bytes from the first NUL").
func (r *byteReader) readString(n int) string {
	b := r.readBytes(n)
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// readVarint32 reads a protobuf-style varint: 1-5 bytes, 7 data bits per
// byte, MSB continuation (spec.md §4.1).
func (r *byteReader) readVarint32() uint32 {
	var result uint32
	for shift := uint(0); shift < 35; shift += 7 {
		b := r.readU8()
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result
		}
	}
	fail(Truncated, int64(r.pos), false, "varint32 too long")
	panic("unreachable")
}

// remaining returns the number of unread bytes.
func (r *byteReader) remaining() int {
	return len(r.b) - r.pos
}

// atEnd reports whether the reader has consumed all of b.
func (r *byteReader) atEnd() bool {
	return r.pos >= len(r.b)
}
