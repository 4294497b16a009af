// This file implements the bit-level value decoders (spec.md §4.4):
// mapping a flattened prop's type+flags+num_bits+low+high to a scalar
// Go value.

package demoparser

import (
	"math"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demo/democore"
)

// decodeValue decodes one value for fp off r.
func decodeValue(fp *demo.FlattenedProp, r *bitReader) any {
	prop := fp.Prop
	switch prop.Type.ID {
	case democore.SendPropTypeIDInt:
		return decodeInt(prop, r)
	case democore.SendPropTypeIDFloat:
		return decodeFloat(prop, r)
	case democore.SendPropTypeIDVector:
		return decodeVector(prop, r)
	case democore.SendPropTypeIDVectorXY:
		return decodeVectorXY(prop, r)
	case democore.SendPropTypeIDString:
		return decodeString(r)
	case democore.SendPropTypeIDInt64:
		return decodeInt64(r)
	case democore.SendPropTypeIDArray:
		return decodeArray(fp, r)
	default:
		fail(SchemaInvalid, r.bitPos, true, "unsupported prop type in value decode")
		return nil
	}
}

// decodeInt decodes an Int-typed prop: read_bits(num_bits), signed
// unless UNSIGNED is set.
func decodeInt(prop *demo.SendProp, r *bitReader) int32 {
	if prop.HasFlag(democore.SPropUnsigned) {
		return int32(r.readBits(prop.NumBits))
	}
	return r.readSignedBits(prop.NumBits)
}

// decodeFloat decodes a Float-typed prop per spec.md §4.4.
func decodeFloat(prop *demo.SendProp, r *bitReader) float32 {
	switch {
	case prop.HasFlag(democore.SPropCoord):
		return r.readCoord()
	case prop.HasFlag(democore.SPropNoScale):
		return math.Float32frombits(r.readBits(32))
	default:
		raw := r.readBits(prop.NumBits)
		maxRaw := float32((uint64(1) << uint(prop.NumBits)) - 1)
		frac := float32(raw) / maxRaw
		return prop.Low + frac*(prop.High-prop.Low)
	}
}

// decodeVector decodes a Vector-typed prop: three floats, the third a
// readNormal when NORMAL is flagged (spec.md §4.4).
func decodeVector(prop *demo.SendProp, r *bitReader) democore.Vector {
	x := decodeFloat(prop, r)
	y := decodeFloat(prop, r)
	var z float32
	if prop.HasFlag(democore.SPropNormal) {
		z = r.readNormal()
	} else {
		z = decodeFloat(prop, r)
	}
	return democore.Vector{X: x, Y: y, Z: z}
}

// decodeVectorXY decodes a VectorXY-typed prop: two floats, no z.
func decodeVectorXY(prop *demo.SendProp, r *bitReader) democore.VectorXY {
	return democore.VectorXY{
		X: decodeFloat(prop, r),
		Y: decodeFloat(prop, r),
	}
}

// decodeString decodes a String-typed prop: a 9-bit length, then that
// many bytes.
func decodeString(r *bitReader) string {
	length := r.readBits(9)
	return r.readBytesBits(int(length))
}

// decodeInt64 decodes an Int64-typed prop: signed 64 from two 32-bit
// halves, low then high.
func decodeInt64(r *bitReader) int64 {
	low := r.readBits(32)
	high := r.readBits(32)
	return int64(uint64(high)<<32 | uint64(low))
}

// decodeArray decodes an Array-typed prop: a length-bits length, then
// that many decodes of fp.ArrayElementProp. lengthBits is
// ceil(log2(NumElements))+1, the same entry-count-to-bits formula
// entryBitsFor already computes for string table indices.
func decodeArray(fp *demo.FlattenedProp, r *bitReader) []any {
	if fp.ArrayElementProp == nil {
		fail(SchemaInvalid, r.bitPos, true, "array prop with no element prop")
	}
	lengthBits := entryBitsFor(fp.Prop.NumElements) + 1
	n := r.readBits(lengthBits)

	elemFP := &demo.FlattenedProp{Prop: fp.ArrayElementProp}
	out := make([]any, n)
	for i := range out {
		out[i] = decodeValue(elemFP, r)
	}
	return out
}
