package demoparser

import (
	"testing"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demo/democore"
)

// TestDecodeArrayPowerOfTwoLength exercises decodeArray with
// NumElements=4 (a power of two), where floor(log2(n))+1 and
// ceil(log2(n)) differ by one: lengthBits must
// be entryBitsFor(4)+1 == 3, not bits.Len(4)+1 == 4.
func TestDecodeArrayPowerOfTwoLength(t *testing.T) {
	intType := democore.SendPropTypeByID(democore.SendPropTypeIDInt)
	arrayType := democore.SendPropTypeByID(democore.SendPropTypeIDArray)

	elemProp := &demo.SendProp{Type: intType, VarName: "elem", NumBits: 8, Flags: democore.SPropUnsigned}
	arrayProp := &demo.SendProp{Type: arrayType, VarName: "arr", NumElements: 4}
	fp := &demo.FlattenedProp{Prop: arrayProp, ArrayElementProp: elemProp}

	w := &testBitWriter{}
	w.writeBits(2, 3) // length = 2, using the correct 3-bit field
	w.writeBits(10, 8)
	w.writeBits(20, 8)

	got := decodeArray(fp, newBitReader(w.bytes))
	want := []any{int32(10), int32(20)}
	if len(got) != len(want) {
		t.Fatalf("len(decodeArray) = %v, want %v", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("decodeArray[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
