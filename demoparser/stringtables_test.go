package demoparser

import (
	"testing"

	"github.com/icza/csdemo/demo"
)

// testBitWriter builds a little bit-stream matching bitReader's
// least-significant-bit-first convention, for constructing test fixtures.
type testBitWriter struct {
	bytes []byte
	nbits int
}

func (w *testBitWriter) writeBit(b uint32) {
	byteIdx := w.nbits / 8
	for byteIdx >= len(w.bytes) {
		w.bytes = append(w.bytes, 0)
	}
	if b&1 != 0 {
		w.bytes[byteIdx] |= 1 << uint(w.nbits%8)
	}
	w.nbits++
}

func (w *testBitWriter) writeBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.writeBit((v >> uint(i)) & 1)
	}
}

func (w *testBitWriter) writeCString(s string) {
	for _, c := range []byte(s) {
		w.writeBits(uint32(c), 8)
	}
	w.writeBits(0, 8)
}

// Scenario 4 (spec.md §8): a substring-encoded entry referencing
// history[1] ("alphabet") with prefix_len=5 decodes to "alphaical".
func TestParseStringTableUpdateSubstring(t *testing.T) {
	w := &testBitWriter{}

	writeLiteralEntry := func(key string) {
		w.writeBits(1, 1) // auto-increment
		w.writeBits(1, 1) // has key
		w.writeBits(0, 1) // not substring
		w.writeCString(key)
		w.writeBits(0, 1) // no user data
	}

	w.writeBits(0, 1) // encode_using_dictionaries = false

	writeLiteralEntry("alpha")
	writeLiteralEntry("alphabet")

	w.writeBits(1, 1) // auto-increment
	w.writeBits(1, 1) // has key
	w.writeBits(1, 1) // substring
	w.writeBits(1, 5) // history index 1 ("alphabet")
	w.writeBits(5, 5) // prefix_len = 5
	w.writeCString("ical")
	w.writeBits(0, 1) // no user data

	table := &demo.StringTable{Name: "some_table", MaxEntries: 3}
	state := demo.NewParserState()

	parseStringTableUpdate(w.bytes, table, 3, state)

	if len(table.Entries) != 3 {
		t.Fatalf("len(table.Entries) = %v, want 3", len(table.Entries))
	}
	if got := table.Entries[2].Key; got != "alphaical" {
		t.Errorf("Entries[2].Key = %q, want %q", got, "alphaical")
	}
}

func TestEntryBitsForBoundary(t *testing.T) {
	if got := entryBitsFor(1); got != 0 {
		t.Errorf("entryBitsFor(1) = %v, want 0", got)
	}
}
