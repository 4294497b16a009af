package demoparser

import "testing"

func TestReadBits(t *testing.T) {
	// 0b10110010 little bit first: readBits(4) should get the low nibble.
	r := newBitReader([]byte{0xB2})
	if got := r.readBits(4); got != 0x2 {
		t.Errorf("readBits(4): got %v, want %v", got, 0x2)
	}
	if got := r.readBits(4); got != 0xB {
		t.Errorf("readBits(4) second nibble: got %v, want %v", got, 0xB)
	}
}

func TestReadSignedBits(t *testing.T) {
	// 5 bits, all set (0b11111): sign-extends to -1.
	r := newBitReader([]byte{0xFF})
	if got := r.readSignedBits(5); got != -1 {
		t.Errorf("readSignedBits(5): got %v, want %v", got, -1)
	}
}

func TestReadUbitvar(t *testing.T) {
	// Prefix bits 0b11xxxx (top 2 bits = 3) reads 28 further bits.
	// First byte: low 6 bits are the ubitvar's 6-bit prefix.
	// prefix = 0b110000 -> low4=0, sel=3 (28 more bits)
	data := []byte{0b00110000, 0, 0, 0, 0}
	r := newBitReader(data)
	_ = r.readUbitvar()
	if r.bitPos != 6+28 {
		t.Errorf("readUbitvar() with sel=3: consumed %v bits, want %v", r.bitPos, 6+28)
	}
}

func TestEntryBitsFor(t *testing.T) {
	cases := []struct {
		maxEntries int
		want       int
	}{
		{1, 0},
		{0, 0},
		{2, 1},
		{256, 8},
		{257, 9},
	}
	for _, c := range cases {
		if got := entryBitsFor(c.maxEntries); got != c.want {
			t.Errorf("entryBitsFor(%v): got %v, want %v", c.maxEntries, got, c.want)
		}
	}
}

func TestReadStringBits(t *testing.T) {
	r := newBitReader([]byte("hello\x00world"))
	if got := r.readStringBits(1024); got != "hello" {
		t.Errorf("readStringBits: got %q, want %q", got, "hello")
	}
}
