// This file implements the header reader (spec.md §3, §4.2's preamble):
// the fixed 1072-byte prefix every HL2DEMO file starts with.

package demoparser

import "github.com/icza/csdemo/demo"

const (
	hostNameSize   = 260
	clientNameSize = 260
	mapNameSize    = 260
	gameDirSize    = 260
)

// parseHeader reads the fixed demo header off r, checking the magic
// signature exactly (spec.md §3: "magic must match exactly; otherwise
// parse fails").
func parseHeader(r *byteReader) *demo.Header {
	magic := r.readBytes(len(demo.Magic))
	if string(magic) != demo.Magic {
		fail(BadMagic, 0, false, "magic signature mismatch")
	}

	h := &demo.Header{
		DemoProtocol:    r.readI32LE(),
		NetworkProtocol: r.readI32LE(),
		HostName:        r.readString(hostNameSize),
		ClientName:      r.readString(clientNameSize),
		MapName:         r.readString(mapNameSize),
		GameDir:         r.readString(gameDirSize),
		PlaybackTime:    r.readF32LE(),
		Ticks:           r.readI32LE(),
		Frames:          r.readI32LE(),
		SignonLength:    r.readI32LE(),
	}

	return h
}
