// This file implements the PlayerInfo binary layout decode (spec.md §3,
// §6), resolved against the padding evidence in
// original_source/src/demo_parse_test.py's PlayerInfo.__init__
// (see DESIGN.md for the byte-count reconciliation).

package demoparser

import (
	"encoding/binary"

	"github.com/icza/csdemo/demo"
)

// playerInfoSize is the total byte length of one userinfo entry's user
// data (spec.md §6).
const playerInfoSize = 344

// decodePlayerInfo decodes one userinfo string-table entry's user data.
func decodePlayerInfo(data []byte) *demo.PlayerInfo {
	if len(data) < playerInfoSize {
		fail(SchemaInvalid, 0, false, "userinfo user data shorter than PlayerInfo")
	}

	r := newByteReader(data)
	pi := &demo.PlayerInfo{}

	pi.Version = binary.BigEndian.Uint64(r.readBytes(8))
	pi.XUID = binary.BigEndian.Uint64(r.readBytes(8))
	pi.Name = cString(r.readBytes(128))
	pi.UserID = r.readI32LE()
	pi.GUID = cString(r.readBytes(33))
	r.readBytes(3) // pad
	pi.FriendsID = r.readU32LE()
	pi.FriendsName = cString(r.readBytes(128))
	pi.FakePlayer = r.readU8() != 0
	pi.IsHLTV = r.readU8() != 0
	r.readBytes(2) // pad
	for i := range pi.CustomFiles {
		pi.CustomFiles[i] = r.readU32LE()
	}
	pi.FilesDownloaded = r.readU8()
	r.readBytes(3) // pad
	pi.EntityID = r.readI32LE()

	return pi
}
