// This file implements the string-table engine (spec.md §4.5): full
// snapshots (STRINGTABLES), svc_CreateStringTable, svc_UpdateStringTable,
// and the shared delta decoder with its 32-entry substring history.

package demoparser

import (
	"math/bits"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demomsg"
)

const userinfoTableName = "userinfo"

// parseStringTablesSnapshot decodes a STRINGTABLES record: a full
// snapshot of every string table (spec.md §4.5, "Full snapshot").
func parseStringTablesSnapshot(payload []byte, state *demo.ParserState) {
	r := newBitReader(payload)

	numTables := r.readBits(8)
	for i := uint32(0); i < numTables; i++ {
		name := cString([]byte(r.readBytesBits(256)))
		table := &demo.StringTable{Name: name}
		dumpStringTable(r, table, state)
		state.StringTables = append(state.StringTables, table)

		if r.readBit() != 0 { // client-side subset follows, same layout
			client := &demo.StringTable{Name: name}
			dumpStringTable(r, client, state)
		}
	}
}

// readBytesBits reads n bytes, 8 bits at a time, from a bit reader.
func (r *bitReader) readBytesBits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.readBits(8))
	}
	return string(buf)
}

// dumpStringTable decodes one table's full-snapshot body into table and
// upserts any userinfo rows it carries (spec.md §4.5).
func dumpStringTable(r *bitReader, table *demo.StringTable, state *demo.ParserState) {
	numStrings := r.readBits(16)
	table.Entries = make([]*demo.StringEntry, 0, numStrings)

	for i := uint32(0); i < numStrings; i++ {
		key := r.readStringBits(4096)
		entry := &demo.StringEntry{Key: key}

		if r.readBit() != 0 {
			size := r.readBits(16)
			entry.UserData = []byte(r.readBytesBits(int(size)))
		}

		table.Entries = append(table.Entries, entry)
		upsertUserinfo(table.Name, entry.UserData, state)
	}
}

// upsertUserinfo decodes data as a PlayerInfo and upserts it into state,
// if tableName is the distinguished "userinfo" table and data is present
// (spec.md §4.5).
func upsertUserinfo(tableName string, data []byte, state *demo.ParserState) {
	if tableName != userinfoTableName || len(data) == 0 {
		return
	}
	state.UpsertPlayerInfo(decodePlayerInfo(data))
}

// handleCreateStringTable applies a decoded svc_CreateStringTable
// message: it appends a new table at the next table_id (its index) and
// seeds it from string_data (spec.md §4.5, "Create").
func handleCreateStringTable(msg *demomsg.CreateStringTable, state *demo.ParserState) {
	table := &demo.StringTable{
		Name:              msg.Name,
		MaxEntries:        int(msg.MaxEntries),
		UserDataFixedSize: msg.UserDataFixedSize,
		UserDataSize:      uint32(msg.UserDataSize),
		UserDataSizeBits:  uint32(msg.UserDataSizeBits),
	}
	state.StringTables = append(state.StringTables, table)
	parseStringTableUpdate(msg.StringData, table, int(msg.NumEntries), state)
}

// handleUpdateStringTable applies a decoded svc_UpdateStringTable
// message against the existing table it names (spec.md §4.5, "Update").
func handleUpdateStringTable(msg *demomsg.UpdateStringTable, state *demo.ParserState) {
	if int(msg.TableID) < 0 || int(msg.TableID) >= len(state.StringTables) {
		fail(SchemaInvalid, 0, false, "unknown table_id in UpdateStringTable")
	}
	table := state.StringTables[msg.TableID]
	parseStringTableUpdate(msg.StringData, table, int(msg.NumChangedEntries), state)
}

// stringHistorySize is the bounded FIFO size for the substring-decode
// history (spec.md §4.5, §5).
const stringHistorySize = 32

// parseStringTableUpdate decodes a delta-encoded string_data blob
// against table, applying up to numEntries changes (spec.md §4.5,
// "parse_string_table_update").
func parseStringTableUpdate(data []byte, table *demo.StringTable, numEntries int, state *demo.ParserState) {
	r := newBitReader(data)

	entryBits := entryBitsFor(table.MaxEntries)

	if r.readBit() != 0 { // encode_using_dictionaries
		fail(UnsupportedEncoding, r.bitPos, true, "dictionary-encoded string table update")
	}

	history := make([]string, 0, stringHistorySize)
	lastEntry := -1

	for i := 0; i < numEntries; i++ {
		var entryIndex int
		if r.readBit() != 0 {
			entryIndex = lastEntry + 1
		} else {
			entryIndex = int(r.readBits(entryBits))
		}
		if entryIndex < 0 || entryIndex >= table.MaxEntries {
			fail(SchemaInvalid, r.bitPos, true, "string table entry index out of range")
		}

		var key string
		hasKey := r.readBit() != 0
		if hasKey {
			if r.readBit() != 0 { // substring
				histIdx := int(r.readBits(5))
				prefixLen := int(r.readBits(5))
				prefix := ""
				if histIdx < len(history) {
					prefix = history[histIdx]
					if prefixLen < len(prefix) {
						prefix = prefix[:prefixLen]
					}
				}
				suffix := r.readStringBits(1024)
				key = prefix + suffix
			} else {
				key = r.readStringBits(1024)
			}
		} else if entryIndex < len(table.Entries) {
			key = table.Entries[entryIndex].Key
		}

		var userData []byte
		hasUserData := r.readBit() != 0
		if hasUserData {
			if table.UserDataFixedSize {
				userData = r.readRawBits(int(table.UserDataSizeBits))
			} else {
				size := r.readBits(14)
				userData = []byte(r.readBytesBits(int(size)))
			}
		}

		entry := &demo.StringEntry{Key: key, UserData: userData}
		setTableEntry(table, entryIndex, entry)
		history = appendHistory(history, key)

		upsertUserinfo(table.Name, userData, state)

		lastEntry = entryIndex
	}
}

// setTableEntry commits entry at index, growing table.Entries as needed.
func setTableEntry(table *demo.StringTable, index int, entry *demo.StringEntry) {
	for len(table.Entries) <= index {
		table.Entries = append(table.Entries, nil)
	}
	table.Entries[index] = entry
}

// appendHistory appends key to history, evicting the oldest entry once
// the bounded FIFO is full (spec.md §4.5, §5).
func appendHistory(history []string, key string) []string {
	if len(history) >= stringHistorySize {
		history = history[1:]
	}
	return append(history, key)
}

// entryBitsFor returns ceil(log2(maxEntries)), which is 0 when
// maxEntries == 1 (spec.md §8, boundary behaviors).
func entryBitsFor(maxEntries int) int {
	if maxEntries <= 1 {
		return 0
	}
	return bits.Len(uint(maxEntries - 1))
}
