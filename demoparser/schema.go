// This file implements the schema flattener (spec.md §4.3): parsing the
// DATATABLES record into SendTables and ServerClasses, then computing
// each class's flattened, exclusion- and priority-sorted property list.

package demoparser

import (
	"math/bits"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demo/democore"
	"github.com/icza/csdemo/demomsg"
)

// parseDataTables decodes a DATATABLES record's payload: a sequence of
// {type, length, bytes} entries (bytes parsed as a protobuf SendTable),
// terminated by a SendTable with IsEnd set, followed by the server class
// list.
func parseDataTables(payload []byte, state *demo.ParserState) {
	r := newByteReader(payload)

	for {
		_ = r.readVarint32() // type, ignored (spec.md §4.3)
		length := r.readVarint32()
		raw := r.readBytes(int(length))

		var msg demomsg.SendTable
		if err := msg.Unmarshal(raw); err != nil {
			fail(ProtobufDecode, int64(r.pos), false, err.Error())
		}
		if msg.IsEnd {
			break
		}
		state.DataTables = append(state.DataTables, convertSendTable(&msg))
	}

	numServerClasses := int(r.readI16LE())
	state.ServerClasses = make([]*demo.ServerClass, numServerClasses)

	for i := 0; i < numServerClasses; i++ {
		classID := r.readI16LE()
		name := readCStringFromByteReader(r)
		dtName := readCStringFromByteReader(r)

		if int(classID) < 0 || int(classID) >= numServerClasses {
			fail(SchemaInvalid, int64(r.pos), false, "class_id out of range")
		}

		idx := indexOfTable(state.DataTables, dtName)
		if idx < 0 {
			fail(SchemaInvalid, int64(r.pos), false, "unresolved dt_name: "+dtName)
		}

		sc := &demo.ServerClass{
			ClassID:        classID,
			Name:           name,
			DTName:         dtName,
			DataTableIndex: idx,
		}
		state.ServerClasses[classID] = sc
	}

	state.ServerClassBits = serverClassBits(numServerClasses)

	for _, sc := range state.ServerClasses {
		flattenServerClass(sc, state)
	}
}

// readCStringFromByteReader reads a NUL-terminated string of unbounded
// length off r (used for each server class's name and dt_name, spec.md §4.3).
func readCStringFromByteReader(r *byteReader) string {
	start := r.pos
	for {
		b := r.readU8()
		if b == 0 {
			return cString(r.b[start : r.pos-1])
		}
	}
}

// indexOfTable returns the position of the table named name within
// tables, or -1 if not found.
func indexOfTable(tables []*demo.SendTable, name string) int {
	for i, t := range tables {
		if t.NetTableName == name {
			return i
		}
	}
	return -1
}

// serverClassBits computes floor(log2(n)) + 1, always at least 1
// (spec.md §4.3 step 5). bits.Len(n) equals floor(log2(n))+1 for n ≥ 1,
// matching the Source engine's own Q_log2(n)+1 convention (always enough
// bits to address n classes; one more than strictly necessary when n is
// a power of two).
func serverClassBits(n int) int {
	if n < 1 {
		return 1
	}
	return bits.Len(uint(n))
}

// convertSendTable turns a decoded demomsg.SendTable wire message into
// the demo package's schema representation.
func convertSendTable(msg *demomsg.SendTable) *demo.SendTable {
	t := &demo.SendTable{
		NetTableName: msg.NetTableName,
		NeedsDecoder: msg.NeedsDecoder,
		Props:        make([]*demo.SendProp, len(msg.Props)),
	}
	for i, p := range msg.Props {
		t.Props[i] = &demo.SendProp{
			Type:        democore.SendPropTypeByID(byte(p.Type)),
			Flags:       uint32(p.Flags),
			VarName:     p.VarName,
			DTName:      p.DTName,
			Priority:    byte(p.Priority),
			Low:         p.LowValue,
			High:        p.HighValue,
			NumBits:     int(p.NumBits),
			NumElements: int(p.NumElements),
		}
	}
	return t
}

// flattenServerClass computes sc.FlattenedProps per spec.md §4.3.
func flattenServerClass(sc *demo.ServerClass, state *demo.ParserState) {
	table := state.DataTables[sc.DataTableIndex]

	state.CurrentExcludes = state.CurrentExcludes[:0]
	gatherExcludes(table, state)

	var flat []*demo.FlattenedProp
	flat = gatherProps(table, state, flat)

	sc.FlattenedProps = sortFlattened(flat)
}

// gatherExcludes walks table (and, recursively, every DataTable-typed
// prop's referenced sub-table) collecting EXCLUDE-flagged entries
// (spec.md §4.3 step 2).
func gatherExcludes(table *demo.SendTable, state *demo.ParserState) {
	for _, prop := range table.Props {
		if prop.Type.ID == democore.SendPropTypeIDDataTable {
			sub := findTable(state.DataTables, prop.DTName)
			if sub != nil {
				gatherExcludes(sub, state)
			}
			continue
		}
		if prop.HasFlag(democore.SPropExclude) {
			state.CurrentExcludes = append(state.CurrentExcludes, demo.Exclude{
				VarName:            prop.VarName,
				DTName:             prop.DTName,
				ExcludingTableName: table.NetTableName,
			})
		}
	}
}

// gatherProps recurses depth-first over table, appending to flat every
// prop that survives the exclusion/INSIDEARRAY rules (spec.md §4.3 step 3).
func gatherProps(table *demo.SendTable, state *demo.ParserState, flat []*demo.FlattenedProp) []*demo.FlattenedProp {
	var prevSibling *demo.SendProp

	for _, prop := range table.Props {
		switch {
		case prop.HasFlag(democore.SPropInsideArray):
			prevSibling = prop
			continue
		case prop.HasFlag(democore.SPropExclude):
			prevSibling = prop
			continue
		case isExcluded(state.CurrentExcludes, table.NetTableName, prop.VarName):
			prevSibling = prop
			continue
		}

		if prop.Type.ID == democore.SendPropTypeIDDataTable {
			sub := findTable(state.DataTables, prop.DTName)
			if sub == nil {
				prevSibling = prop
				continue
			}
			// Collapsible or not, there is one flat list per class: both
			// cases recurse into the same output slice (spec.md §4.3 step 3).
			flat = gatherProps(sub, state, flat)
			prevSibling = prop
			continue
		}

		if prop.Type.ID == democore.SendPropTypeIDArray {
			flat = append(flat, &demo.FlattenedProp{Prop: prop, ArrayElementProp: prevSibling})
		} else {
			flat = append(flat, &demo.FlattenedProp{Prop: prop})
		}
		prevSibling = prop
	}

	return flat
}

// isExcluded reports whether (tableName, varName) appears in excludes.
func isExcluded(excludes []demo.Exclude, tableName, varName string) bool {
	for _, e := range excludes {
		if e.ExcludingTableName == tableName && e.VarName == varName {
			return true
		}
	}
	return false
}

// findTable returns the table named name, or nil.
func findTable(tables []*demo.SendTable, name string) *demo.SendTable {
	for _, t := range tables {
		if t.NetTableName == name {
			return t
		}
	}
	return nil
}

// sortFlattened implements spec.md §4.3 step 4: the CHANGES_OFTEN
// bucket (priority 64) is always processed first, regardless of its
// numeric value relative to the other priorities present; the
// remaining distinct priorities then follow in ascending order. For
// each bucket in that order, every still-unplaced prop matching it is
// appended in original order (ties within a priority preserve
// insertion order; this is the "equivalent stable algorithm" spec.md
// §4.3 explicitly allows in place of the reference swap-into-place
// pass).
func sortFlattened(flat []*demo.FlattenedProp) []*demo.FlattenedProp {
	prioritySet := map[byte]bool{}
	for _, fp := range flat {
		prioritySet[fp.Prop.Priority] = true
	}
	delete(prioritySet, democore.PriorityChangesOften)

	rest := make([]byte, 0, len(prioritySet))
	for p := range prioritySet {
		rest = append(rest, p)
	}
	sortBytes(rest)

	priorities := append([]byte{democore.PriorityChangesOften}, rest...)

	placed := make([]bool, len(flat))
	out := make([]*demo.FlattenedProp, 0, len(flat))
	for _, want := range priorities {
		for i, fp := range flat {
			if placed[i] {
				continue
			}
			match := fp.Prop.Priority == want ||
				(want == democore.PriorityChangesOften && fp.Prop.HasFlag(democore.SPropChangesOften))
			if match {
				out = append(out, fp)
				placed[i] = true
			}
		}
	}

	return out
}

// sortBytes sorts a small byte slice ascending in place (insertion sort:
// priority counts are tiny, never worth importing sort for).
func sortBytes(b []byte) {
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && b[j-1] > b[j]; j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
}
