// This file contains the types describing the raw send-table schema
// (spec.md §3, §4.3), as read directly off the protobuf SendTable messages.

package demo

import "github.com/icza/csdemo/demo/democore"

// SendProp is a single scalar schema node of a SendTable.
type SendProp struct {
	// Type is the scalar kind of this prop.
	Type *democore.SendPropType

	// Flags is the raw bitmask of SProp* flags.
	Flags uint32

	// VarName is the prop's own field name.
	VarName string

	// DTName is the name of the referenced sub-table, for DataTable-typed
	// props; empty otherwise.
	DTName string

	// Priority controls flattening sort order (spec.md §4.3 step 4).
	Priority byte

	// Low and High bound a Float/Vector/VectorXY prop's decoded range.
	Low, High float32

	// NumBits is the number of bits occupied by an Int field, and by a
	// Float (or Vector/VectorXY component) that is neither COORD nor
	// NOSCALE. String lengths (always 9 bits) and Array lengths (derived
	// from NumElements) do not use it.
	NumBits int

	// NumElements is the element count of an Array-typed prop.
	NumElements int
}

// HasFlag reports whether prop carries all bits of flag.
func (p *SendProp) HasFlag(flag uint32) bool {
	return p.Flags&flag == flag
}

// SendTable is one raw schema table as parsed off the DATATABLES record,
// before flattening (spec.md §3, §4.3).
type SendTable struct {
	// NetTableName identifies the table; ServerClass.DTName resolves to
	// this field.
	NetTableName string

	// Props is the ordered sequence of scalar nodes declared directly on
	// this table (DataTable-typed props reference other tables by name).
	Props []*SendProp

	// NeedsDecoder mirrors the protobuf SendTable.needs_decoder field.
	NeedsDecoder bool
}
