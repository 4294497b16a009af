// This file contains the SendProp type and flag enumerations (spec.md §3, §4.1).

package democore

// SendPropType IDs, as they appear in a SendTable's prop entries.
const (
	SendPropTypeIDInt       byte = 0
	SendPropTypeIDFloat     byte = 1
	SendPropTypeIDVector    byte = 2
	SendPropTypeIDVectorXY  byte = 3
	SendPropTypeIDString    byte = 4
	SendPropTypeIDArray     byte = 5
	SendPropTypeIDDataTable byte = 6
	SendPropTypeIDInt64     byte = 7
)

// SendPropType describes the scalar kind of a SendProp.
type SendPropType struct {
	Enum

	// ID as it appears in the schema
	ID byte
}

// SendPropTypes is an enumeration of the possible send-prop types.
var SendPropTypes = []*SendPropType{
	{Enum{"Int"}, SendPropTypeIDInt},
	{Enum{"Float"}, SendPropTypeIDFloat},
	{Enum{"Vector"}, SendPropTypeIDVector},
	{Enum{"VectorXY"}, SendPropTypeIDVectorXY},
	{Enum{"String"}, SendPropTypeIDString},
	{Enum{"Array"}, SendPropTypeIDArray},
	{Enum{"DataTable"}, SendPropTypeIDDataTable},
	{Enum{"Int64"}, SendPropTypeIDInt64},
}

// SendPropTypeByID returns the SendPropType for a given ID.
// A new SendPropType with an Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func SendPropTypeByID(ID byte) *SendPropType {
	if int(ID) < len(SendPropTypes) {
		return SendPropTypes[ID]
	}
	return &SendPropType{UnknownEnum(ID), ID}
}

// SendProp flag bits (spec.md §3).
const (
	SPropUnsigned     uint32 = 1 << 0
	SPropCoord        uint32 = 1 << 1
	SPropNoScale      uint32 = 1 << 2
	SPropRoundDown    uint32 = 1 << 3
	SPropRoundUp      uint32 = 1 << 4
	SPropNormal       uint32 = 1 << 5
	SPropExclude      uint32 = 1 << 6
	SPropXYZE         uint32 = 1 << 7
	SPropInsideArray  uint32 = 1 << 8
	SPropChangesOften uint32 = 1 << 10
	SPropCollapsible  uint32 = 1 << 11
)

// PriorityChangesOften is the reserved priority bucket that props flagged
// SPropChangesOften are placed into regardless of their numeric Priority
// field (spec.md §4.3, step 4).
const PriorityChangesOften byte = 64
