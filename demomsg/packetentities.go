// This file contains the PacketEntities net-message (spec.md §4.6).

package demomsg

import "google.golang.org/protobuf/encoding/protowire"

// PacketEntities is the decoded form of a CSVCMsg_PacketEntities message
// (the svc_PacketEntities command).
type PacketEntities struct {
	MaxEntries     int32
	UpdatedEntries int32
	IsDelta        bool
	UpdateBaseline bool
	Baseline       int32
	DeltaFrom      int32
	EntityData     []byte
}

// Unmarshal decodes data as a CSVCMsg_PacketEntities message.
func (m *PacketEntities) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // max_entries
			v, n, err := consumeVarint(value)
			m.MaxEntries = int32(v)
			return n, err
		case 2: // updated_entries
			v, n, err := consumeVarint(value)
			m.UpdatedEntries = int32(v)
			return n, err
		case 3: // is_delta
			v, n, err := consumeVarint(value)
			m.IsDelta = v != 0
			return n, err
		case 4: // update_baseline
			v, n, err := consumeVarint(value)
			m.UpdateBaseline = v != 0
			return n, err
		case 5: // baseline
			v, n, err := consumeVarint(value)
			m.Baseline = int32(v)
			return n, err
		case 6: // delta_from
			v, n, err := consumeVarint(value)
			m.DeltaFrom = int32(v)
			return n, err
		case 7: // entity_data
			b, n, err := consumeBytes(value)
			m.EntityData = b
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}
