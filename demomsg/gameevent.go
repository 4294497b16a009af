// This file contains the GameEvent and GameEventList net-messages
// (spec.md §4.8).

package demomsg

import "google.golang.org/protobuf/encoding/protowire"

// GameEvent is the decoded form of a CSVCMsg_GameEvent message.
type GameEvent struct {
	EventName string
	EventID   int32
	Keys      []*GameEventKey
}

// GameEventKey is one key_t entry of a GameEvent.
type GameEventKey struct {
	Type       int32
	ValString  string
	ValFloat   float32
	ValLong    int32
	ValShort   int32
	ValByte    int32
	ValBool    bool
	ValUint64  uint64
	ValWString string
}

// Unmarshal decodes data as a CSVCMsg_GameEvent message.
func (m *GameEvent) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // event_name
			s, n, err := consumeString(value)
			m.EventName = s
			return n, err
		case 2: // eventid
			v, n, err := consumeVarint(value)
			m.EventID = int32(v)
			return n, err
		case 3: // keys (repeated key_t)
			b, n, err := consumeBytes(value)
			if err != nil {
				return 0, err
			}
			k := &GameEventKey{}
			if err := k.unmarshal(b); err != nil {
				return 0, err
			}
			m.Keys = append(m.Keys, k)
			return n, nil
		default:
			return skipField(typ, value)
		}
	})
}

func (k *GameEventKey) unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // type
			v, n, err := consumeVarint(value)
			k.Type = int32(v)
			return n, err
		case 2: // val_string
			s, n, err := consumeString(value)
			k.ValString = s
			return n, err
		case 3: // val_float
			v, n, err := consumeFixed32(value)
			k.ValFloat = float32FromBits(v)
			return n, err
		case 4: // val_long
			v, n, err := consumeVarint(value)
			k.ValLong = int32(v)
			return n, err
		case 5: // val_short
			v, n, err := consumeVarint(value)
			k.ValShort = int32(v)
			return n, err
		case 6: // val_byte
			v, n, err := consumeVarint(value)
			k.ValByte = int32(v)
			return n, err
		case 7: // val_bool
			v, n, err := consumeVarint(value)
			k.ValBool = v != 0
			return n, err
		case 8: // val_uint64
			v, n, err := consumeVarint(value)
			k.ValUint64 = v
			return n, err
		case 9: // val_wstring
			s, n, err := consumeString(value)
			k.ValWString = s
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}

// GameEventList is the decoded form of a CSVCMsg_GameEventList message.
type GameEventList struct {
	Descriptors []*GameEventDescriptor
}

// GameEventDescriptor is one descriptor_t entry of a GameEventList.
type GameEventDescriptor struct {
	EventID int32
	Name    string
	Keys    []*GameEventDescriptorKey
}

// GameEventDescriptorKey is one descriptor_t.key_t entry.
type GameEventDescriptorKey struct {
	Type int32
	Name string
}

// Unmarshal decodes data as a CSVCMsg_GameEventList message.
func (m *GameEventList) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // descriptors (repeated descriptor_t)
			b, n, err := consumeBytes(value)
			if err != nil {
				return 0, err
			}
			d := &GameEventDescriptor{}
			if err := d.unmarshal(b); err != nil {
				return 0, err
			}
			m.Descriptors = append(m.Descriptors, d)
			return n, nil
		default:
			return skipField(typ, value)
		}
	})
}

func (d *GameEventDescriptor) unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // eventid
			v, n, err := consumeVarint(value)
			d.EventID = int32(v)
			return n, err
		case 2: // name
			s, n, err := consumeString(value)
			d.Name = s
			return n, err
		case 3: // keys (repeated key_t)
			b, n, err := consumeBytes(value)
			if err != nil {
				return 0, err
			}
			k := &GameEventDescriptorKey{}
			if err := k.unmarshal(b); err != nil {
				return 0, err
			}
			d.Keys = append(d.Keys, k)
			return n, nil
		default:
			return skipField(typ, value)
		}
	})
}

func (k *GameEventDescriptorKey) unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // type
			v, n, err := consumeVarint(value)
			k.Type = int32(v)
			return n, err
		case 2: // name
			s, n, err := consumeString(value)
			k.Name = s
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}
