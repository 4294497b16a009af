// This file contains the CreateStringTable and UpdateStringTable
// net-messages (spec.md §4.5).

package demomsg

import "google.golang.org/protobuf/encoding/protowire"

// CreateStringTable is the decoded form of a CSVCMsg_CreateStringTable
// message (the svc_CreateStringTable command).
type CreateStringTable struct {
	Name              string
	MaxEntries        int32
	NumEntries        int32
	UserDataFixedSize bool
	UserDataSize      int32
	UserDataSizeBits  int32
	StringData        []byte
}

// Unmarshal decodes data as a CSVCMsg_CreateStringTable message.
func (m *CreateStringTable) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // name
			s, n, err := consumeString(value)
			m.Name = s
			return n, err
		case 2: // max_entries
			v, n, err := consumeVarint(value)
			m.MaxEntries = int32(v)
			return n, err
		case 3: // num_entries
			v, n, err := consumeVarint(value)
			m.NumEntries = int32(v)
			return n, err
		case 4: // user_data_fixed_size
			v, n, err := consumeVarint(value)
			m.UserDataFixedSize = v != 0
			return n, err
		case 5: // user_data_size
			v, n, err := consumeVarint(value)
			m.UserDataSize = int32(v)
			return n, err
		case 6: // user_data_size_bits
			v, n, err := consumeVarint(value)
			m.UserDataSizeBits = int32(v)
			return n, err
		case 8: // string_data
			b, n, err := consumeBytes(value)
			m.StringData = b
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}

// UpdateStringTable is the decoded form of a CSVCMsg_UpdateStringTable
// message (the svc_UpdateStringTable command).
type UpdateStringTable struct {
	TableID           int32
	NumChangedEntries int32
	StringData        []byte
}

// Unmarshal decodes data as a CSVCMsg_UpdateStringTable message.
func (m *UpdateStringTable) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // table_id
			v, n, err := consumeVarint(value)
			m.TableID = int32(v)
			return n, err
		case 2: // num_changed_entries
			v, n, err := consumeVarint(value)
			m.NumChangedEntries = int32(v)
			return n, err
		case 3: // string_data
			b, n, err := consumeBytes(value)
			m.StringData = b
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}
