// This file contains the SendTable net-message, the protobuf body of
// each entry in a DATATABLES record (spec.md §4.3).

package demomsg

import "google.golang.org/protobuf/encoding/protowire"

// SendTable is the decoded form of one CSVCMsg_SendTable message.
type SendTable struct {
	IsEnd        bool
	NetTableName string
	NeedsDecoder bool
	Props        []*SendProp
}

// SendProp is one CSVCMsg_SendTable.sendprop_t entry.
type SendProp struct {
	Type        int32
	VarName     string
	Flags       int32
	Priority    int32
	DTName      string
	NumElements int32
	LowValue    float32
	HighValue   float32
	NumBits     int32
}

// Unmarshal decodes data as a CSVCMsg_SendTable message.
func (t *SendTable) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // is_end
			v, n, err := consumeVarint(value)
			t.IsEnd = v != 0
			return n, err
		case 2: // net_table_name
			s, n, err := consumeString(value)
			t.NetTableName = s
			return n, err
		case 3: // needs_decoder
			v, n, err := consumeVarint(value)
			t.NeedsDecoder = v != 0
			return n, err
		case 4: // props (repeated sendprop_t, length-delimited)
			b, n, err := consumeBytes(value)
			if err != nil {
				return 0, err
			}
			prop := &SendProp{}
			if err := prop.unmarshal(b); err != nil {
				return 0, err
			}
			t.Props = append(t.Props, prop)
			return n, nil
		default:
			return skipField(typ, value)
		}
	})
}

func (p *SendProp) unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // type
			v, n, err := consumeVarint(value)
			p.Type = int32(v)
			return n, err
		case 2: // var_name
			s, n, err := consumeString(value)
			p.VarName = s
			return n, err
		case 3: // flags
			v, n, err := consumeVarint(value)
			p.Flags = int32(v)
			return n, err
		case 4: // priority
			v, n, err := consumeVarint(value)
			p.Priority = int32(v)
			return n, err
		case 5: // dt_name
			s, n, err := consumeString(value)
			p.DTName = s
			return n, err
		case 6: // num_elements
			v, n, err := consumeVarint(value)
			p.NumElements = int32(v)
			return n, err
		case 7: // low_value
			v, n, err := consumeFixed32(value)
			p.LowValue = float32FromBits(v)
			return n, err
		case 8: // high_value
			v, n, err := consumeFixed32(value)
			p.HighValue = float32FromBits(v)
			return n, err
		case 9: // num_bits
			v, n, err := consumeVarint(value)
			p.NumBits = int32(v)
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}
