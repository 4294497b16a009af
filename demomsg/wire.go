// This file contains the shared field-by-field walk used by every
// message's Unmarshal method.

package demomsg

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// errShortBuffer is returned when a tag or value runs past the end of
// the message's byte slice.
var errShortBuffer = errors.New("demomsg: short buffer")

// walkFields calls fn once per top-level field of data, in wire order.
// fn receives the field number, wire type, and the still-undecoded
// value bytes (with the tag already consumed); it returns the number of
// bytes of data it consumed from value, or an error. walkFields advances
// past whatever fn consumed and continues until data is exhausted.
func walkFields(data []byte, fn func(num protowire.Number, typ protowire.Type, value []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errShortBuffer
		}
		data = data[n:]

		consumed, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if consumed < 0 || consumed > len(data) {
			return fmt.Errorf("demomsg: field %d consumed %d of %d remaining bytes", num, consumed, len(data))
		}
		data = data[consumed:]
	}
	return nil
}

// consumeString reads a length-prefixed UTF-8 field's value, returning
// its decoded string and the number of bytes consumed.
func consumeString(value []byte) (string, int, error) {
	b, n := protowire.ConsumeBytes(value)
	if n < 0 {
		return "", 0, errShortBuffer
	}
	return string(b), n, nil
}

// consumeBytes reads a length-prefixed bytes field's value, returning an
// owned copy and the number of bytes consumed.
func consumeBytes(value []byte) ([]byte, int, error) {
	b, n := protowire.ConsumeBytes(value)
	if n < 0 {
		return nil, 0, errShortBuffer
	}
	return append([]byte(nil), b...), n, nil
}

// consumeVarint reads a varint field's value.
func consumeVarint(value []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(value)
	if n < 0 {
		return 0, 0, errShortBuffer
	}
	return v, n, nil
}

// consumeFixed32 reads a 32-bit fixed field's value.
func consumeFixed32(value []byte) (uint32, int, error) {
	v, n := protowire.ConsumeFixed32(value)
	if n < 0 {
		return 0, 0, errShortBuffer
	}
	return v, n, nil
}

// float32FromBits reinterprets a protobuf fixed32 field's raw bits as an
// IEEE-754 single-precision float.
func float32FromBits(v uint32) float32 {
	return math.Float32frombits(v)
}

// skipField consumes and discards one field's value, for fields this
// message doesn't recognize.
func skipField(typ protowire.Type, value []byte) (int, error) {
	n := protowire.ConsumeFieldValue(0, typ, value)
	if n < 0 {
		return 0, errShortBuffer
	}
	return n, nil
}
