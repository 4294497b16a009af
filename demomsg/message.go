// Package demomsg is the protobuf façade (spec.md §4, component 4):
// it decodes the network-message payloads embedded in PACKET/SIGNON
// records into typed Go values, keyed by the net-message kind id the
// record demultiplexer peels off each payload.
//
// The real Source-engine netmessages are protobuf (CSVCMsg_*, CNETMsg_*);
// this package decodes them field-by-field against
// google.golang.org/protobuf/encoding/protowire rather than a generated
// decoder, since no .proto compiler runs in this environment.
package demomsg

import "fmt"

// Net-message kind ids, as dispatched by handle_netmsg in the original
// source. Only the kinds this parser gives special treatment to are
// named; anything else decodes as an opaque NetMessage.
const (
	KindNetTick           = 3
	KindSendTable         = 9
	KindCreateStringTable = 12
	KindUpdateStringTable = 13
	KindUserMessage       = 23
	KindGameEvent         = 25
	KindPacketEntities    = 26
	KindGameEventList     = 30
)

// Message is any decoded net-message payload.
type Message interface {
	// Unmarshal decodes data (the message's protobuf-encoded body) into
	// the receiver.
	Unmarshal(data []byte) error
}

// Parse decodes data as the message kind identified by kind, dispatching
// through the static id table mirrored from the original source's
// handle_netmsg/handle_net_default. Unknown kinds decode as a NetMessage
// carrying the raw, still-undecoded body (the "opaque typed message"
// spec.md §1 describes for anything outside this parser's core).
func Parse(kind int32, data []byte) (Message, error) {
	var m Message
	switch kind {
	case KindNetTick:
		m = &NetTick{}
	case KindSendTable:
		m = &SendTable{}
	case KindCreateStringTable:
		m = &CreateStringTable{}
	case KindUpdateStringTable:
		m = &UpdateStringTable{}
	case KindPacketEntities:
		m = &PacketEntities{}
	case KindGameEvent:
		m = &GameEvent{}
	case KindGameEventList:
		m = &GameEventList{}
	case KindUserMessage:
		m = &UserMessage{Kind: kind}
	default:
		m = &NetMessage{Kind: kind}
	}
	if err := m.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("demomsg: kind %d: %w", kind, err)
	}
	return m, nil
}

// NetMessage is the catch-all opaque payload for any net-message kind
// this parser does not decode further.
type NetMessage struct {
	Kind int32
	Data []byte
}

// Unmarshal stores data verbatim; NetMessage bodies are never decoded.
func (m *NetMessage) Unmarshal(data []byte) error {
	m.Data = append([]byte(nil), data...)
	return nil
}

// UserMessage is a user-message body, passed through undecoded: its
// inner schema is one of dozens of CUserMessage* types the core parser
// treats as opaque (spec.md §1, "downstream analytics").
type UserMessage struct {
	Kind int32
	Data []byte
}

// Unmarshal stores data verbatim.
func (m *UserMessage) Unmarshal(data []byte) error {
	m.Data = append([]byte(nil), data...)
	return nil
}
