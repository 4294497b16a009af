// This file implements the record demultiplexer (spec.md §4.2): the
// cmd/tick/player_slot loop that drives every other engine.

package demoparser

import (
	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demo/democore"
	"github.com/icza/csdemo/demomsg"
)

// demCmdInfoSize is the byte size of the two split_t records preceding
// a SIGNON/PACKET record's payload. This parser never needs their
// fields (view origin/angles), so they're skipped as raw bytes.
const demCmdInfoSize = 156

// run drives the record demultiplexer over the command-record stream
// following the header, dispatching each record to the schema, string
// table, entity, and event engines, and to sink.
func run(r *byteReader, state *demo.ParserState, cfg Config, sink Sink) error {
	for {
		cmd := r.readU8()
		kind := democore.CommandKindByID(cmd)
		if kind == nil {
			fail(BadCommand, int64(r.pos-1), false, "cmd out of range")
		}

		tick := r.readI32LE()
		state.CurrentTick = tick
		_ = r.readU8() // player_slot: unused by this parser

		if kind.ID == democore.CommandKindStop {
			return nil
		}

		if err := sink.OnTick(tick); err != nil {
			return err
		}

		switch kind.ID {
		case democore.CommandKindSignon, democore.CommandKindPacket:
			if err := handleSignonOrPacket(r, state, cfg, sink); err != nil {
				return err
			}

		case democore.CommandKindSyncTick:
			// empty payload

		case democore.CommandKindConsoleCmd, democore.CommandKindCustomData:
			length := r.readI32LE()
			r.readBytes(int(length)) // discarded

		case democore.CommandKindUserCmd:
			_ = r.readI32LE() // outgoing sequence, unused
			length := r.readI32LE()
			r.readBytes(int(length)) // opaque user command bytes, unused

		case democore.CommandKindDataTables:
			length := r.readI32LE()
			payload := r.readBytes(int(length))
			parseDataTables(payload, state)
			if cfg.EmitDataTables {
				if err := sink.OnDataTables(state.DataTables, state.ServerClasses); err != nil {
					return err
				}
			}

		case democore.CommandKindStringTables:
			length := r.readI32LE()
			payload := r.readBytes(int(length))
			before := len(state.StringTables)
			parseStringTablesSnapshot(payload, state)
			if cfg.EmitStringTables {
				for _, t := range state.StringTables[before:] {
					if err := sink.OnStringTableCreated(t); err != nil {
						return err
					}
				}
			}

		case democore.CommandKindStop:
			return nil
		}
	}
}

// handleSignonOrPacket consumes one SIGNON/PACKET record's payload
// (spec.md §4.2) and dispatches every embedded net message it carries.
func handleSignonOrPacket(r *byteReader, state *demo.ParserState, cfg Config, sink Sink) error {
	r.readBytes(demCmdInfoSize) // democmdinfo, unused by this parser
	_ = r.readI32LE()           // sequence number in
	_ = r.readI32LE()           // sequence number out

	length := r.readI32LE()
	payload := r.readBytes(int(length))

	inner := newByteReader(payload)
	for !inner.atEnd() {
		kind := inner.readVarint32()
		size := inner.readVarint32()
		body := inner.readBytes(int(size))

		if err := dispatchNetMessage(int32(kind), body, state, cfg, sink); err != nil {
			return err
		}
	}
	return nil
}

// dispatchNetMessage decodes one net message via the protobuf façade and
// routes it to the matching engine.
func dispatchNetMessage(kind int32, body []byte, state *demo.ParserState, cfg Config, sink Sink) error {
	msg, err := demomsg.Parse(kind, body)
	if err != nil {
		fail(ProtobufDecode, 0, false, err.Error())
	}

	switch m := msg.(type) {
	case *demomsg.SendTable:
		// svc_Tempentities-style loose SendTables never appear outside
		// DATATABLES records in practice; nothing to do here.
		_ = m

	case *demomsg.CreateStringTable:
		handleCreateStringTable(m, state)
		if cfg.EmitStringTables {
			return sink.OnStringTableCreated(state.StringTables[len(state.StringTables)-1])
		}

	case *demomsg.UpdateStringTable:
		handleUpdateStringTable(m, state)
		if cfg.EmitStringTables {
			return sink.OnStringTableUpdated(state.StringTables[m.TableID])
		}

	case *demomsg.PacketEntities:
		if cfg.EmitPacketEntities {
			return handlePacketEntities(m, state, sink)
		}

	case *demomsg.GameEventList:
		handleGameEventList(m, state)

	case *demomsg.GameEvent:
		return handleGameEvent(m, state, cfg, sink)

	case *demomsg.UserMessage:
		return sink.OnUserMessage(m.Kind, m.Data)

	case *demomsg.NetTick:
		if cfg.EmitNetMessages {
			return sink.OnNetMessage(kind, body)
		}

	case *demomsg.NetMessage:
		if cfg.EmitNetMessages {
			return sink.OnNetMessage(m.Kind, m.Data)
		}
	}

	return nil
}
