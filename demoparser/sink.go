// This file contains the collaborator interface the parser drives
// (spec.md §6): a streaming callback surface, one method per event kind.

package demoparser

import "github.com/icza/csdemo/demo"

// Sink receives the structured event stream a Parse call produces.
// The *demo.Entity / *demo.StringTable values handed to a Sink are the
// parser's own live objects, not copies: the same pointer is passed again
// to later EntityUpdate/StringTableUpdated calls and is mutated by the
// parser in between. Implementations should treat them as read-only and
// copy whatever must outlive the call.
type Sink interface {
	// OnHeader is called once, after the fixed 1072-byte header is read.
	OnHeader(h *demo.Header) error

	// OnDataTables is called once the DATATABLES record's schema has
	// been fully parsed and flattened.
	OnDataTables(tables []*demo.SendTable, classes []*demo.ServerClass) error

	// OnStringTableCreated is called for each table in the initial
	// STRINGTABLES snapshot, and for each svc_CreateStringTable.
	OnStringTableCreated(t *demo.StringTable) error

	// OnStringTableUpdated is called for each svc_UpdateStringTable.
	OnStringTableUpdated(t *demo.StringTable) error

	// OnEntityEnter is called when an entity is created (ENTER_PVS).
	OnEntityEnter(e *demo.Entity) error

	// OnEntityLeave is called when an entity is removed (LEAVE_PVS with
	// DELETE, or a plain LEAVE_PVS under this parser's removal policy).
	OnEntityLeave(entityID int) error

	// OnEntityUpdate is called after an entity's property deltas are
	// applied (ENTER_PVS's initial deltas, or a later DELTA record).
	OnEntityUpdate(e *demo.Entity) error

	// OnGameEvent is called for every dispatched game event, resolved
	// against its descriptor, before any normalization.
	OnGameEvent(ev *demo.GameEvent) error

	// OnPlayerConnect is called for a normalized "player_connect" event.
	OnPlayerConnect(ev *demo.PlayerConnect) error

	// OnPlayerDisconnect is called for a normalized "player_disconnect" event.
	OnPlayerDisconnect(ev *demo.PlayerDisconnect) error

	// OnPlayerDeath is called for a normalized "player_death" event.
	OnPlayerDeath(ev *demo.PlayerDeath) error

	// OnRoundMatchStart is called for a normalized
	// "round_announce_match_start" event.
	OnRoundMatchStart(ev *demo.RoundMatchStart) error

	// OnUserMessage is called for each opaque user-message body.
	OnUserMessage(kind int32, data []byte) error

	// OnNetMessage is called for each otherwise-undispatched net message.
	OnNetMessage(kind int32, data []byte) error

	// OnTick is called for each command record's tick, except for the
	// terminating STOP record.
	OnTick(tick int32) error

	// OnEnd is called once, after the STOP command. Input that ends
	// without a STOP command fails with Truncated and OnEnd is not called.
	OnEnd() error
}

// NopSink implements Sink with no-op methods; embed it to implement only
// the events a particular consumer cares about.
type NopSink struct{}

func (NopSink) OnHeader(*demo.Header) error                               { return nil }
func (NopSink) OnDataTables([]*demo.SendTable, []*demo.ServerClass) error { return nil }
func (NopSink) OnStringTableCreated(*demo.StringTable) error              { return nil }
func (NopSink) OnStringTableUpdated(*demo.StringTable) error              { return nil }
func (NopSink) OnEntityEnter(*demo.Entity) error                          { return nil }
func (NopSink) OnEntityLeave(int) error                                   { return nil }
func (NopSink) OnEntityUpdate(*demo.Entity) error                         { return nil }
func (NopSink) OnGameEvent(*demo.GameEvent) error                         { return nil }
func (NopSink) OnPlayerConnect(*demo.PlayerConnect) error                 { return nil }
func (NopSink) OnPlayerDisconnect(*demo.PlayerDisconnect) error           { return nil }
func (NopSink) OnPlayerDeath(*demo.PlayerDeath) error                     { return nil }
func (NopSink) OnRoundMatchStart(*demo.RoundMatchStart) error             { return nil }
func (NopSink) OnUserMessage(int32, []byte) error                         { return nil }
func (NopSink) OnNetMessage(int32, []byte) error                          { return nil }
func (NopSink) OnTick(int32) error                                        { return nil }
func (NopSink) OnEnd() error                                              { return nil }
