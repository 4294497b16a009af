// This file contains the types describing computed / derived data.

package demo

// Computed contains data derived purely from the event stream, with no
// independent parsing logic of its own: it is populated incrementally as
// the parser processes svc_GameEvent and string-table records, not by a
// separate pass over the demo.
type Computed struct {
	// Players holds one entry per distinct UserID, in the order each
	// UserID was first seen. Each entry is the record first decoded for
	// that UserID; later replacements update ParserState.PlayerInfos only.
	Players []*PlayerInfo

	// MatchStartTick is the tick of the most recent
	// "round_announce_match_start" event, or -1 if none was observed.
	MatchStartTick int32
}
