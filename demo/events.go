// This file contains the types describing game events and their
// descriptors (spec.md §3, §4.8), plus the normalized event payloads the
// dispatcher emits for the events this parser gives special treatment to.

package demo

// Game-event key type IDs, as used by the Source-engine event-system
// descriptors (CSVCMsg_GameEventList.descriptors[].keys[].type).
const (
	EventKeyTypeString  = 1
	EventKeyTypeFloat   = 2
	EventKeyTypeLong    = 3
	EventKeyTypeShort   = 4
	EventKeyTypeByte    = 5
	EventKeyTypeBool    = 6
	EventKeyTypeUint64  = 7
	EventKeyTypeWString = 8
	EventKeyTypeLocal   = 9
)

// EventKeyDescriptor names and types one key of a game event.
type EventKeyDescriptor struct {
	Name string
	Type int32
}

// EventDescriptor maps a game event's numeric id to its name and key shape,
// learned once from the first svc_GameEventList record.
type EventDescriptor struct {
	EventID int32
	Name    string
	Keys    []EventKeyDescriptor
}

// GameEvent is a single dispatched game event, resolved against its
// descriptor: Values maps a key name to its typed decoded value.
type GameEvent struct {
	// Name is the resolved descriptor name, e.g. "player_death".
	Name string

	// Tick is the demo tick the event was recorded at.
	Tick int32

	// Values maps descriptor key name to decoded value (string, float32,
	// int32, bool, or uint64 depending on the key's type; long, short and
	// byte keys all decode as int32).
	Values map[string]any
}

// PlayerConnect is the normalized form of a "player_connect" game event.
type PlayerConnect struct {
	Tick      int32
	UserID    int32
	Name      string
	NetworkID string
}

// PlayerDisconnect is the normalized form of a "player_disconnect" game event.
type PlayerDisconnect struct {
	Tick   int32
	UserID int32
	Reason string
}

// PlayerDeath is the normalized form of a "player_death" game event.
type PlayerDeath struct {
	Tick       int32
	VictimID   int32
	AttackerID int32
	AssisterID int32
	Weapon     string
	Headshot   bool
}

// RoundMatchStart is the normalized form of a
// "round_announce_match_start" game event: its arrival sets
// ParserState.MatchStarted.
type RoundMatchStart struct {
	Tick int32
}
