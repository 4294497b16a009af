// This file contains the parser's mutable state container (spec.md §3,
// component 9 "State container"). ParserState is owned by exactly one
// parse call; engines in package demoparser receive it as an explicit
// collaborator rather than reaching into package-level state.

package demo

// Exclude records one EXCLUDE-flagged prop gathered while flattening a
// server class's schema, so gather_props can skip it wherever it's
// declared (spec.md §4.3 step 2).
type Exclude struct {
	// VarName is the excluded prop's own field name.
	VarName string

	// DTName is the name of the table the excluded prop is declared on.
	DTName string

	// ExcludingTableName is the name of the table whose EXCLUDE-flagged
	// prop named this exclusion.
	ExcludingTableName string
}

// ParserState holds everything a parse run accumulates and mutates.
type ParserState struct {
	// Header is the parsed demo header; nil before the first record.
	Header *Header

	// ServerClasses is the schema's class list, indexed by ClassID.
	ServerClasses []*ServerClass

	// DataTables is the set of SendTables read off the DATATABLES record,
	// in declaration order; ServerClass.DataTableIndex indexes into this.
	DataTables []*SendTable

	// CurrentExcludes is scratch space used only while flattening one
	// server class; reset at the start of each class's pass.
	CurrentExcludes []Exclude

	// Entities holds all currently live entities, keyed by EntityID.
	Entities map[int]*Entity

	// StringTables is the ordered, index-addressed set of string tables;
	// a table's position here is its table_id.
	StringTables []*StringTable

	// PlayerInfos maps UserID to the player's decoded userinfo record.
	PlayerInfos map[int32]*PlayerInfo

	// entityIDToUserID supports the entity_id-keyed reverse lookup
	// described in spec.md §3 (ParserState.player_infos "entity_id used
	// for reverse lookup").
	entityIDToUserID map[int32]int32

	// GameEventDescriptors maps event id to its merged descriptor.
	GameEventDescriptors map[int32]*EventDescriptor

	// CurrentTick is the tick of the command record currently being
	// processed.
	CurrentTick int32

	// ServerClassBits is floor(log2(num_server_classes)) + 1, computed
	// once the schema is known (spec.md §4.3 step 5).
	ServerClassBits int

	// MatchStarted becomes true once a "round_announce_match_start"
	// event has been dispatched.
	MatchStarted bool

	// Computed accumulates data the event dispatcher derives as it runs.
	Computed Computed

	// Baselines holds the last ENTER_PVS property set seen for each
	// server class with update_baseline set, for future full-update
	// seeding (spec.md §4.6).
	Baselines map[int16]map[int]any
}

// NewParserState returns a ParserState ready to receive a fresh demo.
func NewParserState() *ParserState {
	return &ParserState{
		Entities:             make(map[int]*Entity),
		PlayerInfos:          make(map[int32]*PlayerInfo),
		entityIDToUserID:     make(map[int32]int32),
		GameEventDescriptors: make(map[int32]*EventDescriptor),
		Computed:             Computed{MatchStartTick: -1},
		Baselines:            make(map[int16]map[int]any),
	}
}

// UpsertPlayerInfo inserts or replaces the player-info record for pi's
// UserID, maintaining the entity_id reverse-lookup index (spec.md §4.5,
// "if entity_id == i already exists, replace it; else append").
func (s *ParserState) UpsertPlayerInfo(pi *PlayerInfo) {
	if _, existed := s.PlayerInfos[pi.UserID]; !existed {
		s.Computed.Players = append(s.Computed.Players, pi)
	}
	s.PlayerInfos[pi.UserID] = pi
	s.entityIDToUserID[pi.EntityID] = pi.UserID
}

// FindByUserID returns the player-info record for the given user id, or
// nil if unknown (spec.md §4.8, find_by_user_id).
func (s *ParserState) FindByUserID(userID int32) *PlayerInfo {
	return s.PlayerInfos[userID]
}

// FindByEntityID returns the player-info record currently occupying the
// given entity id, or nil if none (spec.md §4.8, find_by_entity_id).
func (s *ParserState) FindByEntityID(entityID int32) *PlayerInfo {
	userID, ok := s.entityIDToUserID[entityID]
	if !ok {
		return nil
	}
	return s.PlayerInfos[userID]
}
