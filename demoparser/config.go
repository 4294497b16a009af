// This file contains the parser's configuration, modeled after
// repparser.Config.

package demoparser

// Config holds parser configuration: which optional event classes the
// sink wants emitted (spec.md §6).
type Config struct {
	// EmitFootsteps tells if footstep-only game events are dispatched.
	EmitFootsteps bool

	// IncludeWarmupDeaths tells if player_death events recorded before
	// the match start are dispatched as normalized PlayerDeath events.
	// The raw GameEvent is dispatched either way.
	IncludeWarmupDeaths bool

	// EmitNetMessages tells if opaque NetMessage events are dispatched.
	EmitNetMessages bool

	// EmitStringTables tells if StringTableCreated/Updated events are
	// dispatched.
	EmitStringTables bool

	// EmitDataTables tells if the DataTables event is dispatched.
	EmitDataTables bool

	// EmitPacketEntities tells if EntityEnter/Leave/Update events are
	// dispatched.
	EmitPacketEntities bool

	_ struct{} // To prevent unkeyed literals
}

// DefaultConfig returns the Config used by Parse/ParseFile when none is
// given: every Emit* toggle except EmitFootsteps enabled; EmitFootsteps
// and IncludeWarmupDeaths are left false.
func DefaultConfig() Config {
	return Config{
		EmitNetMessages:    true,
		EmitStringTables:   true,
		EmitDataTables:     true,
		EmitPacketEntities: true,
	}
}
