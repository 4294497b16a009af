// This file implements the game-event engine (spec.md §4.8): descriptor
// merging from svc_GameEventList, per-event resolution and dispatch, and
// normalization into the handful of event kinds this parser special-cases.

package demoparser

import (
	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demomsg"
)

const (
	eventMatchStart = "round_announce_match_start"
	eventFootstep   = "player_footstep"
	eventDeath      = "player_death"
)

// handleGameEventList merges a decoded svc_GameEventList's descriptors
// into state, keyed by event id. Only the first list that carries
// descriptors is merged; later lists are ignored (spec.md §4.8).
func handleGameEventList(msg *demomsg.GameEventList, state *demo.ParserState) {
	if len(state.GameEventDescriptors) > 0 {
		return
	}
	for _, d := range msg.Descriptors {
		keys := make([]demo.EventKeyDescriptor, len(d.Keys))
		for i, k := range d.Keys {
			keys[i] = demo.EventKeyDescriptor{Name: k.Name, Type: k.Type}
		}
		state.GameEventDescriptors[d.EventID] = &demo.EventDescriptor{
			EventID: d.EventID,
			Name:    d.Name,
			Keys:    keys,
		}
	}
}

// handleGameEvent resolves a decoded svc_GameEvent against its
// descriptor, zips its keys into a demo.GameEvent, dispatches it to
// sink, and emits the normalized form for the event kinds this parser
// special-cases (spec.md §4.8).
func handleGameEvent(msg *demomsg.GameEvent, state *demo.ParserState, cfg Config, sink Sink) error {
	descriptor, known := state.GameEventDescriptors[msg.EventID]

	name := msg.EventName
	if known {
		name = descriptor.Name
	}
	if name == eventFootstep && !cfg.EmitFootsteps {
		return nil
	}

	if !known {
		// Unknown descriptor: dispatch with whatever name the wire
		// message itself carried, no typed values.
		return sink.OnGameEvent(&demo.GameEvent{Name: name, Tick: state.CurrentTick})
	}

	values := make(map[string]any, len(msg.Keys))
	for i, key := range msg.Keys {
		if i >= len(descriptor.Keys) {
			break
		}
		values[descriptor.Keys[i].Name] = eventKeyValue(key)
	}

	ev := &demo.GameEvent{Name: name, Tick: state.CurrentTick, Values: values}
	if err := sink.OnGameEvent(ev); err != nil {
		return err
	}

	return dispatchNormalized(ev, state, cfg, sink)
}

// eventKeyValue extracts the Go value a GameEventKey carries, per its
// declared type (spec.md §4.8).
func eventKeyValue(k *demomsg.GameEventKey) any {
	switch k.Type {
	case demo.EventKeyTypeString, demo.EventKeyTypeLocal:
		return k.ValString
	case demo.EventKeyTypeFloat:
		return k.ValFloat
	case demo.EventKeyTypeLong:
		return k.ValLong
	case demo.EventKeyTypeShort:
		return k.ValShort
	case demo.EventKeyTypeByte:
		return k.ValByte
	case demo.EventKeyTypeBool:
		return k.ValBool
	case demo.EventKeyTypeUint64:
		return k.ValUint64
	case demo.EventKeyTypeWString:
		return k.ValWString
	default:
		return nil
	}
}

// dispatchNormalized emits the typed payload for the events this parser
// gives special treatment to, and updates derived state (spec.md §4.8).
func dispatchNormalized(ev *demo.GameEvent, state *demo.ParserState, cfg Config, sink Sink) error {
	switch ev.Name {
	case "player_connect":
		return sink.OnPlayerConnect(&demo.PlayerConnect{
			Tick:      ev.Tick,
			UserID:    asInt32(ev.Values["userid"]),
			Name:      asString(ev.Values["name"]),
			NetworkID: asString(ev.Values["networkid"]),
		})

	case "player_disconnect":
		return sink.OnPlayerDisconnect(&demo.PlayerDisconnect{
			Tick:   ev.Tick,
			UserID: asInt32(ev.Values["userid"]),
			Reason: asString(ev.Values["reason"]),
		})

	case eventDeath:
		if !state.MatchStarted && !cfg.IncludeWarmupDeaths {
			return nil
		}
		return sink.OnPlayerDeath(&demo.PlayerDeath{
			Tick:       ev.Tick,
			VictimID:   asInt32(ev.Values["userid"]),
			AttackerID: asInt32(ev.Values["attacker"]),
			AssisterID: asInt32(ev.Values["assister"]),
			Weapon:     asString(ev.Values["weapon"]),
			Headshot:   asBool(ev.Values["headshot"]),
		})

	case eventMatchStart:
		state.MatchStarted = true
		state.Computed.MatchStartTick = ev.Tick
		return sink.OnRoundMatchStart(&demo.RoundMatchStart{Tick: ev.Tick})
	}

	return nil
}

func asInt32(v any) int32 {
	switch n := v.(type) {
	case int32:
		return n
	case int16:
		return int32(n)
	case byte:
		return int32(n)
	default:
		return 0
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
