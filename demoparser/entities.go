// This file implements the packet-entity engine (spec.md §4.6) and the
// per-entity property delta decode (spec.md §4.7).

package demoparser

import (
	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demomsg"
)

// entitySentinel is the out-of-range entity id that always terminates
// the packet-entities loop (spec.md §4.6).
const entitySentinel = 9999

// update transition kinds for one packet-entities header record.
type entityUpdateKind int

const (
	updateFinished entityUpdateKind = iota
	updateEnterPVS
	updateLeavePVS
	updateDelta
)

// handlePacketEntities applies a decoded svc_PacketEntities message,
// driving the ENTER_PVS/LEAVE_PVS/DELTA/FINISHED state machine and
// dispatching the corresponding Sink events.
func handlePacketEntities(msg *demomsg.PacketEntities, state *demo.ParserState, sink Sink) error {
	r := newBitReader(msg.EntityData)

	newEntity := -1
	headerCount := int(msg.UpdatedEntries)

	for {
		headerCount--
		isEntity := headerCount >= 0

		var enterPVS, leavePVS, deleteFlag bool
		if isEntity {
			newEntity = newEntity + 1 + int(r.readUbitvar())

			if r.readBit() == 0 {
				if r.readBit() != 0 {
					enterPVS = true
				}
			} else {
				leavePVS = true
				if r.readBit() != 0 {
					deleteFlag = true
				}
			}
		}

		kind := updateFinished
		switch {
		case !isEntity || newEntity >= entitySentinel:
			kind = updateFinished
		case enterPVS:
			kind = updateEnterPVS
		case leavePVS:
			kind = updateLeavePVS
		default:
			kind = updateDelta
		}

		switch kind {
		case updateFinished:
			return nil

		case updateEnterPVS:
			classID := int16(r.readBits(state.ServerClassBits))
			serialNum := int(r.readBits(10))

			if int(classID) < 0 || int(classID) >= len(state.ServerClasses) {
				fail(SchemaInvalid, r.bitPos, true, "ENTER_PVS with unknown server class")
			}
			if _, live := state.Entities[newEntity]; live {
				fail(Inconsistent, r.bitPos, true, "ENTER_PVS on already-live entity")
			}

			sc := state.ServerClasses[classID]
			entity := demo.NewEntity(newEntity, classID, serialNum)
			applyPropertyDeltas(entity, sc.FlattenedProps, r)
			state.Entities[newEntity] = entity

			if msg.UpdateBaseline {
				state.Baselines[classID] = copyProps(entity.Props)
			}

			if err := sink.OnEntityEnter(entity); err != nil {
				return err
			}
			if err := sink.OnEntityUpdate(entity); err != nil {
				return err
			}

		case updateLeavePVS:
			if !msg.IsDelta {
				fail(BadDelta, r.bitPos, true, "LEAVE_PVS on a non-delta packet")
			}
			// This parser treats LEAVE_PVS as removal regardless of the
			// DELETE flag (spec.md §9, Open Question).
			_ = deleteFlag
			delete(state.Entities, newEntity)
			if err := sink.OnEntityLeave(newEntity); err != nil {
				return err
			}

		case updateDelta:
			entity, live := state.Entities[newEntity]
			if !live {
				fail(Inconsistent, r.bitPos, true, "DELTA for unknown entity")
			}
			sc := state.ServerClasses[entity.ServerClassID]
			applyPropertyDeltas(entity, sc.FlattenedProps, r)
			if err := sink.OnEntityUpdate(entity); err != nil {
				return err
			}
		}
	}
}

// applyPropertyDeltas reads an index run and decodes each touched
// field's value (spec.md §4.7).
func applyPropertyDeltas(entity *demo.Entity, flattenedProps []*demo.FlattenedProp, r *bitReader) {
	fieldIndex := -1
	for {
		if r.readBit() == 0 {
			return
		}
		fieldIndex = fieldIndex + 1 + int(r.readUbitint())
		if fieldIndex >= len(flattenedProps) {
			fail(SchemaInvalid, r.bitPos, true, "field_index out of range")
		}
		entity.Props[fieldIndex] = decodeValue(flattenedProps[fieldIndex], r)
	}
}

// copyProps returns a shallow copy of an entity's property map, for
// instance-baseline storage.
func copyProps(props map[int]any) map[int]any {
	out := make(map[int]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
