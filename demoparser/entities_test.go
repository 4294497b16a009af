package demoparser

import (
	"testing"

	"github.com/icza/csdemo/demo"
	"github.com/icza/csdemo/demomsg"
)

type entityCapturingSink struct {
	NopSink
	entered []*demo.Entity
}

func (s *entityCapturingSink) OnEntityEnter(e *demo.Entity) error {
	s.entered = append(s.entered, e)
	return nil
}

// Scenario 5 (spec.md §8): updated_entries=1, ubitvar→5, leave=0,
// enter=1 produces one ENTER_PVS at id 5, then FINISHED.
func TestHandlePacketEntitiesEnterThenFinished(t *testing.T) {
	w := &testBitWriter{}
	w.writeBits(5, 6)  // ubitvar: new_entity delta = 5
	w.writeBits(0, 1)  // not a leave-pvs record
	w.writeBits(1, 1)  // enter_pvs
	w.writeBits(0, 1)  // server class id (1 bit: class 0)
	w.writeBits(0, 10) // serial number
	w.writeBits(0, 1)  // property delta run: immediately stopped

	state := demo.NewParserState()
	state.ServerClassBits = 1
	state.ServerClasses = []*demo.ServerClass{
		{ClassID: 0, Name: "CTest", FlattenedProps: nil},
	}

	sink := &entityCapturingSink{}
	msg := &demomsg.PacketEntities{UpdatedEntries: 1, IsDelta: true, EntityData: w.bytes}

	if err := handlePacketEntities(msg, state, sink); err != nil {
		t.Fatalf("handlePacketEntities: %v", err)
	}

	if len(sink.entered) != 1 {
		t.Fatalf("len(entered) = %v, want 1", len(sink.entered))
	}
	if sink.entered[0].EntityID != 5 {
		t.Errorf("entered[0].EntityID = %v, want 5", sink.entered[0].EntityID)
	}
	if _, live := state.Entities[5]; !live {
		t.Error("entity 5 not present in state.Entities after ENTER_PVS")
	}
}

func TestApplyPropertyDeltasFieldIndexOutOfRange(t *testing.T) {
	w := &testBitWriter{}
	w.writeBits(1, 1) // continue
	w.writeBits(0, 6) // field_index = -1 + 1 + 0 = 0, out of range (no props)

	defer func() {
		rec := recover()
		pe, ok := rec.(*ParseError)
		if !ok {
			t.Fatalf("expected *ParseError panic, got %v", rec)
		}
		if pe.Kind != SchemaInvalid {
			t.Errorf("Kind = %v, want SchemaInvalid", pe.Kind)
		}
	}()

	entity := demo.NewEntity(1, 0, 0)
	applyPropertyDeltas(entity, nil, newBitReader(w.bytes))
}
