package demoparser

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/icza/csdemo/demo"
)

// buildMinimalHeader returns a raw 1072-byte HL2DEMO header with the
// given host name, ticks, and playback time; every other field zeroed.
func buildMinimalHeader(hostName string, ticks int32, playbackTime float32) []byte {
	buf := make([]byte, demo.HeaderSize)
	copy(buf, demo.Magic)

	le := binary.LittleEndian
	le.PutUint32(buf[8:], 4)      // demo_protocol
	le.PutUint32(buf[12:], 13800) // network_protocol

	copy(buf[16:16+260], hostName)
	// client_name, map_name, game_dir left zero

	offset := 16 + 260*4
	le.PutUint32(buf[offset:], math.Float32bits(playbackTime))
	le.PutUint32(buf[offset+4:], uint32(ticks))
	le.PutUint32(buf[offset+8:], uint32(ticks)) // frames, reuse ticks
	return buf
}

type recordingSink struct {
	NopSink
	header *demo.Header
	ended  bool
}

func (s *recordingSink) OnHeader(h *demo.Header) error {
	s.header = h
	return nil
}

func (s *recordingSink) OnEnd() error {
	s.ended = true
	return nil
}

// Scenario 1 (spec.md §8): minimal header with ticks=3840, time=60 ->
// tickrate == 64, demo_type == 1 (no IPv4 host name).
func TestParseMinimalHeaderTickrate(t *testing.T) {
	data := buildMinimalHeader("", 3840, 60.0)
	data = append(data, 7, 0, 0, 0, 0, 0) // cmd=STOP, tick=0, player_slot=0

	sink := &recordingSink{}
	if err := Parse(data, sink); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sink.header == nil {
		t.Fatal("OnHeader was never called")
	}
	if got := sink.header.Tickrate(); got != 64 {
		t.Errorf("Tickrate() = %v, want 64", got)
	}
	if got := sink.header.DemoType(); got != demo.DemoTypeTV {
		t.Errorf("DemoType() = %v, want DemoTypeTV", got)
	}
	if !sink.ended {
		t.Error("OnEnd was never called")
	}
}

// Scenario 2 (spec.md §8): an IPv4 host name yields demo_type == 0.
func TestParseIPv4HostDemoType(t *testing.T) {
	data := buildMinimalHeader("127.0.0.1:27015", 100, 10)
	data = append(data, 7, 0, 0, 0, 0, 0) // cmd=STOP

	sink := &recordingSink{}
	if err := Parse(data, sink); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := sink.header.DemoType(); got != demo.DemoTypePOV {
		t.Errorf("DemoType() = %v, want DemoTypePOV", got)
	}
}

// Scenario 6 (spec.md §8): STOP immediately after the header yields
// exactly Header then End, no errors.
func TestParseStopTerminatesImmediately(t *testing.T) {
	data := buildMinimalHeader("", 0, 0)
	data = append(data, 7, 0, 0, 0, 0, 0) // cmd=STOP, tick=0, player_slot=0

	sink := &recordingSink{}
	if err := Parse(data, sink); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sink.header == nil || !sink.ended {
		t.Error("expected exactly Header then End")
	}
}

func TestParseBadMagic(t *testing.T) {
	data := make([]byte, demo.HeaderSize)
	copy(data, "NOTADEMO")

	err := Parse(data, &NopSink{})
	if err == nil {
		t.Fatal("expected an error for bad magic")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != BadMagic {
		t.Errorf("err = %v, want a BadMagic ParseError", err)
	}
}

func TestParseBadCommand(t *testing.T) {
	data := buildMinimalHeader("", 0, 0)
	data = append(data, 0, 0, 0, 0, 0, 0) // cmd=0, invalid

	err := Parse(data, &NopSink{})
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != BadCommand {
		t.Errorf("err = %v, want a BadCommand ParseError", err)
	}
}
