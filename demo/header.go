// This file contains the type describing the demo header.

package demo

import (
	"fmt"
	"strings"
	"time"
)

// Magic is the fixed 8-byte signature every HL2DEMO file starts with.
const Magic = "HL2DEMO\x00"

// HeaderSize is the fixed size in bytes of the demo header.
const HeaderSize = 1072

// Demo type values derived from Header.HostName (spec.md §3).
const (
	// DemoTypePOV is a player point-of-view recording: HostName holds an
	// IPv4 (or localhost) address-and-port.
	DemoTypePOV = 0

	// DemoTypeTV is a GOTV ("TV") recording.
	DemoTypeTV = 1
)

// Header models the fixed 1072-byte demo header.
type Header struct {
	// DemoProtocol is the demo-format protocol version.
	DemoProtocol int32

	// NetworkProtocol is the game's network protocol version.
	NetworkProtocol int32

	// HostName is the server host name (260-byte C string field).
	HostName string

	// ClientName is the recording client's name (260-byte C string field).
	ClientName string

	// MapName is the map name (260-byte C string field).
	MapName string

	// GameDir is the game content directory (260-byte C string field).
	GameDir string

	// PlaybackTime is the recorded wall-clock duration in seconds.
	PlaybackTime float32

	// Ticks is the total number of simulation ticks recorded.
	Ticks int32

	// Frames is the total number of frames recorded.
	Frames int32

	// SignonLength is the byte length of the sign-on data block.
	// Unused by this parser; kept for layout completeness (spec.md §6).
	SignonLength int32
}

// Tickrate returns the recording's ticks-per-second rate, derived as
// floor(Ticks / PlaybackTime). Returns 0 if PlaybackTime is not positive.
func (h *Header) Tickrate() int {
	if h.PlaybackTime <= 0 {
		return 0
	}
	return int(float64(h.Ticks) / float64(h.PlaybackTime))
}

// Duration returns the recording's playback duration as a time.Duration.
func (h *Header) Duration() time.Duration {
	return time.Duration(float64(h.PlaybackTime) * float64(time.Second))
}

// DemoType classifies the recording as DemoTypePOV or DemoTypeTV based on
// whether HostName looks like an IPv4 address-and-port (or localhost).
func (h *Header) DemoType() int {
	if isAddrPort(h.HostName) {
		return DemoTypePOV
	}
	return DemoTypeTV
}

// isAddrPort reports whether s has the shape "host:port" where host is
// either "localhost" or a dotted IPv4 address, per the original
// IsGoodIPPORTFormat heuristic (original_source/src/demo_parse_test.py).
func isAddrPort(s string) bool {
	host, port, ok := strings.Cut(s, ":")
	if !ok || port == "" || !isDigits(port) {
		return false
	}
	if host == "localhost" {
		return true
	}
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return false
	}
	for _, o := range octets {
		if o == "" || len(o) > 3 || !isDigits(o) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// String returns a short human-readable summary of the header.
func (h *Header) String() string {
	return fmt.Sprintf("%s, map=%s, ticks=%d, duration=%s", h.GameDir, h.MapName, h.Ticks, h.Duration())
}
