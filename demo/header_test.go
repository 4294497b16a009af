package demo

import "testing"

func TestHeaderTickrate(t *testing.T) {
	cases := []struct {
		ticks        int32
		playbackTime float32
		want         int
	}{
		{6400, 100, 64},
		{0, 0, 0},
		{100, -1, 0},
	}

	for _, c := range cases {
		h := &Header{Ticks: c.ticks, PlaybackTime: c.playbackTime}
		if got := h.Tickrate(); got != c.want {
			t.Errorf("Tickrate() with ticks=%v, playbackTime=%v: got %v, want %v", c.ticks, c.playbackTime, got, c.want)
		}
	}
}

func TestHeaderDemoType(t *testing.T) {
	cases := []struct {
		hostName string
		want     int
	}{
		{"192.168.1.1:27015", DemoTypePOV},
		{"localhost:27015", DemoTypePOV},
		{"my-gotv-server", DemoTypeTV},
		{"", DemoTypeTV},
	}

	for _, c := range cases {
		h := &Header{HostName: c.hostName}
		if got := h.DemoType(); got != c.want {
			t.Errorf("DemoType() with HostName=%q: got %v, want %v", c.hostName, got, c.want)
		}
	}
}
