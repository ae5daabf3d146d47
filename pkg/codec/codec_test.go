package codec

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id      string
		fourcc  string
		encoder string
	}{
		{"mp4v", "mp4v", "mpeg4"},
		{"MP4V", "mp4v", "mpeg4"},
		{" avc1 ", "avc1", "libx264"},
		{"H264", "avc1", "libx264"},
		{"hevc", "hvc1", "libx265"},
		{"MJPG", "mjpg", "mjpeg"},
		{"av1", "av01", "libaom-av1"},
		{"vp9", "vp09", "libvpx-vp9"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, err := Lookup(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.FourCC != tt.fourcc {
				t.Errorf("expected fourcc %s, got %s", tt.fourcc, c.FourCC)
			}
			if c.Encoder != tt.encoder {
				t.Errorf("expected encoder %s, got %s", tt.encoder, c.Encoder)
			}
		})
	}
}

func TestLookup_Unsupported(t *testing.T) {
	for _, id := range []string{"", "wmv2", "xyz1"} {
		_, err := Lookup(id)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("Lookup(%q): expected ErrUnsupported, got %v", id, err)
		}
	}
}

func TestDefaultIsSupported(t *testing.T) {
	if !IsSupported(Default) {
		t.Errorf("default codec %q should be supported", Default)
	}
}

func TestIdentifiers_Sorted(t *testing.T) {
	ids := Identifiers()
	if len(ids) != len(aliases) {
		t.Fatalf("expected %d identifiers, got %d", len(aliases), len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("identifiers not sorted at %d: %s >= %s", i, ids[i-1], ids[i])
		}
	}
}

func TestClampQuality(t *testing.T) {
	c, _ := Lookup("mp4v")

	if got := c.ClampQuality(0); got != 0 {
		t.Errorf("expected 0 to stay 0, got %d", got)
	}
	if got := c.ClampQuality(100); got != 31 {
		t.Errorf("expected clamp to 31, got %d", got)
	}
	if got := c.ClampQuality(5); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestCheckDimensions(t *testing.T) {
	h264, _ := Lookup("avc1")
	if err := h264.CheckDimensions(2160, 1440); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := h264.CheckDimensions(641, 480); err == nil {
		t.Error("expected error for odd width")
	}
	if err := h264.CheckDimensions(0, 480); err == nil {
		t.Error("expected error for zero width")
	}

	mjpg, _ := Lookup("mjpg")
	if err := mjpg.CheckDimensions(641, 481); err != nil {
		t.Errorf("mjpeg should accept odd sizes: %v", err)
	}
}
