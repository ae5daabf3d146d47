package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/frame2video/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelWarn, &buf)

	log.Debug("debug %s", "frame-0001.png")
	log.Info("info %s", "frame-0002.png")
	log.Warn("warn %s", "frame-0003.png")
	log.Error("error %s", "frame-0004.png")

	out := buf.String()
	if strings.Contains(out, "frame-0001.png") || strings.Contains(out, "frame-0002.png") {
		t.Errorf("debug/info lines should be filtered, got %q", out)
	}
	if !strings.Contains(out, "frame-0003.png") {
		t.Errorf("expected warn line, got %q", out)
	}
	if !strings.Contains(out, "frame-0004.png") {
		t.Errorf("expected error line, got %q", out)
	}
}

func TestConsoleLogger_SplitsErrorsFromProgress(t *testing.T) {
	var out, errOut bytes.Buffer
	log := &ConsoleLogger{level: ports.LevelDebug, out: &out, errOut: &errOut}

	log.Info("Added %s to video", "a.png")
	log.Warn("Could not read image %s", "b.png")
	log.Error("Failed to assemble video: %s", "boom")

	if !strings.Contains(out.String(), "a.png") || !strings.Contains(out.String(), "b.png") {
		t.Errorf("expected info and warn on out, got %q", out.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("error line should not be on out: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("expected error on errOut, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &buf).WithComponent("ffmpegsink")

	log.Info("started")

	if !strings.HasPrefix(buf.String(), "[ffmpegsink] ") {
		t.Errorf("expected component prefix, got %q", buf.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &buf)

	log.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output at quiet level, got %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(ports.LevelInfo, &buf)

	log.Debug("hidden")
	log.WithComponent("assemble").Info("Added %s to video", "c.png")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug should be filtered, got %q", out)
	}
	if !strings.Contains(out, `"component":"assemble"`) {
		t.Errorf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "c.png") {
		t.Errorf("expected message, got %q", out)
	}
}
