package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/frame2video/pkg/orchestrator"
	"github.com/user/frame2video/pkg/pipeline"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithSource("frames", 4).
		WithSettings(Settings{Codec: "mp4v", FPS: 30, Width: 640, Height: 480}).
		WithVideo(VideoInfo{OutputPath: "out.mp4", FrameCount: 3}).
		WithSkipped("frames/x.png", "bad header").
		Build()

	if summary.Source.Dir != "frames" || summary.Source.FramesFound != 4 {
		t.Errorf("unexpected source %+v", summary.Source)
	}
	if summary.Settings.Codec != "mp4v" {
		t.Errorf("expected codec mp4v, got %s", summary.Settings.Codec)
	}
	if summary.Video.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", summary.Video.FrameCount)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0].Reason != "bad header" {
		t.Errorf("unexpected skipped %+v", summary.Skipped)
	}
}

func TestFromRunResult(t *testing.T) {
	summary := FromRunResult(orchestrator.RunResult{
		SourceDir:   "frames",
		FramesFound: 3,
		OutputPath:  "out.mp4",
		Codec:       "avc1",
		Backend:     "ffmpeg",
		FPS:         24,
		Width:       1280,
		Height:      720,
		Added:       []string{"frames/a.png", "frames/c.png"},
		Skipped: []pipeline.SkippedFrame{
			{Path: "frames/b.png", Err: errors.New("unexpected EOF")},
		},
		FrameCount:      2,
		VideoFileSize:   2048,
		VideoDurationMs: 83,
	})

	if summary.Source.FramesFound != 3 {
		t.Errorf("expected 3 frames found, got %d", summary.Source.FramesFound)
	}
	if summary.Settings.Backend != "ffmpeg" || summary.Settings.FPS != 24 {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Video.FileSize != 2048 || summary.Video.DurationMs != 83 {
		t.Errorf("unexpected video %+v", summary.Video)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0].Reason != "unexpected EOF" {
		t.Errorf("unexpected skipped %+v", summary.Skipped)
	}
}
