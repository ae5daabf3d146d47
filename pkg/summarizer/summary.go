// Package summarizer provides summary generation for assembly runs.
package summarizer

import (
	"time"

	"github.com/user/frame2video/pkg/orchestrator"
)

// Summary contains all data collected during one assembly run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source frames
	Source SourceInfo

	// Output settings
	Settings Settings

	// Video output details
	Video VideoInfo

	// Frames that could not be read
	Skipped []SkippedFrame
}

// SourceInfo describes the frame directory.
type SourceInfo struct {
	Dir         string
	FramesFound int
}

// Settings contains the encoding configuration.
type Settings struct {
	Codec   string
	Backend string
	FPS     int
	Width   int
	Height  int
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	OutputPath string
	FrameCount int
	DurationMs int
	FileSize   int64
}

// SkippedFrame is a frame path with the reason it was skipped.
type SkippedFrame struct {
	Path   string
	Reason string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source directory information.
func (b *Builder) WithSource(dir string, framesFound int) *Builder {
	b.summary.Source = SourceInfo{
		Dir:         dir,
		FramesFound: framesFound,
	}
	return b
}

// WithSettings sets encoding settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithSkipped appends a skipped frame.
func (b *Builder) WithSkipped(path, reason string) *Builder {
	b.summary.Skipped = append(b.summary.Skipped, SkippedFrame{Path: path, Reason: reason})
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

// FromRunResult builds a Summary from an orchestrator result.
func FromRunResult(r orchestrator.RunResult) *Summary {
	b := NewBuilder().
		WithSource(r.SourceDir, r.FramesFound).
		WithSettings(Settings{
			Codec:   r.Codec,
			Backend: r.Backend,
			FPS:     r.FPS,
			Width:   r.Width,
			Height:  r.Height,
		}).
		WithVideo(VideoInfo{
			OutputPath: r.OutputPath,
			FrameCount: r.FrameCount,
			DurationMs: r.VideoDurationMs,
			FileSize:   r.VideoFileSize,
		})
	for _, s := range r.Skipped {
		reason := ""
		if s.Err != nil {
			reason = s.Err.Error()
		}
		b.WithSkipped(s.Path, reason)
	}
	return b.Build()
}
