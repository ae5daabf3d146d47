package pipeline

import (
	"image/color"

	"github.com/user/frame2video/pkg/ports"
)

// =============================================================================
// Collect Stage Types
// =============================================================================

// CollectInput names the directory to scan for frames.
type CollectInput struct {
	Dir       string // Flat directory holding the frames
	Extension string // Suffix a file name must end with, e.g. ".png"

	// CaseInsensitiveExt also accepts ".PNG" for ".png".
	CaseInsensitiveExt bool
}

// CollectResult holds the frame paths in lexicographic file-name order.
type CollectResult struct {
	Paths []string
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// FitMode selects how frames with a different aspect ratio are resized.
type FitMode string

const (
	// FitStretch scales each frame to exactly the output size.
	FitStretch FitMode = "stretch"
	// FitLetterbox keeps the aspect ratio and pads with the background color.
	FitLetterbox FitMode = "letterbox"
)

// AssembleInput contains everything needed to write the video.
type AssembleInput struct {
	Paths         []string
	Sink          ports.SinkConfig
	Fit           FitMode
	Interpolation ports.Interpolation
	Background    color.Color
}

// SkippedFrame records a frame that could not be read or decoded.
type SkippedFrame struct {
	Path string
	Err  error
}

// AssembleResult reports what was written.
type AssembleResult struct {
	Added      []string       // Frames written, in order
	Skipped    []SkippedFrame // Frames that could not be decoded
	FrameCount int            // Frames the sink accepted
}
