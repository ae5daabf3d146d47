package ports

import (
	"image"
)

// SinkConfig fixes the output container parameters before the first frame.
// It is never modified for the lifetime of an opened sink.
type SinkConfig struct {
	OutputPath string // Created or truncated, never appended to
	Codec      string // Codec identifier, e.g. "mp4v" or "avc1"
	FPS        int    // Frames per second
	Width      int    // Frame width in pixels
	Height     int    // Frame height in pixels
	Quality    int    // Codec-specific quality, 0 = encoder default
}

// VideoSink accumulates frames into a video container file.
type VideoSink interface {
	// Open validates the configuration and creates the output file.
	Open(cfg SinkConfig) error

	// WriteFrame appends img as the next frame. img must already have
	// the configured dimensions.
	WriteFrame(img image.Image) error

	// Close flushes pending data and finalizes the container.
	// It is safe to call Close on a sink that failed to open.
	Close() error

	// FrameCount returns the number of frames written so far.
	FrameCount() int
}

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFrame saves a resized frame before it is handed to the video sink.
	SaveFrame(index int, img image.Image) error

	// SaveFrameList saves the ordered frame source list, one path per line.
	SaveFrameList(paths []string) error
}
