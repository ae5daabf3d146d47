//go:build !opencv

package opencvsink

import (
	"image"

	"github.com/user/frame2video/pkg/ports"
)

// Available reports whether this build can write video through OpenCV.
func Available() bool { return false }

// Sink is a placeholder used when OpenCV support is not compiled in.
type Sink struct{}

// New creates a new Sink.
func New(logger ports.Logger) *Sink {
	return &Sink{}
}

func (s *Sink) Open(cfg ports.SinkConfig) error  { return ErrBackendUnavailable }
func (s *Sink) WriteFrame(img image.Image) error { return ErrBackendUnavailable }
func (s *Sink) Close() error                     { return nil }
func (s *Sink) FrameCount() int                  { return 0 }

var _ ports.VideoSink = (*Sink)(nil)
