package mocks

import (
	"image"

	"github.com/user/frame2video/pkg/ports"
)

// VideoSink is a mock implementation of ports.VideoSink.
type VideoSink struct {
	OpenFunc       func(cfg ports.SinkConfig) error
	WriteFrameFunc func(img image.Image) error
	CloseFunc      func() error

	// Recorded calls for verification
	OpenCalls  []ports.SinkConfig
	Frames     []image.Image
	CloseCalls int
}

func (m *VideoSink) Open(cfg ports.SinkConfig) error {
	m.OpenCalls = append(m.OpenCalls, cfg)
	if m.OpenFunc != nil {
		return m.OpenFunc(cfg)
	}
	return nil
}

func (m *VideoSink) WriteFrame(img image.Image) error {
	if m.WriteFrameFunc != nil {
		if err := m.WriteFrameFunc(img); err != nil {
			return err
		}
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *VideoSink) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *VideoSink) FrameCount() int {
	return len(m.Frames)
}

// FrameSizes returns the dimensions of every written frame.
func (m *VideoSink) FrameSizes() []image.Point {
	sizes := make([]image.Point, len(m.Frames))
	for i, f := range m.Frames {
		sizes[i] = f.Bounds().Size()
	}
	return sizes
}

var _ ports.VideoSink = (*VideoSink)(nil)
