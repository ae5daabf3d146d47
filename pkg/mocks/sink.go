package mocks

import (
	"image"
	"sync"

	"github.com/user/frame2video/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Frames    map[int]image.Image
	FrameList []string

	SaveFrameErr error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFrameErr != nil {
		return m.SaveFrameErr
	}
	m.Frames[index] = img
	return nil
}

func (m *DebugSink) SaveFrameList(paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FrameList = append([]string(nil), paths...)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
