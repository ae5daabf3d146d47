// Package nullsink is the DebugSink used when no debug directory is configured.
package nullsink

import (
	"image"

	"github.com/user/frame2video/pkg/ports"
)

// Sink reports itself disabled, so the assemble stage never hands it frames.
type Sink struct{}

func New() *Sink { return &Sink{} }

func (*Sink) Enabled() bool                    { return false }
func (*Sink) SaveFrame(int, image.Image) error { return nil }
func (*Sink) SaveFrameList([]string) error     { return nil }

var _ ports.DebugSink = (*Sink)(nil)
