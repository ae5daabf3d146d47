//go:build opencv

package opencvsink

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"github.com/user/frame2video/pkg/codec"
	"github.com/user/frame2video/pkg/ports"
)

// Available reports whether this build can write video through OpenCV.
func Available() bool { return true }

// Sink implements ports.VideoSink with gocv.VideoWriter.
type Sink struct {
	logger     ports.Logger
	cfg        ports.SinkConfig
	writer     *gocv.VideoWriter
	frameCount int
}

// New creates a new Sink.
func New(logger ports.Logger) *Sink {
	return &Sink{logger: logger.WithComponent("opencv")}
}

// Open validates cfg and opens a VideoWriter on the output path.
func (s *Sink) Open(cfg ports.SinkConfig) error {
	c, err := codec.Lookup(cfg.Codec)
	if err != nil {
		return err
	}
	if cfg.FPS <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("opencvsink: invalid parameters %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}

	// OpenCV reports an unwritable path only through IsOpened, so probe first.
	f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	f.Close()

	vw, err := gocv.VideoWriterFile(cfg.OutputPath, fourcc(c.FourCC), float64(cfg.FPS), cfg.Width, cfg.Height, true)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if !vw.IsOpened() {
		vw.Close()
		return fmt.Errorf("%w: fourcc %s", ErrOpenFailed, fourcc(c.FourCC))
	}

	s.cfg = cfg
	s.writer = vw
	s.frameCount = 0
	return nil
}

// WriteFrame converts img to a BGR Mat and appends it.
func (s *Sink) WriteFrame(img image.Image) error {
	if s.writer == nil {
		return ErrNotOpen
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	if mat.Cols() != s.cfg.Width || mat.Rows() != s.cfg.Height {
		return fmt.Errorf("opencvsink: frame size %dx%d, want %dx%d", mat.Cols(), mat.Rows(), s.cfg.Width, s.cfg.Height)
	}
	if err := s.writer.Write(mat); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	s.frameCount++
	return nil
}

// Close releases the VideoWriter.
func (s *Sink) Close() error {
	if s.writer == nil {
		return nil
	}
	err := s.writer.Close()
	s.writer = nil
	return err
}

// FrameCount returns the number of frames written so far.
func (s *Sink) FrameCount() int {
	return s.frameCount
}

var _ ports.VideoSink = (*Sink)(nil)
