// Package ffmpegsink writes video files by piping raw frames into ffmpeg.
package ffmpegsink

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/user/frame2video/pkg/codec"
	"github.com/user/frame2video/pkg/ports"
)

// Sink implements ports.VideoSink with an external ffmpeg process.
// ffmpeg is started on the first frame; a sink closed without frames
// writes an empty MP4 container instead.
type Sink struct {
	logger ports.Logger

	mu         sync.Mutex
	cfg        ports.SinkConfig
	codec      codec.Codec
	ffmpegPath string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	buf        *image.RGBA
	frameCount int
	open       bool
}

// New creates a new Sink.
func New(logger ports.Logger) *Sink {
	return &Sink{logger: logger.WithComponent("ffmpeg")}
}

// Open validates cfg and creates (or truncates) the output file.
func (s *Sink) Open(cfg ports.SinkConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := codec.Lookup(cfg.Codec)
	if err != nil {
		return err
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("ffmpegsink: invalid fps %d", cfg.FPS)
	}
	if err := c.CheckDimensions(cfg.Width, cfg.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrOddDimensions, err)
	}

	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}
	ok, err := HasEncoder(ffmpegPath, c.Encoder)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s needs %s", ErrCodecUnavailable, c.FourCC, c.Encoder)
	}

	f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputNotWritable, err)
	}
	f.Close()

	s.cfg = cfg
	s.cfg.Quality = c.ClampQuality(cfg.Quality)
	s.codec = c
	s.ffmpegPath = ffmpegPath
	s.buf = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	s.frameCount = 0
	s.stderr.Reset()
	s.open = true
	return nil
}

// WriteFrame streams img to ffmpeg as raw RGBA.
func (s *Sink) WriteFrame(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrNotOpen
	}

	b := img.Bounds()
	if b.Dx() != s.cfg.Width || b.Dy() != s.cfg.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), s.cfg.Width, s.cfg.Height)
	}

	if s.cmd == nil {
		if err := s.start(); err != nil {
			return err
		}
	}

	draw.Draw(s.buf, s.buf.Bounds(), img, b.Min, draw.Src)
	if _, err := s.stdin.Write(s.buf.Pix); err != nil {
		// stderr is still being filled by ffmpeg; Close reports it after Wait.
		return fmt.Errorf("failed to write frame: %w", err)
	}

	s.frameCount++
	return nil
}

func (s *Sink) start() error {
	args := buildArgs(s.cfg, s.codec)
	s.logger.Debug("Starting ffmpeg: %s", strings.Join(args, " "))

	s.cmd = exec.Command(s.ffmpegPath, args...)
	s.cmd.Stderr = &s.stderr
	detachFromTerminal(s.cmd)

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		s.cmd = nil
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	s.stdin = stdin

	if err := s.cmd.Start(); err != nil {
		s.cmd = nil
		s.stdin = nil
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}
	return nil
}

// Close finalizes the output. It is a no-op on a sink that is not open.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	s.buf = nil

	if s.cmd == nil {
		s.logger.Debug("No frames written, writing empty container")
		return writeEmptyFile(s.cfg, s.codec)
	}

	s.stdin.Close()
	s.stdin = nil
	err := s.cmd.Wait()
	s.cmd = nil
	if err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, s.stderr.String())
	}
	return nil
}

// FrameCount returns the number of frames written so far.
func (s *Sink) FrameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameCount
}

func buildArgs(cfg ports.SinkConfig, c codec.Codec) []string {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-r", strconv.Itoa(cfg.FPS),
		"-i", "pipe:0",
		"-an",
		"-c:v", c.Encoder,
	}
	if c.Tag != "" {
		args = append(args, "-tag:v", c.Tag)
	}
	args = append(args, "-pix_fmt", c.PixelFormat)
	if cfg.Quality > 0 {
		args = append(args, string(c.Quality), strconv.Itoa(cfg.Quality))
	}
	args = append(args,
		"-movflags", "+faststart",
		"-f", "mp4",
		cfg.OutputPath,
	)
	return args
}

func writeEmptyFile(cfg ports.SinkConfig, c codec.Codec) error {
	f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputNotWritable, err)
	}
	if err := writeEmptyMP4(f, c, cfg.Width, cfg.Height, cfg.FPS); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Ensure Sink implements ports.VideoSink
var _ ports.VideoSink = (*Sink)(nil)
