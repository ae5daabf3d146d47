// Package assemble implements the stage that writes frames into a video.
package assemble

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/frame2video/pkg/pipeline"
	"github.com/user/frame2video/pkg/ports"
)

// Stage reads, resizes and writes each frame to a video sink.
type Stage struct {
	sink     ports.VideoSink
	fs       ports.FileSystem
	renderer ports.Renderer
	debug    ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(sink ports.VideoSink, fs ports.FileSystem, renderer ports.Renderer, debug ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:     sink,
		fs:       fs,
		renderer: renderer,
		debug:    debug,
		logger:   logger.WithComponent("assemble"),
	}
}

// Execute opens the sink, writes every readable frame in input order and
// closes the sink. Frames that cannot be read or decoded are logged and
// skipped. The sink is closed on every return path, including cancellation.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (result pipeline.AssembleResult, err error) {
	if err := s.sink.Open(input.Sink); err != nil {
		s.sink.Close()
		return result, fmt.Errorf("open video sink: %w", err)
	}
	defer func() {
		if cerr := s.sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close video sink: %w", cerr)
		}
	}()

	if s.debug.Enabled() {
		if err := s.debug.SaveFrameList(input.Paths); err != nil {
			s.logger.Warn("Failed to save frame list: %s", err.Error())
		}
	}

	bg := input.Background
	if bg == nil {
		bg = color.Black
	}

	for _, path := range input.Paths {
		if err := ctx.Err(); err != nil {
			result.FrameCount = s.sink.FrameCount()
			return result, err
		}

		img, err := s.load(path)
		if err != nil {
			s.logger.Warn("Could not read image %s: %s", path, err.Error())
			result.Skipped = append(result.Skipped, pipeline.SkippedFrame{Path: path, Err: err})
			continue
		}

		frame := s.resize(img, input, bg)

		if s.debug.Enabled() {
			if err := s.debug.SaveFrame(len(result.Added), frame); err != nil {
				s.logger.Warn("Failed to save debug frame %d: %s", len(result.Added), err.Error())
			}
		}

		if err := s.sink.WriteFrame(frame); err != nil {
			result.FrameCount = s.sink.FrameCount()
			return result, fmt.Errorf("write frame %s: %w", path, err)
		}

		result.Added = append(result.Added, path)
		s.logger.Info("Added %s to video", path)
	}

	result.FrameCount = s.sink.FrameCount()
	if len(result.Skipped) > 0 {
		s.logger.Warn("Skipped %d unreadable frames", len(result.Skipped))
	}
	s.logger.Debug("Wrote %d frames", result.FrameCount)

	return result, nil
}

func (s *Stage) load(path string) (image.Image, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.renderer.DecodeImage(data)
}

func (s *Stage) resize(img image.Image, input pipeline.AssembleInput, bg color.Color) image.Image {
	w, h := input.Sink.Width, input.Sink.Height
	if input.Fit == pipeline.FitLetterbox {
		return s.renderer.FitImage(img, w, h, bg, input.Interpolation)
	}
	return s.renderer.ResizeImage(img, w, h, input.Interpolation)
}
