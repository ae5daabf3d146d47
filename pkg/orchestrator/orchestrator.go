// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"image/color"

	"github.com/user/frame2video/pkg/codec"
	"github.com/user/frame2video/pkg/pipeline"
	"github.com/user/frame2video/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	SourceDir          string
	Extension          string
	CaseInsensitiveExt bool

	// Output
	OutputPath string
	Codec      string
	Quality    int
	FPS        int
	Width      int
	Height     int

	// Resizing
	Fit             pipeline.FitMode
	Interpolation   ports.Interpolation
	BackgroundColor [4]uint8 // RGBA

	// Backend is the sink backend name, reported in the result only.
	Backend string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Extension:       ".png",
		OutputPath:      "output_video.mp4",
		Codec:           codec.Default,
		FPS:             30,
		Width:           2160,
		Height:          1440,
		Fit:             pipeline.FitStretch,
		Interpolation:   ports.InterpBiLinear,
		BackgroundColor: [4]uint8{0, 0, 0, 255},
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	collectStage  pipeline.Stage[pipeline.CollectInput, pipeline.CollectResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	prober        ports.VideoProber
	logger        ports.Logger
}

// New creates a new Orchestrator. prober may be nil.
func New(
	collectStage pipeline.Stage[pipeline.CollectInput, pipeline.CollectResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	prober ports.VideoProber,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		collectStage:  pipeline.Timed("collect", collectStage, logger),
		assembleStage: pipeline.Timed("assemble", assembleStage, logger),
		prober:        prober,
		logger:        logger,
	}
}

// Run collects the frames of config.SourceDir and writes them to
// config.OutputPath. The source is listed before the output is touched, so
// a missing source directory leaves no output file behind.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{
		SourceDir:  config.SourceDir,
		OutputPath: config.OutputPath,
		Codec:      config.Codec,
		Backend:    config.Backend,
		FPS:        config.FPS,
		Width:      config.Width,
		Height:     config.Height,
	}

	o.logger.Info("Assembling %s into %s (%s, %d fps, %dx%d)",
		config.SourceDir, config.OutputPath, config.Codec, config.FPS, config.Width, config.Height)

	// 1. Collect frames
	collected, err := o.collectStage.Execute(ctx, o.buildCollectInput(config))
	if err != nil {
		o.logger.Error("Failed to collect frames: %s", err.Error())
		return result, fmt.Errorf("collect stage: %w", err)
	}
	result.FramesFound = len(collected.Paths)

	// 2. Assemble video
	assembled, err := o.assembleStage.Execute(ctx, o.buildAssembleInput(config, collected))
	result.Added = assembled.Added
	result.Skipped = assembled.Skipped
	result.FrameCount = assembled.FrameCount
	if err != nil {
		o.logger.Error("Failed to assemble video: %s", err.Error())
		return result, fmt.Errorf("assemble stage: %w", err)
	}

	o.logger.Info("Video saved as %s", config.OutputPath)

	// 3. Inspect output
	if o.prober != nil {
		if info, err := o.prober.Probe(config.OutputPath); err == nil {
			result.VideoFileSize = info.FileSize
			result.VideoDurationMs = info.DurationMs
		}
	}

	return result, nil
}

func (o *Orchestrator) buildCollectInput(config Config) pipeline.CollectInput {
	return pipeline.CollectInput{
		Dir:                config.SourceDir,
		Extension:          config.Extension,
		CaseInsensitiveExt: config.CaseInsensitiveExt,
	}
}

func (o *Orchestrator) buildAssembleInput(config Config, collected pipeline.CollectResult) pipeline.AssembleInput {
	fit := config.Fit
	if fit == "" {
		fit = pipeline.FitStretch
	}
	interp := config.Interpolation
	if interp == "" {
		interp = ports.InterpBiLinear
	}

	return pipeline.AssembleInput{
		Paths: collected.Paths,
		Sink: ports.SinkConfig{
			OutputPath: config.OutputPath,
			Codec:      config.Codec,
			FPS:        config.FPS,
			Width:      config.Width,
			Height:     config.Height,
			Quality:    config.Quality,
		},
		Fit:           fit,
		Interpolation: interp,
		Background:    rgbaFromArray(config.BackgroundColor),
	}
}

func rgbaFromArray(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input
	SourceDir   string
	FramesFound int

	// Output
	OutputPath string
	Codec      string
	Backend    string
	FPS        int
	Width      int
	Height     int

	// Frames
	Added      []string
	Skipped    []pipeline.SkippedFrame
	FrameCount int

	// Video information, zero when the output could not be inspected
	VideoFileSize   int64
	VideoDurationMs int
}
