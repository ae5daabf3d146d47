// Package main provides the CLI entry point for frame2video.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/frame2video/pkg/adapters/filesink"
	"github.com/user/frame2video/pkg/adapters/ggrenderer"
	"github.com/user/frame2video/pkg/adapters/logger"
	"github.com/user/frame2video/pkg/adapters/mp4probe"
	"github.com/user/frame2video/pkg/adapters/nullsink"
	"github.com/user/frame2video/pkg/adapters/osfilesystem"
	"github.com/user/frame2video/pkg/adapters/smartsink"
	"github.com/user/frame2video/pkg/config"
	"github.com/user/frame2video/pkg/orchestrator"
	"github.com/user/frame2video/pkg/ports"
	"github.com/user/frame2video/pkg/stages/assemble"
	"github.com/user/frame2video/pkg/stages/collect"
	"github.com/user/frame2video/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "frame2video",
		Usage:           l10n.T("Assemble a directory of image frames into an MP4 video"),
		Version:         version,
		ArgsUsage:       "[SOURCE_DIR]",
		Flags:           assembleFlags(),
		Action:          runAssemble,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "assemble",
				Usage:     l10n.T("Write the frames of a directory to an MP4 file"),
				ArgsUsage: "[SOURCE_DIR]",
				Flags:     assembleFlags(),
				Action:    runAssemble,
			},
			{
				Name:      "inspect",
				Usage:     l10n.T("Show video track information of an MP4 file"),
				ArgsUsage: "FILE.mp4",
				Action:    runInspect,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("frame2video version %s", version))
					return nil
				},
			},
		},
	}
}

func assembleFlags() []cli.Flag {
	input := l10n.T("Input")
	output := l10n.T("Output")
	resize := l10n.T("Resizing")
	backend := l10n.T("Backend")
	debug := l10n.T("Debug")
	logging := l10n.T("Logging")

	return []cli.Flag{
		&cli.StringFlag{Name: "config", Category: input, Usage: l10n.T("YAML configuration file")},
		&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Category: input, Usage: l10n.T("Directory containing the frames")},
		&cli.StringFlag{Name: "ext", Category: input, Usage: l10n.T("File name suffix of frames (default: .png)")},
		&cli.BoolFlag{Name: "ignore-case", Category: input, Usage: l10n.T("Match the suffix case-insensitively")},

		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: output, Usage: l10n.T("Output MP4 file path (default: output_video.mp4)")},
		&cli.IntFlag{Name: "fps", Aliases: []string{"r"}, Category: output, Usage: l10n.T("Frames per second (default: 30)")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Category: output, Usage: l10n.T("Output video width (default: 2160)")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Category: output, Usage: l10n.T("Output video height (default: 1440)")},
		&cli.StringFlag{Name: "codec", Aliases: []string{"c"}, Category: output, Usage: l10n.T("Codec identifier such as mp4v, avc1, hvc1, av01, vp09, mjpg (default: mp4v)")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Category: output, Usage: l10n.T("Codec quality value, 0 uses the encoder default")},

		&cli.StringFlag{Name: "fit", Category: resize, Usage: l10n.T("stretch or letterbox (default: stretch)")},
		&cli.StringFlag{Name: "interpolation", Category: resize, Usage: l10n.T("nearest, approx-bilinear, bilinear or catmull-rom (default: bilinear)")},
		&cli.StringFlag{Name: "background", Category: resize, Usage: l10n.T("Letterbox color (hex, default: #000000)")},

		&cli.StringFlag{Name: "backend", Category: backend, Usage: l10n.T("auto, ffmpeg or opencv (default: auto)")},
		&cli.StringFlag{Name: "ffmpeg-path", Category: backend, Usage: l10n.T("Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)")},

		&cli.StringFlag{Name: "debug-dir", Category: debug, Usage: l10n.T("Save resized frames to this directory")},
		&cli.StringFlag{Name: "summary", Category: debug, Usage: l10n.T("Write a Markdown summary to this file (- for stdout)")},

		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Category: logging, Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.StringFlag{Name: "log-format", Value: "text", Category: logging, Usage: l10n.T("Log format (text, json)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: logging, Usage: l10n.T("Suppress all log output")},
	}
}

// buildConfig layers defaults, the config file, environment variables and
// flags, in increasing priority.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if c.Args().Present() {
		cfg.SourceDir = c.Args().First()
	}
	setString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	setInt := func(name string, dst *int) {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}

	setString("source", &cfg.SourceDir)
	setString("ext", &cfg.Extension)
	if c.IsSet("ignore-case") {
		cfg.CaseInsensitiveExt = c.Bool("ignore-case")
	}
	setString("output", &cfg.OutputPath)
	setInt("fps", &cfg.FPS)
	setInt("width", &cfg.Width)
	setInt("height", &cfg.Height)
	setString("codec", &cfg.Codec)
	setInt("quality", &cfg.Quality)
	setString("fit", &cfg.Fit)
	setString("interpolation", &cfg.Interpolation)
	setString("background", &cfg.Background)
	setString("backend", &cfg.Backend)
	setString("ffmpeg-path", &cfg.FFmpegPath)
	setString("debug-dir", &cfg.DebugDir)
	setString("summary", &cfg.SummaryPath)

	return cfg, nil
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level := ports.ParseLogLevel(c.String("log-level"))
	if c.String("log-format") == "json" {
		return logger.NewJSON(level, c.App.Writer)
	}
	return logger.NewConsole(level)
}

func runAssemble(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log := newLogger(c)
	if j, ok := log.(*logger.JSONLogger); ok {
		defer j.Sync()
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var debugSink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return cli.Exit(fmt.Sprintf("create debug directory: %v", err), 1)
		}
		debugSink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		debugSink = nullsink.New()
	}

	backend, err := smartsink.ParseBackend(cfg.Backend)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	videoSink, info, err := smartsink.New(backend, smartsink.Options{
		FFmpegPath: cfg.FFmpegPath,
		Logger:     log,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log.Debug("Using %s backend for codec %s", info.Backend, cfg.Codec)

	// Create stages
	orch := orchestrator.New(
		collect.NewStage(fs, log),
		assemble.NewStage(videoSink, fs, renderer, debugSink, log),
		mp4probe.New(fs),
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.Backend = string(info.Backend)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if cfg.SummaryPath != "" {
		writer := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(
				summarizer.WithTranslator(l10n.T),
				summarizer.WithVersion(version),
			),
			fs,
			c.App.Writer,
		)
		if err := writer.Write(cfg.SummaryPath, summarizer.FromRunResult(result)); err != nil {
			log.Warn("Failed to write summary: %s", err.Error())
		}
	}

	return nil
}

func runInspect(c *cli.Context) error {
	if !c.Args().Present() {
		return cli.Exit(l10n.T("inspect requires an MP4 file path"), 2)
	}
	path := c.Args().First()

	info, err := mp4probe.New(osfilesystem.New()).Probe(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := c.App.Writer
	fmt.Fprintln(w, l10n.F("File: %s", path))
	fmt.Fprintln(w, l10n.F("Codec: %s", info.Codec))
	fmt.Fprintln(w, l10n.F("Resolution: %dx%d", info.Width, info.Height))
	fmt.Fprintln(w, l10n.F("Frames: %d", info.FrameCount))
	fmt.Fprintln(w, l10n.F("Duration: %d ms", info.DurationMs))
	fmt.Fprintln(w, l10n.F("Fragmented: %t", info.Fragmented))
	fmt.Fprintln(w, l10n.F("File Size: %d bytes", info.FileSize))
	return nil
}
