// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/dealancer/validate.v2"
	"gopkg.in/yaml.v3"

	"github.com/user/frame2video/pkg/adapters/ggrenderer"
	"github.com/user/frame2video/pkg/adapters/smartsink"
	"github.com/user/frame2video/pkg/codec"
	"github.com/user/frame2video/pkg/orchestrator"
	"github.com/user/frame2video/pkg/pipeline"
	"github.com/user/frame2video/pkg/ports"
)

// Config represents the full configuration for frame2video.
type Config struct {
	// Input
	SourceDir          string `yaml:"source_dir" env:"FRAME2VIDEO_SOURCE_DIR" validate:"empty=false"`
	Extension          string `yaml:"extension" env:"FRAME2VIDEO_EXTENSION" validate:"empty=false"`
	CaseInsensitiveExt bool   `yaml:"case_insensitive_ext" env:"FRAME2VIDEO_CASE_INSENSITIVE_EXT"`

	// Output
	OutputPath string `yaml:"output" env:"FRAME2VIDEO_OUTPUT" validate:"empty=false"`
	FPS        int    `yaml:"fps" env:"FRAME2VIDEO_FPS" validate:"gte=1 & lte=240"`
	Width      int    `yaml:"width" env:"FRAME2VIDEO_WIDTH" validate:"gte=1 & lte=16384"`
	Height     int    `yaml:"height" env:"FRAME2VIDEO_HEIGHT" validate:"gte=1 & lte=16384"`
	Codec      string `yaml:"codec" env:"FRAME2VIDEO_CODEC" validate:"empty=false"`
	Quality    int    `yaml:"quality" env:"FRAME2VIDEO_QUALITY" validate:"gte=0 & lte=63"`

	// Resizing
	Fit           string `yaml:"fit" env:"FRAME2VIDEO_FIT" validate:"one_of=stretch,letterbox"`
	Interpolation string `yaml:"interpolation" env:"FRAME2VIDEO_INTERPOLATION"`
	Background    string `yaml:"background" env:"FRAME2VIDEO_BACKGROUND"`

	// Backend
	Backend    string `yaml:"backend" env:"FRAME2VIDEO_BACKEND" validate:"one_of=auto,ffmpeg,opencv"`
	FFmpegPath string `yaml:"ffmpeg_path" env:"FFMPEG_PATH"`

	// Debug
	DebugDir    string `yaml:"debug_dir" env:"FRAME2VIDEO_DEBUG_DIR"`
	SummaryPath string `yaml:"summary" env:"FRAME2VIDEO_SUMMARY"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Extension: ".png",

		OutputPath: "output_video.mp4",
		FPS:        30,
		Width:      2160,
		Height:     1440,
		Codec:      codec.Default,

		Fit:           string(pipeline.FitStretch),
		Interpolation: string(ports.InterpBiLinear),
		Background:    "#000000",

		Backend: string(smartsink.BackendAuto),
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to read config from %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing configuration file")
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "parsing environment")
	}
	return nil
}

// Validate checks field ranges and that codec, interpolation and
// background name known values.
func (c Config) Validate() error {
	if err := validate.Validate(&c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if !codec.IsSupported(c.Codec) {
		return errors.Wrapf(codec.ErrUnsupported, "invalid configuration: codec %q (supported: %s)",
			c.Codec, strings.Join(codec.Identifiers(), ", "))
	}
	if !ggrenderer.ValidInterpolation(c.Interpolation) {
		return fmt.Errorf("invalid configuration: interpolation %q", c.Interpolation)
	}
	if _, ok := parseHex(c.Background); !ok {
		return fmt.Errorf("invalid configuration: background %q is not a #rrggbb color", c.Background)
	}
	return nil
}

// ParseColor parses a hex color string to color.Color.
// Invalid input yields black.
func ParseColor(hex string) color.Color {
	c, ok := parseHex(hex)
	if !ok {
		return color.Black
	}
	return c
}

func parseHex(hex string) (color.RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, false
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexValue(hex[2*i])
		lo, ok2 := hexValue(hex[2*i+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 255}, true
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	bg := color.RGBAModel.Convert(ParseColor(c.Background)).(color.RGBA)

	return orchestrator.Config{
		SourceDir:          c.SourceDir,
		Extension:          c.Extension,
		CaseInsensitiveExt: c.CaseInsensitiveExt,

		OutputPath: c.OutputPath,
		Codec:      c.Codec,
		Quality:    c.Quality,
		FPS:        c.FPS,
		Width:      c.Width,
		Height:     c.Height,

		Fit:             pipeline.FitMode(c.Fit),
		Interpolation:   ports.Interpolation(c.Interpolation),
		BackgroundColor: [4]uint8{bg.R, bg.G, bg.B, bg.A},

		Backend: c.Backend,
	}
}
