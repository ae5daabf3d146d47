package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/user/frame2video/pkg/codec"
	"github.com/user/frame2video/pkg/pipeline"
	"github.com/user/frame2video/pkg/ports"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, &ConfigSuite{})
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *ConfigSuite) validConfig() Config {
	cfg := Defaults()
	cfg.SourceDir = "frames"
	return cfg
}

func (s *ConfigSuite) TestDefaults() {
	cfg := Defaults()

	s.Equal(".png", cfg.Extension)
	s.Equal("output_video.mp4", cfg.OutputPath)
	s.Equal(30, cfg.FPS)
	s.Equal(2160, cfg.Width)
	s.Equal(1440, cfg.Height)
	s.Equal("mp4v", cfg.Codec)
	s.Equal("stretch", cfg.Fit)
	s.Equal("auto", cfg.Backend)
}

func (s *ConfigSuite) TestLoadFromFile() {
	path := s.writeFile("cfg.yaml", `
source_dir: ./shots
output: movie.mp4
fps: 24
width: 1280
height: 720
codec: avc1
fit: letterbox
background: "#112233"
`)

	cfg, err := LoadFromFile(path)
	s.Require().NoError(err)

	s.Equal("./shots", cfg.SourceDir)
	s.Equal("movie.mp4", cfg.OutputPath)
	s.Equal(24, cfg.FPS)
	s.Equal(1280, cfg.Width)
	s.Equal(720, cfg.Height)
	s.Equal("avc1", cfg.Codec)
	s.Equal("letterbox", cfg.Fit)
	// Unset keys keep their defaults.
	s.Equal(".png", cfg.Extension)
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestLoadFromFileErrors() {
	_, err := LoadFromFile(filepath.Join(s.dir, "missing.yaml"))
	s.Error(err)
	s.Contains(err.Error(), "unable to read config")

	path := s.writeFile("bad.yaml", "fps: [not a number")
	_, err = LoadFromFile(path)
	s.Error(err)
	s.Contains(err.Error(), "parsing configuration file")
}

func (s *ConfigSuite) TestApplyEnv() {
	s.T().Setenv("FRAME2VIDEO_SOURCE_DIR", "/env/frames")
	s.T().Setenv("FRAME2VIDEO_FPS", "60")
	s.T().Setenv("FFMPEG_PATH", "/opt/ffmpeg")

	cfg := Defaults()
	cfg.OutputPath = "keep.mp4"
	s.Require().NoError(cfg.ApplyEnv())

	s.Equal("/env/frames", cfg.SourceDir)
	s.Equal(60, cfg.FPS)
	s.Equal("/opt/ffmpeg", cfg.FFmpegPath)
	s.Equal("keep.mp4", cfg.OutputPath)
}

func (s *ConfigSuite) TestApplyEnvInvalidNumber() {
	s.T().Setenv("FRAME2VIDEO_WIDTH", "wide")

	cfg := Defaults()
	s.Error(cfg.ApplyEnv())
}

func (s *ConfigSuite) TestValidate() {
	s.NoError(s.validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing source", func(c *Config) { c.SourceDir = "" }},
		{"missing output", func(c *Config) { c.OutputPath = "" }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"unknown codec", func(c *Config) { c.Codec = "wmv3" }},
		{"unknown fit", func(c *Config) { c.Fit = "crop" }},
		{"unknown backend", func(c *Config) { c.Backend = "gstreamer" }},
		{"unknown interpolation", func(c *Config) { c.Interpolation = "lanczos" }},
		{"bad background", func(c *Config) { c.Background = "#12345" }},
		{"quality too high", func(c *Config) { c.Quality = 100 }},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := s.validConfig()
			tt.mutate(&cfg)
			s.Error(cfg.Validate())
		})
	}
}

func (s *ConfigSuite) TestValidateUnknownCodecIsUnsupported() {
	cfg := s.validConfig()
	cfg.Codec = "wmv3"
	s.ErrorIs(cfg.Validate(), codec.ErrUnsupported)
}

func (s *ConfigSuite) TestParseColor() {
	s.Equal(color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}, ParseColor("#112233"))
	s.Equal(color.RGBA{R: 0xAB, G: 0xCD, B: 0xEF, A: 255}, ParseColor("abcdef"))
	s.Equal(color.Black, ParseColor("#zzzzzz"))
	s.Equal(color.Black, ParseColor(""))
}

func (s *ConfigSuite) TestToOrchestratorConfig() {
	cfg := s.validConfig()
	cfg.Fit = "letterbox"
	cfg.Interpolation = "nearest"
	cfg.Background = "#ff0000"
	cfg.Quality = 7
	cfg.Backend = "ffmpeg"

	oc := cfg.ToOrchestratorConfig()

	s.Equal("frames", oc.SourceDir)
	s.Equal(".png", oc.Extension)
	s.Equal("output_video.mp4", oc.OutputPath)
	s.Equal(30, oc.FPS)
	s.Equal(7, oc.Quality)
	s.Equal(pipeline.FitLetterbox, oc.Fit)
	s.Equal(ports.InterpNearest, oc.Interpolation)
	s.Equal([4]uint8{255, 0, 0, 255}, oc.BackgroundColor)
	s.Equal("ffmpeg", oc.Backend)
}

func (s *ConfigSuite) TestToOrchestratorConfig_InvalidBackgroundIsBlack() {
	cfg := s.validConfig()
	cfg.Background = "not-a-color"

	s.Equal([4]uint8{0, 0, 0, 255}, cfg.ToOrchestratorConfig().BackgroundColor)
}
