// Package smartsink selects a video sink backend with fallback support.
package smartsink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user/frame2video/pkg/adapters/ffmpegsink"
	"github.com/user/frame2video/pkg/adapters/logger"
	"github.com/user/frame2video/pkg/adapters/opencvsink"
	"github.com/user/frame2video/pkg/ports"
)

// Backend names a video writing backend.
type Backend string

const (
	// BackendAuto picks ffmpeg when present, then OpenCV.
	BackendAuto Backend = "auto"
	// BackendFFmpeg pipes frames into an ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendOpenCV uses OpenCV's VideoWriter (requires the opencv build tag).
	BackendOpenCV Backend = "opencv"
)

// Info describes the selected backend.
type Info struct {
	// Backend is the backend actually used.
	Backend Backend
	// Requested is the backend that was asked for.
	Requested Backend
	// FallbackUsed is true when auto selection skipped ffmpeg.
	FallbackUsed bool
}

// Options configures backend selection.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// Logger is passed to the sink and used for fallback warnings.
	Logger ports.Logger
}

var (
	// ErrNoBackendAvailable is returned when auto selection finds nothing usable.
	ErrNoBackendAvailable = errors.New("smartsink: no video backend available")

	// ErrUnknownBackend is returned for backend names that are not recognized.
	ErrUnknownBackend = errors.New("smartsink: unknown backend")
)

// ParseBackend parses a backend name. Empty means auto.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendFFmpeg:
		return BackendFFmpeg, nil
	case BackendOpenCV:
		return BackendOpenCV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// New creates a video sink for the requested backend.
//
// An explicit backend is returned as is; if it cannot run, its Open reports
// why. Auto selection tries ffmpeg first, then OpenCV.
func New(requested Backend, opts Options) (ports.VideoSink, Info, error) {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoop()
	}
	if opts.FFmpegPath != "" {
		ffmpegsink.SetFFmpegPath(opts.FFmpegPath)
	}

	info := Info{Requested: requested}

	switch requested {
	case BackendFFmpeg:
		info.Backend = BackendFFmpeg
		return ffmpegsink.New(opts.Logger), info, nil
	case BackendOpenCV:
		info.Backend = BackendOpenCV
		return opencvsink.New(opts.Logger), info, nil
	case BackendAuto, "":
		return selectAuto(opts, info)
	}
	return nil, Info{}, fmt.Errorf("%w: %q", ErrUnknownBackend, requested)
}

func selectAuto(opts Options, info Info) (ports.VideoSink, Info, error) {
	if ffmpegsink.IsFFmpegAvailable() {
		info.Backend = BackendFFmpeg
		return ffmpegsink.New(opts.Logger), info, nil
	}

	if opencvsink.Available() {
		opts.Logger.Warn("Backend %s not available, falling back to %s", BackendFFmpeg, BackendOpenCV)
		info.Backend = BackendOpenCV
		info.FallbackUsed = true
		return opencvsink.New(opts.Logger), info, nil
	}

	return nil, Info{}, fmt.Errorf("%w: %v", ErrNoBackendAvailable, ffmpegsink.ErrFFmpegNotFound)
}
