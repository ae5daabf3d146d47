package ffmpegsink

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// customFFmpegPath holds a user-specified ffmpeg path.
var customFFmpegPath string

// SetFFmpegPath sets a custom ffmpeg path. Empty restores automatic lookup.
func SetFFmpegPath(path string) {
	customFFmpegPath = path
}

// IsFFmpegAvailable checks if ffmpeg is available on the system.
func IsFFmpegAvailable() bool {
	_, err := FindFFmpeg()
	return err == nil
}

// FindFFmpeg searches for ffmpeg.
// Priority: 1) SetFFmpegPath, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func FindFFmpeg() (string, error) {
	if customFFmpegPath != "" {
		if _, err := os.Stat(customFFmpegPath); err == nil {
			return customFFmpegPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, customFFmpegPath)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

var (
	encodersMu    sync.Mutex
	encodersCache = map[string]map[string]bool{}
)

// HasEncoder reports whether the ffmpeg binary at ffmpegPath was built with
// the named encoder. Results are cached per binary.
func HasEncoder(ffmpegPath, encoder string) (bool, error) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	known, ok := encodersCache[ffmpegPath]
	if !ok {
		out, err := exec.Command(ffmpegPath, "-hide_banner", "-encoders").Output()
		if err != nil {
			return false, fmt.Errorf("list ffmpeg encoders: %w", err)
		}
		known = parseEncoders(out)
		encodersCache[ffmpegPath] = known
	}
	return known[encoder], nil
}

// parseEncoders reads the video encoder names from `ffmpeg -encoders` output.
// Lines look like " V....D libx264    libx264 H.264 / AVC ...".
func parseEncoders(out []byte) map[string]bool {
	encoders := map[string]bool{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		flags := fields[0]
		if len(flags) != 6 || flags[0] != 'V' {
			continue
		}
		encoders[fields[1]] = true
	}
	return encoders
}
