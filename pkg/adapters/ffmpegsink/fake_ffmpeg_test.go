//go:build unix

package ffmpegsink

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/frame2video/pkg/adapters/logger"
	"github.com/user/frame2video/pkg/ports"
)

// encoderListing is what the stand-in answers to `ffmpeg -encoders`.
const encoderListing = `Encoders:
 V..... = Video
 ------
 V....D mpeg4                MPEG-4 part 2
 V....D mjpeg                MJPEG (Motion JPEG)
`

// installFakeFFmpeg writes a shell script standing in for ffmpeg and points
// the sink at it. body runs for every invocation except -encoders.
func installFakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do\n" +
		"  if [ \"$a\" = \"-encoders\" ]; then\n" +
		"    cat <<'EOF'\n" + encoderListing + "EOF\n" +
		"    exit 0\n" +
		"  fi\n" +
		"done\n" +
		body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))

	SetFFmpegPath(path)
	t.Cleanup(func() { SetFFmpegPath("") })
	return path
}

func TestSink_FakeFFmpeg_UnwritableOutput(t *testing.T) {
	installFakeFFmpeg(t, "cat >/dev/null")

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "missing", "dir", "out.mp4")

	err := s.Open(ports.SinkConfig{OutputPath: out, Codec: "mp4v", FPS: 30, Width: 64, Height: 48})
	assert.ErrorIs(t, err, ErrOutputNotWritable)
	assert.NoError(t, s.Close())
}

func TestSink_FakeFFmpeg_CodecUnavailable(t *testing.T) {
	installFakeFFmpeg(t, "cat >/dev/null")

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "out.mp4")

	err := s.Open(ports.SinkConfig{OutputPath: out, Codec: "avc1", FPS: 30, Width: 64, Height: 48})
	assert.ErrorIs(t, err, ErrCodecUnavailable)
	assert.NoFileExists(t, out)
}

func TestSink_FakeFFmpeg_ZeroFrames(t *testing.T) {
	installFakeFFmpeg(t, "echo 'ffmpeg must not run without frames' >&2; exit 1")

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "empty.mp4")

	require.NoError(t, s.Open(ports.SinkConfig{OutputPath: out, Codec: "mp4v", FPS: 30, Width: 64, Height: 48}))
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.FrameCount())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	f, err := mp4.DecodeFile(bytes.NewReader(data))
	require.NoError(t, err)
	require.NotNil(t, moovOf(f))
}

func TestSink_FakeFFmpeg_StreamsFrames(t *testing.T) {
	installFakeFFmpeg(t, "cat >/dev/null")

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "out.mp4")

	require.NoError(t, s.Open(ports.SinkConfig{OutputPath: out, Codec: "mp4v", FPS: 10, Width: 64, Height: 48}))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.WriteFrame(solidFrame(64, 48, color.White)))
	}
	require.NoError(t, s.Close())
	assert.Equal(t, 3, s.FrameCount())
}

func TestSink_FakeFFmpeg_OwnProcessGroup(t *testing.T) {
	installFakeFFmpeg(t, "cat >/dev/null")

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "out.mp4")

	require.NoError(t, s.Open(ports.SinkConfig{OutputPath: out, Codec: "mp4v", FPS: 10, Width: 64, Height: 48}))
	require.NoError(t, s.WriteFrame(solidFrame(64, 48, color.White)))

	pid := s.cmd.Process.Pid
	pgid, err := syscall.Getpgid(pid)
	require.NoError(t, err)
	assert.Equal(t, pid, pgid, "ffmpeg should lead its own process group")

	require.NoError(t, s.Close())
}

// A write failure while ffmpeg is still producing stderr must not touch the
// stderr buffer; the diagnostics arrive with Close. Run with -race.
func TestSink_FakeFFmpeg_WriteFailureReportsStderrOnClose(t *testing.T) {
	installFakeFFmpeg(t, `exec 0<&-
i=0
while [ $i -lt 2000 ]; do
  echo "encoder noise $i" >&2
  i=$((i+1))
done
exit 1`)

	s := New(logger.NewNoop())
	out := filepath.Join(t.TempDir(), "out.mp4")
	require.NoError(t, s.Open(ports.SinkConfig{OutputPath: out, Codec: "mp4v", FPS: 10, Width: 64, Height: 48}))

	var writeErr error
	for i := 0; i < 500 && writeErr == nil; i++ {
		writeErr = s.WriteFrame(solidFrame(64, 48, color.White))
	}
	require.Error(t, writeErr, "writing to a closed pipe should fail")
	assert.NotContains(t, writeErr.Error(), "stderr:")

	closeErr := s.Close()
	require.Error(t, closeErr)
	assert.Contains(t, closeErr.Error(), "encoder noise")
}
