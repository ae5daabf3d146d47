package ffmpegsink

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
	ErrFFmpegNotFound = errors.New("ffmpegsink: ffmpeg not found")

	// ErrCodecUnavailable is returned when ffmpeg lacks the encoder for the codec.
	ErrCodecUnavailable = errors.New("ffmpegsink: encoder not available in ffmpeg")

	// ErrOutputNotWritable is returned when the output file cannot be created.
	ErrOutputNotWritable = errors.New("ffmpegsink: output not writable")

	// ErrOddDimensions is returned when the codec needs even width and height.
	ErrOddDimensions = errors.New("ffmpegsink: invalid frame dimensions")

	// ErrNotOpen is returned when frames are written before Open or after Close.
	ErrNotOpen = errors.New("ffmpegsink: sink not open")

	// ErrFrameSize is returned when a frame does not match the configured size.
	ErrFrameSize = errors.New("ffmpegsink: frame size mismatch")
)
