// Package opencvsink writes video files through OpenCV's VideoWriter.
//
// The real implementation needs cgo and an OpenCV installation and is only
// compiled with the "opencv" build tag. Without it, New returns a sink that
// reports ErrBackendUnavailable.
package opencvsink

import "errors"

var (
	// ErrBackendUnavailable is returned when the binary was built without OpenCV.
	ErrBackendUnavailable = errors.New("opencvsink: built without opencv support")

	// ErrOpenFailed is returned when OpenCV cannot open the output for writing.
	ErrOpenFailed = errors.New("opencvsink: could not open video writer")

	// ErrNotOpen is returned when frames are written before Open or after Close.
	ErrNotOpen = errors.New("opencvsink: sink not open")
)

// fourcc returns the code passed to cv::VideoWriter::fourcc.
func fourcc(id string) string {
	if id == "mjpg" {
		return "MJPG"
	}
	return id
}
