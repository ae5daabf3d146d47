// Package codec maps codec identifiers to encoder settings.
//
// Identifiers follow the FourCC spelling used by OpenCV's VideoWriter
// ("mp4v", "avc1", "MJPG", ...) plus a few common aliases. Matching is
// case-insensitive.
package codec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupported is returned for codec identifiers that have no mapping.
var ErrUnsupported = errors.New("codec: unsupported codec identifier")

// Default is the codec used when none is configured.
const Default = "mp4v"

// QualityFlag names the ffmpeg option that carries the quality value.
type QualityFlag string

const (
	QualityCRF QualityFlag = "-crf"
	QualityQV  QualityFlag = "-q:v"
)

// Codec describes how one codec identifier is encoded.
type Codec struct {
	// FourCC is the canonical four-character code.
	FourCC string
	// Encoder is the ffmpeg encoder name.
	Encoder string
	// SampleEntry is the MP4 sample entry box type written for this codec.
	SampleEntry string
	// Tag is passed to ffmpeg as -tag:v when not empty.
	Tag string
	// PixelFormat is the output pixel format.
	PixelFormat string
	// EvenDimensions is true when the pixel format requires even width and height.
	EvenDimensions bool
	// Quality is the option used to pass Config quality values.
	Quality QualityFlag
	// QualityMin and QualityMax bound the accepted quality values.
	QualityMin int
	QualityMax int
}

var codecs = []Codec{
	{FourCC: "mp4v", Encoder: "mpeg4", SampleEntry: "mp4v", Tag: "mp4v", PixelFormat: "yuv420p", EvenDimensions: true, Quality: QualityQV, QualityMin: 1, QualityMax: 31},
	{FourCC: "avc1", Encoder: "libx264", SampleEntry: "avc1", Tag: "avc1", PixelFormat: "yuv420p", EvenDimensions: true, Quality: QualityCRF, QualityMin: 0, QualityMax: 51},
	{FourCC: "hvc1", Encoder: "libx265", SampleEntry: "hvc1", Tag: "hvc1", PixelFormat: "yuv420p", EvenDimensions: true, Quality: QualityCRF, QualityMin: 0, QualityMax: 51},
	{FourCC: "av01", Encoder: "libaom-av1", SampleEntry: "av01", PixelFormat: "yuv420p", EvenDimensions: true, Quality: QualityCRF, QualityMin: 0, QualityMax: 63},
	{FourCC: "vp09", Encoder: "libvpx-vp9", SampleEntry: "vp09", PixelFormat: "yuv420p", EvenDimensions: true, Quality: QualityCRF, QualityMin: 0, QualityMax: 63},
	{FourCC: "mjpg", Encoder: "mjpeg", SampleEntry: "mp4v", PixelFormat: "yuvj420p", Quality: QualityQV, QualityMin: 1, QualityMax: 31},
}

var aliases = map[string]string{
	"mp4v":  "mp4v",
	"fmp4":  "mp4v",
	"xvid":  "mp4v",
	"divx":  "mp4v",
	"avc1":  "avc1",
	"h264":  "avc1",
	"x264":  "avc1",
	"hvc1":  "hvc1",
	"hev1":  "hvc1",
	"h265":  "hvc1",
	"hevc":  "hvc1",
	"av01":  "av01",
	"av1":   "av01",
	"vp09":  "vp09",
	"vp9":   "vp09",
	"mjpg":  "mjpg",
	"mjpeg": "mjpg",
}

// Lookup resolves a codec identifier.
func Lookup(id string) (Codec, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	fourcc, ok := aliases[key]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnsupported, id)
	}
	for _, c := range codecs {
		if c.FourCC == fourcc {
			return c, nil
		}
	}
	return Codec{}, fmt.Errorf("%w: %q", ErrUnsupported, id)
}

// IsSupported reports whether id resolves to a known codec.
func IsSupported(id string) bool {
	_, err := Lookup(id)
	return err == nil
}

// Identifiers returns every accepted identifier in sorted order.
func Identifiers() []string {
	ids := make([]string, 0, len(aliases))
	for id := range aliases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClampQuality limits q to the codec's accepted range. Zero means "encoder
// default" and is returned unchanged.
func (c Codec) ClampQuality(q int) int {
	if q <= 0 {
		return 0
	}
	if q < c.QualityMin {
		return c.QualityMin
	}
	if q > c.QualityMax {
		return c.QualityMax
	}
	return q
}

// CheckDimensions validates width and height for this codec.
func (c Codec) CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("codec %s: invalid frame size %dx%d", c.FourCC, width, height)
	}
	if c.EvenDimensions && (width%2 != 0 || height%2 != 0) {
		return fmt.Errorf("codec %s: frame size %dx%d must be even", c.FourCC, width, height)
	}
	return nil
}
