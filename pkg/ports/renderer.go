package ports

import (
	"image"
	"image/color"
)

// Interpolation selects the resampling kernel used when resizing.
type Interpolation string

const (
	InterpNearest        Interpolation = "nearest"
	InterpApproxBiLinear Interpolation = "approx-bilinear"
	InterpBiLinear       Interpolation = "bilinear"
	InterpCatmullRom     Interpolation = "catmull-rom"
)

// Renderer abstracts image decoding and resizing.
type Renderer interface {
	// DecodeImage decodes image data, detecting the format from its content.
	DecodeImage(data []byte) (image.Image, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)

	// ResizeImage scales img to exactly width x height, ignoring aspect ratio.
	ResizeImage(img image.Image, width, height int, interp Interpolation) image.Image

	// FitImage scales img to fit inside width x height keeping its aspect ratio
	// and centers it on a canvas filled with bg.
	FitImage(img image.Image, width, height int, bg color.Color, interp Interpolation) image.Image
}
