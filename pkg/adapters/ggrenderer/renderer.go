// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/frame2video/pkg/ports"
)

// Renderer implements ports.Renderer using gg and x/image/draw.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// DecodeImage decodes image data, detecting the format from its header.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode image: empty data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image: zero size")
	}
	return img, nil
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ResizeImage stretches img to exactly width x height.
func (r *Renderer) ResizeImage(img image.Image, width, height int, interp ports.Interpolation) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler(interp).Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FitImage scales img into width x height keeping its aspect ratio and
// centers the result on a bg-filled canvas.
func (r *Renderer) FitImage(img image.Image, width, height int, bg color.Color, interp ports.Interpolation) image.Image {
	b := img.Bounds()
	scale := float64(width) / float64(b.Dx())
	if s := float64(height) / float64(b.Dy()); s < scale {
		scale = s
	}
	w := max(1, int(float64(b.Dx())*scale+0.5))
	h := max(1, int(float64(b.Dy())*scale+0.5))

	scaled := r.ResizeImage(img, w, h, interp)

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(scaled, (width-w)/2, (height-h)/2)
	return dc.Image()
}

func scaler(interp ports.Interpolation) draw.Scaler {
	switch interp {
	case ports.InterpNearest:
		return draw.NearestNeighbor
	case ports.InterpApproxBiLinear:
		return draw.ApproxBiLinear
	case ports.InterpCatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// ValidInterpolation reports whether s names a supported kernel.
func ValidInterpolation(s string) bool {
	switch ports.Interpolation(s) {
	case ports.InterpNearest, ports.InterpApproxBiLinear, ports.InterpBiLinear, ports.InterpCatmullRom:
		return true
	}
	return false
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
