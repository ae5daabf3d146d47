package mocks

import (
	"image"
	"image/color"

	"github.com/user/frame2video/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	DecodeImageFunc func(data []byte) (image.Image, error)
	EncodePNGFunc   func(img image.Image) ([]byte, error)
	ResizeImageFunc func(img image.Image, width, height int, interp ports.Interpolation) image.Image
	FitImageFunc    func(img image.Image, width, height int, bg color.Color, interp ports.Interpolation) image.Image

	ResizeCalls int
	FitCalls    int
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int, interp ports.Interpolation) image.Image {
	m.ResizeCalls++
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height, interp)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) FitImage(img image.Image, width, height int, bg color.Color, interp ports.Interpolation) image.Image {
	m.FitCalls++
	if m.FitImageFunc != nil {
		return m.FitImageFunc(img, width, height, bg, interp)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)
