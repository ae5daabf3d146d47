package filesink

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/user/frame2video/pkg/adapters/ggrenderer"
	"github.com/user/frame2video/pkg/adapters/osfilesystem"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func newTestSink() (*Sink, afero.Fs) {
	mem := afero.NewMemMapFs()
	return New(testBaseDir, osfilesystem.NewWithFs(mem), ggrenderer.New()), mem
}

func TestSink_Enabled(t *testing.T) {
	sink, _ := newTestSink()

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveFrame(t *testing.T) {
	sink, mem := newTestSink()

	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(1, 1, color.White)

	if err := sink.SaveFrame(7, img); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "frame-00007.png")
	data, err := afero.ReadFile(mem, expectedPath)
	if err != nil {
		t.Fatalf("expected file at %s: %v", expectedPath, err)
	}

	decoded, err := ggrenderer.New().DecodeImage(data)
	if err != nil {
		t.Fatalf("saved frame is not a valid image: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("expected 8x6, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSink_SaveFrameList(t *testing.T) {
	sink, mem := newTestSink()

	if err := sink.SaveFrameList([]string{"a.png", "b.png"}); err != nil {
		t.Fatalf("SaveFrameList failed: %v", err)
	}

	data, err := afero.ReadFile(mem, filepath.Join(testBaseDir, "frames.txt"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "a.png\nb.png\n" {
		t.Errorf("unexpected frame list %q", data)
	}
}
