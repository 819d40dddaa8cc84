package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/terrain-scenes/internal/engine/shapes"
	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
)

func TestBBoxLines(t *testing.T) {
	lines := BBoxLines([3]float32{1, 2, 3}, [3]float32{0, 0, 0}, 0.5)

	if lines.Topology != shapes.LineList {
		t.Errorf("topology = %v, want line list", lines.Topology)
	}
	if lines.SegmentCount() != BBoxEdgeCount {
		t.Fatalf("got %d segments, want %d", lines.SegmentCount(), BBoxEdgeCount)
	}

	// Corners swapped and padded
	for _, p := range lines.Points {
		for i, lim := range [3][2]float32{{-0.5, 1.5}, {-0.5, 2.5}, {-0.5, 3.5}} {
			if p[i] != lim[0] && p[i] != lim[1] {
				t.Fatalf("point %v axis %d not on the padded box", p, i)
			}
		}
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "shots"), "terrain")
	sc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue in GL order
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasSuffix(path, "terrain_2024-05-06_07-08-09.000.png") {
		t.Errorf("path = %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Flipped: top of the image is the last GL row
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b != 0xffff {
		t.Errorf("top pixel r=%x b=%x, want blue", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r != 0xffff || b != 0 {
		t.Errorf("bottom pixel r=%x b=%x, want red", r, b)
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestHeightmapImage(t *testing.T) {
	h := terrain.NewHeightField(3)
	h.Set(0, 0, -2)
	h.Set(2, 1, 2)

	img := HeightmapImage(h)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.Gray16At(0, 0).Y; got != 0 {
		t.Errorf("lowest = %d, want 0", got)
	}
	if got := img.Gray16At(2, 1).Y; got != 0xffff {
		t.Errorf("highest = %d, want 65535", got)
	}
	if got := img.Gray16At(1, 1).Y; got < 0x7ff0 || got > 0x8000 {
		t.Errorf("zero height = %d, want mid gray", got)
	}

	flat := HeightmapImage(terrain.NewHeightField(2))
	if got := flat.Gray16At(1, 1).Y; got != 0x8000 {
		t.Errorf("flat field = %d, want 0x8000", got)
	}
}

func TestSaveHeightmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "height.png")
	h := terrain.SampleHeightField(8, terrain.UniformSampler{Min: 0, Max: 1, Rand: terrain.NewRand(1)})

	if err := SaveHeightmap(path, h); err != nil {
		t.Fatalf("SaveHeightmap: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("heightmap not written: %v", err)
	}
}
