package debug

import (
	"image"
	"image/color"

	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
)

// HeightmapImage renders a height field as 16-bit grayscale, lowest point
// black and highest white. Pixel (x, y) is lattice point (x, z=y).
// A constant field is mid gray.
func HeightmapImage(h *terrain.HeightField) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, h.Size, h.Size))
	if h.Size == 0 {
		return img
	}

	lo, hi := h.MinMax()
	span := hi - lo
	for x := range h.Size {
		for z := range h.Size {
			level := uint16(0x8000)
			if span > 0 {
				level = uint16((h.At(x, z) - lo) / span * 0xffff)
			}
			img.SetGray16(x, z, color.Gray16{Y: level})
		}
	}
	return img
}

// SaveHeightmap writes the grayscale heightmap of h to path as PNG.
func SaveHeightmap(path string, h *terrain.HeightField) error {
	return WritePNG(path, HeightmapImage(h))
}
