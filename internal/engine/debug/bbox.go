// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/Faultbox/terrain-scenes/internal/engine/shapes"
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// BBoxEdgeCount is the number of segments in a box wireframe.
const BBoxEdgeCount = 12

// DefaultBBoxPadding is the default padding around a bounds box.
const DefaultBBoxPadding = 0.05

// BBoxLines creates a line list outlining an axis-aligned box. padding expands
// the box on all sides; inverted corners are swapped.
func BBoxLines(lo, hi [3]float32, padding float32) shapes.Lines {
	for i := range 3 {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
		lo[i] -= padding
		hi[i] += padding
	}

	minX, minY, minZ := lo[0], lo[1], lo[2]
	maxX, maxY, maxZ := hi[0], hi[1], hi[2]
	v := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }

	return shapes.NewLineList(
		// Bottom face
		shapes.Segment{Start: v(minX, minY, minZ), End: v(maxX, minY, minZ)},
		shapes.Segment{Start: v(maxX, minY, minZ), End: v(maxX, minY, maxZ)},
		shapes.Segment{Start: v(maxX, minY, maxZ), End: v(minX, minY, maxZ)},
		shapes.Segment{Start: v(minX, minY, maxZ), End: v(minX, minY, minZ)},
		// Top face
		shapes.Segment{Start: v(minX, maxY, minZ), End: v(maxX, maxY, minZ)},
		shapes.Segment{Start: v(maxX, maxY, minZ), End: v(maxX, maxY, maxZ)},
		shapes.Segment{Start: v(maxX, maxY, maxZ), End: v(minX, maxY, maxZ)},
		shapes.Segment{Start: v(minX, maxY, maxZ), End: v(minX, maxY, minZ)},
		// Vertical edges
		shapes.Segment{Start: v(minX, minY, minZ), End: v(minX, maxY, minZ)},
		shapes.Segment{Start: v(maxX, minY, minZ), End: v(maxX, maxY, minZ)},
		shapes.Segment{Start: v(maxX, minY, maxZ), End: v(maxX, maxY, maxZ)},
		shapes.Segment{Start: v(minX, minY, maxZ), End: v(minX, maxY, maxZ)},
	)
}
