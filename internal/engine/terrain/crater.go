package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidRadiusRange is returned for a radius range with min > max or min <= 0.
	ErrInvalidRadiusRange = errors.New("invalid crater radius range")
	// ErrZeroDepth is returned for a crater class with zero depth.
	ErrZeroDepth = errors.New("crater depth must be non-zero")
	// ErrNegativeCount is returned for a crater class with a negative count.
	ErrNegativeCount = errors.New("crater count must not be negative")
)

// Validate checks that the class can produce well-formed craters.
func (c CraterClass) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%s craters: %w (%d)", c.Name, ErrNegativeCount, c.Count)
	}
	if c.RadiusMin <= 0 || c.RadiusMin > c.RadiusMax {
		return fmt.Errorf("%s craters: %w [%g, %g)", c.Name, ErrInvalidRadiusRange, c.RadiusMin, c.RadiusMax)
	}
	if c.Depth == 0 {
		return fmt.Errorf("%s craters: %w", c.Name, ErrZeroDepth)
	}
	return nil
}

// GenerateCraters draws the crater field for a grid of the given side length.
// Centers are uniform over [0, size) on both axes, independent of the radius,
// so craters near the edges are clipped by the grid.
func GenerateCraters(size int, rng *rand.Rand, classes ...CraterClass) ([]Crater, error) {
	total := 0
	for _, class := range classes {
		if err := class.Validate(); err != nil {
			return nil, err
		}
		total += class.Count
	}

	extent := float32(size)
	craters := make([]Crater, 0, total)
	for _, class := range classes {
		for range class.Count {
			craters = append(craters, Crater{
				CenterX: rng.Float32() * extent,
				CenterZ: rng.Float32() * extent,
				Radius:  class.RadiusMin + rng.Float32()*(class.RadiusMax-class.RadiusMin),
				Depth:   class.Depth,
			})
		}
	}
	return craters, nil
}

// Distance returns the planar distance from the crater center to (x, z).
func (c Crater) Distance(x, z float32) float32 {
	dx := float64(x - c.CenterX)
	dz := float64(z - c.CenterZ)
	return float32(math.Sqrt(dx*dx + dz*dz))
}

// Contribution returns the crater elevation at (x, z). The bool is false when
// the point lies on or outside the rim.
//
// The profile is a parabolic bowl: 0 at the rim, -radius²/depth at the center.
func (c Crater) Contribution(x, z float32) (float32, bool) {
	d := c.Distance(x, z)
	if d >= c.Radius {
		return 0, false
	}
	return ((d + c.Radius) * (d - c.Radius)) / c.Depth, true
}

// Carve lowers the height field in place with every crater. Each point keeps
// the minimum of its current elevation and all covering craters, so the result
// does not depend on crater order. Returns the number of lattice points lowered.
func Carve(h *HeightField, craters []Crater) int {
	lowered := make(map[int]struct{})
	for _, c := range craters {
		// Points outside the bounding square are farther than the radius.
		x0, x1 := clampRange(c.CenterX, c.Radius, h.Size)
		z0, z1 := clampRange(c.CenterZ, c.Radius, h.Size)
		for x := x0; x <= x1; x++ {
			for z := z0; z <= z1; z++ {
				y, ok := c.Contribution(float32(x), float32(z))
				if !ok {
					continue
				}
				idx := h.Index(x, z)
				if y < h.Heights[idx] {
					h.Heights[idx] = y
					lowered[idx] = struct{}{}
				}
			}
		}
	}
	return len(lowered)
}

// clampRange returns the inclusive lattice range [lo, hi] covered by
// center±radius within a grid of side size. hi < lo when nothing is covered.
func clampRange(center, radius float32, size int) (lo, hi int) {
	lo = int(math.Ceil(float64(center) - float64(radius)))
	hi = int(math.Floor(float64(center) + float64(radius)))
	if lo < 0 {
		lo = 0
	}
	if hi > size-1 {
		hi = size - 1
	}
	return lo, hi
}
