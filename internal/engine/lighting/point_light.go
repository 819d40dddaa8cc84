// Package lighting provides point light support for scene rendering.
package lighting

import (
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// PointLight represents an omnidirectional light source for GPU upload.
type PointLight struct {
	Position  math.Vec3  // World position
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // Distance at which the light fades to zero
	Intensity float32    // Light intensity multiplier
}

// NewPointLight creates a white light.
func NewPointLight(position math.Vec3, intensity, lightRange float32) PointLight {
	return PointLight{
		Position:  position,
		Color:     [3]float32{1, 1, 1},
		Range:     lightRange,
		Intensity: intensity,
	}
}

// Attenuation returns the intensity-scaled falloff at distance. It matches
// the lit fragment shader: inverse square, windowed to zero at Range.
func (l PointLight) Attenuation(distance float32) float32 {
	if l.Range <= 0 || distance >= l.Range {
		return 0
	}
	ratio := distance / l.Range
	window := 1 - ratio*ratio*ratio*ratio
	window = max(0, min(1, window))
	return l.Intensity * window * window / (distance*distance + 1)
}

// Diffuse returns the Lambert term times attenuation for a surface point with
// unit normal n.
func (l PointLight) Diffuse(point, n math.Vec3) float32 {
	toLight := l.Position.Sub(point)
	distance := toLight.Length()
	if distance < 0.0001 {
		return l.Attenuation(0)
	}
	lambert := max(0, n.Dot(toLight.Scale(1/distance)))
	return lambert * l.Attenuation(distance)
}
