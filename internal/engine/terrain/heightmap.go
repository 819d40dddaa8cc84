package terrain

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// NewHeightField creates a zeroed height field with the given side length.
func NewHeightField(size int) *HeightField {
	if size < 0 {
		size = 0
	}
	return &HeightField{
		Size:    size,
		Heights: make([]float32, size*size),
	}
}

// Index returns the flat buffer index of lattice point (x, z).
func (h *HeightField) Index(x, z int) int {
	return x*h.Size + z
}

// At returns the elevation at lattice point (x, z).
func (h *HeightField) At(x, z int) float32 {
	return h.Heights[h.Index(x, z)]
}

// Set stores the elevation at lattice point (x, z).
func (h *HeightField) Set(x, z int, y float32) {
	h.Heights[h.Index(x, z)] = y
}

// Clone returns a deep copy of the height field.
func (h *HeightField) Clone() *HeightField {
	heights := make([]float32, len(h.Heights))
	copy(heights, h.Heights)
	return &HeightField{Size: h.Size, Heights: heights}
}

// MinMax returns the lowest and highest elevation in the field.
func (h *HeightField) MinMax() (lo, hi float32) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	lo, hi = h.Heights[0], h.Heights[0]
	for _, y := range h.Heights[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return lo, hi
}

// Sampler assigns a base elevation to a lattice point.
type Sampler interface {
	Sample(x, z int) float32
}

// SampleHeightField builds a height field by sampling every lattice point
// in row-major order.
func SampleHeightField(size int, s Sampler) *HeightField {
	h := NewHeightField(size)
	for x := range h.Size {
		for z := range h.Size {
			h.Set(x, z, s.Sample(x, z))
		}
	}
	return h
}

// FlatSampler places every point at sea level.
type FlatSampler struct {
	SeaLevel float32
}

// Sample implements Sampler.
func (s FlatSampler) Sample(x, z int) float32 {
	return s.SeaLevel
}

// UniformSampler draws each point independently from [Min, Max).
type UniformSampler struct {
	Min  float32
	Max  float32
	Rand *rand.Rand
}

// Sample implements Sampler.
func (s UniformSampler) Sample(x, z int) float32 {
	return s.Min + s.Rand.Float32()*(s.Max-s.Min)
}

// SimplexSampler produces spatially correlated elevations from OpenSimplex noise.
type SimplexSampler struct {
	Noise     opensimplex.Noise32
	Frequency float32
	Amplitude float32
	Offset    float32
}

// NewSimplexSampler seeds a normalized noise source. Output lies in
// [offset, offset+amplitude].
func NewSimplexSampler(seed int64, frequency, amplitude, offset float32) *SimplexSampler {
	return &SimplexSampler{
		Noise:     opensimplex.NewNormalized32(seed),
		Frequency: frequency,
		Amplitude: amplitude,
		Offset:    offset,
	}
}

// Sample implements Sampler.
func (s *SimplexSampler) Sample(x, z int) float32 {
	n := s.Noise.Eval2(float32(x)*s.Frequency, float32(z)*s.Frequency)
	return s.Offset + s.Amplitude*n
}
