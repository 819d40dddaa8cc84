package terrain

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Base elevation policies.
const (
	BaseFlat    = "flat"
	BaseUniform = "uniform"
	BaseSimplex = "simplex"
)

// Normal modes.
const (
	NormalsUp      = "up"
	NormalsSurface = "surface"
)

var (
	// ErrGridTooSmall is returned when the grid cannot hold a single cell.
	ErrGridTooSmall = errors.New("terrain side length must be at least 2")
	// ErrUnknownBase is returned for an unrecognized base elevation policy.
	ErrUnknownBase = errors.New("unknown base elevation policy")
	// ErrInvalidUniformRange is returned for a uniform range with min > max.
	ErrInvalidUniformRange = errors.New("invalid uniform elevation range")
	// ErrUnknownNormals is returned for an unrecognized normal mode.
	ErrUnknownNormals = errors.New("unknown normal mode")
)

// Options configures a terrain generation run.
type Options struct {
	SideLength int
	Base       string
	SeaLevel   float32

	UniformMin float32
	UniformMax float32

	NoiseSeed      int64
	NoiseFrequency float32
	NoiseAmplitude float32

	Small CraterClass
	Large CraterClass

	Normals string
}

// DefaultOptions returns the crater terrain configuration: a flat sea-level
// plane of 100x100 points carved by five small and two large craters.
func DefaultOptions() Options {
	return Options{
		SideLength:     100,
		Base:           BaseFlat,
		SeaLevel:       0,
		UniformMin:     0,
		UniformMax:     1,
		NoiseFrequency: 0.05,
		NoiseAmplitude: 4,
		Small: CraterClass{
			Name:      "small",
			Count:     5,
			RadiusMin: 2,
			RadiusMax: 5,
			Depth:     10,
		},
		Large: CraterClass{
			Name:      "large",
			Count:     2,
			RadiusMin: 10,
			RadiusMax: 20,
			Depth:     10,
		},
		Normals: NormalsUp,
	}
}

// Validate rejects configurations that would produce degenerate geometry.
func (o Options) Validate() error {
	if o.SideLength < 2 {
		return fmt.Errorf("%w (got %d)", ErrGridTooSmall, o.SideLength)
	}
	switch o.Base {
	case BaseFlat, BaseSimplex:
	case BaseUniform:
		if o.UniformMin > o.UniformMax {
			return fmt.Errorf("%w [%g, %g)", ErrInvalidUniformRange, o.UniformMin, o.UniformMax)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownBase, o.Base)
	}
	switch o.Normals {
	case NormalsUp, NormalsSurface:
	default:
		return fmt.Errorf("%w %q", ErrUnknownNormals, o.Normals)
	}
	if err := o.Small.Validate(); err != nil {
		return err
	}
	return o.Large.Validate()
}

// Result holds every stage output of a generation run.
type Result struct {
	Heights *HeightField
	Craters []Crater
	Lowered int // Lattice points lowered by craters
	Mesh    *Mesh
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate runs the full pipeline: base sampling, crater placement, carving
// and mesh building. All randomness comes from rng.
func Generate(opts Options, rng *rand.Rand) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	heights := SampleHeightField(opts.SideLength, opts.sampler(rng))

	craters, err := GenerateCraters(opts.SideLength, rng, opts.Small, opts.Large)
	if err != nil {
		return nil, fmt.Errorf("generate craters: %w", err)
	}

	lowered := Carve(heights, craters)

	mesh := BuildMesh(heights)
	if opts.Normals == NormalsSurface {
		SurfaceNormals(mesh)
	}

	return &Result{
		Heights: heights,
		Craters: craters,
		Lowered: lowered,
		Mesh:    mesh,
	}, nil
}

func (o Options) sampler(rng *rand.Rand) Sampler {
	switch o.Base {
	case BaseUniform:
		return UniformSampler{Min: o.UniformMin, Max: o.UniformMax, Rand: rng}
	case BaseSimplex:
		return NewSimplexSampler(o.NoiseSeed, o.NoiseFrequency, o.NoiseAmplitude, o.SeaLevel)
	default:
		return FlatSampler{SeaLevel: o.SeaLevel}
	}
}
