// Package terrain provides procedural heightmap generation, crater carving and
// terrain mesh building.
package terrain

// HeightField is a square grid of elevations stored row-major ([x*Size+z]).
type HeightField struct {
	Size    int       // Side length of the grid in lattice points
	Heights []float32 // Elevation per lattice point
}

// Crater is a circular parabolic depression.
type Crater struct {
	CenterX float32
	CenterZ float32
	Radius  float32
	Depth   float32 // Divisor of the falloff, controls steepness
}

// CraterClass describes a family of craters sharing a radius range and depth.
type CraterClass struct {
	Name      string
	Count     int
	RadiusMin float32 // Inclusive
	RadiusMax float32 // Exclusive unless equal to RadiusMin
	Depth     float32
}

// Mesh holds the terrain triangle mesh ready for GPU upload.
// Positions and Normals have one entry per lattice point.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Up is the constant normal assigned to every terrain vertex.
var Up = [3]float32{0, 1, 0}
