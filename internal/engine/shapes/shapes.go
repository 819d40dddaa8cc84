// Package shapes builds simple primitive geometry for the example scenes.
package shapes

import (
	gomath "math"

	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// Mesh is an indexed triangle mesh with per-vertex normals.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
}

// Topology selects how line vertices are connected.
type Topology int

const (
	// LineList pairs vertices into independent segments.
	LineList Topology = iota
	// LineStrip connects each vertex to the next.
	LineStrip
)

// Lines is a polyline or set of segments.
type Lines struct {
	Topology Topology
	Points   [][3]float32
}

// Segment is one line from Start to End.
type Segment struct {
	Start, End math.Vec3
}

// NewLineList flattens segments into a line list.
func NewLineList(segments ...Segment) Lines {
	points := make([][3]float32, 0, 2*len(segments))
	for _, s := range segments {
		points = append(points, s.Start.Array(), s.End.Array())
	}
	return Lines{Topology: LineList, Points: points}
}

// NewLineStrip connects the points in order.
func NewLineStrip(points ...math.Vec3) Lines {
	out := make([][3]float32, len(points))
	for i, p := range points {
		out[i] = p.Array()
	}
	return Lines{Topology: LineStrip, Points: out}
}

// SegmentCount returns the number of drawn segments.
func (l Lines) SegmentCount() int {
	switch l.Topology {
	case LineStrip:
		return max(len(l.Points)-1, 0)
	default:
		return len(l.Points) / 2
	}
}

// cubeFaces lists each face as its normal and four corners in
// counter-clockwise order seen from outside, on a unit cube centred at the origin.
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

// Cube builds an axis-aligned cube with the given edge length, centred at the
// origin. Faces do not share vertices so each keeps a flat normal.
func Cube(size float32) *Mesh {
	half := size / 2
	m := &Mesh{
		Positions: make([][3]float32, 0, 24),
		Normals:   make([][3]float32, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}

	for _, face := range cubeFaces {
		base := uint32(len(m.Positions))
		for _, c := range face.corners {
			m.Positions = append(m.Positions, [3]float32{c[0] * half, c[1] * half, c[2] * half})
			m.Normals = append(m.Normals, face.normal)
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// Circle builds a filled disc in the XY plane facing +Z, as a triangle fan
// around a centre vertex.
func Circle(radius float32, segments int) *Mesh {
	segments = max(segments, 3)
	m := &Mesh{
		Positions: make([][3]float32, 0, segments+1),
		Normals:   make([][3]float32, 0, segments+1),
		Indices:   make([]uint32, 0, 3*segments),
	}

	normal := [3]float32{0, 0, 1}
	m.Positions = append(m.Positions, [3]float32{0, 0, 0})
	m.Normals = append(m.Normals, normal)

	for i := range segments {
		angle := 2 * gomath.Pi * float64(i) / float64(segments)
		m.Positions = append(m.Positions, [3]float32{
			radius * float32(gomath.Cos(angle)),
			radius * float32(gomath.Sin(angle)),
			0,
		})
		m.Normals = append(m.Normals, normal)
	}

	for i := range uint32(segments) {
		next := (i+1)%uint32(segments) + 1
		m.Indices = append(m.Indices, 0, i+1, next)
	}
	return m
}
