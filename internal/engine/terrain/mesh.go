package terrain

import "math"

// BuildMesh creates a terrain mesh from a finished height field.
// Vertex x*N+z sits at (x, height, z) with unit spacing and a constant up normal.
// Each grid cell contributes two counter-clockwise triangles. A field with
// fewer than two points per side yields positions and normals but no indices.
func BuildMesh(h *HeightField) *Mesh {
	n := h.Size
	count := n * n

	mesh := &Mesh{
		Positions: make([][3]float32, count),
		Normals:   make([][3]float32, count),
	}

	// Initialize bounds
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for x := range n {
		for z := range n {
			idx := h.Index(x, z)
			p := [3]float32{float32(x), h.Heights[idx], float32(z)}
			mesh.Positions[idx] = p
			mesh.Normals[idx] = Up
			updateBounds(&bounds, p)
		}
	}
	if count == 0 {
		bounds = Bounds{}
	}
	mesh.Bounds = bounds

	if n < 2 {
		return mesh
	}

	mesh.Indices = make([]uint32, 0, 6*(n-1)*(n-1))
	stride := uint32(n)
	for x := range n - 1 {
		for z := range n - 1 {
			idx := uint32(x*n + z)
			mesh.Indices = append(mesh.Indices,
				idx, idx+1, idx+stride,
				idx+1, idx+1+stride, idx+stride,
			)
		}
	}

	return mesh
}

// TriangleCount returns the number of triangles described by the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// SurfaceNormals replaces the normals with area-weighted vertex normals derived
// from the triangles. BuildMesh never calls this; it is opt-in shading.
func SurfaceNormals(m *Mesh) {
	sums := make([][3]float32, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0, p1, p2 := m.Positions[a], m.Positions[b], m.Positions[c]

		edge1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		edge2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		// Unnormalized cross product weights by triangle area
		face := cross(edge1, edge2)

		for _, v := range [3]uint32{a, b, c} {
			sums[v][0] += face[0]
			sums[v][1] += face[1]
			sums[v][2] += face[2]
		}
	}

	for i := range m.Normals {
		m.Normals[i] = normalize(sums[i])
	}
}

// Helper functions

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// normalize falls back to Up for degenerate vectors.
func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 0.0001 {
		return Up
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
