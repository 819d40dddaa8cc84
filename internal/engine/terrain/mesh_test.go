package terrain

import (
	"testing"
)

func TestBuildMesh_Counts(t *testing.T) {
	for _, n := range []int{2, 3, 4, 10, 100} {
		mesh := BuildMesh(NewHeightField(n))

		if len(mesh.Positions) != n*n {
			t.Errorf("N=%d: got %d positions, want %d", n, len(mesh.Positions), n*n)
		}
		if len(mesh.Normals) != n*n {
			t.Errorf("N=%d: got %d normals, want %d", n, len(mesh.Normals), n*n)
		}
		want := 6 * (n - 1) * (n - 1)
		if len(mesh.Indices) != want {
			t.Errorf("N=%d: got %d indices, want %d", n, len(mesh.Indices), want)
		}
		if mesh.TriangleCount() != 2*(n-1)*(n-1) {
			t.Errorf("N=%d: got %d triangles, want %d", n, mesh.TriangleCount(), 2*(n-1)*(n-1))
		}
	}
}

func TestBuildMesh_Winding(t *testing.T) {
	mesh := BuildMesh(NewHeightField(3))

	// Cell (0,0) on a 3x3 grid
	triA := mesh.Indices[0:3]
	triB := mesh.Indices[3:6]

	if triA[0] != 0 || triA[1] != 1 || triA[2] != 3 {
		t.Errorf("triangle A = %v, want [0 1 3]", triA)
	}
	if triB[0] != 1 || triB[1] != 4 || triB[2] != 3 {
		t.Errorf("triangle B = %v, want [1 4 3]", triB)
	}

	// Cell (1,1) starts at index 4
	last := mesh.Indices[len(mesh.Indices)-6:]
	want := []uint32{4, 5, 7, 5, 8, 7}
	for i := range want {
		if last[i] != want[i] {
			t.Errorf("cell (1,1) indices = %v, want %v", last, want)
			break
		}
	}
}

func TestBuildMesh_FrontFacesUp(t *testing.T) {
	mesh := BuildMesh(NewHeightField(4))

	for i := 0; i < len(mesh.Indices); i += 3 {
		p0 := mesh.Positions[mesh.Indices[i]]
		p1 := mesh.Positions[mesh.Indices[i+1]]
		p2 := mesh.Positions[mesh.Indices[i+2]]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		if n := cross(e1, e2); n[1] <= 0 {
			t.Fatalf("triangle %d faces down: normal %v", i/3, n)
		}
	}
}

func TestBuildMesh_Positions(t *testing.T) {
	h := NewHeightField(3)
	h.Set(2, 1, -1.5)
	h.Set(0, 2, 0.25)

	mesh := BuildMesh(h)

	tests := []struct {
		idx  int
		want [3]float32
	}{
		{0, [3]float32{0, 0, 0}},
		{2, [3]float32{0, 0.25, 2}},
		{7, [3]float32{2, -1.5, 1}},
		{8, [3]float32{2, 0, 2}},
	}
	for _, tt := range tests {
		if got := mesh.Positions[tt.idx]; got != tt.want {
			t.Errorf("position %d = %v, want %v", tt.idx, got, tt.want)
		}
	}

	for i, n := range mesh.Normals {
		if n != Up {
			t.Fatalf("normal %d = %v, want %v", i, n, Up)
		}
	}

	if mesh.Bounds.Min != [3]float32{0, -1.5, 0} {
		t.Errorf("bounds min = %v", mesh.Bounds.Min)
	}
	if mesh.Bounds.Max != [3]float32{2, 0.25, 2} {
		t.Errorf("bounds max = %v", mesh.Bounds.Max)
	}
}

func TestBuildMesh_Degenerate(t *testing.T) {
	mesh := BuildMesh(NewHeightField(1))

	if len(mesh.Positions) != 1 || len(mesh.Normals) != 1 {
		t.Errorf("got %d positions, %d normals, want 1 and 1", len(mesh.Positions), len(mesh.Normals))
	}
	if len(mesh.Indices) != 0 {
		t.Errorf("got %d indices, want 0", len(mesh.Indices))
	}

	empty := BuildMesh(NewHeightField(0))
	if len(empty.Positions) != 0 || len(empty.Indices) != 0 {
		t.Error("empty field should produce an empty mesh")
	}
}

func TestSurfaceNormals(t *testing.T) {
	// Flat field: surface normals must stay up
	flat := BuildMesh(NewHeightField(4))
	SurfaceNormals(flat)
	for i, n := range flat.Normals {
		if !approxVec(n, Up, 1e-6) {
			t.Fatalf("flat normal %d = %v, want up", i, n)
		}
	}

	// Slope rising along +x tilts normals toward -x
	h := NewHeightField(3)
	for x := range 3 {
		for z := range 3 {
			h.Set(x, z, float32(x))
		}
	}
	slope := BuildMesh(h)
	SurfaceNormals(slope)
	n := slope.Normals[h.Index(1, 1)]
	if n[0] >= 0 || n[1] <= 0 {
		t.Errorf("slope normal = %v, want negative x and positive y", n)
	}
	if !approxf(n[0], -n[1], 1e-5) {
		t.Errorf("45 degree slope normal = %v, want x == -y", n)
	}
}

func approxf(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approxVec(a, b [3]float32, eps float32) bool {
	return approxf(a[0], b[0], eps) && approxf(a[1], b[1], eps) && approxf(a[2], b[2], eps)
}
