package grids

import (
	"errors"
	"math"
	"testing"
)

// TestPlatonic_Counts checks V/E/F for every built-in against the
// classical values, plus Euler's formula V-E+F=2 on the built topology.
func TestPlatonic_Counts(t *testing.T) {
	cases := []struct {
		name    Name
		v, e, f int
	}{
		{Tetrahedron, 4, 6, 4},
		{Cube, 8, 12, 6},
		{Octahedron, 6, 12, 8},
		{Dodecahedron, 20, 30, 12},
		{Icosahedron, 12, 30, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			g, err := Platonic(tc.name)
			if err != nil {
				t.Fatalf("Platonic(%v): %v", tc.name, err)
			}
			topo, err := g.BuildTopology()
			if err != nil {
				t.Fatalf("BuildTopology: %v", err)
			}
			if got := topo.VertexCount(); got != tc.v {
				t.Errorf("vertices = %d, want %d", got, tc.v)
			}
			if got := topo.EdgeCount(); got != tc.e {
				t.Errorf("edges = %d, want %d", got, tc.e)
			}
			if got := topo.FaceCount(); got != tc.f {
				t.Errorf("faces = %d, want %d", got, tc.f)
			}
			if euler := tc.v - tc.e + tc.f; euler != 2 {
				t.Errorf("V-E+F = %d, want 2", euler)
			}
		})
	}
}

// TestPlatonic_UnitVertices: every built-in sits on the unit sphere.
func TestPlatonic_UnitVertices(t *testing.T) {
	for _, n := range Names() {
		g, err := Platonic(n)
		if err != nil {
			t.Fatalf("Platonic(%v): %v", n, err)
		}
		for i, v := range g.Vertices {
			r := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
			if math.Abs(r-1) > 1e-9 {
				t.Errorf("%v vertex %d: |v| = %g, want 1", n, i, r)
			}
		}
	}
}

// TestDodecahedron_Pentagons: the dual derivation must yield twelve
// pentagons meeting three per vertex.
func TestDodecahedron_Pentagons(t *testing.T) {
	g, err := Platonic(Dodecahedron)
	if err != nil {
		t.Fatalf("Platonic(Dodecahedron): %v", err)
	}
	if len(g.Faces) != 12 {
		t.Fatalf("faces = %d, want 12", len(g.Faces))
	}
	for i, f := range g.Faces {
		if len(f) != 5 {
			t.Errorf("face %d has %d vertices, want 5", i, len(f))
		}
	}

	topo, err := g.BuildTopology()
	if err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	for _, vid := range topo.VertexIDs() {
		v, err := topo.Vertex(vid)
		if err != nil {
			t.Fatalf("Vertex(%d): %v", vid, err)
		}
		if len(v.Edges) != 3 || len(v.Faces) != 3 {
			t.Errorf("vertex %d: degree %d, faces %d, want 3 and 3",
				vid, len(v.Edges), len(v.Faces))
		}
	}
}

// TestPlatonic_Copies: mutating one copy must not leak into the next.
func TestPlatonic_Copies(t *testing.T) {
	a, err := Platonic(Cube)
	if err != nil {
		t.Fatalf("Platonic(Cube): %v", err)
	}
	a.Vertices[0] = [3]float64{99, 99, 99}
	a.Faces[0][0] = 99

	b, err := Platonic(Cube)
	if err != nil {
		t.Fatalf("Platonic(Cube): %v", err)
	}
	if b.Vertices[0] == (a.Vertices[0]) {
		t.Error("vertex mutation leaked between copies")
	}
	if b.Faces[0][0] == 99 {
		t.Error("face mutation leaked between copies")
	}
}

// TestByID resolves machine identifiers and rejects unknown ones.
func TestByID(t *testing.T) {
	g, err := ByID("icosahedron")
	if err != nil {
		t.Fatalf("ByID(icosahedron): %v", err)
	}
	if g.GridName != "Icosahedron" {
		t.Errorf("GridName = %q, want Icosahedron", g.GridName)
	}

	if _, err := ByID("teapot"); !errors.Is(err, ErrUnknownGrid) {
		t.Errorf("ByID(teapot) error = %v, want ErrUnknownGrid", err)
	}
}
