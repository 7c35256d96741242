// Package grids ships the five Platonic solids as ready-to-load grids.
//
// Each grid carries canonical unit-scale coordinates and a consistent
// face list, in the same wire format the JSON loader produces, so
// built-ins and downloaded grids flow through identical code. The
// tetrahedron, cube, octahedron, and icosahedron are written out
// explicitly; the dodecahedron is derived on demand as the dual of the
// icosahedron (face centroids become vertices, the face fan around each
// vertex becomes a pentagon).
package grids

import (
	"errors"
	"fmt"
	"math"

	"github.com/huttarl/slitherlink3D/gridio"
	"github.com/huttarl/slitherlink3D/topology"
)

// ErrUnknownGrid indicates a name or ID with no built-in grid.
var ErrUnknownGrid = errors.New("grids: unknown grid name")

// Name enumerates the built-in Platonic grids.
type Name int

const (
	Tetrahedron Name = iota // V=4,  E=6,  F=4
	Cube                    // V=8,  E=12, F=6
	Octahedron              // V=6,  E=12, F=8
	Dodecahedron            // V=20, E=30, F=12
	Icosahedron             // V=12, E=30, F=20
)

// String returns the grid's display name.
func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// id returns the machine identifier used as GridID.
func (n Name) id() string {
	switch n {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return ""
	}
}

// Names lists every built-in grid in stable order.
func Names() []Name {
	return []Name{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
}

// Platonic returns a fresh copy of the named grid. Copies are
// independent: mutating the result (e.g. Normalize) never affects
// later calls.
func Platonic(n Name) (*gridio.Grid, error) {
	var g *gridio.Grid
	switch n {
	case Tetrahedron:
		g = tetrahedron()
	case Cube:
		g = cube()
	case Octahedron:
		g = octahedron()
	case Icosahedron:
		g = icosahedron()
	case Dodecahedron:
		var err error
		if g, err = dodecahedron(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%d: %w", n, ErrUnknownGrid)
	}

	return g, nil
}

// ByID resolves a machine identifier ("cube", "icosahedron", ...) to a
// built-in grid.
func ByID(id string) (*gridio.Grid, error) {
	for _, n := range Names() {
		if n.id() == id {
			return Platonic(n)
		}
	}

	return nil, fmt.Errorf("%q: %w", id, ErrUnknownGrid)
}

// tetrahedron uses alternating cube corners, scaled to unit distance.
func tetrahedron() *gridio.Grid {
	s := 1 / math.Sqrt(3)

	return &gridio.Grid{
		GridID:   Tetrahedron.id(),
		GridName: Tetrahedron.String(),
		Vertices: [][3]float64{
			{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s},
		},
		Faces: [][]int{
			{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
		},
	}
}

// cube: vertices 0-3 are the bottom square, 4-7 the top square above it.
func cube() *gridio.Grid {
	s := 1 / math.Sqrt(3)

	return &gridio.Grid{
		GridID:   Cube.id(),
		GridName: Cube.String(),
		Vertices: [][3]float64{
			{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
			{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
		},
		Faces: [][]int{
			{0, 1, 2, 3}, // bottom
			{4, 7, 6, 5}, // top
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
}

// octahedron: vertices 0 and 1 are the poles, 2-5 the equator with 2/3
// and 4/5 as opposite pairs.
func octahedron() *gridio.Grid {
	return &gridio.Grid{
		GridID:   Octahedron.id(),
		GridName: Octahedron.String(),
		Vertices: [][3]float64{
			{0, 0, 1}, {0, 0, -1},
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
		},
		Faces: [][]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	}
}

// icosahedron: top pole 0, top ring 1-5, bottom ring 6-10 (offset half a
// step), bottom pole 11. Ring vertex i of the top ring neighbors bottom
// ring vertices i and i+1 (mod 5), which fixes the 20-triangle face list.
func icosahedron() *gridio.Grid {
	const ringZ = 0.4472135954999579  // 1/sqrt(5)
	const ringR = 0.8944271909999159  // 2/sqrt(5)
	verts := make([][3]float64, 12)
	verts[0] = [3]float64{0, 0, 1}
	verts[11] = [3]float64{0, 0, -1}
	for i := 0; i < 5; i++ {
		top := 2 * math.Pi * float64(i) / 5
		bot := top - math.Pi/5
		verts[1+i] = [3]float64{ringR * math.Cos(top), ringR * math.Sin(top), ringZ}
		verts[6+i] = [3]float64{ringR * math.Cos(bot), ringR * math.Sin(bot), -ringZ}
	}

	faces := make([][]int, 0, 20)
	for i := 0; i < 5; i++ {
		t1, t2 := 1+i, 1+(i+1)%5         // consecutive top-ring vertices
		b1, b2 := 6+i, 6+(i+1)%5         // bottom-ring vertices below them
		faces = append(faces, []int{0, t1, t2})    // top cap
		faces = append(faces, []int{t1, t2, b2})   // upper middle band
		faces = append(faces, []int{b1, b2, t1})   // lower middle band
		faces = append(faces, []int{b1, 11, b2})   // bottom cap
	}

	return &gridio.Grid{
		GridID:   Icosahedron.id(),
		GridName: Icosahedron.String(),
		Vertices: verts,
		Faces:    faces,
	}
}

// dodecahedron derives the dual of the icosahedron: one vertex per
// icosahedron face at its normalized centroid, one pentagonal face per
// icosahedron vertex formed by the fan of faces around it, traced in
// cyclic order by walking shared edges.
func dodecahedron() (*gridio.Grid, error) {
	ico := icosahedron()
	topo, err := ico.BuildTopology()
	if err != nil {
		return nil, fmt.Errorf("grids: icosahedron self-check: %w", err)
	}

	verts := make([][3]float64, len(ico.Faces))
	for i, face := range ico.Faces {
		var c [3]float64
		for _, vi := range face {
			c[0] += ico.Vertices[vi][0]
			c[1] += ico.Vertices[vi][1]
			c[2] += ico.Vertices[vi][2]
		}
		norm := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
		verts[i] = [3]float64{c[0] / norm, c[1] / norm, c[2] / norm}
	}

	faces := make([][]int, 0, topo.VertexCount())
	for _, vid := range topo.VertexIDs() {
		fan, err := faceFan(topo, vid)
		if err != nil {
			return nil, err
		}
		faces = append(faces, fan)
	}

	return &gridio.Grid{
		GridID:   Dodecahedron.id(),
		GridName: Dodecahedron.String(),
		Vertices: verts,
		Faces:    faces,
	}, nil
}

// faceFan orders the faces incident to a vertex cyclically, starting
// from the lowest face ID and stepping across shared edges. The walk is
// deterministic: the first step takes the lower-numbered neighbor.
func faceFan(topo *topology.Topology, vid int) ([]int, error) {
	v, err := topo.Vertex(vid)
	if err != nil {
		return nil, fmt.Errorf("grids: dual derivation: %w", err)
	}
	start := -1
	for fid := range v.Faces {
		if start < 0 || fid < start {
			start = fid
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("grids: vertex %d borders no faces: %w", vid, topology.ErrFaceNotFound)
	}

	fan := []int{start}
	visited := map[int]struct{}{start: {}}
	current := start
	for len(fan) < len(v.Faces) {
		next := -1
		for _, cand := range fanNeighbors(topo, current, vid) {
			if _, seen := visited[cand]; seen {
				continue
			}
			if next < 0 || cand < next {
				next = cand
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("grids: face fan around vertex %d is not closed: %w",
				vid, topology.ErrFaceNotFound)
		}
		fan = append(fan, next)
		visited[next] = struct{}{}
		current = next
	}

	return fan, nil
}

// fanNeighbors lists faces sharing an edge-through-vid with face fid.
func fanNeighbors(topo *topology.Topology, fid, vid int) []int {
	f, err := topo.Face(fid)
	if err != nil {
		return nil
	}
	var out []int
	for _, eid := range f.Edges {
		e, err := topo.Edge(eid)
		if err != nil || (e.V1 != vid && e.V2 != vid) {
			continue
		}
		for other := range e.Faces {
			if other != fid {
				out = append(out, other)
			}
		}
	}

	return out
}
