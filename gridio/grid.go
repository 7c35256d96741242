// Package gridio reads and writes the external data formats of the game:
// grid JSON (the polyhedral surface), puzzle JSON (clues + reference
// solutions), and the OBJ export format of polyHedronisme, which
// converts into grid JSON.
//
// All decoding is strict: a malformed or incomplete file is rejected
// with a descriptive error before anything touches session state, and
// validation reports every problem found, not just the first.
package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"go.uber.org/multierr"

	"github.com/huttarl/slitherlink3D/topology"
)

// Sentinel errors for grid data validation.
var (
	// ErrBadJSON indicates the input is not syntactically valid JSON.
	ErrBadJSON = errors.New("gridio: malformed JSON")

	// ErrMissingField indicates a required field is absent or empty.
	ErrMissingField = errors.New("gridio: required field missing or empty")

	// ErrTooFewVertices indicates fewer than 4 vertices were supplied.
	ErrTooFewVertices = errors.New("gridio: grid requires at least 4 vertices")

	// ErrTooFewFaces indicates fewer than 4 faces were supplied.
	ErrTooFewFaces = errors.New("gridio: grid requires at least 4 faces")

	// ErrFaceTooSmall indicates a face with fewer than 3 vertex indices.
	ErrFaceTooSmall = errors.New("gridio: face requires at least 3 vertex indices")

	// ErrVertexIndex indicates a face referencing a vertex index outside
	// the vertices array.
	ErrVertexIndex = errors.New("gridio: vertex index out of range")
)

// Grid is the wire format of one polyhedral grid. Array positions become
// vertex and face IDs when the topology is built.
type Grid struct {
	// GridID is the machine identifier; puzzle files must name the same ID.
	GridID string `json:"gridId"`

	// GridName is the user-visible name, e.g. "Dodecahedron".
	GridName string `json:"gridName"`

	// Vertices holds [x,y,z] positions.
	Vertices [][3]float64 `json:"vertices"`

	// Faces holds boundary vertex-index cycles.
	Faces [][]int `json:"faces"`
}

// DecodeGrid parses and validates grid JSON.
func DecodeGrid(r io.Reader) (*Grid, error) {
	var g Grid
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &g, nil
}

// Validate checks the structural requirements of the grid format and
// aggregates every problem found into one error.
func (g *Grid) Validate() error {
	var errs error
	if g.GridID == "" {
		errs = multierr.Append(errs, fmt.Errorf("gridId: %w", ErrMissingField))
	}
	if g.GridName == "" {
		errs = multierr.Append(errs, fmt.Errorf("gridName: %w", ErrMissingField))
	}
	if len(g.Vertices) < 4 {
		errs = multierr.Append(errs, fmt.Errorf("%d vertices: %w", len(g.Vertices), ErrTooFewVertices))
	}
	if len(g.Faces) < 4 {
		errs = multierr.Append(errs, fmt.Errorf("%d faces: %w", len(g.Faces), ErrTooFewFaces))
	}
	for i, face := range g.Faces {
		if len(face) < 3 {
			errs = multierr.Append(errs, fmt.Errorf("face %d has %d indices: %w", i, len(face), ErrFaceTooSmall))
			continue
		}
		for _, v := range face {
			if v < 0 || v >= len(g.Vertices) {
				errs = multierr.Append(errs, fmt.Errorf("face %d references vertex %d of %d: %w",
					i, v, len(g.Vertices), ErrVertexIndex))
			}
		}
	}

	return errs
}

// BuildTopology constructs a topology store from the grid, assigning
// vertex and face IDs by array position.
func (g *Grid) BuildTopology() (*topology.Topology, error) {
	topo := topology.New()
	for i, pos := range g.Vertices {
		if err := topo.AddVertex(i, pos, nil); err != nil {
			return nil, fmt.Errorf("grid %q: %w", g.GridID, err)
		}
	}
	for i, face := range g.Faces {
		if err := topo.AddFace(i, face); err != nil {
			return nil, fmt.Errorf("grid %q: %w", g.GridID, err)
		}
	}

	return topo, nil
}

// Normalize centers the vertices on the origin and scales them so the
// farthest vertex sits at distance 1. Rendering and puzzle logic both
// tolerate any scale; this just gives every grid a uniform footprint.
func (g *Grid) Normalize() {
	if len(g.Vertices) == 0 {
		return
	}
	var cx, cy, cz float64
	for _, v := range g.Vertices {
		cx += v[0]
		cy += v[1]
		cz += v[2]
	}
	n := float64(len(g.Vertices))
	cx, cy, cz = cx/n, cy/n, cz/n

	maxDist := 0.0
	for i := range g.Vertices {
		g.Vertices[i][0] -= cx
		g.Vertices[i][1] -= cy
		g.Vertices[i][2] -= cz
		d := math.Sqrt(g.Vertices[i][0]*g.Vertices[i][0] +
			g.Vertices[i][1]*g.Vertices[i][1] +
			g.Vertices[i][2]*g.Vertices[i][2])
		if d > maxDist {
			maxDist = d
		}
	}
	if maxDist == 0 {
		return
	}
	for i := range g.Vertices {
		g.Vertices[i][0] /= maxDist
		g.Vertices[i][1] /= maxDist
		g.Vertices[i][2] /= maxDist
	}
}

// Encode writes the grid as compact JSON.
func (g *Grid) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)

	return enc.Encode(g)
}
