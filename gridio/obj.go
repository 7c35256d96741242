package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for OBJ conversion.
var (
	// ErrMalformedOBJ indicates an unparseable vertex or face line.
	ErrMalformedOBJ = errors.New("gridio: malformed OBJ")

	// ErrNotClosed indicates the mesh fails Euler's formula F+V = E+2,
	// i.e. it is not a single closed polyhedral surface.
	ErrNotClosed = errors.New("gridio: mesh is not a closed surface")
)

// ConvertOBJ reads a polyHedronisme OBJ export and produces a Grid.
//
// Handled line types: "o"/"g" set the grid name, "v" adds a vertex
// (coordinates rounded to 3 decimals for compact output), "f" adds a
// face of 1-based vertex indices ("v/vt/vn" clusters use only the first
// component). Comments, blank lines, and other directives are ignored.
//
// Every face contributes its side count in half-edges; a closed manifold
// pairs them all up, so an odd total or a failed Euler check rejects the
// input with ErrNotClosed.
func ConvertOBJ(r io.Reader) (*Grid, error) {
	g := &Grid{GridID: "unknown", GridName: "unknown"}
	halfEdges := 0

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// comment or blank
		case strings.HasPrefix(line, "o ") || strings.HasPrefix(line, "g "):
			if fields := strings.Fields(line); len(fields) > 1 {
				g.GridID = fields[1]
				g.GridName = fields[1]
			}
		case strings.HasPrefix(line, "v "):
			v, err := parseOBJVertex(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.Vertices = append(g.Vertices, v)
		case strings.HasPrefix(line, "f ") || line == "f":
			face, err := parseOBJFace(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.Faces = append(g.Faces, face)
			halfEdges += len(face)
		default:
			// vt/vn/vp/s/usemtl and friends carry no topology
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: reading OBJ: %w", err)
	}

	f, v := len(g.Faces), len(g.Vertices)
	if halfEdges%2 != 0 || f+v != halfEdges/2+2 {
		return nil, fmt.Errorf("F + V != E + 2: %d + %d != %d + 2: %w", f, v, halfEdges/2, ErrNotClosed)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// parseOBJVertex reads "v x y z", rounding to 3 decimal places.
func parseOBJVertex(line string) ([3]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return [3]float64{}, fmt.Errorf("vertex line %q: %w", line, ErrMalformedOBJ)
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("vertex line %q: %w", line, ErrMalformedOBJ)
		}
		v[i] = math.Round(x*1000) / 1000
	}

	return v, nil
}

// parseOBJFace reads "f a/at/an b/bt/bn ...", converting 1-based vertex
// indices to 0-based.
func parseOBJFace(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("face line %q has too few vertices: %w", line, ErrMalformedOBJ)
	}
	face := make([]int, 0, len(fields)-1)
	for _, cluster := range fields[1:] {
		first, _, _ := strings.Cut(cluster, "/")
		idx, err := strconv.Atoi(first)
		if err != nil || idx < 1 {
			return nil, fmt.Errorf("face index %q: %w", cluster, ErrMalformedOBJ)
		}
		face = append(face, idx-1)
	}

	return face, nil
}
