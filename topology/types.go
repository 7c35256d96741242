// Package topology: central types and sentinel errors.
//
// This file declares Vertex, Edge, Face, the Clue type, and the sentinel
// errors returned by Topology construction and lookup methods.
package topology

import "errors"

// Sentinel errors for topology construction and queries.
var (
	// ErrDuplicateID indicates a vertex or face ID is already registered.
	ErrDuplicateID = errors.New("topology: ID already in use")

	// ErrUnknownVertex indicates an edge or face referenced an unregistered vertex.
	ErrUnknownVertex = errors.New("topology: unknown vertex ID")

	// ErrDegenerateFace indicates a face boundary that is not a simple
	// cycle: fewer than 3 vertices, or a vertex appearing twice.
	ErrDegenerateFace = errors.New("topology: face boundary is not a simple cycle")

	// ErrSelfLoop indicates both endpoints of an edge are the same vertex.
	ErrSelfLoop = errors.New("topology: self-loops not allowed")

	// ErrVertexIDRange indicates a vertex ID cannot be packed into the edge index.
	ErrVertexIDRange = errors.New("topology: vertex ID out of packable range")

	// ErrVertexNotFound indicates a lookup referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("topology: vertex not found")

	// ErrEdgeNotFound indicates a lookup referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("topology: edge not found")

	// ErrFaceNotFound indicates a lookup referenced a non-existent face.
	ErrFaceNotFound = errors.New("topology: face not found")
)

// MaxVertexID is the largest vertex ID the symmetric edge index can pack.
// Two 16-bit IDs are combined into one uint32 key, so IDs above this
// limit are rejected by AddVertex.
const MaxVertexID = 1<<16 - 1

// Clue is a face's required count of loop edges, or NoClue.
type Clue int

// NoClue marks a face that carries no constraint. It matches the -1
// sentinel used by the puzzle JSON format.
const NoClue Clue = -1

// None reports whether the clue is absent.
func (c Clue) None() bool { return c == NoClue }

// Vertex represents one corner of the polyhedron.
//
// Position is carried for geometry consumers (centroids, normals,
// picking); no topology logic depends on it. Edges and Faces are
// incidence sets keyed by ID and grow as the grid is built.
type Vertex struct {
	// ID is the caller-assigned identifier, dense from 0 by convention.
	ID int

	// Position is the 3D location of this vertex.
	Position [3]float64

	// Edges holds IDs of edges incident to this vertex.
	Edges map[int]struct{}

	// Faces holds IDs of faces whose boundary passes through this vertex.
	Faces map[int]struct{}

	// Metadata stores arbitrary user data; the store never inspects it.
	Metadata map[string]interface{}
}

// Edge represents one boundary segment between two faces.
//
// Endpoints are stored canonically with V1 < V2. A manifold closed
// surface gives every edge exactly two incident faces once all faces
// are added; the count is 0 or 1 only transiently during construction.
type Edge struct {
	// ID is assigned sequentially by the store.
	ID int

	// V1 and V2 are the endpoint vertex IDs, V1 < V2.
	V1, V2 int

	// Faces holds IDs of the faces this edge borders.
	Faces map[int]struct{}
}

// Other returns the endpoint opposite v, or -1 if v is not an endpoint.
func (e *Edge) Other(v int) int {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		return -1
	}
}

// Face represents one polygonal cell of the surface.
type Face struct {
	// ID is the caller-assigned identifier; clue arrays are positional
	// by face creation order, so loaders assign IDs densely from 0.
	ID int

	// Vertices traces the face boundary in cyclic order.
	Vertices []int

	// Edges is parallel to Vertices: Edges[i] connects Vertices[i] and
	// Vertices[(i+1) mod n].
	Edges []int

	// Clue is the face constraint, NoClue when absent. This is the only
	// face field mutated after construction (by puzzle application).
	Clue Clue
}

// Degree returns the number of sides of the face.
func (f *Face) Degree() int { return len(f.Vertices) }
