// Package topology: Topology store implementation.
//
// A single RWMutex guards all three tables. Construction happens once at
// load time on one goroutine; afterwards the structure is read-only
// (except face clues, which are guarded the same way), so a render loop
// may read it concurrently with checking.
package topology

import (
	"fmt"
	"sort"
	"sync"
)

// pairKey packs an unordered vertex pair into one uint32 index key,
// canonicalized smaller-ID-first so (a,b) and (b,a) collide on purpose.
// Valid only for IDs in [0, MaxVertexID]; AddVertex enforces the range.
func pairKey(v1, v2 int) uint32 {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return uint32(v1)<<16 | uint32(v2)
}

// Topology is the in-memory store for one polyhedral grid.
type Topology struct {
	mu sync.RWMutex

	vertices map[int]*Vertex
	edges    map[int]*Edge
	faces    map[int]*Face

	// edgeIndex maps a packed unordered vertex pair to an edge ID,
	// giving O(1) deduplication during face construction.
	edgeIndex map[uint32]int

	// faceOrder remembers face IDs in creation order; clue arrays are
	// positional by this order.
	faceOrder []int

	nextEdgeID int
}

// New returns an empty Topology.
func New() *Topology {
	return &Topology{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[int]*Edge),
		faces:     make(map[int]*Face),
		edgeIndex: make(map[uint32]int),
	}
}

// AddVertex registers a vertex under the given caller-assigned ID.
// Returns ErrVertexIDRange if id is negative or exceeds MaxVertexID,
// ErrDuplicateID if the ID is already taken.
// Complexity: O(1) amortized.
func (t *Topology) AddVertex(id int, pos [3]float64, meta map[string]interface{}) error {
	if id < 0 || id > MaxVertexID {
		return fmt.Errorf("vertex %d: %w", id, ErrVertexIDRange)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.vertices[id]; exists {
		return fmt.Errorf("vertex %d: %w", id, ErrDuplicateID)
	}
	if meta == nil {
		meta = make(map[string]interface{})
	}
	t.vertices[id] = &Vertex{
		ID:       id,
		Position: pos,
		Edges:    make(map[int]struct{}),
		Faces:    make(map[int]struct{}),
		Metadata: meta,
	}

	return nil
}

// AddEdge ensures an edge exists between v1 and v2 and returns its ID.
// If the pair is already connected (in either order) the existing ID is
// returned and nothing is created. Returns ErrSelfLoop if v1 == v2,
// ErrUnknownVertex if either endpoint is unregistered.
// Complexity: O(1) amortized.
func (t *Topology) AddEdge(v1, v2 int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ensureEdge(v1, v2)
}

// ensureEdge is AddEdge without locking; callers hold t.mu.
func (t *Topology) ensureEdge(v1, v2 int) (int, error) {
	if v1 == v2 {
		return 0, fmt.Errorf("edge %d-%d: %w", v1, v2, ErrSelfLoop)
	}
	for _, v := range [2]int{v1, v2} {
		if _, ok := t.vertices[v]; !ok {
			return 0, fmt.Errorf("edge %d-%d: vertex %d: %w", v1, v2, v, ErrUnknownVertex)
		}
	}
	key := pairKey(v1, v2)
	if eid, ok := t.edgeIndex[key]; ok {
		return eid, nil
	}

	if v1 > v2 {
		v1, v2 = v2, v1
	}
	eid := t.nextEdgeID
	t.nextEdgeID++
	t.edges[eid] = &Edge{ID: eid, V1: v1, V2: v2, Faces: make(map[int]struct{})}
	t.edgeIndex[key] = eid
	t.vertices[v1].Edges[eid] = struct{}{}
	t.vertices[v2].Edges[eid] = struct{}{}

	return eid, nil
}

// AddFace registers a face under the given ID with the cyclic boundary
// vertexIDs. Boundary edges are resolved or created as needed, and the
// face is linked into the incidence sets of every vertex and edge it
// touches. All inputs are validated before any mutation, so a failed
// call leaves the store untouched.
// Returns ErrDegenerateFace (too few vertices, or a boundary that
// revisits one), ErrDuplicateID, ErrUnknownVertex, or ErrSelfLoop
// (consecutive repeated vertex).
// Complexity: O(s) for s sides.
func (t *Topology) AddFace(id int, vertexIDs []int) error {
	if len(vertexIDs) < 3 {
		return fmt.Errorf("face %d (%d vertices): %w", id, len(vertexIDs), ErrDegenerateFace)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.faces[id]; exists {
		return fmt.Errorf("face %d: %w", id, ErrDuplicateID)
	}
	n := len(vertexIDs)
	seen := make(map[int]struct{}, n)
	for i, v := range vertexIDs {
		if _, ok := t.vertices[v]; !ok {
			return fmt.Errorf("face %d: vertex %d: %w", id, v, ErrUnknownVertex)
		}
		if v == vertexIDs[(i+1)%n] {
			return fmt.Errorf("face %d: repeated vertex %d: %w", id, v, ErrSelfLoop)
		}
		// A boundary revisiting any vertex is not a simple cycle and
		// would list the same edge twice.
		if _, dup := seen[v]; dup {
			return fmt.Errorf("face %d: duplicate vertex %d: %w", id, v, ErrDegenerateFace)
		}
		seen[v] = struct{}{}
	}

	f := &Face{
		ID:       id,
		Vertices: append([]int(nil), vertexIDs...),
		Edges:    make([]int, 0, n),
		Clue:     NoClue,
	}
	for i := 0; i < n; i++ {
		// ensureEdge cannot fail here: endpoints were validated above.
		eid, err := t.ensureEdge(vertexIDs[i], vertexIDs[(i+1)%n])
		if err != nil {
			return fmt.Errorf("face %d: %w", id, err)
		}
		f.Edges = append(f.Edges, eid)
		t.edges[eid].Faces[id] = struct{}{}
		t.vertices[vertexIDs[i]].Faces[id] = struct{}{}
	}
	t.faces[id] = f
	t.faceOrder = append(t.faceOrder, id)

	return nil
}

// FindEdge returns the ID of the edge joining v1 and v2 (either order)
// and whether it exists. Complexity: O(1).
func (t *Topology) FindEdge(v1, v2 int) (int, bool) {
	if v1 < 0 || v2 < 0 || v1 > MaxVertexID || v2 > MaxVertexID {
		return 0, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	eid, ok := t.edgeIndex[pairKey(v1, v2)]

	return eid, ok
}

// Vertex returns the vertex record for id.
func (t *Topology) Vertex(id int) (*Vertex, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vertices[id]
	if !ok {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// Edge returns the edge record for id.
func (t *Topology) Edge(id int) (*Edge, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.edges[id]
	if !ok {
		return nil, fmt.Errorf("edge %d: %w", id, ErrEdgeNotFound)
	}

	return e, nil
}

// Face returns the face record for id.
func (t *Topology) Face(id int) (*Face, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.faces[id]
	if !ok {
		return nil, fmt.Errorf("face %d: %w", id, ErrFaceNotFound)
	}

	return f, nil
}

// FaceVertices resolves a face's boundary to vertex records, preserving
// boundary order. Geometry consumers use this for centroid and normal
// computation. Returns ErrFaceNotFound for an unknown face.
// Complexity: O(s).
func (t *Topology) FaceVertices(id int) ([]*Vertex, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.faces[id]
	if !ok {
		return nil, fmt.Errorf("face %d: %w", id, ErrFaceNotFound)
	}
	out := make([]*Vertex, len(f.Vertices))
	for i, vid := range f.Vertices {
		out[i] = t.vertices[vid]
	}

	return out, nil
}

// AdjacentFaces returns the sorted IDs of faces sharing at least one
// edge with the given face, excluding itself. An unknown face ID yields
// an empty slice, not an error. Complexity: O(s) with ≤2 faces per edge.
func (t *Topology) AdjacentFaces(id int) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.faces[id]
	if !ok {
		return nil
	}
	seen := make(map[int]struct{}, len(f.Edges))
	for _, eid := range f.Edges {
		for fid := range t.edges[eid].Faces {
			if fid != id {
				seen[fid] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for fid := range seen {
		out = append(out, fid)
	}
	sort.Ints(out)

	return out
}

// SetClue stores a clue on the given face. Returns ErrFaceNotFound for
// an unknown face. Value validation belongs to the puzzle layer.
func (t *Topology) SetClue(id int, c Clue) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.faces[id]
	if !ok {
		return fmt.Errorf("face %d: %w", id, ErrFaceNotFound)
	}
	f.Clue = c

	return nil
}

// VertexIDs returns all vertex IDs in ascending order.
func (t *Topology) VertexIDs() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]int, 0, len(t.vertices))
	for id := range t.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// EdgeIDs returns all edge IDs in ascending order.
func (t *Topology) EdgeIDs() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]int, 0, len(t.edges))
	for id := range t.edges {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// FacesInOrder returns face records in creation order. The puzzle layer
// relies on this order to interpret positional clue arrays.
func (t *Topology) FacesInOrder() []*Face {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Face, len(t.faceOrder))
	for i, id := range t.faceOrder {
		out[i] = t.faces[id]
	}

	return out
}

// VertexCount returns the number of vertices. O(1).
func (t *Topology) VertexCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.vertices)
}

// EdgeCount returns the number of edges. O(1).
func (t *Topology) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// FaceCount returns the number of faces. O(1).
func (t *Topology) FaceCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.faces)
}
