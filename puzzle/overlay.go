package puzzle

import (
	"fmt"

	"github.com/huttarl/slitherlink3D/topology"
)

// Overlay binds one puzzle Set to a Topology instance.
//
// All operations validate fully before mutating anything, so a failed
// switch or apply leaves both the overlay and the topology as they were.
type Overlay struct {
	topo    *topology.Topology
	set     *Set
	current int // index into set.Puzzles; -1 when none selected
}

// NewOverlay returns an overlay bound to the given topology with no
// puzzle data attached yet.
func NewOverlay(topo *topology.Topology) *Overlay {
	return &Overlay{topo: topo, current: -1}
}

// SetData attaches a puzzle set. When expectedGridID is non-empty it
// must equal the set's GridID; otherwise ErrGridMismatch is returned and
// any previously attached set stays in place. Attaching a set clears the
// current selection.
func (o *Overlay) SetData(set *Set, expectedGridID string) error {
	if expectedGridID != "" && set.GridID != expectedGridID {
		return fmt.Errorf("have %q, want %q: %w", set.GridID, expectedGridID, ErrGridMismatch)
	}
	o.set = set
	o.current = -1

	return nil
}

// Select makes puzzle index the current one. Returns ErrNotInitialized
// before SetData, ErrIndexOutOfRange for a bad index, and ErrInvalidClue
// when the candidate's clues do not fit the topology — in every failure
// case the previous selection stays in place, so faces written by an
// earlier ApplyClues remain consistent with CurrentIndex. Selection
// alone touches no face clues; call ApplyClues for that.
func (o *Overlay) Select(index int) error {
	if o.set == nil {
		return ErrNotInitialized
	}
	if index < 0 || index >= len(o.set.Puzzles) {
		return fmt.Errorf("index %d of %d puzzles: %w", index, len(o.set.Puzzles), ErrIndexOutOfRange)
	}
	if err := o.validateClues(&o.set.Puzzles[index]); err != nil {
		return err
	}
	o.current = index

	return nil
}

// validateClues checks a puzzle's positional clue array against the
// topology: no more clues than faces, and every present clue within
// [0, faceDegree].
func (o *Overlay) validateClues(p *Puzzle) error {
	faces := o.topo.FacesInOrder()
	if len(p.Clues) > len(faces) {
		return fmt.Errorf("%d clues for %d faces: %w", len(p.Clues), len(faces), ErrInvalidClue)
	}
	for pos, f := range faces {
		c := clueAt(p.Clues, pos)
		if c.None() {
			continue
		}
		if c < 0 || int(c) > f.Degree() {
			return fmt.Errorf("face %d (degree %d) clue %d: %w", f.ID, f.Degree(), c, ErrInvalidClue)
		}
	}

	return nil
}

// Current returns the selected puzzle.
func (o *Overlay) Current() (*Puzzle, error) {
	if o.set == nil {
		return nil, ErrNotInitialized
	}
	if o.current < 0 {
		return nil, ErrNoSelection
	}

	return &o.set.Puzzles[o.current], nil
}

// CurrentIndex returns the selected puzzle index, or -1.
func (o *Overlay) CurrentIndex() int { return o.current }

// Len returns the number of puzzles in the attached set, 0 before SetData.
func (o *Overlay) Len() int {
	if o.set == nil {
		return 0
	}

	return len(o.set.Puzzles)
}

// ApplyClues writes the current puzzle's clues onto the topology's faces
// in creation order. A face whose positional index is beyond the clue
// array gets NoClue — that is the sparse encoding, not an error. An
// array longer than the face count, or a present clue outside
// [0, faceDegree], is reported as ErrInvalidClue and no face is
// modified. Re-applying is idempotent. Complexity: O(F).
func (o *Overlay) ApplyClues() error {
	p, err := o.Current()
	if err != nil {
		return err
	}

	// Validate every clue before writing the first one.
	if err := o.validateClues(p); err != nil {
		return err
	}
	for pos, f := range o.topo.FacesInOrder() {
		// SetClue cannot fail: face IDs came from the store itself.
		if err := o.topo.SetClue(f.ID, clueAt(p.Clues, pos)); err != nil {
			return err
		}
	}

	return nil
}

// clueAt reads the positional clue array with the sparse-tail rule.
func clueAt(clues []topology.Clue, pos int) topology.Clue {
	if pos >= len(clues) {
		return topology.NoClue
	}

	return clues[pos]
}

// ClearClues resets every face to NoClue.
func (o *Overlay) ClearClues() {
	for _, f := range o.topo.FacesInOrder() {
		_ = o.topo.SetClue(f.ID, topology.NoClue)
	}
}

// ValidateSolution checks the current puzzle's reference solution
// against the topology: cycle length within [3, numVertices], no
// duplicate vertices, every vertex registered, and every consecutive
// pair — wraparound included — joined by an existing edge. Failures are
// ErrInvalidSolution wrapped with the broken invariant. Complexity: O(L).
func (o *Overlay) ValidateSolution() error {
	p, err := o.Current()
	if err != nil {
		return err
	}
	n := len(p.Solution)
	if n < 3 {
		return fmt.Errorf("cycle length %d < 3: %w", n, ErrInvalidSolution)
	}
	if max := o.topo.VertexCount(); n > max {
		return fmt.Errorf("cycle length %d exceeds %d vertices: %w", n, max, ErrInvalidSolution)
	}
	seen := make(map[int]struct{}, n)
	for _, v := range p.Solution {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate vertex %d: %w", v, ErrInvalidSolution)
		}
		seen[v] = struct{}{}
		if _, err := o.topo.Vertex(v); err != nil {
			return fmt.Errorf("unknown vertex %d: %w", v, ErrInvalidSolution)
		}
	}
	for i := 0; i < n; i++ {
		a, b := p.Solution[i], p.Solution[(i+1)%n]
		if _, ok := o.topo.FindEdge(a, b); !ok {
			return fmt.Errorf("vertices %d and %d are not joined by an edge: %w", a, b, ErrInvalidSolution)
		}
	}

	return nil
}

// SolutionEdges resolves the current solution cycle to edge IDs, in
// trace order. ValidateSolution is run first, so the result is always a
// complete cycle.
func (o *Overlay) SolutionEdges() ([]int, error) {
	if err := o.ValidateSolution(); err != nil {
		return nil, err
	}
	p, _ := o.Current()
	n := len(p.Solution)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		eid, _ := o.topo.FindEdge(p.Solution[i], p.Solution[(i+1)%n])
		out = append(out, eid)
	}

	return out, nil
}

// HighlightSolution signals every reference-solution edge to h. This is
// a rendering side effect only; no topology or guess state changes.
func (o *Overlay) HighlightSolution(h Highlighter) error {
	edges, err := o.SolutionEdges()
	if err != nil {
		return err
	}
	for _, eid := range edges {
		h.HighlightSolutionEdge(eid)
	}

	return nil
}
