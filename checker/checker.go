// Package checker verifies user guesses against the puzzle constraints.
//
// Two modes, per the passive/active distinction:
//
//   - Passive runs after a single edge toggle and inspects only the
//     geometry that toggle touched (O(local degree)). It reports bound
//     violations: too many Filled at a vertex, a face pushed past its
//     clue, a face that can no longer reach its clue.
//   - Check is the explicit "check solution" action. It demands exact
//     clue equality on every face, the degree constraint at every
//     vertex, and — only if those hold — traces the Filled edges to
//     confirm a single complete loop.
//
// Violations are results, not errors; a board full of contradictions is
// a normal input, not a failure of the checker.
package checker

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/huttarl/slitherlink3D/guess"
	"github.com/huttarl/slitherlink3D/topology"
)

// filledAt counts Filled edges incident to the vertex.
func filledAt(v *topology.Vertex, board *guess.Board) int {
	n := 0
	for eid := range v.Edges {
		if board.Get(eid) == guess.Filled {
			n++
		}
	}

	return n
}

// faceTally counts Filled and RuledOut edges on the face boundary.
func faceTally(f *topology.Face, board *guess.Board) (filled, ruledOut int) {
	for _, eid := range f.Edges {
		switch board.Get(eid) {
		case guess.Filled:
			filled++
		case guess.RuledOut:
			ruledOut++
		}
	}

	return filled, ruledOut
}

// checkVertex applies the simple-cycle degree constraint: a valid loop
// passes through every vertex 0 or 2 times.
func checkVertex(v *topology.Vertex, board *guess.Board) (Violation, bool) {
	if n := filledAt(v, board); n > 2 {
		return vertexViolation(VertexDegree, v.ID,
			fmt.Sprintf("%d filled edges meet here; a loop allows at most 2", n)), true
	}

	return Violation{}, false
}

// checkFaceBounds applies the passive (inequality) face rules to a clued
// face. Faces without a clue never produce violations.
func checkFaceBounds(f *topology.Face, board *guess.Board) []Violation {
	if f.Clue.None() {
		return nil
	}
	filled, ruledOut := faceTally(f, board)
	clue, n := int(f.Clue), f.Degree()
	var out []Violation
	if filled > clue {
		out = append(out, faceViolation(FaceOverfilled, f.ID,
			fmt.Sprintf("%d filled exceeds clue %d", filled, clue)))
	}
	if n-ruledOut < clue {
		out = append(out, faceViolation(FaceUnderfillable, f.ID,
			fmt.Sprintf("only %d of %d edges remain available for clue %d", n-ruledOut, n, clue)))
	}

	return out
}

// checkFaceExact applies the active (equality) face rules.
func checkFaceExact(f *topology.Face, board *guess.Board) []Violation {
	if f.Clue.None() {
		return nil
	}
	filled, ruledOut := faceTally(f, board)
	clue, n := int(f.Clue), f.Degree()
	var out []Violation
	if filled != clue {
		out = append(out, faceViolation(FaceCountMismatch, f.ID,
			fmt.Sprintf("%d filled, clue requires exactly %d", filled, clue)))
	}
	if n-ruledOut < clue {
		out = append(out, faceViolation(FaceUnderfillable, f.ID,
			fmt.Sprintf("only %d of %d edges remain available for clue %d", n-ruledOut, n, clue)))
	}

	return out
}

// Passive checks only the geometry touched by a toggle of edgeID: both
// endpoint vertices (when the edge's new state is Filled) and both
// incident faces. An unknown edge ID yields no violations.
// Complexity: O(deg(v1)+deg(v2)+s1+s2).
func Passive(topo *topology.Topology, board *guess.Board, edgeID int) []Violation {
	e, err := topo.Edge(edgeID)
	if err != nil {
		return nil
	}
	var out []Violation
	if board.Get(edgeID) == guess.Filled {
		for _, vid := range [2]int{e.V1, e.V2} {
			v, err := topo.Vertex(vid)
			if err != nil {
				continue
			}
			if viol, bad := checkVertex(v, board); bad {
				out = append(out, viol)
			}
		}
	}
	// Incident faces in sorted order for deterministic reporting.
	fids := treeset.NewWithIntComparator()
	for fid := range e.Faces {
		fids.Add(fid)
	}
	for _, fv := range fids.Values() {
		f, err := topo.Face(fv.(int))
		if err != nil {
			continue
		}
		out = append(out, checkFaceBounds(f, board)...)
	}

	return out
}

// PassiveAll is the passive check degraded to a full scan, used when a
// global action (reset, solution reveal) invalidates locality. It runs
// the bound rules on every vertex and clued face but never traces loops.
// Complexity: O(V+E+F).
func PassiveAll(topo *topology.Topology, board *guess.Board) []Violation {
	var out []Violation
	for _, vid := range topo.VertexIDs() {
		v, err := topo.Vertex(vid)
		if err != nil {
			continue
		}
		if viol, bad := checkVertex(v, board); bad {
			out = append(out, viol)
		}
	}
	for _, f := range topo.FacesInOrder() {
		out = append(out, checkFaceBounds(f, board)...)
	}

	return out
}

// Check is the active, global verification: exact clue equality on every
// clued face, the degree constraint at every vertex, then — only when
// both hold — loop tracing for completeness and singleness.
// Complexity: O(V+E+F).
func Check(topo *topology.Topology, board *guess.Board) *Result {
	res := &Result{FilledCount: board.FilledCount()}

	for _, f := range topo.FacesInOrder() {
		res.Violations = append(res.Violations, checkFaceExact(f, board)...)
	}
	for _, vid := range topo.VertexIDs() {
		v, err := topo.Vertex(vid)
		if err != nil {
			continue
		}
		if viol, bad := checkVertex(v, board); bad {
			res.Violations = append(res.Violations, viol)
		}
	}
	// Constraint failures stop the check before loop tracing.
	if len(res.Violations) > 0 {
		return res
	}

	traceLoop(topo, board, res)
	res.Solved = len(res.Violations) == 0

	return res
}

// traceLoop walks the Filled edges from an arbitrary start and records
// BrokenLoop, NoFilledEdges, or ExtraLoops violations in res.
//
// The degree constraint has already passed, so every vertex carries at
// most two Filled edges and the walk never has to choose.
func traceLoop(topo *topology.Topology, board *guess.Board, res *Result) {
	// Collect Filled edges sorted by ID; the smallest is the trace start
	// and the leftover set exposes disjoint extra loops.
	remaining := treeset.NewWithIntComparator()
	for _, eid := range topo.EdgeIDs() {
		if board.Get(eid) == guess.Filled {
			remaining.Add(eid)
		}
	}
	if remaining.Empty() {
		res.Violations = append(res.Violations,
			globalViolation(NoFilledEdges, "no edges filled in"))
		return
	}

	startEdge := remaining.Values()[0].(int)
	e, _ := topo.Edge(startEdge)
	start, current := e.V1, e.V2
	prevEdge := startEdge
	remaining.Remove(startEdge)
	res.LoopLength = 1

	for current != start {
		next, ok := nextFilledEdge(topo, board, current, prevEdge)
		if !ok {
			res.Violations = append(res.Violations, vertexViolation(BrokenLoop, current,
				"no edge found to continue trace"))
			return
		}
		ne, _ := topo.Edge(next)
		current = ne.Other(current)
		prevEdge = next
		remaining.Remove(next)
		res.LoopLength++
	}

	if !remaining.Empty() {
		res.Violations = append(res.Violations, globalViolation(ExtraLoops,
			fmt.Sprintf("%d filled edges lie outside the traced loop of %d",
				remaining.Size(), res.LoopLength)))
	}
}

// nextFilledEdge finds the Filled edge at vertex vid other than prevEdge.
func nextFilledEdge(topo *topology.Topology, board *guess.Board, vid, prevEdge int) (int, bool) {
	v, err := topo.Vertex(vid)
	if err != nil {
		return 0, false
	}
	for eid := range v.Edges {
		if eid != prevEdge && board.Get(eid) == guess.Filled {
			return eid, true
		}
	}

	return 0, false
}
