// Package puzzle binds clue arrays and reference solutions to a topology.
//
// An Overlay holds one Set of puzzles for a grid, tracks which puzzle is
// selected, applies its clues to the faces, and validates its reference
// solution against the topology. It reads the topology's ID spaces; the
// only thing it ever writes are face clues.
package puzzle

import (
	"errors"

	"github.com/huttarl/slitherlink3D/topology"
)

// Sentinel errors for puzzle binding and validation.
var (
	// ErrGridMismatch indicates puzzle data names a different grid ID
	// than the loaded topology.
	ErrGridMismatch = errors.New("puzzle: puzzle data is for a different grid")

	// ErrNotInitialized indicates an operation ran before SetData.
	ErrNotInitialized = errors.New("puzzle: no puzzle data set")

	// ErrNoSelection indicates an operation ran before Select.
	ErrNoSelection = errors.New("puzzle: no puzzle selected")

	// ErrIndexOutOfRange indicates a puzzle index outside [0, len(puzzles)).
	ErrIndexOutOfRange = errors.New("puzzle: puzzle index out of range")

	// ErrInvalidClue indicates a clue outside [0, numEdgesOfFace].
	ErrInvalidClue = errors.New("puzzle: clue out of range for face")

	// ErrInvalidSolution indicates a reference solution violating a
	// structural invariant (length, duplicates, unknown vertex, missing edge).
	ErrInvalidSolution = errors.New("puzzle: invalid solution")
)

// Puzzle is one clue set plus its reference solution.
type Puzzle struct {
	// Clues is positional by face creation order and may be shorter than
	// the face count: missing tail entries mean NoClue (sparse encoding).
	Clues []topology.Clue

	// Solution is the ordered vertex cycle of the reference loop. The
	// first vertex is not repeated at the end; the wraparound pair is
	// implicit.
	Solution []int
}

// Set is all puzzles shipped for one grid.
type Set struct {
	// GridID must match the grid the topology was built from.
	GridID string

	Puzzles []Puzzle
}

// Highlighter receives "this edge belongs to the reference solution"
// signals. The rendering layer implements it; the overlay never assumes
// one is present.
type Highlighter interface {
	HighlightSolutionEdge(edgeID int)
}
