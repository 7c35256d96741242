package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/huttarl/slitherlink3D/puzzle"
	"github.com/huttarl/slitherlink3D/topology"
)

// Sentinel errors for puzzle file validation.
var (
	// ErrNoPuzzles indicates the puzzles array is absent or empty.
	ErrNoPuzzles = errors.New("gridio: puzzle file contains no puzzles")

	// ErrBadClue indicates a clue value below the -1 no-clue sentinel.
	ErrBadClue = errors.New("gridio: clue must be -1 or non-negative")
)

// PuzzleEntry is one puzzle as stored on disk: a positional clue array
// (-1 = no clue, possibly shorter than the face count) and the
// reference solution as a vertex cycle.
type PuzzleEntry struct {
	Clues    []int `json:"clues"`
	Solution []int `json:"solution"`
}

// PuzzleFile is the wire format of a grid's puzzle collection.
type PuzzleFile struct {
	GridID  string        `json:"gridId"`
	Puzzles []PuzzleEntry `json:"puzzles"`
}

// DecodePuzzles parses and structurally validates puzzle JSON. Clue
// ranges and solution invariants are topology-dependent and belong to
// the puzzle overlay; this only checks the file shape.
func DecodePuzzles(r io.Reader) (*PuzzleFile, error) {
	var p PuzzleFile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks structural requirements, aggregating all problems.
func (p *PuzzleFile) Validate() error {
	var errs error
	if p.GridID == "" {
		errs = multierr.Append(errs, fmt.Errorf("gridId: %w", ErrMissingField))
	}
	if len(p.Puzzles) == 0 {
		errs = multierr.Append(errs, ErrNoPuzzles)
	}
	for i, entry := range p.Puzzles {
		if len(entry.Solution) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("puzzle %d solution: %w", i, ErrMissingField))
		}
		for j, c := range entry.Clues {
			// -1 is the no-clue sentinel; any other negative is malformed.
			if c < -1 {
				errs = multierr.Append(errs, fmt.Errorf("puzzle %d clue %d is %d: %w", i, j, c, ErrBadClue))
			}
		}
	}

	return errs
}

// Set converts the file into the overlay's in-memory representation.
// Only -1 maps onto topology.NoClue; Validate has already rejected other
// negatives, and one slipping through an unvalidated file fails the
// overlay's own clue check.
func (p *PuzzleFile) Set() *puzzle.Set {
	set := &puzzle.Set{GridID: p.GridID, Puzzles: make([]puzzle.Puzzle, len(p.Puzzles))}
	for i, entry := range p.Puzzles {
		clues := make([]topology.Clue, len(entry.Clues))
		for j, c := range entry.Clues {
			clues[j] = topology.Clue(c)
		}
		set.Puzzles[i] = puzzle.Puzzle{
			Clues:    clues,
			Solution: append([]int(nil), entry.Solution...),
		}
	}

	return set
}
