// Package session ties a grid, its puzzle overlay, and the player's
// board into one stateful play surface.
//
// What: a Session owns the current Topology, the puzzle Overlay bound to
// it, and the guess Board, and exposes the operations a front end drives:
// load a grid, pick a puzzle, toggle edges (with immediate passive
// feedback), request a full solution check, and reveal the reference
// solution through a Highlighter.
//
// Why: front ends (CLI, websocket hub, future renderers) should not
// juggle four objects and their lifecycle rules. The session enforces
// the ordering (grid before puzzles, puzzle before play) and guards
// against stale asynchronous loads with a generation token.
//
// Concurrency: a Session is safe for a single driving goroutine. The
// websocket hub serializes access; see cmd.
package session

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/huttarl/slitherlink3D/checker"
	"github.com/huttarl/slitherlink3D/gridio"
	"github.com/huttarl/slitherlink3D/guess"
	"github.com/huttarl/slitherlink3D/puzzle"
	"github.com/huttarl/slitherlink3D/topology"
)

var (
	// ErrNoGrid indicates an operation that needs a loaded grid.
	ErrNoGrid = errors.New("session: no grid loaded")
	// ErrStaleLoad indicates a load completion whose token was
	// superseded by a newer load; the result must be discarded.
	ErrStaleLoad = errors.New("session: load superseded by a newer one")
)

// Option customizes a Session at construction.
type Option func(*Session)

// WithLogger installs a structured logger. The default discards.
func WithLogger(log logr.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithHighlighter installs the sink that receives reference-solution
// edges on ShowSolution. The default ignores them.
func WithHighlighter(h puzzle.Highlighter) Option {
	return func(s *Session) { s.highlighter = h }
}

type nopHighlighter struct{}

func (nopHighlighter) HighlightSolutionEdge(int) {}

// Session is the play surface: grid + overlay + board, plus lifecycle
// state. Zero value is not usable; call New.
type Session struct {
	topo        *topology.Topology
	overlay     *puzzle.Overlay
	board       *guess.Board
	highlighter puzzle.Highlighter
	log         logr.Logger

	gridID     string
	generation uint64 // bumped by BeginLoad; tokens from older loads are stale
}

// New builds an empty session. Load a grid before anything else.
func New(opts ...Option) *Session {
	s := &Session{
		highlighter: nopHighlighter{},
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BeginLoad reserves a load slot and returns its token. An asynchronous
// loader calls this before fetching, then hands the token back to
// FinishLoad; if another load began in between, FinishLoad rejects the
// stale result.
func (s *Session) BeginLoad() uint64 {
	s.generation++
	s.log.V(1).Info("load begun", "generation", s.generation)

	return s.generation
}

// FinishLoad installs a fetched grid under the given token. Everything
// derived from the previous grid (overlay, board, selection) is dropped.
// Returns ErrStaleLoad when a newer BeginLoad happened since the token
// was issued.
func (s *Session) FinishLoad(token uint64, g *gridio.Grid) error {
	if token != s.generation {
		s.log.Info("discarding stale load",
			"token", token, "generation", s.generation, "gridId", g.GridID)
		return fmt.Errorf("token %d, current %d: %w", token, s.generation, ErrStaleLoad)
	}

	topo, err := g.BuildTopology()
	if err != nil {
		return fmt.Errorf("session: building %q: %w", g.GridID, err)
	}

	s.topo = topo
	s.overlay = puzzle.NewOverlay(topo)
	s.board = guess.NewBoard()
	s.gridID = g.GridID
	s.log.Info("grid loaded", "gridId", g.GridID,
		"vertices", topo.VertexCount(), "edges", topo.EdgeCount(), "faces", topo.FaceCount())

	return nil
}

// LoadGrid is the synchronous path: BeginLoad + FinishLoad in one call.
func (s *Session) LoadGrid(g *gridio.Grid) error {
	return s.FinishLoad(s.BeginLoad(), g)
}

// LoadPuzzles binds a puzzle set to the loaded grid. The set's grid ID
// must match the loaded grid's.
func (s *Session) LoadPuzzles(set *puzzle.Set) error {
	if s.topo == nil {
		return ErrNoGrid
	}
	if err := s.overlay.SetData(set, s.gridID); err != nil {
		return err
	}
	s.log.Info("puzzles loaded", "gridId", s.gridID, "count", s.overlay.Len())

	return nil
}

// SelectPuzzle picks puzzle index, writes its clues onto the faces, and
// wipes the board for a fresh attempt.
func (s *Session) SelectPuzzle(index int) error {
	if s.topo == nil {
		return ErrNoGrid
	}
	if err := s.overlay.Select(index); err != nil {
		return err
	}
	if err := s.overlay.ApplyClues(); err != nil {
		return err
	}
	s.board.Reset()
	s.log.Info("puzzle selected", "gridId", s.gridID, "index", index)

	return nil
}

// ToggleEdge advances the edge's mark one step (Unknown -> Filled ->
// RuledOut -> Unknown; reverse runs the cycle backward) and returns the
// new state plus any passive violations the move provokes near it.
func (s *Session) ToggleEdge(edgeID int, reverse bool) (guess.State, []checker.Violation, error) {
	if s.topo == nil {
		return guess.Unknown, nil, ErrNoGrid
	}
	if _, err := s.topo.Edge(edgeID); err != nil {
		return guess.Unknown, nil, err
	}

	state := s.board.Cycle(edgeID, reverse)
	violations := checker.Passive(s.topo, s.board, edgeID)
	if len(violations) > 0 {
		s.log.V(1).Info("passive violations", "edge", edgeID, "count", len(violations))
	}

	return state, violations, nil
}

// CheckSolution runs the full active check over the board.
func (s *Session) CheckSolution() (*checker.Result, error) {
	if s.topo == nil {
		return nil, ErrNoGrid
	}
	res := checker.Check(s.topo, s.board)
	s.log.Info("solution checked", "gridId", s.gridID,
		"solved", res.Solved, "violations", len(res.Violations), "loopLength", res.LoopLength)

	return res, nil
}

// ShowSolution streams the selected puzzle's reference-solution edges
// to the configured highlighter. The board is untouched.
func (s *Session) ShowSolution() error {
	if s.topo == nil {
		return ErrNoGrid
	}

	return s.overlay.HighlightSolution(s.highlighter)
}

// ResetBoard clears every mark, keeping grid, puzzles, and selection.
func (s *Session) ResetBoard() {
	if s.board != nil {
		s.board.Reset()
	}
}

// Edge resolves two vertex IDs to the edge between them, mirroring how
// pointing devices address edges by their endpoints.
func (s *Session) Edge(v1, v2 int) (int, error) {
	if s.topo == nil {
		return 0, ErrNoGrid
	}
	id, ok := s.topo.FindEdge(v1, v2)
	if !ok {
		return 0, fmt.Errorf("session: no edge between %d and %d: %w",
			v1, v2, topology.ErrEdgeNotFound)
	}

	return id, nil
}

// EdgeState reports the current mark on an edge.
func (s *Session) EdgeState(edgeID int) guess.State {
	if s.board == nil {
		return guess.Unknown
	}

	return s.board.Get(edgeID)
}

// GridID names the loaded grid, empty when none is loaded.
func (s *Session) GridID() string { return s.gridID }

// Topology exposes the loaded grid's structure for rendering. Nil when
// no grid is loaded.
func (s *Session) Topology() *topology.Topology { return s.topo }

// PuzzleCount reports how many puzzles the bound set carries.
func (s *Session) PuzzleCount() int {
	if s.overlay == nil {
		return 0
	}

	return s.overlay.Len()
}

// PuzzleIndex reports the selected puzzle, -1 when none is selected.
func (s *Session) PuzzleIndex() int {
	if s.overlay == nil {
		return -1
	}

	return s.overlay.CurrentIndex()
}
