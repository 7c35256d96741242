// Package guess tracks the user's per-edge markings for one play session.
//
// Each edge carries a tri-state marking cycling
// Unknown → Filled → RuledOut → Unknown on a forward action and the
// reverse order on a modifier-qualified action. The Board is keyed by
// edge ID and is independent of topology and puzzle lifecycle: resetting
// a puzzle resets the board, never the grid.
package guess

// State is the tri-state user marking of one edge.
type State uint8

const (
	// Unknown is the initial state of every edge.
	Unknown State = iota
	// Filled marks an edge as part of the solution loop.
	Filled
	// RuledOut marks an edge as definitely not part of the loop.
	RuledOut

	numStates = 3
)

// String returns a readable name for logs and debug overlays.
func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Filled:
		return "filled"
	case RuledOut:
		return "ruled-out"
	default:
		return "invalid"
	}
}

// Next returns the successor state in the forward cycle.
func (s State) Next() State {
	return (s + 1) % numStates
}

// Prev returns the predecessor state, i.e. the reverse cycle.
func (s State) Prev() State {
	return (s + numStates - 1) % numStates
}

// Board holds the marking of every edge the user has touched.
// Absent entries read as Unknown, so a fresh Board is all-Unknown
// regardless of how many edges the grid has.
type Board struct {
	marks map[int]State
}

// NewBoard returns an empty (all-Unknown) board.
func NewBoard() *Board {
	return &Board{marks: make(map[int]State)}
}

// Get returns the current marking of the given edge.
func (b *Board) Get(edgeID int) State {
	return b.marks[edgeID]
}

// Set stores a marking. Setting Unknown removes the entry so the board
// stays proportional to the number of touched edges.
func (b *Board) Set(edgeID int, s State) {
	if s == Unknown {
		delete(b.marks, edgeID)
		return
	}
	b.marks[edgeID] = s
}

// Cycle advances the edge one step through the marking cycle (backwards
// when reverse is set) and returns the new state.
func (b *Board) Cycle(edgeID int, reverse bool) State {
	s := b.Get(edgeID)
	if reverse {
		s = s.Prev()
	} else {
		s = s.Next()
	}
	b.Set(edgeID, s)

	return s
}

// Reset clears every marking back to Unknown.
func (b *Board) Reset() {
	b.marks = make(map[int]State)
}

// FilledCount returns how many edges are currently marked Filled.
func (b *Board) FilledCount() int {
	n := 0
	for _, s := range b.marks {
		if s == Filled {
			n++
		}
	}

	return n
}

// AnyFilled returns the ID of one Filled edge and true, or (0,false)
// when no edge is filled. Used as a trace start by the checker.
func (b *Board) AnyFilled() (int, bool) {
	best, found := 0, false
	for id, s := range b.marks {
		if s != Filled {
			continue
		}
		// Smallest ID keeps the choice deterministic across runs.
		if !found || id < best {
			best, found = id, true
		}
	}

	return best, found
}
