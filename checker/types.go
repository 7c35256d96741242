// Package checker: violation kinds and check results.
//
// Violations are plain data, never errors: the caller (typically the
// session) hands them to the rendering layer for highlighting and they
// change no state anywhere.
package checker

import "fmt"

// Kind classifies a constraint violation.
type Kind int

const (
	// VertexDegree: more than two Filled edges meet at one vertex.
	VertexDegree Kind = iota

	// FaceOverfilled: a clued face already has more Filled edges than
	// its clue allows (passive bound).
	FaceOverfilled

	// FaceUnderfillable: so many of a clued face's edges are RuledOut
	// that the clue can never be reached.
	FaceUnderfillable

	// FaceCountMismatch: a clued face's Filled count differs from its
	// clue (active check; demands exact equality).
	FaceCountMismatch

	// NoFilledEdges: the active check found nothing to trace.
	NoFilledEdges

	// BrokenLoop: the loop trace reached a vertex with no Filled edge to
	// continue on.
	BrokenLoop

	// ExtraLoops: Filled edges remain outside the traced loop, so more
	// than one disjoint loop exists.
	ExtraLoops
)

// String returns a stable identifier for logs and event payloads.
func (k Kind) String() string {
	switch k {
	case VertexDegree:
		return "vertex-degree"
	case FaceOverfilled:
		return "face-overfilled"
	case FaceUnderfillable:
		return "face-underfillable"
	case FaceCountMismatch:
		return "face-count-mismatch"
	case NoFilledEdges:
		return "no-filled-edges"
	case BrokenLoop:
		return "broken-loop"
	case ExtraLoops:
		return "extra-loops"
	default:
		return "unknown"
	}
}

// Violation pinpoints one broken constraint. VertexID and FaceID are -1
// when the kind does not implicate one.
type Violation struct {
	Kind     Kind
	VertexID int
	FaceID   int
	Detail   string
}

// String renders the violation for logs and surfaced messages.
func (v Violation) String() string {
	switch {
	case v.VertexID >= 0:
		return fmt.Sprintf("%s at vertex %d: %s", v.Kind, v.VertexID, v.Detail)
	case v.FaceID >= 0:
		return fmt.Sprintf("%s at face %d: %s", v.Kind, v.FaceID, v.Detail)
	default:
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
}

// Result is the outcome of an active check.
type Result struct {
	// Solved is true only when every constraint holds and the Filled
	// edges form exactly one complete loop.
	Solved bool

	// Violations lists everything that failed, in deterministic order.
	Violations []Violation

	// LoopLength is the number of edges in the traced loop, 0 when
	// tracing never completed.
	LoopLength int

	// FilledCount is the total number of Filled edges on the board.
	FilledCount int
}

func vertexViolation(k Kind, vertexID int, detail string) Violation {
	return Violation{Kind: k, VertexID: vertexID, FaceID: -1, Detail: detail}
}

func faceViolation(k Kind, faceID int, detail string) Violation {
	return Violation{Kind: k, VertexID: -1, FaceID: faceID, Detail: detail}
}

func globalViolation(k Kind, detail string) Violation {
	return Violation{Kind: k, VertexID: -1, FaceID: -1, Detail: detail}
}
