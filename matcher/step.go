// Package matcher implements the breadth-first, position-indexed NFA
// simulator: it walks a compiled graph.Graph over input text, maintaining
// per-path repetition counters, captured-group text, and back-reference
// resolution, and reports the longest match found at a position (or the
// leftmost-first sequence of matches across a whole text).
package matcher

import "github.com/devkanaya/rxmatch-go/graph"

// Step is an immutable node in a simulation path. prev chains steps into
// a history; reconstructing a match walks prev back to the entry step.
type Step struct {
	State      *graph.State
	Position   int // text index at which State was entered
	MatchLen   int // bytes State consumed (0 for zero-width states)
	RepCounter int
	Prev       *Step
	StepNo     int

	// Captures holds the text captured for any group that closes exactly
	// at this step (State.GroupEnd is non-empty). Most steps carry none.
	Captures map[int]string
}

// EndPos returns the text offset immediately after this step's match.
func (s *Step) EndPos() int {
	return s.Position + s.MatchLen
}

// ResolveGroup walks the prev-chain starting at s looking for the most
// recent step that closed group g, returning its captured text.
func (s *Step) ResolveGroup(g int) (string, bool) {
	for cur := s; cur != nil; cur = cur.Prev {
		if cur.Captures != nil {
			if text, ok := cur.Captures[g]; ok {
				return text, true
			}
		}
	}
	return "", false
}

// consumedText walks backward from s until it reaches a step whose state
// carries group g in GroupStart, and concatenates the text consumed by
// every step on that stretch, oldest first. Both s and the GroupStart
// step contribute their own consumption, so a single-state group body
// such as (abc) captures the text that state matched.
func consumedText(text string, s *Step, group int) string {
	var segments []*Step
	cur := s
	for cur != nil {
		segments = append(segments, cur)
		if _, opens := cur.State.GroupStart[group]; opens {
			break
		}
		cur = cur.Prev
	}

	// segments is newest-first; concatenate oldest-first.
	buf := make([]byte, 0, 16)
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		buf = append(buf, text[seg.Position:seg.Position+seg.MatchLen]...)
	}
	return string(buf)
}
