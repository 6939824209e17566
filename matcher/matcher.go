package matcher

import "github.com/devkanaya/rxmatch-go/graph"

// Match is a single successful match: the start position, the matched
// substring, and the tail step of the path that produced it, retained so
// capture groups can be recovered after the fact (spec.md §6).
type Match struct {
	Start int
	Text  string
	tail  *Step
}

// Group returns the text captured by group n (0 is the whole match).
func (m *Match) Group(n int) (string, bool) {
	if n == 0 {
		return m.Text, true
	}
	if m.tail == nil {
		return "", false
	}
	return m.tail.ResolveGroup(n)
}

type edgeKind int

const (
	edgeOut edgeKind = iota
	edgeLoop
	edgeLoopBack
)

type edge struct {
	target *graph.State
	kind   edgeKind
}

// outgoingEdges assembles the edge set a step may take, per spec.md §4.4
// step 4: non-repetition states offer out ∪ loop_back; a repetition state
// offers only its loop edge while its counter is below Min, and out ∪
// loop_back ∪ loop once the counter is between Min and Max. A loop-back
// that would push the counter past Max is refused by nextRepCounter.
func outgoingEdges(s *Step) []edge {
	st := s.State

	if st.Kind != graph.Repetition {
		edges := make([]edge, 0, len(st.Out)+len(st.LoopBack))
		for _, t := range st.Out {
			edges = append(edges, edge{t, edgeOut})
		}
		for _, t := range st.LoopBack {
			edges = append(edges, edge{t, edgeLoopBack})
		}
		return edges
	}

	var edges []edge
	switch {
	case s.RepCounter < st.Min:
		for _, t := range st.Loop {
			edges = append(edges, edge{t, edgeLoop})
		}
	case s.RepCounter <= st.Max:
		for _, t := range st.Out {
			edges = append(edges, edge{t, edgeOut})
		}
		for _, t := range st.LoopBack {
			edges = append(edges, edge{t, edgeLoopBack})
		}
		for _, t := range st.Loop {
			edges = append(edges, edge{t, edgeLoop})
		}
	default:
		for _, t := range st.Out {
			edges = append(edges, edge{t, edgeOut})
		}
		for _, t := range st.LoopBack {
			edges = append(edges, edge{t, edgeLoopBack})
		}
	}
	return edges
}

// zeroWidthCycle implements spec.md §4.4's cycle guard: walking backward
// from s through a run of zero-width repetition/expression states, has t
// already appeared? If so the edge would re-enter a state the path has
// already visited without consuming anything in between.
func zeroWidthCycle(s *Step, t *graph.State) bool {
	for cur := s; cur != nil; cur = cur.Prev {
		if cur.State == t {
			return true
		}
		if cur.State.Kind != graph.Repetition && cur.State.Kind != graph.Expression {
			return false
		}
	}
	return false
}

// repCounterAt searches s's prev-chain for the most recent visit to
// state t, returning its repetition counter (0 if never visited).
func repCounterAt(s *Step, t *graph.State) int {
	for cur := s; cur != nil; cur = cur.Prev {
		if cur.State == t {
			return cur.RepCounter
		}
	}
	return 0
}

// nextRepCounter computes the RepCounter a new step at t should carry,
// given it was reached from s via the named edge kind. Returns ok=false
// if taking a loop-back edge would push the counter past t's max.
func nextRepCounter(s *Step, t *graph.State, kind edgeKind) (int, bool) {
	if t.Kind != graph.Repetition {
		return 1, true
	}
	if kind != edgeLoopBack {
		// First arrival at a repetition node: zero iterations completed
		// so far.
		return 0, true
	}
	counter := repCounterAt(s, t) + 1
	if counter > t.Max {
		return 0, false
	}
	return counter, true
}

// evalMatch tests whether t matches at pos, given the path so far (prev,
// nil at the very start of an attempt). Back-references need prev to
// resolve their referenced group's captured text; every other state kind
// just delegates to graph.State.IsMatched.
func evalMatch(prev *Step, t *graph.State, text string, pos int) (length int, ok bool) {
	if t.Kind == graph.BackReference {
		captured, found := "", false
		if prev != nil {
			captured, found = prev.ResolveGroup(t.BackRefGroup)
		}
		if !found {
			return 0, false
		}
		end := pos + len(captured)
		if end > len(text) || text[pos:end] != captured {
			return 0, false
		}
		return len(captured), true
	}

	if !t.IsMatched(text, pos) {
		return 0, false
	}
	return t.MatchLen(text, pos), true
}

func applyCaptures(text string, s *Step) {
	if len(s.State.GroupEnd) == 0 {
		return
	}
	s.Captures = make(map[int]string, len(s.State.GroupEnd))
	for g := range s.State.GroupEnd {
		s.Captures[g] = consumedText(text, s, g)
	}
}

// MatchAt attempts a single match starting exactly at pos, returning the
// longest one found (or none). It implements spec.md §4.4's two-queue
// breadth-first simulation.
func MatchAt(g *graph.Graph, text string, pos int, limits Limits) (*Match, bool) {
	length, ok := evalMatch(nil, g.Entry, text, pos)
	if !ok {
		return nil, false
	}

	entryStep := &Step{State: g.Entry, Position: pos, MatchLen: length, RepCounter: 0}
	applyCaptures(text, entryStep)

	current := []*Step{entryStep}
	var next []*Step
	// nextSeen records, per target state already queued into next, the
	// entry position it was queued at and its slice index — so a later,
	// strictly better arrival for the same target can overwrite the
	// worse one in place instead of letting both ride into the next
	// wavefront (spec.md §4.4's single-best-candidate-per-target queue
	// invariant).
	type seenEntry struct {
		pos int
		idx int
	}
	nextSeen := map[*graph.State]seenEntry{}

	var best *Step
	stepNo := 1
	steps := 0

	for len(current) > 0 || len(next) > 0 {
		if len(current) == 0 {
			current, next = next, nil
			nextSeen = map[*graph.State]seenEntry{}
			continue
		}

		s := current[0]
		current = current[1:]

		if s.State.Kind == graph.End {
			// Ties at the same end position go to whichever End step is
			// discovered later (spec decision, see DESIGN.md open
			// question 4): >= lets a later candidate displace an earlier
			// one of equal length.
			if best == nil || s.Position >= best.Position {
				best = s
			}
			continue
		}

		steps++
		if limits.MaxSteps > 0 && steps > limits.MaxSteps {
			break
		}

		for _, e := range outgoingEdges(s) {
			entryPos := s.Position + s.MatchLen

			if seen, ok := nextSeen[e.target]; ok && seen.pos <= entryPos {
				continue
			}

			if s.State.Kind == graph.Repetition && e.target.Kind == graph.Repetition {
				if zeroWidthCycle(s, e.target) {
					continue
				}
			}

			length, ok := evalMatch(s, e.target, text, entryPos)
			if !ok {
				continue
			}

			counter, ok := nextRepCounter(s, e.target, e.kind)
			if !ok {
				continue
			}

			newStep := &Step{
				State:      e.target,
				Position:   entryPos,
				MatchLen:   length,
				RepCounter: counter,
				Prev:       s,
				StepNo:     stepNo,
			}
			stepNo++
			applyCaptures(text, newStep)

			if seen, ok := nextSeen[e.target]; ok {
				// A strictly better candidate for a target already
				// queued this wavefront: replace it in place rather
				// than letting both ride into the next pass.
				next[seen.idx] = newStep
				nextSeen[e.target] = seenEntry{pos: entryPos, idx: seen.idx}
			} else {
				nextSeen[e.target] = seenEntry{pos: entryPos, idx: len(next)}
				next = append(next, newStep)
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return &Match{Start: pos, Text: text[pos:best.Position], tail: best}, true
}

// FindAll scans text left to right, attempting a match at each position.
// After a successful match it advances past the matched span (or by one
// character on an empty match, to guarantee progress); otherwise it
// advances by one character.
func FindAll(g *graph.Graph, text string, limits Limits) []*Match {
	var matches []*Match
	pos := 0
	for pos <= len(text) {
		m, ok := MatchAt(g, text, pos, limits)
		if ok {
			matches = append(matches, m)
			if len(m.Text) == 0 {
				pos++
			} else {
				pos = pos + len(m.Text)
			}
			continue
		}
		pos++
	}
	return matches
}
