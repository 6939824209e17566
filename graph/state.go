// Package graph holds the NFA's node arena: the typed state variant, its
// three edge lists, and the ordered collection that owns every state in a
// compiled pattern. States are created once by the parser and never
// mutated once simulation starts.
package graph

import "unicode/utf8"

// Kind tags the variant a State implements. One tag, one dispatch point —
// no subclassing.
type Kind int

const (
	Literal Kind = iota
	MultiMatch
	NegativeMultiMatch
	MatchAll
	UnicodeClass
	BackReference
	Boundary
	Repetition
	Expression
	End
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case MultiMatch:
		return "multi_match"
	case NegativeMultiMatch:
		return "negative_multi_match"
	case MatchAll:
		return "match_all"
	case UnicodeClass:
		return "unicode_class"
	case BackReference:
		return "back_reference"
	case Boundary:
		return "boundary"
	case Repetition:
		return "repetition"
	case Expression:
		return "expression"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// BoundaryKind is the anchor kind carried by a Boundary state.
type BoundaryKind int

const (
	LineStart BoundaryKind = iota
	LineEnd
	WordBoundary
	NotWordBoundary
	TextStart
	TextEnd
)

// UnicodeClassPredicate answers whether a rune belongs to a named Unicode
// category/block/script, per spec.md §6's oracle contracts.
type UnicodeClassPredicate func(r rune) bool

// State is a single NFA node, tagged by Kind, carrying only the fields
// relevant to its variant.
type State struct {
	ID    int
	Kind  Kind
	Label string

	// Literal holds the exact text a Literal state must match.
	Literal string

	// MatchValues holds the rune set for MultiMatch / NegativeMultiMatch.
	MatchValues map[rune]struct{}

	// UnicodePredicate backs UnicodeClass states. Negated inverts it.
	UnicodePredicate UnicodeClassPredicate
	Negated          bool

	// BackRefGroup names the group a BackReference state resolves.
	BackRefGroup int

	// BoundaryKind selects the anchor predicate for Boundary states.
	BoundaryKind BoundaryKind

	// Min/Max bound a Repetition state's loop count.
	Min int
	Max int

	// Edge lists.
	Out      []*State
	Loop     []*State // only meaningful on Repetition states
	LoopBack []*State // on body-exit states, pointing back to a Repetition

	// Group bookkeeping: which group numbers open/close at this state.
	GroupStart map[int]struct{}
	GroupEnd   map[int]struct{}
}

// Unbounded is the sentinel used for a quantifier with no explicit upper
// bound ({m,}, *, +).
const Unbounded = 999999999

func newState(id int, kind Kind) *State {
	return &State{
		ID:         id,
		Kind:       kind,
		GroupStart: map[int]struct{}{},
		GroupEnd:   map[int]struct{}{},
	}
}

// AddOut appends an ordinary forward edge.
func (s *State) AddOut(target *State) {
	s.Out = append(s.Out, target)
}

// AddLoop appends a loop edge (Repetition states only): taking it resets
// the body's repetition counter.
func (s *State) AddLoop(target *State) {
	s.Loop = append(s.Loop, target)
}

// AddLoopBack appends a loop-back edge on a repetition body's exit state,
// pointing back to the Repetition node; taking it increments the counter.
func (s *State) AddLoopBack(target *State) {
	s.LoopBack = append(s.LoopBack, target)
}

// MarkGroupStart records that group g opens at this state.
func (s *State) MarkGroupStart(g int) {
	s.GroupStart[g] = struct{}{}
}

// MarkGroupEnd records that group g closes at this state.
func (s *State) MarkGroupEnd(g int) {
	s.GroupEnd[g] = struct{}{}
}

// IsZeroWidth reports whether a state consumes no input on entry.
func (s *State) IsZeroWidth() bool {
	switch s.Kind {
	case Boundary, Repetition, Expression, End:
		return true
	default:
		return false
	}
}

// IsMatched evaluates the state's match predicate for ordinary (non
// back-reference) states. text is the full input; pos is the candidate
// entry position.
func (s *State) IsMatched(text string, pos int) bool {
	switch s.Kind {
	case Literal:
		return len(text)-pos >= len(s.Literal) && text[pos:pos+len(s.Literal)] == s.Literal

	case MultiMatch:
		if pos >= len(text) {
			return false
		}
		r := runeAt(text, pos)
		_, ok := s.MatchValues[r]
		return ok

	case NegativeMultiMatch:
		if pos >= len(text) {
			return false
		}
		r := runeAt(text, pos)
		_, ok := s.MatchValues[r]
		return !ok

	case MatchAll:
		return pos < len(text)

	case UnicodeClass:
		if pos >= len(text) {
			return false
		}
		r := runeAt(text, pos)
		matched := s.UnicodePredicate != nil && s.UnicodePredicate(r)
		if s.Negated {
			return !matched
		}
		return matched

	case Boundary:
		return s.matchBoundary(text, pos)

	case Repetition, Expression, End:
		return true

	default:
		return false
	}
}

// MatchLen returns how many bytes of text this state consumes when it
// matches at pos. Zero-width states always return 0; back-references are
// resolved separately by the matcher since they need captured-group text.
func (s *State) MatchLen(text string, pos int) int {
	switch s.Kind {
	case Literal:
		return len(s.Literal)
	case MultiMatch, NegativeMultiMatch, MatchAll, UnicodeClass:
		if pos >= len(text) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		return size
	default:
		return 0
	}
}

// matchBoundary evaluates the anchor kinds. ^ and $ additionally match
// immediately after/before a line break, not just at the absolute
// start/end of text — unlike \A and \Z, which only match the true text
// boundary (original_source/src/state_machine.py's BoundaryState).
func (s *State) matchBoundary(text string, pos int) bool {
	switch s.BoundaryKind {
	case TextStart:
		return pos == 0
	case TextEnd:
		return pos == len(text)
	case LineStart:
		if pos == 0 {
			return true
		}
		return isLineBreakByte(text[pos-1])
	case LineEnd:
		if pos == len(text) {
			return true
		}
		return isLineBreakByte(text[pos])
	case WordBoundary:
		return isWordBoundary(text, pos)
	case NotWordBoundary:
		return !isWordBoundary(text, pos)
	default:
		return false
	}
}

func isLineBreakByte(b byte) bool {
	return b == '\n' || b == '\r'
}

func isWordBoundary(text string, pos int) bool {
	before := pos > 0 && isWordByte(text[pos-1])
	after := pos < len(text) && isWordByte(text[pos])
	return before != after
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// runeAt decodes the rune starting at byte offset pos.
func runeAt(text string, pos int) rune {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return r
}
