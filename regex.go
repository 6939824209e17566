// Package rxmatch is the facade: pattern text in, compiled Regex out,
// matches out. It wires the token, graph, parser, and matcher packages
// together behind the small surface spec.md §6 describes.
package rxmatch

import (
	"github.com/devkanaya/rxmatch-go/graph"
	"github.com/devkanaya/rxmatch-go/matcher"
	"github.com/devkanaya/rxmatch-go/parser"
)

// Match is a single match: its start position, matched text, and group
// recovery.
type Match struct {
	Start int
	Text  string
	inner *matcher.Match
}

// Group returns the text captured by group n (0 is the whole match), and
// whether that group participated in the match at all.
func (m *Match) Group(n int) (string, bool) {
	if m.inner == nil {
		if n == 0 {
			return m.Text, true
		}
		return "", false
	}
	return m.inner.Group(n)
}

// Regex is a compiled pattern, ready to match against input text. The
// underlying graph is read-only once compiled, so a Regex may be shared
// across goroutines (spec.md §5).
type Regex struct {
	pattern string
	g       *graph.Graph
	limits  matcher.Limits
}

// Compile parses pattern and returns a ready-to-use Regex, or the parse
// diagnostic if the pattern is malformed. There is no partial compilation
// on error.
func Compile(pattern string) (*Regex, error) {
	g, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, g: g, limits: matcher.DefaultLimits()}, nil
}

// WithLimits returns a copy of r whose match attempts are bounded by
// limits (spec.md §5's external bounded-work hook).
func (r *Regex) WithLimits(limits matcher.Limits) *Regex {
	clone := *r
	clone.limits = limits
	return &clone
}

// String returns the original pattern text the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

func wrap(m *matcher.Match) *Match {
	return &Match{Start: m.Start, Text: m.Text, inner: m}
}

// MatchFirst scans text left to right and returns the first match found,
// or none.
func (r *Regex) MatchFirst(text string) (*Match, bool) {
	for pos := 0; pos <= len(text); pos++ {
		if m, ok := matcher.MatchAt(r.g, text, pos, r.limits); ok {
			return wrap(m), true
		}
	}
	return nil, false
}

// MatchAt attempts a match anchored exactly at pos, returning the longest
// one found there, or none.
func (r *Regex) MatchAt(text string, pos int) (*Match, bool) {
	m, ok := matcher.MatchAt(r.g, text, pos, r.limits)
	if !ok {
		return nil, false
	}
	return wrap(m), true
}

// MatchAll returns every non-overlapping match in text, in textual order.
func (r *Regex) MatchAll(text string) []*Match {
	inner := matcher.FindAll(r.g, text, r.limits)
	out := make([]*Match, len(inner))
	for i, m := range inner {
		out[i] = wrap(m)
	}
	return out
}

// IsMatch reports whether text contains any match.
func (r *Regex) IsMatch(text string) bool {
	_, ok := r.MatchFirst(text)
	return ok
}

// Dump renders the compiled graph's textual representation, for debugging
// only (spec.md §6).
func (r *Regex) Dump() string {
	return r.g.Dump()
}

// GroupCount returns how many capture groups the pattern declared.
func (r *Regex) GroupCount() int {
	return r.g.GroupCount()
}
