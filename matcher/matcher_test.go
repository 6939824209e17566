package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkanaya/rxmatch-go/graph"
	"github.com/devkanaya/rxmatch-go/parser"
)

func mustCompile(t *testing.T, pattern string) *graph.Graph {
	t.Helper()
	g, err := parser.Parse(pattern)
	require.NoError(t, err, "Parse(%q)", pattern)
	return g
}

func TestMatchAtLiteral(t *testing.T) {
	g := mustCompile(t, "abc")
	m, ok := MatchAt(g, "xabcx", 1, DefaultLimits())
	require.True(t, ok)
	assert.Equal(t, "abc", m.Text)
}

func TestMatchAtFailsWhenNoMatch(t *testing.T) {
	g := mustCompile(t, "abc")
	_, ok := MatchAt(g, "xyz", 0, DefaultLimits())
	assert.False(t, ok)
}

func TestFindAllNonOverlapping(t *testing.T) {
	g := mustCompile(t, "ab")
	matches := FindAll(g, "ababab", DefaultLimits())
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Equal(t, "ab", m.Text)
	}
}

func TestFindAllAdvancesOnEmptyMatch(t *testing.T) {
	g := mustCompile(t, "a*")
	// Every position matches the empty string since a* accepts zero a's.
	matches := FindAll(g, "bb", DefaultLimits())
	assert.Len(t, matches, 3)
}

func TestQuantifierMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string
	}{
		{"greedy plus picks longest", "a+", "aaab", "aaa"},
		{"bounded quantifier caps at max", "a{2,3}", "aaaa", "aaa"},
		{"zero-zero quantifier matches nothing", "a{0,0}b", "b", "b"},
		{"char class plus", "[0-9]+", "42x", "42"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustCompile(t, tc.pattern)
			m, ok := MatchAt(g, tc.text, 0, DefaultLimits())
			require.True(t, ok)
			assert.Equal(t, tc.want, m.Text)
		})
	}
}

func TestCaptureGroupRecovery(t *testing.T) {
	g := mustCompile(t, `(a+)b`)
	m, ok := MatchAt(g, "aaab", 0, DefaultLimits())
	require.True(t, ok)
	got, found := m.Group(1)
	require.True(t, found)
	assert.Equal(t, "aaa", got)
}

func TestSingleStateGroupBodyCaptures(t *testing.T) {
	g := mustCompile(t, `(\d)`)
	m, ok := MatchAt(g, "5", 0, DefaultLimits())
	require.True(t, ok)
	got, found := m.Group(1)
	require.True(t, found)
	assert.Equal(t, "5", got)
}

func TestBackReferenceMatches(t *testing.T) {
	g := mustCompile(t, `(abc)\1`)
	m, ok := MatchAt(g, "abcabc", 0, DefaultLimits())
	require.True(t, ok)
	assert.Equal(t, "abcabc", m.Text)
}

func TestBackReferenceFailsOnMismatch(t *testing.T) {
	g := mustCompile(t, `(abc)\1`)
	_, ok := MatchAt(g, "abcxyz", 0, DefaultLimits())
	assert.False(t, ok)
}

func TestAlternation(t *testing.T) {
	g := mustCompile(t, "cat|dog")
	m, ok := MatchAt(g, "dog", 0, DefaultLimits())
	require.True(t, ok)
	assert.Equal(t, "dog", m.Text)
}

func TestAntiRunawayNestedStarAlternationTerminates(t *testing.T) {
	g := mustCompile(t, "(.*|.*)*")
	m, ok := MatchAt(g, "aaaa", 0, DefaultLimits())
	require.True(t, ok, "expected a match (even if empty) without hanging")
	assert.Equal(t, 0, m.Start)
}

func TestWordBoundaryMatching(t *testing.T) {
	g := mustCompile(t, `\bcat\b`)
	matches := FindAll(g, "a cat sat", DefaultLimits())
	require.Len(t, matches, 1)
	assert.Equal(t, "cat", matches[0].Text)
}

func TestLineAnchorMatchesBeforeEmbeddedNewline(t *testing.T) {
	g := mustCompile(t, "a$")
	m, ok := MatchAt(g, "a\nb", 0, DefaultLimits())
	require.True(t, ok, "expected $ to match immediately before an embedded newline")
	assert.Equal(t, "a", m.Text)
}

func TestTextEndAnchorDoesNotMatchBeforeEmbeddedNewline(t *testing.T) {
	g := mustCompile(t, `a\Z`)
	_, ok := MatchAt(g, "a\nb", 0, DefaultLimits())
	assert.False(t, ok, "expected \\Z to require the true end of text, not a line break")
}

// TestDuplicatePathPruningKeepsBestCandidate exercises the scenario the
// nextSeen dedup exists for: two alternative paths converge on the same
// state within one wavefront, one having consumed less of the input than
// the other. Only the better (shorter) arrival should survive to drive
// the rest of the match, so the engine still finds the overall longest
// overall match rather than following a worse duplicate into a dead end.
func TestDuplicatePathPruningKeepsBestCandidate(t *testing.T) {
	g := mustCompile(t, "(a|aa)a+")
	m, ok := MatchAt(g, "aaaa", 0, DefaultLimits())
	require.True(t, ok)
	assert.Equal(t, "aaaa", m.Text)
}
