package graph

import "fmt"

// Graph is the ordered arena of states produced by a single parse. It owns
// every State's lifetime and allocates group numbers monotonically
// starting at 1 (group 0 is reserved for the whole match).
type Graph struct {
	states    []*State
	Entry     *State
	nextGroup int
}

// New returns an empty Graph ready to have states appended to it.
func New() *Graph {
	return &Graph{nextGroup: 1}
}

// NewState allocates and appends a state of the given kind to the graph.
func (g *Graph) NewState(kind Kind) *State {
	s := newState(len(g.states), kind)
	g.states = append(g.states, s)
	return s
}

// NextGroup returns the next unused capture-group number and advances the
// allocator.
func (g *Graph) NextGroup() int {
	n := g.nextGroup
	g.nextGroup++
	return n
}

// GroupCount returns how many capture groups were allocated (not counting
// group 0, the whole match).
func (g *Graph) GroupCount() int {
	return g.nextGroup - 1
}

// States returns every state in allocation order, for debugging and tests.
func (g *Graph) States() []*State {
	return g.states
}

// Dump renders a textual representation of the graph: one line per state
// naming its kind, label, and outgoing edges by target index. Debugging
// only — never parsed back.
func (g *Graph) Dump() string {
	out := ""
	for _, s := range g.states {
		out += fmt.Sprintf("#%d %s", s.ID, s.Kind)
		if s.Label != "" {
			out += fmt.Sprintf(" %q", s.Label)
		}
		if len(s.GroupStart) > 0 {
			out += fmt.Sprintf(" group_start=%v", keys(s.GroupStart))
		}
		if len(s.GroupEnd) > 0 {
			out += fmt.Sprintf(" group_end=%v", keys(s.GroupEnd))
		}
		out += fmt.Sprintf(" out=%v", ids(s.Out))
		if len(s.Loop) > 0 {
			out += fmt.Sprintf(" loop=%v", ids(s.Loop))
		}
		if len(s.LoopBack) > 0 {
			out += fmt.Sprintf(" loop_back=%v", ids(s.LoopBack))
		}
		out += "\n"
	}
	return out
}

func ids(states []*State) []int {
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = s.ID
	}
	return out
}

func keys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
