// Package parser lowers a token stream into an NFA graph via recursive
// descent over expression -> term -> factor -> atom. Each production
// returns a fragment: the entry state to splice upstream edges into, and
// the set of exit states the next fragment's entry should be wired onto.
package parser

import (
	"strconv"
	"strings"

	"github.com/devkanaya/rxmatch-go/graph"
	"github.com/devkanaya/rxmatch-go/token"
	"github.com/devkanaya/rxmatch-go/unicodeclass"
)

// fragment is the (entry, exits) pair every production returns.
type fragment struct {
	entry *graph.State
	exits []*graph.State
}

// Parser drives a token.Tokenizer and wires states into a graph.Graph.
type Parser struct {
	pattern string
	tok     *token.Tokenizer
	cur     token.Token
	g       *graph.Graph
}

// New creates a Parser over pattern. Call Parse to build the graph.
func New(pattern string) *Parser {
	p := &Parser{
		pattern: pattern,
		tok:     token.New(pattern),
		g:       graph.New(),
	}
	p.cur = p.tok.Next()
	return p
}

// Parse compiles the pattern into a graph. On error, the partial graph is
// discarded — there is no partial compilation.
func Parse(pattern string) (*graph.Graph, error) {
	p := New(pattern)
	if p.cur.Kind == token.End {
		// An empty pattern compiles to a lone End state, which matches the
		// empty string at any position.
		p.g.Entry = p.g.NewState(graph.End)
		return p.g, nil
	}
	frag, err := p.expression(true)
	if err != nil {
		return nil, err
	}
	p.g.Entry = frag.entry
	return p.g, nil
}

func (p *Parser) advance() token.Token {
	t := p.cur
	p.cur = p.tok.Next()
	return t
}

func (p *Parser) isMeta(lexeme string) bool {
	return p.cur.Kind == token.Meta && p.cur.Lexeme == lexeme
}

// expression ::= term ('|' term)*
func (p *Parser) expression(atTop bool) (fragment, error) {
	first, err := p.term()
	if err != nil {
		return fragment{}, err
	}

	alts := []fragment{first}
	for p.isMeta("|") {
		p.advance()
		next, err := p.term()
		if err != nil {
			return fragment{}, err
		}
		alts = append(alts, next)
	}

	var result fragment
	if len(alts) == 1 {
		result = alts[0]
	} else {
		altState := p.g.NewState(graph.Expression)
		var exits []*graph.State
		for _, a := range alts {
			altState.AddOut(a.entry)
			exits = append(exits, a.exits...)
		}
		result = fragment{entry: altState, exits: exits}
	}

	if atTop {
		if p.cur.Kind != token.End {
			return fragment{}, syntaxErrorf(p.cur.Pos, ErrExpectedCloseParen, "unexpected %q", p.cur.Lexeme)
		}
		end := p.g.NewState(graph.End)
		for _, e := range result.exits {
			e.AddOut(end)
		}
		result.exits = []*graph.State{end}
	}

	return result, nil
}

// term ::= factor+
func (p *Parser) term() (fragment, error) {
	left, err := p.factor()
	if err != nil {
		return fragment{}, err
	}

	for p.cur.Kind != token.End && !p.isMeta("|") && !p.isMeta(")") {
		right, err := p.factor()
		if err != nil {
			return fragment{}, err
		}
		for _, e := range left.exits {
			e.AddOut(right.entry)
		}
		left.exits = right.exits
	}

	return left, nil
}

// factor ::= atom quantifier?
func (p *Parser) factor() (fragment, error) {
	a, err := p.atom()
	if err != nil {
		return fragment{}, err
	}

	// A quantifier following another one (the '?' of ".*?") wraps the
	// repetition already built in a further repetition.
	for {
		min, max, hasQuant, err := p.tryQuantifier()
		if err != nil {
			return fragment{}, err
		}
		if !hasQuant {
			return a, nil
		}

		rep := p.g.NewState(graph.Repetition)
		rep.Min, rep.Max = min, max
		rep.AddLoop(a.entry)
		for _, e := range a.exits {
			e.AddLoopBack(rep)
		}

		a = fragment{entry: rep, exits: []*graph.State{rep}}
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// tryQuantifier consumes a quantifier if one is present at the current
// position, returning (min, max, true, nil) on success.
func (p *Parser) tryQuantifier() (int, int, bool, error) {
	switch {
	case p.isMeta("+"):
		p.advance()
		return 1, graph.Unbounded, true, nil

	case p.isMeta("*"):
		p.advance()
		return 0, graph.Unbounded, true, nil

	case p.isMeta("?"):
		p.advance()
		return 0, 1, true, nil

	case p.isMeta("{"):
		return p.parseBoundedQuantifier()

	default:
		return 0, 0, false, nil
	}
}

// parseBoundedQuantifier parses {m}, {m,}, {,n}, {m,n} after the opening
// '{' has been identified but not yet consumed.
func (p *Parser) parseBoundedQuantifier() (int, int, bool, error) {
	openPos := p.cur.Pos
	p.advance() // consume '{'

	minStr := ""
	if p.cur.Kind == token.String {
		minStr = p.cur.Lexeme
		p.advance()
	}

	hasComma := false
	maxStr := ""
	if p.isMeta(",") {
		hasComma = true
		p.advance()
		if p.cur.Kind == token.String {
			maxStr = p.cur.Lexeme
			p.advance()
		}
	}

	if !p.isMeta("}") {
		if p.cur.Kind == token.End {
			return 0, 0, false, syntaxErrorf(p.cur.Pos, ErrExpectedCloseBrace, "} expected")
		}
		return 0, 0, false, syntaxErrorf(p.cur.Pos, ErrBadQuantifierBound, "non-numeric quantifier bound")
	}
	p.advance() // consume '}'

	if minStr == "" && !hasComma {
		// Bare "{}" is not a quantifier; nothing to report this as the
		// caller already dispatched on a leading '{', so this is a
		// genuine malformed bound.
		return 0, 0, false, syntaxErrorf(openPos, ErrBadQuantifierBound, "non-numeric quantifier bound")
	}
	if minStr == "" && hasComma && maxStr == "" {
		// Bare "{,}" is explicitly rejected (spec.md open question #2).
		return 0, 0, false, syntaxErrorf(openPos, ErrBadQuantifierBound, "{,} is not a valid quantifier")
	}
	if minStr != "" && !isAllDigits(minStr) {
		return 0, 0, false, syntaxErrorf(openPos, ErrBadQuantifierBound, "non-numeric quantifier bound %q", minStr)
	}
	if maxStr != "" && !isAllDigits(maxStr) {
		return 0, 0, false, syntaxErrorf(openPos, ErrBadQuantifierBound, "non-numeric quantifier bound %q", maxStr)
	}

	min := 0
	if minStr != "" {
		min, _ = strconv.Atoi(minStr)
	}

	max := min
	if hasComma {
		if maxStr != "" {
			max, _ = strconv.Atoi(maxStr)
		} else {
			max = graph.Unbounded
		}
	}

	return min, max, true, nil
}

// atom ::= literal | '.' | escape | '(' expression ')' | '[' class ']' |
//
//	back-reference | anchor
func (p *Parser) atom() (fragment, error) {
	tok := p.cur

	switch tok.Kind {
	case token.End:
		return fragment{}, syntaxErrorf(tok.Pos, ErrUnexpectedEnd, "unexpected end of pattern")

	case token.Error:
		return fragment{}, p.tokenError(tok)

	case token.String:
		p.advance()
		return p.buildLiteral(tok.Lexeme), nil

	case token.Meta:
		return p.atomMeta(tok)

	case token.Escaped:
		p.advance()
		return p.atomEscape(tok)

	case token.Hex:
		p.advance()
		v, _ := strconv.ParseUint(tok.Lexeme, 16, 8)
		return p.buildLiteral(string([]byte{byte(v)})), nil

	case token.Oct:
		p.advance()
		v, _ := strconv.ParseUint(tok.Lexeme, 8, 8)
		return p.buildLiteral(string([]byte{byte(v)})), nil

	case token.Unicode:
		p.advance()
		v, _ := strconv.ParseUint(tok.Lexeme, 16, 32)
		return p.buildLiteral(string(rune(v))), nil

	case token.BackReference:
		p.advance()
		n, err := strconv.Atoi(tok.Lexeme)
		if err != nil || n == 0 {
			return fragment{}, syntaxErrorf(tok.Pos, ErrInvalidBackReference, "invalid back-reference \\%s", tok.Lexeme)
		}
		return p.buildBackReference(n), nil

	default:
		return fragment{}, syntaxErrorf(tok.Pos, ErrUnsupportedEscape, "unexpected token %q", tok.Lexeme)
	}
}

func (p *Parser) tokenError(tok token.Token) error {
	sentinel := ErrUnsupportedEscape
	msg := strings.ToLower(tok.Lexeme)
	switch {
	case strings.Contains(msg, "end of pattern"):
		sentinel = ErrUnexpectedEnd
	case strings.Contains(msg, "hex"):
		sentinel = ErrUnsupportedEscape
	case strings.Contains(msg, "oct"):
		sentinel = ErrUnsupportedEscape
	case strings.Contains(msg, "unicode"):
		sentinel = ErrUnsupportedEscape
	}
	return syntaxErrorf(tok.Pos, sentinel, "%s", tok.Lexeme)
}

func (p *Parser) atomMeta(tok token.Token) (fragment, error) {
	switch tok.Lexeme {
	case ".":
		p.advance()
		return p.buildMatchAll(), nil

	case "(":
		p.advance()
		return p.parseGroup()

	case "[":
		// The tokenizer's cursor is already positioned right after '[';
		// switch to class mode before reading the next token so set
		// elements, ranges, and the leading '^' negation are recognized.
		p.tok.EnterClass()
		p.cur = p.tok.Next()
		return p.parseCharClass()

	case "^":
		p.advance()
		return p.buildBoundary(graph.LineStart), nil

	case "$":
		p.advance()
		return p.buildBoundary(graph.LineEnd), nil

	case "-", ",":
		// Outside a character set and a quantifier these carry no
		// structural meaning; treat them as ordinary literal characters.
		p.advance()
		return p.buildLiteral(tok.Lexeme), nil

	case "}":
		return fragment{}, syntaxErrorf(tok.Pos, ErrBraceBeforeBrace, "} before {")

	case ")":
		return fragment{}, syntaxErrorf(tok.Pos, ErrExpectedCloseParen, "unexpected )")

	default:
		return fragment{}, syntaxErrorf(tok.Pos, ErrUnsupportedEscape, "unexpected %q", tok.Lexeme)
	}
}

func (p *Parser) atomEscape(tok token.Token) (fragment, error) {
	lexeme := tok.Lexeme

	if strings.HasPrefix(lexeme, "p{") || strings.HasPrefix(lexeme, "P{") {
		negated := lexeme[0] == 'P'
		name := lexeme[2 : len(lexeme)-1]
		pred, ok := unicodeclass.Predicate(name)
		if !ok {
			return fragment{}, syntaxErrorf(tok.Pos, ErrUnknownUnicodeClass, "unknown unicode class %q", name)
		}
		return p.buildUnicodeClass(name, pred, negated), nil
	}

	switch lexeme {
	case "d":
		return p.buildMultiMatch("\\d", digitRunes(), false), nil
	case "D":
		return p.buildMultiMatch("\\D", digitRunes(), true), nil
	case "w":
		return p.buildMultiMatch("\\w", wordRunes(), false), nil
	case "W":
		return p.buildMultiMatch("\\W", wordRunes(), true), nil
	case "s":
		return p.buildMultiMatch("\\s", whitespaceRunes(), false), nil
	case "S":
		return p.buildMultiMatch("\\S", whitespaceRunes(), true), nil
	case "t":
		return p.buildLiteral("\t"), nil
	case "n":
		return p.buildLiteral("\n"), nil
	case "r":
		return p.buildLiteral("\r"), nil
	case "f":
		return p.buildLiteral("\f"), nil
	case "v":
		return p.buildLiteral("\v"), nil
	case "b":
		return p.buildBoundary(graph.WordBoundary), nil
	case "A":
		return p.buildBoundary(graph.TextStart), nil
	case "Z":
		return p.buildBoundary(graph.TextEnd), nil
	default:
		return fragment{}, syntaxErrorf(tok.Pos, ErrUnsupportedEscape, "unsupported escape \\%s", lexeme)
	}
}

// parseGroup handles '(' expression ')', already past the '('.
func (p *Parser) parseGroup() (fragment, error) {
	groupID := p.g.NextGroup()

	inner, err := p.expression(false)
	if err != nil {
		return fragment{}, err
	}

	if !p.isMeta(")") {
		return fragment{}, syntaxErrorf(p.cur.Pos, ErrExpectedCloseParen, ") expected")
	}
	p.advance()

	// A body whose entry is a repetition gets an extra Expression wrapper
	// to carry the GroupStart mark, so the repetition opens no group.
	// GroupEnd is still placed on every body exit, and a repetition that
	// is an exit of the body carries it.
	entry := inner.entry
	exits := inner.exits
	if entry.Kind == graph.Repetition {
		wrapper := p.g.NewState(graph.Expression)
		wrapper.AddOut(entry)
		entry = wrapper
	}

	entry.MarkGroupStart(groupID)
	for _, e := range exits {
		e.MarkGroupEnd(groupID)
	}

	return fragment{entry: entry, exits: exits}, nil
}

// parseCharClass handles '[' ... ']'. The tokenizer is already in class
// mode and p.cur already holds the first token inside the brackets.
func (p *Parser) parseCharClass() (fragment, error) {
	negated := false
	if p.isMeta("^") {
		negated = true
		p.advance()
	}

	values := map[rune]struct{}{}
	sawElement := false

	for !p.isMeta("]") {
		if p.cur.Kind == token.End {
			return fragment{}, syntaxErrorf(p.cur.Pos, ErrExpectedCloseBracket, "] expected")
		}

		switch p.cur.Kind {
		case token.SetElement:
			for _, r := range p.cur.Lexeme {
				values[r] = struct{}{}
			}
			sawElement = true
			p.advance()

		case token.RangeSetElement:
			lo := []rune(p.cur.Lexeme)[0]
			hi := []rune(p.cur.Lexeme)[2]
			for r := lo; r <= hi; r++ {
				values[r] = struct{}{}
			}
			sawElement = true
			p.advance()

		case token.EscapedSetElement:
			runes, negate, ok := expandSetEscape(p.cur.Lexeme)
			if !ok {
				return fragment{}, syntaxErrorf(p.cur.Pos, ErrUnsupportedEscape, "unsupported escape \\%s in class", p.cur.Lexeme)
			}
			if negate {
				// A negated shorthand inside a class contributes every
				// code point from 0 to 255 that is not in the base set;
				// code points above 255 are not added.
				for r := rune(0); r < 256; r++ {
					if _, in := runes[r]; !in {
						values[r] = struct{}{}
					}
				}
			} else {
				for r := range runes {
					values[r] = struct{}{}
				}
			}
			sawElement = true
			p.advance()

		case token.Hex:
			v, _ := strconv.ParseUint(p.cur.Lexeme, 16, 8)
			values[rune(v)] = struct{}{}
			sawElement = true
			p.advance()

		case token.Oct:
			v, _ := strconv.ParseUint(p.cur.Lexeme, 8, 8)
			values[rune(v)] = struct{}{}
			sawElement = true
			p.advance()

		case token.Unicode:
			v, _ := strconv.ParseUint(p.cur.Lexeme, 16, 32)
			values[rune(v)] = struct{}{}
			sawElement = true
			p.advance()

		default:
			return fragment{}, syntaxErrorf(p.cur.Pos, ErrSetElementExpected, "set element expected")
		}
	}

	if !sawElement {
		return fragment{}, syntaxErrorf(p.cur.Pos, ErrSetElementExpected, "set element expected")
	}

	// Leave class mode before reading past ']' so the following token
	// (a quantifier, say) is recognized in normal mode.
	p.tok.ExitClass()
	p.advance() // consume ']'

	kind := graph.MultiMatch
	if negated {
		kind = graph.NegativeMultiMatch
	}
	s := p.g.NewState(kind)
	s.MatchValues = values
	s.Label = "[...]"
	return fragment{entry: s, exits: []*graph.State{s}}, nil
}

func (p *Parser) buildLiteral(s string) fragment {
	st := p.g.NewState(graph.Literal)
	st.Literal = s
	st.Label = s
	return fragment{entry: st, exits: []*graph.State{st}}
}

func (p *Parser) buildMatchAll() fragment {
	st := p.g.NewState(graph.MatchAll)
	st.Label = "."
	return fragment{entry: st, exits: []*graph.State{st}}
}

func (p *Parser) buildMultiMatch(label string, values map[rune]struct{}, negated bool) fragment {
	kind := graph.MultiMatch
	if negated {
		kind = graph.NegativeMultiMatch
	}
	st := p.g.NewState(kind)
	st.MatchValues = values
	st.Label = label
	return fragment{entry: st, exits: []*graph.State{st}}
}

func (p *Parser) buildUnicodeClass(name string, pred graph.UnicodeClassPredicate, negated bool) fragment {
	st := p.g.NewState(graph.UnicodeClass)
	st.UnicodePredicate = pred
	st.Negated = negated
	st.Label = name
	return fragment{entry: st, exits: []*graph.State{st}}
}

func (p *Parser) buildBoundary(kind graph.BoundaryKind) fragment {
	st := p.g.NewState(graph.Boundary)
	st.BoundaryKind = kind
	return fragment{entry: st, exits: []*graph.State{st}}
}

func (p *Parser) buildBackReference(groupID int) fragment {
	st := p.g.NewState(graph.BackReference)
	st.BackRefGroup = groupID
	return fragment{entry: st, exits: []*graph.State{st}}
}
