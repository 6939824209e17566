// Package unicodeclass implements the external oracle contracts spec.md
// §6 assigns to Unicode category/block/script lookups. It is a thin
// adapter over the standard library's unicode package, which carries the
// same category/script tables regexp/syntax itself builds \p{...} support
// on — the pack's retrieval set has no third-party alternative for this
// concern (see DESIGN.md).
package unicodeclass

import "unicode"

// Type classifies what kind of name was resolved.
type Type int

const (
	Unknown Type = iota
	ShortCategory
	LongCategory
	LongSubcategory
	Block
	Script
)

// longCategoryNames maps the long-form category names the \p{Name} syntax
// commonly uses to their short two-letter codes.
var longCategoryNames = map[string]string{
	"Letter":      "L",
	"Mark":        "M",
	"Number":      "N",
	"Punctuation": "P",
	"Symbol":      "S",
	"Separator":   "Z",
	"Other":       "C",
}

// categoryHierarchy maps a short top-level category code to the set of
// subcategory codes the standard library exposes under unicode.Categories.
var categoryHierarchy = func() map[string]map[string]struct{} {
	h := map[string]map[string]struct{}{}
	for name := range unicode.Categories {
		if len(name) != 2 {
			continue
		}
		top := name[:1]
		if h[top] == nil {
			h[top] = map[string]struct{}{}
		}
		h[top][name] = struct{}{}
	}
	return h
}()

// NameToType resolves a \p{Name} body to the kind of oracle lookup it
// should dispatch to.
func NameToType(name string) Type {
	if _, ok := unicode.Categories[name]; ok {
		if len(name) == 1 {
			return ShortCategory
		}
		return LongSubcategory
	}
	if _, ok := longCategoryNames[name]; ok {
		return LongCategory
	}
	if _, ok := Blocks[name]; ok {
		return Block
	}
	if _, ok := unicode.Scripts[name]; ok {
		return Script
	}
	return Unknown
}

// CategoryHierarchy returns the subcategory codes nested under a short
// top-level category code (e.g. "L" -> {"Lu", "Ll", "Lt", ...}).
func CategoryHierarchy(short string) (map[string]struct{}, bool) {
	set, ok := categoryHierarchy[short]
	return set, ok
}

// LongToShortCategory resolves a long category name ("Letter") to its
// short code ("L").
func LongToShortCategory(long string) (string, bool) {
	short, ok := longCategoryNames[long]
	return short, ok
}

// Predicate builds the membership test a \p{Name} / \P{Name} atom needs.
// It tries, in order: an exact unicode.Categories entry (covers both
// single-letter top categories and two-letter subcategories), a long
// category name, a Unicode block, then a script name.
func Predicate(name string) (func(r rune) bool, bool) {
	if rt, ok := unicode.Categories[name]; ok {
		return func(r rune) bool { return unicode.Is(rt, r) }, true
	}
	if short, ok := longCategoryNames[name]; ok {
		rt := unicode.Categories[short]
		return func(r rune) bool { return unicode.Is(rt, r) }, true
	}
	if lo, hi, ok := BlockRange(name); ok {
		return func(r rune) bool { return r >= lo && r <= hi }, true
	}
	if rt, ok := unicode.Scripts[name]; ok {
		return func(r rune) bool { return unicode.Is(rt, r) }, true
	}
	return nil, false
}

// CharScript returns the name of the script r belongs to, or "" if none of
// the known scripts claim it.
func CharScript(r rune) string {
	for name, rt := range unicode.Scripts {
		if unicode.Is(rt, r) {
			return name
		}
	}
	return ""
}

// CharCategory returns the short two-letter subcategory code for r (e.g.
// "Lu" for an uppercase letter), or "" if none match.
func CharCategory(r rune) string {
	for name, rt := range unicode.Categories {
		if len(name) == 2 && unicode.Is(rt, r) {
			return name
		}
	}
	return ""
}
