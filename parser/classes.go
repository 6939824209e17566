package parser

// digitRunes, wordRunes, and whitespaceRunes implement the canonical
// shorthand character sets spec.md §4.3 names: \d is 0-9; \w is digits
// union lower/upper ASCII letters union underscore; \s is ASCII
// whitespace. \D \W \S are their complements (spec.md §9 open question 1:
// this engine treats the uppercase forms as complements of the lowercase
// ones rather than leaving them as inert tokenizer-only escapes).

func digitRunes() map[rune]struct{} {
	return runeSet("0123456789")
}

func wordRunes() map[rune]struct{} {
	return runeSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_")
}

func whitespaceRunes() map[rune]struct{} {
	return runeSet(" \t\n\r\f\v")
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// expandSetEscape resolves an EscapedSetElement's lexeme to the runes it
// contributes to an enclosing character class. negate reports whether the
// caller must complement the returned set (for \D \W \S).
func expandSetEscape(lexeme string) (set map[rune]struct{}, negate bool, ok bool) {
	switch lexeme {
	case "d":
		return digitRunes(), false, true
	case "D":
		return digitRunes(), true, true
	case "w":
		return wordRunes(), false, true
	case "W":
		return wordRunes(), true, true
	case "s":
		return whitespaceRunes(), false, true
	case "S":
		return whitespaceRunes(), true, true
	case "t":
		return runeSet("\t"), false, true
	case "n":
		return runeSet("\n"), false, true
	case "r":
		return runeSet("\r"), false, true
	case "f":
		return runeSet("\f"), false, true
	case "v":
		return runeSet("\v"), false, true
	}

	if len(lexeme) == 1 {
		// A self-escaped literal (\], \-, \\, ...).
		return runeSet(lexeme), false, true
	}

	return nil, false, false
}
