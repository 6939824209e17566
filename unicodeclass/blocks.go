package unicodeclass

// Blocks is a curated subset of the Unicode block ranges — the standard
// library does not carry Blocks the way it carries Categories and
// Scripts, so this table is the hand-rolled oracle spec.md §6 describes
// as unicode_blocks[name] -> (lo, hi). It covers common Basic
// Multilingual Plane blocks plus the Emoticons block.
var Blocks = map[string][2]rune{
	"BasicLatin":           {0x0000, 0x007F},
	"Latin-1Supplement":    {0x0080, 0x00FF},
	"LatinExtended-A":      {0x0100, 0x017F},
	"LatinExtended-B":      {0x0180, 0x024F},
	"IPAExtensions":        {0x0250, 0x02AF},
	"GreekAndCoptic":       {0x0370, 0x03FF},
	"Cyrillic":             {0x0400, 0x04FF},
	"Hebrew":               {0x0590, 0x05FF},
	"Arabic":               {0x0600, 0x06FF},
	"Devanagari":           {0x0900, 0x097F},
	"Thai":                 {0x0E00, 0x0E7F},
	"Georgian":             {0x10A0, 0x10FF},
	"HangulJamo":           {0x1100, 0x11FF},
	"GeneralPunctuation":   {0x2000, 0x206F},
	"CurrencySymbols":      {0x20A0, 0x20CF},
	"LetterlikeSymbols":    {0x2100, 0x214F},
	"Arrows":               {0x2190, 0x21FF},
	"MathematicalOperators": {0x2200, 0x22FF},
	"BoxDrawing":           {0x2500, 0x257F},
	"CJKSymbolsAndPunctuation": {0x3000, 0x303F},
	"Hiragana":             {0x3040, 0x309F},
	"Katakana":             {0x30A0, 0x30FF},
	"CJKUnifiedIdeographs": {0x4E00, 0x9FFF},
	"HangulSyllables":      {0xAC00, 0xD7A3},
	"CJKCompatibilityIdeographs": {0xF900, 0xFAFF},
	"Emoticons":            {0x1F600, 0x1F64F},
}

// BlockRange looks up a block's [lo, hi] code-point range by name.
func BlockRange(name string) (lo, hi rune, ok bool) {
	r, ok := Blocks[name]
	if !ok {
		return 0, 0, false
	}
	return r[0], r[1], true
}
