package unicodeclass

import "testing"

func TestNameToTypeShortCategory(t *testing.T) {
	if NameToType("L") != ShortCategory {
		t.Fatalf("expected ShortCategory for L")
	}
}

func TestNameToTypeLongSubcategory(t *testing.T) {
	if NameToType("Lu") != LongSubcategory {
		t.Fatalf("expected LongSubcategory for Lu")
	}
}

func TestNameToTypeLongCategory(t *testing.T) {
	if NameToType("Letter") != LongCategory {
		t.Fatalf("expected LongCategory for Letter")
	}
}

func TestNameToTypeBlock(t *testing.T) {
	if NameToType("Cyrillic") != Block {
		t.Fatalf("expected Block for Cyrillic")
	}
}

func TestNameToTypeScript(t *testing.T) {
	if NameToType("Greek") != Script {
		t.Fatalf("expected Script for Greek")
	}
}

func TestNameToTypeUnknown(t *testing.T) {
	if NameToType("NotARealName") != Unknown {
		t.Fatalf("expected Unknown")
	}
}

func TestCategoryHierarchyContainsSubcategories(t *testing.T) {
	set, ok := CategoryHierarchy("L")
	if !ok {
		t.Fatalf("expected L hierarchy to exist")
	}
	if _, ok := set["Lu"]; !ok {
		t.Fatalf("expected Lu under L")
	}
}

func TestLongToShortCategory(t *testing.T) {
	short, ok := LongToShortCategory("Number")
	if !ok || short != "N" {
		t.Fatalf("expected N, got %q ok=%v", short, ok)
	}
}

func TestPredicateShortCategory(t *testing.T) {
	pred, ok := Predicate("L")
	if !ok {
		t.Fatalf("expected predicate for L")
	}
	if !pred('a') || pred('1') {
		t.Fatalf("predicate for L mismatched on a/1")
	}
}

func TestPredicateLongCategory(t *testing.T) {
	pred, ok := Predicate("Number")
	if !ok {
		t.Fatalf("expected predicate for Number")
	}
	if !pred('5') || pred('a') {
		t.Fatalf("predicate for Number mismatched")
	}
}

func TestPredicateBlock(t *testing.T) {
	pred, ok := Predicate("BasicLatin")
	if !ok {
		t.Fatalf("expected predicate for BasicLatin")
	}
	if !pred('A') || pred(rune(0x0100)) {
		t.Fatalf("predicate for BasicLatin mismatched")
	}
}

func TestPredicateScript(t *testing.T) {
	pred, ok := Predicate("Greek")
	if !ok {
		t.Fatalf("expected predicate for Greek")
	}
	if !pred('α') || pred('a') {
		t.Fatalf("predicate for Greek mismatched")
	}
}

func TestPredicateUnknown(t *testing.T) {
	if _, ok := Predicate("NotARealName"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestCharScriptAndCategory(t *testing.T) {
	if CharScript('α') != "Greek" {
		t.Fatalf("expected Greek, got %q", CharScript('α'))
	}
	if CharCategory('a') != "Ll" {
		t.Fatalf("expected Ll, got %q", CharCategory('a'))
	}
}

func TestBlockRange(t *testing.T) {
	lo, hi, ok := BlockRange("Cyrillic")
	if !ok || lo != 0x0400 || hi != 0x04FF {
		t.Fatalf("unexpected Cyrillic range: %x %x %v", lo, hi, ok)
	}
	if _, _, ok := BlockRange("NoSuchBlock"); ok {
		t.Fatalf("expected missing block to fail")
	}
}
