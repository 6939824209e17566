package rxmatch

import "testing"

func TestCompileAndMatchFirst(t *testing.T) {
	re, err := Compile(`\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4}`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("seen on 2024-01-15 last time")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Text != "2024-01-15" {
		t.Fatalf("expected 2024-01-15, got %q", m.Text)
	}
}

func TestHexAddressPattern(t *testing.T) {
	re, err := Compile(`0x[0-9a-fA-F]+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("addr is 0x1F4B and more")
	if !ok || m.Text != "0x1F4B" {
		t.Fatalf("expected 0x1F4B, got %+v ok=%v", m, ok)
	}
}

func TestNestedGroupQuantifier(t *testing.T) {
	re, err := Compile(`((ab)+c)+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("ababcabc")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Text != "ababcabc" {
		t.Fatalf("expected ababcabc, got %q", m.Text)
	}
}

func TestTagWithBackReference(t *testing.T) {
	re, err := Compile(`<([A-Z]+)>.*?</\1>`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("<TITLE>hello</TITLE>")
	if !ok {
		t.Fatalf("expected a match")
	}
	group, found := m.Group(1)
	if !found || group != "TITLE" {
		t.Fatalf("expected group 1 = TITLE, got %q found=%v", group, found)
	}
}

func TestDigitGroupWithBackReference(t *testing.T) {
	re, err := Compile(`(\d+)-\1`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !re.IsMatch("42-42") {
		t.Fatalf("expected 42-42 to match")
	}
	if re.IsMatch("42-43") {
		t.Fatalf("expected 42-43 not to match")
	}
}

func TestAntiRunawayPattern(t *testing.T) {
	re, err := Compile(`(.*|.*)*`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	_, ok := re.MatchFirst("any text at all, long enough to matter")
	if !ok {
		t.Fatalf("expected the anti-runaway pattern to terminate with a match")
	}
}

func TestEmptyInputAndPattern(t *testing.T) {
	re, err := Compile("")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("")
	if !ok || m.Text != "" {
		t.Fatalf("expected empty pattern to match empty text, got %+v ok=%v", m, ok)
	}
}

func TestPatternMatchingEmptyString(t *testing.T) {
	re, err := Compile(`a*`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := re.MatchFirst("xyz")
	if !ok || m.Text != "" {
		t.Fatalf("expected empty match at position 0, got %+v ok=%v", m, ok)
	}
}

func TestZeroZeroQuantifierBoundary(t *testing.T) {
	re, err := Compile(`a{0,0}b`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !re.IsMatch("b") {
		t.Fatalf("expected a{0,0}b to match plain b")
	}
	m, _ := re.MatchFirst("aab")
	if m.Text != "b" {
		t.Fatalf("expected match to be just b, got %q", m.Text)
	}
}

func TestUnresolvedBackReferenceFailsWithoutError(t *testing.T) {
	re, err := Compile(`(a)?\1b`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if re.IsMatch("b") {
		t.Fatalf("expected no match when group 1 never participated")
	}
	if !re.IsMatch("aab") {
		t.Fatalf("expected aab to match when group 1 participates")
	}
}

func TestGroupCountAndDump(t *testing.T) {
	re, err := Compile(`(a)(b(c))`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if re.GroupCount() != 3 {
		t.Fatalf("expected 3 groups, got %d", re.GroupCount())
	}
	if re.Dump() == "" {
		t.Fatalf("expected non-empty dump")
	}
}

func TestMatchAllFindsEveryOccurrence(t *testing.T) {
	re, err := Compile(`\w+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	matches := re.MatchAll("foo bar baz")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
}

func TestCompileErrorOnMalformedPattern(t *testing.T) {
	_, err := Compile("a{")
	if err == nil {
		t.Fatalf("expected a compile error for unterminated quantifier")
	}
}
