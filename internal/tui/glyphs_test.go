package tui

import "testing"

func TestParseGlyphSet(t *testing.T) {
	cases := []struct {
		in   string
		want glyphSet
		ok   bool
	}{
		{"", glyphSetUnicode, true},
		{"unicode", glyphSetUnicode, true},
		{" ASCII ", glyphSetASCII, true},
		{"bogus", glyphSetUnicode, false},
	}
	for _, tc := range cases {
		got, ok := parseGlyphSet(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseGlyphSet(%q) = %v,%v; want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGlyphs_ASCIISet(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	if got := glyphCursor(); got != ">" {
		t.Fatalf("expected ascii cursor; got %q", got)
	}
	if got := glyphFolder(); got != "[d]" {
		t.Fatalf("expected ascii folder badge; got %q", got)
	}
	if got := glyphHRule(); got != "-" {
		t.Fatalf("expected ascii rule; got %q", got)
	}
}
