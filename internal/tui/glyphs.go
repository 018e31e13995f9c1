package tui

import (
	"strings"
	"sync/atomic"
)

// Affordance glyphs (cursor marker, kind badges, rules). The tree text itself
// always uses the canonical box-drawing characters; only these vary, since
// some terminal fonts lack the Unicode shapes.

type glyphSet int32

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

type glyphTable struct {
	cursor, folder, file, hrule string
}

var glyphTables = [...]glyphTable{
	glyphSetUnicode: {cursor: "▸", folder: "▪", file: "·", hrule: "─"},
	glyphSetASCII:   {cursor: ">", folder: "[d]", file: "[f]", hrule: "-"},
}

var activeGlyphs atomic.Int32

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

func setGlyphs(gs glyphSet) { activeGlyphs.Store(int32(gs)) }

func glyphs() glyphTable { return glyphTables[activeGlyphs.Load()] }

func glyphCursor() string { return glyphs().cursor }
func glyphFolder() string { return glyphs().folder }
func glyphFile() string   { return glyphs().file }
func glyphHRule() string  { return glyphs().hrule }
