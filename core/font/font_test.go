package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/typeproof/typeproof/core/font/ot"
)

func TestParseOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.NotNil(t, f.SFNT)
	assert.NotNil(t, f.OT)
	assert.Contains(t, f.Fontname, "Go")
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.Same(t, f, FallbackFont(), "fallback font is loaded once")
}

func TestFamilyFromFilename(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	assert.Equal(t, "MyFamily", FamilyFromFilename("/fonts/MyFamily-BoldItalic.otf"))
	assert.Equal(t, "Plain", FamilyFromFilename("Plain.ttf"))
}

func TestStyleSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	assert.Equal(t, "BoldItalic", StyleSuffix("MyFamily-BoldItalic"))
	assert.Equal(t, "", StyleSuffix("MyFamily"))
}

func TestStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	regular, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	info, err := Styles(regular)
	require.NoError(t, err)
	assert.Equal(t, 400, info.Weight)
	assert.False(t, info.Italic)
	assert.False(t, info.Variable)
	assert.Equal(t, "Regular", info.Subfamily)

	bold, err := ParseOpenTypeFont(gobold.TTF)
	require.NoError(t, err)
	info, err = Styles(bold)
	require.NoError(t, err)
	assert.Equal(t, 600, info.Weight, "Go Bold declares usWeightClass 600")

	italic, err := ParseOpenTypeFont(goitalic.TTF)
	require.NoError(t, err)
	info, err = Styles(italic)
	require.NoError(t, err)
	assert.True(t, info.Italic)
}

func TestRepertoire(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	chars, err := Repertoire(f)
	require.NoError(t, err)
	assert.Contains(t, chars, "A")
	assert.Contains(t, chars, "z")
	assert.Contains(t, chars, "ß")
	assert.NotContains(t, chars, " ", "glyphs without outlines are dropped")
	// codepoint order
	runes := []rune(chars)
	for i := 1; i < len(runes); i++ {
		require.Less(t, runes[i-1], runes[i], "repertoire must be in codepoint order")
	}
}

// --- Synthetic fonts --------------------------------------------------------
//
// Some repertoire corner cases need fonts Go's embedded families cannot
// provide, so we assemble minimal binaries with just a cmap and a post
// table.

type testTable struct {
	tag  string
	data []byte
}

func buildTestFont(tables []testTable) []byte {
	b := u32b(0x00010000)
	b = append(b, u16b(uint16(len(tables)))...)
	b = append(b, make([]byte, 6)...) // search params, unused
	offset := 12 + 16*len(tables)
	var body []byte
	for _, tab := range tables {
		b = append(b, tab.tag...)
		b = append(b, u32b(0)...) // checksum, unused
		b = append(b, u32b(uint32(offset))...)
		b = append(b, u32b(uint32(len(tab.data)))...)
		body = append(body, tab.data...)
		offset += len(tab.data)
	}
	return append(b, body...)
}

type cmapSeg struct {
	start, end, delta uint16
}

// cmapTable builds a cmap with one format 4 subtable for the Windows
// BMP encoding. The terminator segment is appended automatically.
func cmapTable(segs ...cmapSeg) []byte {
	segs = append(segs, cmapSeg{0xffff, 0xffff, 1})
	b := u16b(0)               // table version
	b = append(b, u16b(1)...)  // one encoding record
	b = append(b, u16b(3)...)  // platform Windows
	b = append(b, u16b(1)...)  // encoding BMP
	b = append(b, u32b(12)...) // subtable offset
	b = append(b, u16b(4)...)  // format
	b = append(b, u16b(uint16(16+8*len(segs)))...)
	b = append(b, u16b(0)...) // language
	b = append(b, u16b(uint16(2*len(segs)))...)
	b = append(b, make([]byte, 6)...) // search params, unused
	for _, s := range segs {
		b = append(b, u16b(s.end)...)
	}
	b = append(b, u16b(0)...) // reservedPad
	for _, s := range segs {
		b = append(b, u16b(s.start)...)
	}
	for _, s := range segs {
		b = append(b, u16b(s.delta)...)
	}
	for range segs {
		b = append(b, u16b(0)...) // idRangeOffset
	}
	return b
}

// postTable builds a version 2.0 post table: glyph 0 is .notdef, the
// given names follow as custom names for glyphs 1..n.
func postTable(names ...string) []byte {
	b := u32b(0x00020000)
	b = append(b, make([]byte, 28)...) // metrics fields, unused
	b = append(b, u16b(uint16(len(names)+1))...)
	b = append(b, u16b(0)...) // .notdef
	for i := range names {
		b = append(b, u16b(uint16(258+i))...)
	}
	for _, name := range names {
		b = append(b, byte(len(name)))
		b = append(b, name...)
	}
	return b
}

func u16b(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func u32b(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func TestRepertoireSkipsVariantGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	// A and B map to glyphs 1 and 2; glyph 1 is a variant ("uni0041.alt")
	bin := buildTestFont([]testTable{
		{"cmap", cmapTable(cmapSeg{start: 0x41, end: 0x42, delta: 0xffc0})},
		{"post", postTable("uni0041.alt", "B")},
	})
	otf, err := ot.Parse(bin)
	require.NoError(t, err)
	f := &ScalableFont{Fontname: "Synthetic", OT: otf}
	chars, err := Repertoire(f)
	require.NoError(t, err)
	assert.Equal(t, "B", chars, "a dot anywhere in the glyph name marks a variant")
}

func TestRepertoireFallsBackOnEmptyCharmap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	// the cmap parses fine but maps nothing, glyph names must take over
	bin := buildTestFont([]testTable{
		{"cmap", cmapTable()},
		{"post", postTable("uni0041")},
	})
	otf, err := ot.Parse(bin)
	require.NoError(t, err)
	f := &ScalableFont{Fontname: "Synthetic", OT: otf}
	chars, err := Repertoire(f)
	require.NoError(t, err)
	assert.Equal(t, "A", chars)
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	reg := NewRegistry()
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	reg.Store("goregular", f)
	cached, err := reg.Load("goregular")
	require.NoError(t, err)
	assert.Same(t, f, cached)
	reg.Invalidate("goregular")
	_, err = reg.Load("goregular")
	assert.Error(t, err, "invalidated entry must not be served from cache")
}

func TestGlyphNameToRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	cases := []struct {
		name string
		want rune
		ok   bool
	}{
		{"A", 'A', true},
		{"eacute", 'é', true},
		{"uni0627", 'ا', true},
		{"u1F600", '\U0001F600', true},
		{"a.sc", 0, false},
		{"f_i", 0, false},
		{".notdef", 0, false},
		{"unknownglyph", 0, false},
	}
	for _, c := range cases {
		r, ok := GlyphNameToRune(c.name)
		assert.Equal(t, c.ok, ok, "name %q", c.name)
		if c.ok {
			assert.Equal(t, c.want, r, "name %q", c.name)
		}
	}
}
