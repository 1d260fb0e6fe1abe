package ot

import (
	"github.com/typeproof/typeproof/core"
)

// CharMap is a font's character-to-glyph mapping, extracted from the
// best cmap subtable. Runes lists the mapped codepoints in ascending
// order; Glyphs maps each of them to its glyph index.
type CharMap struct {
	Runes  []rune
	Glyphs map[rune]GlyphIndex
}

// Subtable preference, best first. Windows UCS-4 covers the full
// Unicode range; Windows BMP and the Unicode platform cover the BMP.
var cmapPreference = []struct {
	platform, encoding uint16
}{
	{3, 10}, // Windows, UCS-4 (format 12)
	{0, 4},  // Unicode 2.0+, full repertoire
	{0, 6},
	{3, 1}, // Windows, BMP (format 4)
	{0, 3}, // Unicode 2.0+, BMP
	{0, 2},
	{0, 1},
	{0, 0},
}

// Cmap parses the font's cmap table and returns the character map of
// the most capable subtable. Subtable formats 4 and 12 are understood.
func (f *Font) Cmap() (*CharMap, error) {
	b, err := f.table("cmap")
	if err != nil {
		return nil, err
	}
	n, err := b.u16(2)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cmap header truncated")
	}
	offsets := map[[2]uint16]uint32{}
	for i := 0; i < int(n); i++ {
		rec, err := b.view(4+i*8, 8)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cmap encoding records truncated")
		}
		offsets[[2]uint16{rec.U16(0), rec.U16(2)}] = rec.U32(4)
	}
	for _, pref := range cmapPreference {
		offset, ok := offsets[[2]uint16{pref.platform, pref.encoding}]
		if !ok || int(offset) >= len(b) {
			continue
		}
		sub := b[offset:]
		format := sub.U16(0)
		tracer().Debugf("cmap subtable (%d,%d) has format %d", pref.platform, pref.encoding, format)
		switch format {
		case 4:
			return parseCmapFormat4(sub)
		case 12:
			return parseCmapFormat12(sub)
		}
	}
	return nil, core.Error(core.EMISSING, "no usable cmap subtable found")
}

// Format 4: segmented coverage of the BMP. Segments with idRangeOffset
// zero map through idDelta, others indirect through the glyphIdArray.
func parseCmapFormat4(b binarySegm) (*CharMap, error) {
	segCountX2, err := b.u16(6)
	if err != nil || segCountX2 == 0 || segCountX2&1 != 0 {
		return nil, core.Error(core.EINVALID, "cmap format 4 segment count invalid")
	}
	segCount := int(segCountX2 / 2)
	endBase := 14
	startBase := endBase + 2*segCount + 2 // reservedPad between the arrays
	deltaBase := startBase + 2*segCount
	rangeBase := deltaBase + 2*segCount
	cm := &CharMap{Glyphs: make(map[rune]GlyphIndex)}
	for s := 0; s < segCount; s++ {
		start, err := b.u16(startBase + 2*s)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cmap format 4 truncated")
		}
		end := b.U16(endBase + 2*s)
		if start == 0xffff && end == 0xffff {
			break
		}
		delta := b.U16(deltaBase + 2*s)
		rangeOffset := b.U16(rangeBase + 2*s)
		for c := int(start); c <= int(end); c++ {
			var g uint16
			if rangeOffset == 0 {
				g = uint16(c) + delta
			} else {
				// offset is relative to its own position in the array
				idx := rangeBase + 2*s + int(rangeOffset) + 2*(c-int(start))
				g = b.U16(idx)
				if g != 0 {
					g += delta
				}
			}
			if g != 0 {
				cm.add(rune(c), GlyphIndex(g))
			}
		}
	}
	return cm, nil
}

// Format 12: segmented coverage of the full Unicode range.
func parseCmapFormat12(b binarySegm) (*CharMap, error) {
	nGroups, err := b.u32(12)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cmap format 12 header truncated")
	}
	cm := &CharMap{Glyphs: make(map[rune]GlyphIndex)}
	for g := 0; g < int(nGroups); g++ {
		rec, err := b.view(16+g*12, 12)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cmap format 12 groups truncated")
		}
		start, end, startGlyph := rec.U32(0), rec.U32(4), rec.U32(8)
		if end < start || end > 0x10ffff {
			return nil, core.Error(core.EINVALID, "cmap format 12 group out of range")
		}
		for c := start; c <= end; c++ {
			cm.add(rune(c), GlyphIndex(startGlyph+(c-start)))
		}
	}
	return cm, nil
}

// add records a mapping. Codepoints arrive in ascending order from both
// subtable formats, so Runes stays sorted.
func (cm *CharMap) add(r rune, g GlyphIndex) {
	if _, ok := cm.Glyphs[r]; ok {
		return
	}
	cm.Runes = append(cm.Runes, r)
	cm.Glyphs[r] = g
}

// Lookup returns the glyph index for a rune, 0 (".notdef") if the font
// does not map it.
func (cm *CharMap) Lookup(r rune) GlyphIndex {
	return cm.Glyphs[r]
}
