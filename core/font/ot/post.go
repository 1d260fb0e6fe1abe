package ot

import "github.com/typeproof/typeproof/core"

// GlyphNames returns the names of all glyphs from a version 2.0 post
// table, indexed by glyph. Fonts with other post versions carry no
// usable name data and yield EMISSING.
func (f *Font) GlyphNames() ([]string, error) {
	post, err := f.table("post")
	if err != nil {
		return nil, err
	}
	version, err := post.u32(0)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "post table truncated")
	}
	if version != 0x00020000 {
		return nil, core.Error(core.EMISSING, "post table version 0x%08x has no glyph names", version)
	}
	numGlyphs, err := post.u16(32)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "post table truncated")
	}
	indices := make([]uint16, numGlyphs)
	maxCustom := -1
	for i := 0; i < int(numGlyphs); i++ {
		idx, err := post.u16(34 + 2*i)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "post glyph name indices truncated")
		}
		indices[i] = idx
		if idx >= 258 && int(idx)-258 > maxCustom {
			maxCustom = int(idx) - 258
		}
	}
	// custom names follow as Pascal strings
	custom := make([]string, 0, maxCustom+1)
	pos := 34 + 2*int(numGlyphs)
	for pos < len(post) && len(custom) <= maxCustom {
		strlen := int(post[pos])
		if strlen == 0 {
			custom = append(custom, "")
			pos++
			continue
		}
		name, err := post.view(pos+1, strlen)
		if err != nil {
			break
		}
		custom = append(custom, string(name))
		pos += 1 + strlen
	}
	names := make([]string, numGlyphs)
	for i, idx := range indices {
		if idx < 258 {
			names[i] = macGlyphNames[idx]
		} else if int(idx)-258 < len(custom) {
			names[i] = custom[idx-258]
		}
	}
	return names, nil
}
