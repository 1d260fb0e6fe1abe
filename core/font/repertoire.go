package font

import (
	"strings"

	"github.com/typeproof/typeproof/core"
)

// Repertoire determines the characters a font can actually render.
//
// Two strategies run in order. The primary one walks the character map
// in codepoint order and drops glyphs that draw nothing: glyphs whose
// name contains a dot and glyphs with an empty outline. If the
// character map is unusable or yields no characters, the glyph names
// are matched against the Adobe Glyph List instead, keeping every name
// that expands to a single character. A font where both strategies fail
// has an empty repertoire.
func Repertoire(f *ScalableFont) (string, error) {
	chars, err := repertoireFromCmap(f)
	if err != nil {
		tracer().Infof("charmap unusable for %s: %v", f.Fontname, err)
	} else if chars != "" {
		return chars, nil
	}
	chars, err = repertoireFromGlyphNames(f)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "font %s has no extractable repertoire", f.Fontname)
	}
	return chars, nil
}

func repertoireFromCmap(f *ScalableFont) (string, error) {
	cm, err := f.OT.Cmap()
	if err != nil {
		return "", err
	}
	names, err := f.OT.GlyphNames()
	if err != nil {
		names = nil // no names, no dot-name filtering
	}
	outlines, err := f.OT.GlyphOutlines()
	if err != nil {
		outlines = nil // unknown outlines count as present
	}
	var b strings.Builder
	for _, r := range cm.Runes {
		g := int(cm.Glyphs[r])
		// a dot anywhere marks a variant glyph ("a.sc", "uni0041.alt")
		if names != nil && g < len(names) && strings.Contains(names[g], ".") {
			continue
		}
		if outlines != nil && g < len(outlines) && !outlines[g] {
			continue
		}
		b.WriteRune(r)
	}
	tracer().Debugf("repertoire of %s has %d characters", f.Fontname, len(cm.Runes))
	return b.String(), nil
}

func repertoireFromGlyphNames(f *ScalableFont) (string, error) {
	names, err := f.OT.GlyphNames()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, name := range names {
		if r, ok := GlyphNameToRune(name); ok {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
