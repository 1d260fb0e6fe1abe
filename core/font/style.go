package font

import (
	"github.com/typeproof/typeproof/core/font/ot"
)

// StyleInfo collects the style metadata of one font that pairing and
// axis resolution work on.
type StyleInfo struct {
	Family       string // typographic family name, IDs 16/1
	LegacyFamily string // name ID 1 verbatim
	Subfamily    string // typographic subfamily name, IDs 17/2
	FullName     string
	Weight       int  // usWeightClass
	Italic       bool // OS/2 fsSelection italic bit
	Variable     bool
	Axes         []ot.VariationAxis
	Filepath     string
}

// Styles reads the style metadata of a font. Missing name entries leave
// the corresponding field empty instead of failing the whole query;
// missing OS/2 data is an error since pairing cannot work without it.
func Styles(f *ScalableFont) (StyleInfo, error) {
	info := StyleInfo{Filepath: f.Filepath, FullName: f.Fontname}
	info.Family, _ = f.OT.FamilyName()
	info.LegacyFamily, _ = f.OT.NameEntry(ot.NameFamily)
	info.Subfamily, _ = f.OT.SubfamilyName()
	weight, err := f.OT.WeightClass()
	if err != nil {
		return info, err
	}
	info.Weight = weight
	italic, err := f.OT.IsItalic()
	if err != nil {
		return info, err
	}
	info.Italic = italic
	info.Variable = f.OT.IsVariable()
	if info.Variable {
		axes, err := f.OT.VariationAxes()
		if err != nil {
			return info, err
		}
		info.Axes = axes
	}
	return info, nil
}

// Axis returns the named variation axis, or false if the font does not
// have it.
func (s StyleInfo) Axis(tag string) (ot.VariationAxis, bool) {
	for _, a := range s.Axes {
		if a.Tag.String() == tag {
			return a, true
		}
	}
	return ot.VariationAxis{}, false
}
