package ot

import "github.com/typeproof/typeproof/core"

// VariationAxis describes one axis of a variable font.
type VariationAxis struct {
	Tag     Tag
	Minimum float64
	Default float64
	Maximum float64
}

// IsVariable reports whether the font carries an fvar table.
func (f *Font) IsVariable() bool {
	return f.Has(T("fvar"))
}

// VariationAxes parses the fvar table and returns the axes in table
// order. A font without fvar yields an empty slice.
func (f *Font) VariationAxes() ([]VariationAxis, error) {
	fvar, ok := f.tables[T("fvar")]
	if !ok {
		return nil, nil
	}
	axesOffset, err := fvar.u16(4)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "fvar header truncated")
	}
	axisCount := int(fvar.U16(8))
	axisSize := int(fvar.U16(10))
	if axisSize < 20 {
		return nil, core.Error(core.EINVALID, "fvar axis record size %d invalid", axisSize)
	}
	axes := make([]VariationAxis, 0, axisCount)
	for i := 0; i < axisCount; i++ {
		rec, err := fvar.view(int(axesOffset)+i*axisSize, axisSize)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "fvar axis records truncated")
		}
		axes = append(axes, VariationAxis{
			Tag:     Tag(rec.U32(0)),
			Minimum: fixedToFloat(rec.U32(4)),
			Default: fixedToFloat(rec.U32(8)),
			Maximum: fixedToFloat(rec.U32(12)),
		})
	}
	tracer().Debugf("font has %d variation axes", len(axes))
	return axes, nil
}

// fixedToFloat converts a 16.16 fixed-point value.
func fixedToFloat(v uint32) float64 {
	return float64(int32(v)) / 65536.0
}
