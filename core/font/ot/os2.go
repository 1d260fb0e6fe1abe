package ot

import "github.com/typeproof/typeproof/core"

// fsSelection bit 0 marks an italic font.
const fsSelectionItalic = 0x0001

// WeightClass returns usWeightClass from the OS/2 table.
func (f *Font) WeightClass() (int, error) {
	os2, err := f.table("OS/2")
	if err != nil {
		return 0, err
	}
	w, err := os2.u16(4)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "OS/2 table truncated")
	}
	return int(w), nil
}

// IsItalic reports the italic bit of the OS/2 fsSelection field.
func (f *Font) IsItalic() (bool, error) {
	os2, err := f.table("OS/2")
	if err != nil {
		return false, err
	}
	sel, err := os2.u16(62)
	if err != nil {
		return false, core.WrapError(err, core.EINVALID, "OS/2 table truncated")
	}
	return sel&fsSelectionItalic != 0, nil
}
