package ot

import (
	"unicode/utf16"

	"github.com/typeproof/typeproof/core"
)

// Naming table IDs used by proof generation.
const (
	NameFamily        = 1
	NameSubfamily     = 2
	NameFull          = 4
	NameTypoFamily    = 16
	NameTypoSubfamily = 17
)

// NameEntry returns the string for a name ID. Windows Unicode entries
// (platform 3, encoding 1, UTF-16BE) are preferred, Macintosh Roman
// entries (platform 1, encoding 0) serve as fallback.
func (f *Font) NameEntry(nameID int) (string, error) {
	b, err := f.table("name")
	if err != nil {
		return "", err
	}
	count, err := b.u16(2)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "name table truncated")
	}
	storage := int(b.U16(4))
	var macResult string
	for i := 0; i < int(count); i++ {
		rec, err := b.view(6+i*12, 12)
		if err != nil {
			return "", core.WrapError(err, core.EINVALID, "name records truncated")
		}
		if int(rec.U16(6)) != nameID {
			continue
		}
		platform, encoding := rec.U16(0), rec.U16(2)
		length, offset := int(rec.U16(8)), int(rec.U16(10))
		data, err := b.view(storage+offset, length)
		if err != nil {
			continue
		}
		switch {
		case platform == 3 && encoding == 1:
			return decodeUTF16BE(data), nil
		case platform == 1 && encoding == 0 && macResult == "":
			macResult = decodeMacRoman(data)
		}
	}
	if macResult != "" {
		return macResult, nil
	}
	return "", core.Error(core.EMISSING, "font has no name entry with ID %d", nameID)
}

// FamilyName returns the typographic family name, falling back to the
// legacy family name where a font has no name ID 16.
func (f *Font) FamilyName() (string, error) {
	if name, err := f.NameEntry(NameTypoFamily); err == nil {
		return name, nil
	}
	return f.NameEntry(NameFamily)
}

// SubfamilyName returns the typographic subfamily name, falling back to
// the legacy subfamily name.
func (f *Font) SubfamilyName() (string, error) {
	if name, err := f.NameEntry(NameTypoSubfamily); err == nil {
		return name, nil
	}
	return f.NameEntry(NameSubfamily)
}

func decodeUTF16BE(b binarySegm) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, u16(b[i:]))
	}
	return string(utf16.Decode(units))
}

// decodeMacRoman keeps the ASCII subset; name entries in practice do
// not exceed it.
func decodeMacRoman(b binarySegm) string {
	runes := make([]rune, 0, len(b))
	for _, c := range b {
		if c < 0x80 {
			runes = append(runes, rune(c))
		}
	}
	return string(runes)
}
