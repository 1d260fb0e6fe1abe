package ot

import (
	"github.com/typeproof/typeproof/core"
)

// Font gives access to the tables of a parsed OpenType font.
type Font struct {
	data   binarySegm
	tables map[Tag]binarySegm
}

// sfnt version tags accepted by Parse. Font collections (ttcf) carry
// more than one font and are not supported.
const (
	verTrueType    uint32 = 0x00010000
	verCFF         uint32 = 0x4f54544f // 'OTTO'
	verAppleTT     uint32 = 0x74727565 // 'true'
	verCollection  uint32 = 0x74746366 // 'ttcf'
	tableDirOffset        = 12         // directory entries start after the header
	tableRecSize          = 16         // tag, checksum, offset, length
)

// Parse reads the table directory of an OpenType font and locates each
// table within the binary. Table contents are parsed lazily by the
// typed accessor functions.
func Parse(data []byte) (*Font, error) {
	b := binarySegm(data)
	ver, err := b.u32(0)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font binary too short for header")
	}
	switch ver {
	case verTrueType, verCFF, verAppleTT:
		// ok
	case verCollection:
		return nil, core.Error(core.EINVALID, "font collections are not supported")
	default:
		return nil, core.Error(core.EINVALID, "not an OpenType font (version 0x%08x)", ver)
	}
	n, err := b.u16(4)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font binary too short for table count")
	}
	f := &Font{data: b, tables: make(map[Tag]binarySegm, n)}
	for i := 0; i < int(n); i++ {
		rec, err := b.view(tableDirOffset+i*tableRecSize, tableRecSize)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "table directory truncated")
		}
		tag := MakeTag(rec[:4])
		offset, length := rec.U32(8), rec.U32(12)
		table, err := b.view(int(offset), int(length))
		if err != nil {
			tracer().Infof("table %s exceeds font bounds, ignored", tag)
			continue
		}
		f.tables[tag] = table
	}
	tracer().Debugf("font has %d tables", len(f.tables))
	return f, nil
}

// Has reports the presence of a table.
func (f *Font) Has(tag Tag) bool {
	_, ok := f.tables[tag]
	return ok
}

// Table returns the raw bytes of a table, nil if the font does not
// contain it.
func (f *Font) Table(tag Tag) []byte {
	return f.tables[tag]
}

func (f *Font) table(tag string) (binarySegm, error) {
	b, ok := f.tables[T(tag)]
	if !ok {
		return nil, core.Error(core.EMISSING, "font has no %s table", tag)
	}
	return b, nil
}

// NumGlyphs returns the glyph count from the maxp table.
func (f *Font) NumGlyphs() (int, error) {
	maxp, err := f.table("maxp")
	if err != nil {
		return 0, err
	}
	n, err := maxp.u16(4)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "maxp table truncated")
	}
	return int(n), nil
}
