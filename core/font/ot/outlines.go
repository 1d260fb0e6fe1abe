package ot

import "github.com/typeproof/typeproof/core"

// GlyphOutlines reports per glyph whether it has an actual outline.
// TrueType fonts are answered from glyf/loca, CFF fonts from the
// charstring sizes. Fonts with neither outline table return nil, which
// callers should read as "unknown, assume present".
func (f *Font) GlyphOutlines() ([]bool, error) {
	if f.Has(T("glyf")) {
		return f.glyfOutlines()
	}
	if f.Has(T("CFF ")) {
		return f.cffOutlines()
	}
	return nil, nil
}

// --- TrueType outlines -----------------------------------------------------

// A glyf entry is empty when its loca segment has zero length or its
// contour count is zero.
func (f *Font) glyfOutlines() ([]bool, error) {
	numGlyphs, err := f.NumGlyphs()
	if err != nil {
		return nil, err
	}
	head, err := f.table("head")
	if err != nil {
		return nil, err
	}
	longFormat, err := head.u16(50)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "head table truncated")
	}
	loca, err := f.table("loca")
	if err != nil {
		return nil, err
	}
	glyf, err := f.table("glyf")
	if err != nil {
		return nil, err
	}
	present := make([]bool, numGlyphs)
	for g := 0; g < numGlyphs; g++ {
		var start, end uint32
		if longFormat != 0 {
			s, err := loca.u32(4 * g)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "loca table truncated")
			}
			start, end = s, loca.U32(4*(g+1))
		} else {
			s, err := loca.u16(2 * g)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "loca table truncated")
			}
			start, end = uint32(s)*2, uint32(loca.U16(2*(g+1)))*2
		}
		if end <= start {
			continue
		}
		contours := int16(glyf.U16(int(start)))
		present[g] = contours != 0
	}
	return present, nil
}

// --- CFF outlines ----------------------------------------------------------

// A CFF charstring of at most one byte (a bare endchar) draws nothing.
func (f *Font) cffOutlines() ([]bool, error) {
	cff, err := f.table("CFF ")
	if err != nil {
		return nil, err
	}
	if len(cff) < 4 {
		return nil, core.Error(core.EINVALID, "CFF table truncated")
	}
	pos := int(cff[2]) // hdrSize
	nameIndex, err := parseCFFIndex(cff, pos)
	if err != nil {
		return nil, err
	}
	topDicts, err := parseCFFIndex(cff, nameIndex.end)
	if err != nil {
		return nil, err
	}
	if len(topDicts.items) == 0 {
		return nil, core.Error(core.EINVALID, "CFF has no top DICT")
	}
	charStringsOffset, ok := cffDictIntOperand(topDicts.items[0], 17)
	if !ok {
		return nil, core.Error(core.EINVALID, "CFF top DICT has no CharStrings entry")
	}
	charStrings, err := parseCFFIndex(cff, charStringsOffset)
	if err != nil {
		return nil, err
	}
	present := make([]bool, len(charStrings.items))
	for i, cs := range charStrings.items {
		present[i] = len(cs) > 1
	}
	return present, nil
}

type cffIndex struct {
	items [][]byte
	end   int
}

func parseCFFIndex(b binarySegm, pos int) (cffIndex, error) {
	count, err := b.u16(pos)
	if err != nil {
		return cffIndex{}, core.WrapError(err, core.EINVALID, "CFF INDEX truncated")
	}
	if count == 0 {
		return cffIndex{end: pos + 2}, nil
	}
	if pos+3 > len(b) {
		return cffIndex{}, core.Error(core.EINVALID, "CFF INDEX truncated")
	}
	offSize := int(b[pos+2])
	if offSize < 1 || offSize > 4 {
		return cffIndex{}, core.Error(core.EINVALID, "CFF INDEX offset size %d invalid", offSize)
	}
	offsetsPos := pos + 3
	dataPos := offsetsPos + (int(count)+1)*offSize - 1 // offsets are 1-based
	readOffset := func(i int) (int, error) {
		p := offsetsPos + i*offSize
		if p+offSize > len(b) {
			return 0, errBufferBounds
		}
		v := 0
		for j := 0; j < offSize; j++ {
			v = v<<8 | int(b[p+j])
		}
		return v, nil
	}
	idx := cffIndex{items: make([][]byte, 0, count)}
	prev, err := readOffset(0)
	if err != nil {
		return cffIndex{}, core.WrapError(err, core.EINVALID, "CFF INDEX offsets truncated")
	}
	for i := 1; i <= int(count); i++ {
		next, err := readOffset(i)
		if err != nil || next < prev || dataPos+next > len(b) {
			return cffIndex{}, core.Error(core.EINVALID, "CFF INDEX offsets inconsistent")
		}
		idx.items = append(idx.items, b[dataPos+prev:dataPos+next])
		prev = next
	}
	idx.end = dataPos + prev
	return idx, nil
}

// cffDictIntOperand scans a DICT for an operator and returns its last
// integer operand.
func cffDictIntOperand(dict []byte, op int) (int, bool) {
	var operands []int
	i := 0
	for i < len(dict) {
		b0 := int(dict[i])
		switch {
		case b0 <= 21: // operator
			if b0 == 12 { // escaped two-byte operator
				i += 2
				operands = operands[:0]
				continue
			}
			if b0 == op && len(operands) > 0 {
				return operands[len(operands)-1], true
			}
			operands = operands[:0]
			i++
		case b0 == 28 && i+2 < len(dict):
			operands = append(operands, int(int16(u16(dict[i+1:]))))
			i += 3
		case b0 == 29 && i+4 < len(dict):
			operands = append(operands, int(int32(u32(dict[i+1:]))))
			i += 5
		case b0 == 30: // real number, skip nibbles until terminator
			i++
			for i < len(dict) {
				nib := dict[i]
				i++
				if nib&0x0f == 0x0f || nib&0xf0 == 0xf0 {
					break
				}
			}
			operands = append(operands, 0)
		case b0 >= 32 && b0 <= 246:
			operands = append(operands, b0-139)
			i++
		case b0 >= 247 && b0 <= 250 && i+1 < len(dict):
			operands = append(operands, (b0-247)*256+int(dict[i+1])+108)
			i += 2
		case b0 >= 251 && b0 <= 254 && i+1 < len(dict):
			operands = append(operands, -(b0-251)*256-int(dict[i+1])-108)
			i += 2
		default:
			return 0, false
		}
	}
	return 0, false
}
