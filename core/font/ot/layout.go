package ot

import "github.com/typeproof/typeproof/core"

// FeatureTags enumerates the feature tags of the GSUB and GPOS tables,
// in order of appearance and without duplicates. Fonts without layout
// tables return an empty slice.
func (f *Font) FeatureTags() ([]string, error) {
	seen := map[Tag]bool{}
	var tags []string
	for _, table := range []string{"GSUB", "GPOS"} {
		b, ok := f.tables[T(table)]
		if !ok {
			continue
		}
		featTags, err := featureListTags(b)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "%s feature list unreadable", table)
		}
		for _, t := range featTags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t.String())
			}
		}
	}
	return tags, nil
}

// featureListTags reads the tags of a layout table's FeatureList. The
// list lives behind the offset at byte 6 of the table header; each
// record is a 4-byte tag followed by a 2-byte offset.
func featureListTags(b binarySegm) ([]Tag, error) {
	offset, err := b.u16(6)
	if err != nil {
		return nil, err
	}
	list, err := b.view(int(offset), 2)
	if err != nil {
		return nil, err
	}
	count := int(u16(list))
	list = b[offset:]
	tags := make([]Tag, 0, count)
	for i := 0; i < count; i++ {
		rec, err := list.view(2+i*6, 6)
		if err != nil {
			return nil, err
		}
		tags = append(tags, MakeTag(rec[:4]))
	}
	return tags, nil
}
