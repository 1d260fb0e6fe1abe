package variation

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/typeproof/typeproof/core/font"
)

// Pair is a pairing of two static styles shown side by side in a proof.
type Pair struct {
	Key string // pairing key, e.g. the regular-side subfamily
	A   font.StyleInfo
	B   font.StyleInfo
}

// boldCounterpart maps a regular-weight subfamily to the subfamily its
// bold partner must carry.
var boldCounterpart = map[string]string{
	"Regular": "Bold",
	"Italic":  "Bold Italic",
}

// PairRegularBold finds Regular/Bold pairings among the static members
// of one family. Only fonts whose legacy family name equals the given
// family and whose weight is exactly 400 or 700 are candidates; a
// 400-weight font pairs with the 700-weight font carrying the matching
// subfamily. Named sub-styles, recognizable by a legacy family name
// that differs from the typographic family ("Family Condensed" under
// "Family"), are excluded even when they sit at a pairable weight.
// Pairs are returned sorted by their key.
func PairRegularBold(family string, infos []font.StyleInfo) []Pair {
	byWeight := map[int]map[string]font.StyleInfo{400: {}, 700: {}}
	for _, info := range infos {
		if info.Variable || info.LegacyFamily != family || info.LegacyFamily != info.Family {
			continue
		}
		if info.Weight == 400 || info.Weight == 700 {
			byWeight[info.Weight][info.Subfamily] = info
		}
	}
	pairs := treemap.NewWithStringComparator()
	for subfamily, regular := range byWeight[400] {
		counterpart, ok := boldCounterpart[subfamily]
		if !ok {
			continue
		}
		if bold, ok := byWeight[700][counterpart]; ok {
			pairs.Put(subfamily, Pair{Key: subfamily, A: regular, B: bold})
		}
	}
	return sortedPairs(pairs)
}

// PairUprightItalic finds upright/italic pairings among the static
// fonts of a collection, keyed by weight class alone. When several
// fonts of the same weight and slant exist, the last one wins. Pairs
// are returned sorted by weight.
func PairUprightItalic(infos []font.StyleInfo) []Pair {
	upright := map[int]font.StyleInfo{}
	italic := map[int]font.StyleInfo{}
	for _, info := range infos {
		if info.Variable {
			continue
		}
		if info.Italic {
			italic[info.Weight] = info
		} else {
			upright[info.Weight] = info
		}
	}
	pairs := treemap.NewWithIntComparator()
	for weight, up := range upright {
		if it, ok := italic[weight]; ok {
			pairs.Put(weight, Pair{Key: up.Subfamily, A: up, B: it})
		}
	}
	return sortedPairs(pairs)
}

func sortedPairs(m *treemap.Map) []Pair {
	pairs := make([]Pair, 0, m.Size())
	for _, v := range m.Values() {
		pairs = append(pairs, v.(Pair))
	}
	tracer().Debugf("found %d style pairs", len(pairs))
	return pairs
}
