package charset

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Category tags produced by Categorize. The uniXX tags mirror the
// two-letter Unicode general category names.
const (
	CatUpper       = "uniLu"
	CatLower       = "uniLl"
	CatLetterOther = "uniLo"
	CatPunctOther  = "uniPo"
	CatPunctConn   = "uniPc"
	CatPunctDash   = "uniPd"
	CatPunctOpen   = "uniPs"
	CatPunctClose  = "uniPe"
	CatPunctInit   = "uniPi"
	CatPunctFinal  = "uniPf"
	CatSymMath     = "uniSm"
	CatSymCurrency = "uniSc"
	CatDigit       = "uniNd"
	CatNumOther    = "uniNo"
	CatSymOther    = "uniSo"

	CatUpperBase    = "uniLuBase"
	CatLowerBase    = "uniLlBase"
	CatAccented     = "accented"
	CatAccentedPlus = "accented_plus"
	CatLatin        = "latn"
	CatArabicScript = "arab"
	CatArabicBlock  = "arabTyped"
	CatArTemplate   = "ar"
	CatFaTemplate   = "fa"
	CatDualJoin     = "arfaDualJoin"
	CatRightJoin    = "arfaRightJoin"
)

// generalCategories maps the 15 recognized Unicode general categories
// to their tags. A rune belongs to at most one of them.
var generalCategories = []struct {
	tag   string
	table *unicode.RangeTable
}{
	{CatUpper, unicode.Lu},
	{CatLower, unicode.Ll},
	{CatLetterOther, unicode.Lo},
	{CatPunctOther, unicode.Po},
	{CatPunctConn, unicode.Pc},
	{CatPunctDash, unicode.Pd},
	{CatPunctOpen, unicode.Ps},
	{CatPunctClose, unicode.Pe},
	{CatPunctInit, unicode.Pi},
	{CatPunctFinal, unicode.Pf},
	{CatSymMath, unicode.Sm},
	{CatSymCurrency, unicode.Sc},
	{CatDigit, unicode.Nd},
	{CatNumOther, unicode.No},
	{CatSymOther, unicode.So},
}

// allCategoryTags lists every tag a Categorization carries, in a fixed
// order, so that iteration over a categorization is deterministic.
var allCategoryTags = []string{
	CatUpper, CatLower, CatLetterOther,
	CatPunctOther, CatPunctConn, CatPunctDash, CatPunctOpen, CatPunctClose,
	CatPunctInit, CatPunctFinal,
	CatSymMath, CatSymCurrency, CatDigit, CatNumOther, CatSymOther,
	CatUpperBase, CatLowerBase, CatAccented, CatAccentedPlus,
	CatLatin, CatArabicScript, CatArabicBlock,
	CatArTemplate, CatFaTemplate, CatDualJoin, CatRightJoin,
}

// Categorization is the result of classifying a repertoire. Category
// values preserve the order of the input repertoire. A Categorization
// is immutable after construction.
type Categorization struct {
	classes map[string]string

	// UppercaseOnly is true iff the repertoire contains no lowercase letters.
	UppercaseOnly bool
	// LowercaseOnly is true iff the repertoire contains no uppercase letters.
	LowercaseOnly bool
}

// Class returns the characters of a single category, the empty string
// for unknown tags.
func (c Categorization) Class(tag string) string {
	return c.classes[tag]
}

// Tags returns all category tags in their fixed order.
func (c Categorization) Tags() []string {
	tags := make([]string, len(allCategoryTags))
	copy(tags, allCategoryTags)
	return tags
}

// Letters returns the cased letters of the repertoire, uppercase first.
func (c Categorization) Letters() string {
	return c.classes[CatUpper] + c.classes[CatLower]
}

// IsAccented checks whether a character carries a diacritical mark: its
// canonical decomposition has more than one element and the second one
// is a nonspacing mark.
func IsAccented(r rune) bool {
	decomp := []rune(norm.NFD.String(string(r)))
	return len(decomp) > 1 && unicode.Is(unicode.Mn, decomp[1])
}

// inArabicBlock tests membership in the Unicode block "Arabic". The
// Arabic script spans several blocks (Supplement, Extended-A, …); only
// the base block qualifies a character for contextual-forms proofing.
func inArabicBlock(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

// Categorize classifies every character of a repertoire. Each character
// is inspected once; the classification steps (general category, accent
// split, script, block, template membership) are independent of each
// other, so a character may appear in several categories. Category
// order follows repertoire order, except for the two base-letter
// buckets and the derived accented_plus bucket, which are computed from
// the letter buckets after the main pass.
func Categorize(repertoire string) Categorization {
	buckets := make(map[string]*strings.Builder, len(allCategoryTags))
	for _, tag := range allCategoryTags {
		buckets[tag] = &strings.Builder{}
	}

	for _, r := range repertoire {
		var cat string
		for _, gc := range generalCategories {
			if unicode.Is(gc.table, r) {
				cat = gc.tag
				buckets[cat].WriteRune(r)
				break
			}
		}

		if cat == CatUpper || cat == CatLower {
			switch {
			case IsAccented(r):
				buckets[CatAccented].WriteRune(r)
			case cat == CatUpper:
				buckets[CatUpperBase].WriteRune(r)
			default:
				buckets[CatLowerBase].WriteRune(r)
			}
		}

		// script classification
		if unicode.Is(unicode.Latin, r) {
			buckets[CatLatin].WriteRune(r)
		} else if unicode.Is(unicode.Arabic, r) {
			buckets[CatArabicScript].WriteRune(r)
			if inArabicBlock(r) {
				buckets[CatArabicBlock].WriteRune(r)
			}
		}

		// template classification; templates are not mutually exclusive
		if strings.ContainsRune(ArTemplate, r) {
			buckets[CatArTemplate].WriteRune(r)
		}
		if strings.ContainsRune(FaTemplate, r) {
			buckets[CatFaTemplate].WriteRune(r)
		}
		if strings.ContainsRune(ArfaDualJoin, r) {
			buckets[CatDualJoin].WriteRune(r)
		}
		if strings.ContainsRune(ArfaRightJoin, r) {
			buckets[CatRightJoin].WriteRune(r)
		}
	}

	classes := make(map[string]string, len(allCategoryTags))
	for tag, b := range buckets {
		classes[tag] = b.String()
	}

	// The expanded accented bucket collects true diacritics plus any
	// cased letter outside the 26-letter Latin templates. Cased letters
	// of non-Latin scripts land here as well; see the package notes.
	var exotic strings.Builder
	for _, r := range classes[CatUpper] + classes[CatLower] {
		if !strings.ContainsRune(classes[CatAccented], r) &&
			!strings.ContainsRune(LowerTemplate, r) &&
			!strings.ContainsRune(UpperTemplate, r) {
			exotic.WriteRune(r)
		}
	}
	classes[CatAccentedPlus] = classes[CatAccented] + exotic.String()

	cat := Categorization{
		classes:       classes,
		UppercaseOnly: classes[CatLower] == "",
		LowercaseOnly: classes[CatUpper] == "",
	}
	tracer().Debugf("categorized %d characters, %d uppercase, %d lowercase",
		len([]rune(repertoire)), len([]rune(classes[CatUpper])), len([]rune(classes[CatLower])))
	return cat
}

// ArabicSupport reports whether a repertoire contains the probe letters
// required for Arabic proofing.
func ArabicSupport(repertoire string) bool {
	for _, r := range arabicProbeLetters {
		if !strings.ContainsRune(repertoire, r) {
			return false
		}
	}
	return true
}

// ProofGroup is one titled section of a character-set proof.
type ProofGroup struct {
	Key   string // settings key of the section toggle
	Label string // section title
	Chars string // characters to display; empty groups are not rendered
}

// ProofGroups organizes a categorization into the display groups of the
// character-set proof: base letters sorted by codepoint, a combined
// numbers-and-symbols block, combined punctuation, and the accented
// letters.
func ProofGroups(cat Categorization) []ProofGroup {
	num := joinNonEmpty("\n", cat.Class(CatDigit), cat.Class(CatSymMath),
		cat.Class(CatSymCurrency), cat.Class(CatNumOther))
	punct := cat.Class(CatPunctOther) + cat.Class(CatPunctConn) +
		cat.Class(CatPunctDash) + cat.Class(CatPunctOpen) + cat.Class(CatPunctClose) +
		cat.Class(CatPunctInit) + cat.Class(CatPunctFinal)
	return []ProofGroup{
		{Key: "uppercase_base", Label: "Uppercase Base", Chars: sortByCodepoint(cat.Class(CatUpperBase))},
		{Key: "lowercase_base", Label: "Lowercase Base", Chars: sortByCodepoint(cat.Class(CatLowerBase))},
		{Key: "numbers_symbols", Label: "Numbers & Symbols", Chars: num},
		{Key: "punctuation", Label: "Punctuation", Chars: punct},
		{Key: "accented", Label: "Accented Characters", Chars: cat.Class(CatAccented)},
	}
}

func sortByCodepoint(s string) string {
	runes := []rune(s)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func joinNonEmpty(sep string, parts ...string) string {
	joined := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, sep)
}
