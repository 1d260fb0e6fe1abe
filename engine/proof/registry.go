package proof

// Kind identifies a proof type.
type Kind string

const (
	FilteredCharacterSet Kind = "filtered_character_set"
	SpacingProof         Kind = "spacing_proof"
	BasicParagraphLarge  Kind = "basic_paragraph_large"
	DiacriticWordsLarge  Kind = "diacritic_words_large"
	BasicParagraphSmall  Kind = "basic_paragraph_small"
	PairedStylesSmall    Kind = "paired_styles_paragraph_small"
	GenerativeTextSmall  Kind = "generative_text_small"
	DiacriticWordsSmall  Kind = "diacritic_words_small"
	MiscParagraphSmall   Kind = "misc_paragraph_small"
	ArCharacterSet       Kind = "ar_character_set"
	ArParagraphLarge     Kind = "ar_paragraph_large"
	FaParagraphLarge     Kind = "fa_paragraph_large"
	ArParagraphSmall     Kind = "ar_paragraph_small"
	FaParagraphSmall     Kind = "fa_paragraph_small"
	ArVocalizationSmall  Kind = "ar_vocalization_paragraph_small"
	ArLatMixedSmall      Kind = "ar_lat_mixed_paragraph_small"
	ArNumbersSmall       Kind = "ar_numbers_small"
)

// Default font sizes by proof role.
const (
	charsetFontSize   = 78
	spacingFontSize   = 14
	largeTextFontSize = 28
	smallTextFontSize = 10
)

// content variant selectors, one per way of producing proof text
type contentVariant int

const (
	contentCharset contentVariant = iota
	contentSpacing
	contentParagraph
	contentDiacritic
	contentInjected
	contentArabicForms
)

// Info describes one proof type: its identity, layout defaults and the
// content variant that produces its text.
type Info struct {
	Key         Kind
	DisplayName string
	Arabic      bool // requires Arabic repertoire support

	DefaultColumns int
	HasParagraphs  bool // paragraph count is a user setting
	DefaultSize    float64

	variant    contentVariant
	charsetKey string   // category selector for the proof charset
	big        bool     // display-size text generation
	mixed      bool     // alternate paired styles within the text
	forceGen   bool     // always generate, never use curated texts
	lang       string   // "ar"/"fa" for script-specific generation
	accents    int      // words per character for diacritic proofs
	injectKeys []string // named curated blocks for injected proofs
}

// registry is the single source of truth for all proof types, in
// display order.
var registry = []Info{
	{Key: FilteredCharacterSet, DisplayName: "Filtered Character Set", DefaultColumns: 1,
		DefaultSize: charsetFontSize, variant: contentCharset},
	{Key: SpacingProof, DisplayName: "Spacing Proof", DefaultColumns: 2,
		DefaultSize: spacingFontSize, variant: contentSpacing},
	{Key: BasicParagraphLarge, DisplayName: "Basic Paragraph Large", DefaultColumns: 1,
		DefaultSize: largeTextFontSize, variant: contentParagraph, charsetKey: "letters", big: true},
	{Key: DiacriticWordsLarge, DisplayName: "Diacritic Words Large", DefaultColumns: 1,
		DefaultSize: largeTextFontSize, variant: contentDiacritic, charsetKey: "accented_plus", accents: 2, big: true},
	{Key: BasicParagraphSmall, DisplayName: "Basic Paragraph Small", DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentParagraph, charsetKey: "letters"},
	{Key: PairedStylesSmall, DisplayName: "Paired Styles Paragraph Small", DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentParagraph, charsetKey: "letters", mixed: true},
	{Key: GenerativeTextSmall, DisplayName: "Generative Text Small", DefaultColumns: 2,
		DefaultSize: smallTextFontSize, HasParagraphs: true,
		variant: contentParagraph, charsetKey: "letters", forceGen: true},
	{Key: DiacriticWordsSmall, DisplayName: "Diacritic Words Small", DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentDiacritic, charsetKey: "accented_plus", accents: 4},
	{Key: MiscParagraphSmall, DisplayName: "Misc Paragraph Small", DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentInjected, injectKeys: []string{"numbers", "additional"}},
	{Key: ArCharacterSet, DisplayName: "Ar Character Set", Arabic: true, DefaultColumns: 1,
		DefaultSize: charsetFontSize, variant: contentArabicForms},
	{Key: ArParagraphLarge, DisplayName: "Ar Paragraph Large", Arabic: true, DefaultColumns: 1,
		DefaultSize: largeTextFontSize, variant: contentParagraph, charsetKey: "ar", lang: "ar", big: true},
	{Key: FaParagraphLarge, DisplayName: "Fa Paragraph Large", Arabic: true, DefaultColumns: 1,
		DefaultSize: largeTextFontSize, variant: contentParagraph, charsetKey: "fa", lang: "fa", big: true},
	{Key: ArParagraphSmall, DisplayName: "Ar Paragraph Small", Arabic: true, DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentParagraph, charsetKey: "ar", lang: "ar"},
	{Key: FaParagraphSmall, DisplayName: "Fa Paragraph Small", Arabic: true, DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentParagraph, charsetKey: "fa", lang: "fa"},
	{Key: ArVocalizationSmall, DisplayName: "Ar Vocalization Paragraph Small", Arabic: true, DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentInjected, lang: "ar", injectKeys: []string{"vocalization"}},
	{Key: ArLatMixedSmall, DisplayName: "Ar-Lat Mixed Paragraph Small", Arabic: true, DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentInjected, lang: "ar", injectKeys: []string{"ar_lat_mixed"}},
	{Key: ArNumbersSmall, DisplayName: "Ar Numbers Small", Arabic: true, DefaultColumns: 2,
		DefaultSize: smallTextFontSize, variant: contentInjected, lang: "ar", injectKeys: []string{"ar_numbers"}},
}

var registryByKey = func() map[Kind]Info {
	m := make(map[Kind]Info, len(registry))
	for _, info := range registry {
		m[info.Key] = info
	}
	return m
}()

// Lookup returns the registry entry for a proof kind.
func Lookup(kind Kind) (Info, bool) {
	info, ok := registryByKey[kind]
	return info, ok
}

// AllKinds returns every proof kind in display order. With arabic set
// to false, the Arabic proof types are omitted.
func AllKinds(arabic bool) []Kind {
	kinds := make([]Kind, 0, len(registry))
	for _, info := range registry {
		if info.Arabic && !arabic {
			continue
		}
		kinds = append(kinds, info.Key)
	}
	return kinds
}

// DisplayName returns the human-readable name of a proof kind, the key
// itself when unknown.
func DisplayName(kind Kind) string {
	if info, ok := registryByKey[kind]; ok {
		return info.DisplayName
	}
	return string(kind)
}

// SupportsFormatting reports whether a proof honors the tracking and
// alignment settings. Character-set style proofs lay themselves out.
func SupportsFormatting(kind Kind) bool {
	switch kind {
	case FilteredCharacterSet, SpacingProof, ArCharacterSet:
		return false
	}
	return true
}
