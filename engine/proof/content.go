package proof

import (
	"fmt"
	"strings"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/charset"
	"github.com/typeproof/typeproof/engine/prooftext"
)

// Section is one renderable unit of a proof: a block of text with its
// layout parameters. A proof expands to one or more sections.
type Section struct {
	Title     string
	Text      string
	FontSize  float64
	Columns   int
	Align     string
	Tracking  float64
	Direction string // "ltr" or "rtl"
	Features  map[string]bool
	Mixed     bool // alternate paired styles while rendering
}

// injected curated text blocks by name
var injectBlocks = map[string]string{
	"numbers":      prooftext.BigRandomNumbers,
	"additional":   prooftext.AdditionalSmallText,
	"vocalization": prooftext.ArabicVocalization,
	"ar_lat_mixed": prooftext.ArabicLatinMixed,
	"ar_numbers":   prooftext.ArabicFarsiUrduNumbers,
}

// BuildSections expands a proof kind into its sections for one font.
// A proof whose character material is absent from the font expands to
// zero sections, which is not an error.
func BuildSections(kind Kind, cat charset.Categorization, fullCharset string, s *Settings) ([]Section, error) {
	info, ok := registryByKey[kind]
	if !ok {
		return nil, core.Error(core.EMISSING, "unknown proof type %q", kind)
	}
	switch info.variant {
	case contentCharset:
		return charsetSections(info, cat, s), nil
	case contentSpacing:
		return spacingSections(info, cat, s), nil
	case contentParagraph:
		return paragraphSections(info, cat, fullCharset, s)
	case contentDiacritic:
		return diacriticSections(info, cat, fullCharset, s), nil
	case contentInjected:
		return injectedSections(info, s)
	case contentArabicForms:
		return arabicFormsSections(info, cat, s), nil
	}
	return nil, core.Error(core.EINTERNAL, "proof type %q has no content variant", kind)
}

// resolveCharset maps a registry charset key to characters of the
// categorization. The Arabic and Farsi keys fall back to the whole
// Arabic-script repertoire, so fonts covering only an extension of the
// script (Urdu, say) still get their paragraph proofs.
func resolveCharset(cat charset.Categorization, key string) string {
	switch key {
	case "letters":
		return cat.Class(charset.CatUpper) + cat.Class(charset.CatLower)
	case "accented_plus":
		return cat.Class(charset.CatAccentedPlus)
	case "ar":
		return fallback(cat.Class(charset.CatArTemplate), cat.Class(charset.CatArabicScript))
	case "fa":
		return fallback(cat.Class(charset.CatFaTemplate), cat.Class(charset.CatArabicScript))
	}
	return ""
}

func fallback(chars, alt string) string {
	if chars != "" {
		return chars
	}
	return alt
}

func charsetSections(info Info, cat charset.Categorization, s *Settings) []Section {
	var sections []Section
	for _, group := range charset.ProofGroups(cat) {
		if group.Chars == "" || !s.Category(group.Key) {
			continue
		}
		sections = append(sections, Section{
			Title:     fmt.Sprintf("Character Set - %s - %gpt", group.Label, s.FontSize),
			Text:      group.Chars,
			FontSize:  s.FontSize,
			Columns:   s.Columns,
			Align:     "center",
			Tracking:  s.FontSize / 1.5,
			Direction: "ltr",
			Features:  s.Features,
		})
	}
	return sections
}

func spacingSections(info Info, cat charset.Categorization, s *Settings) []Section {
	features := spacingFeatureDefaults()
	for tag, enabled := range s.Features {
		features[tag] = enabled
	}
	var sections []Section
	for _, group := range charset.ProofGroups(cat) {
		if group.Chars == "" || !s.Category(group.Key) {
			continue
		}
		text := prooftext.SpacingString(strings.ReplaceAll(group.Chars, "\n", ""))
		if text == "" {
			continue
		}
		sections = append(sections, Section{
			Title:     fmt.Sprintf("Spacing - %s - %gpt", group.Label, s.FontSize),
			Text:      text,
			FontSize:  s.FontSize,
			Columns:   s.Columns,
			Align:     "left",
			Tracking:  s.Tracking,
			Direction: "ltr",
			Features:  features,
		})
	}
	return sections
}

func paragraphSections(info Info, cat charset.Categorization, fullCharset string, s *Settings) ([]Section, error) {
	chars := resolveCharset(cat, info.charsetKey)
	if chars == "" && (info.lang == "ar" || info.lang == "fa") {
		return nil, nil
	}
	text, err := prooftext.TextProofString(cat, prooftext.Request{
		Charset:       chars,
		FullCharset:   fullCharset,
		Paragraphs:    s.Paragraphs,
		Big:           info.big,
		ForceGenerate: info.forceGen,
		Lang:          info.lang,
	})
	if err != nil {
		if core.Code(err) != core.EDEGRADED {
			return nil, err
		}
		tracer().Infof("proof %s degraded: %s", info.Key, core.UserMessage(err))
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []Section{{
		Title:     fmt.Sprintf("%s - %gpt", info.DisplayName, s.FontSize),
		Text:      text,
		FontSize:  s.FontSize,
		Columns:   s.Columns,
		Align:     s.Align,
		Tracking:  s.Tracking,
		Direction: direction(info.lang),
		Features:  s.Features,
		Mixed:     info.mixed,
	}}, nil
}

func diacriticSections(info Info, cat charset.Categorization, fullCharset string, s *Settings) []Section {
	chars := resolveCharset(cat, info.charsetKey)
	if chars == "" {
		return nil
	}
	text := prooftext.AccentedWordRows(chars, fullCharset, info.accents, !info.big, prooftext.GenerationSeed)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []Section{{
		Title:     fmt.Sprintf("%s - %gpt", info.DisplayName, s.FontSize),
		Text:      text,
		FontSize:  s.FontSize,
		Columns:   s.Columns,
		Align:     s.Align,
		Tracking:  s.Tracking,
		Direction: "ltr",
		Features:  s.Features,
	}}
}

func injectedSections(info Info, s *Settings) ([]Section, error) {
	var b strings.Builder
	for _, key := range info.injectKeys {
		block, ok := injectBlocks[key]
		if !ok {
			return nil, core.Error(core.EINTERNAL, "proof %s references unknown text block %q", info.Key, key)
		}
		b.WriteString(strings.TrimRight(block, " \n") + "\n")
	}
	return []Section{{
		Title:     fmt.Sprintf("%s - %gpt", info.DisplayName, s.FontSize),
		Text:      b.String(),
		FontSize:  s.FontSize,
		Columns:   s.Columns,
		Align:     s.Align,
		Tracking:  s.Tracking,
		Direction: direction(info.lang),
		Features:  s.Features,
	}}, nil
}

func arabicFormsSections(info Info, cat charset.Categorization, s *Settings) []Section {
	text := prooftext.ArabicContextualForms(cat)
	if text == "" {
		return nil
	}
	return []Section{{
		Title:     fmt.Sprintf("%s - %gpt", info.DisplayName, s.FontSize),
		Text:      text,
		FontSize:  s.FontSize,
		Columns:   1,
		Align:     "center",
		Tracking:  s.Tracking,
		Direction: "rtl",
		Features:  s.Features,
	}}
}

func direction(lang string) string {
	if lang == "ar" || lang == "fa" {
		return "rtl"
	}
	return "ltr"
}
