package prooftext

import (
	"strings"
	"unicode"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/charset"
	"github.com/typeproof/typeproof/engine/words"
)

// GenerationSeed feeds every word sampler, so regenerating a proof for
// an unchanged font reproduces it exactly.
const GenerationSeed = 987654

// Request describes one text-proof content synthesis.
type Request struct {
	Charset       string // the characters this proof is about
	FullCharset   string // the font's whole repertoire
	Paragraphs    int    // paragraph count for generated text
	Big           bool   // display-size proof, fewer but larger words
	ForceGenerate bool   // skip curated texts even when they would fit
	Lang          string // "", "ar" or "fa"
}

// TextProofString produces the body text of a paragraph proof.
//
// Arabic and Farsi requests always generate positional-form text. Latin
// requests use the curated sample texts when the repertoire covers the
// needed template alphabets, and otherwise generate text constrained to
// the characters the font actually has: mixed-case fonts get
// capitalized and lowercase word runs per base uppercase letter
// followed by running text, one-case fonts get per-letter word runs in
// their single case.
func TextProofString(cat charset.Categorization, req Request) (string, error) {
	if req.Paragraphs <= 0 {
		req.Paragraphs = 2
	}
	if req.Lang == "ar" || req.Lang == "fa" {
		return arabicFarsiText(req)
	}
	hasUpperTemplate := containsAll(cat.Class(charset.CatUpper), charset.UpperTemplate)
	hasLowerTemplate := containsAll(cat.Class(charset.CatLower), charset.LowerTemplate)
	if !req.ForceGenerate {
		switch {
		case cat.UppercaseOnly && hasUpperTemplate:
			return curated(req.Big, BigUpperText, SmallUpperText), nil
		case cat.LowercaseOnly && hasLowerTemplate:
			return curated(req.Big, BigLowerText, SmallLowerText), nil
		case hasUpperTemplate && hasLowerTemplate:
			return curated(req.Big, BigMixedText+" "+BigUpperText, SmallMixedText+" "+SmallUpperText), nil
		}
	}
	switch {
	case !cat.UppercaseOnly && !cat.LowercaseOnly || req.ForceGenerate:
		return mixedCaseText(cat, req)
	case cat.UppercaseOnly:
		return uppercaseText(cat, req)
	default:
		return lowercaseText(cat, req)
	}
}

func curated(big bool, bigText, smallText string) string {
	if big {
		return bigText
	}
	return smallText
}

// mixedCaseText generates word runs for each base uppercase letter, a
// couple of capitalized words followed by lowercase words containing
// the letter, then running text over the font's letters, figures and
// punctuation, once as-is and once uppercased.
func mixedCaseText(cat charset.Categorization, req Request) (string, error) {
	sampler, err := words.NewSampler("en", GenerationSeed)
	if err != nil {
		return "", err
	}
	var caplc strings.Builder
	for _, u := range cat.Class(charset.CatUpperBase) {
		capAndLower := string(u) + cat.Class(charset.CatLowerBase)
		perLetter, err := words.NewSampler("en", GenerationSeed)
		if err != nil {
			return "", err
		}
		capitalized, err := perLetter.Words(words.Options{
			N: 2, Glyphs: capAndLower, Case: words.CaseCapitalized, MinWL: 5, MaxWL: 14,
		})
		if err == nil {
			caplc.WriteString(strings.Join(capitalized, " ") + " ")
		}
		lower, err := perLetter.Words(words.Options{
			N: 4, Glyphs: capAndLower, Case: words.CaseLower,
			Contains: strings.ToLower(string(u)), MinWL: 5, MaxWL: 14,
		})
		if err == nil {
			caplc.WriteString(strings.Join(lower, " ") + " ")
		}
	}
	runningGlyphs := cat.Class(charset.CatUpper) + cat.Class(charset.CatLower) +
		cat.Class(charset.CatDigit) + cat.Class(charset.CatPunctOther) +
		cat.Class(charset.CatPunctConn) + cat.Class(charset.CatPunctDash) +
		cat.Class(charset.CatPunctInit) + cat.Class(charset.CatPunctFinal) + "()"
	running, err := sampler.Text(words.Options{N: 1, Glyphs: runningGlyphs}, req.Paragraphs, 0.1, 0.1)
	if err != nil {
		return "", core.WrapError(err, core.EDEGRADED, "running text generation failed")
	}
	return caplc.String() + "\n\n" + running + "\n\n" + strings.ToUpper(running), nil
}

// uppercaseText generates per-letter word runs and running text for a
// font without lowercase.
func uppercaseText(cat charset.Categorization, req Request) (string, error) {
	helper := req.FullCharset
	if helper == "" {
		helper = req.Charset
	}
	helperLower := strings.ToLower(helper)
	var initials strings.Builder
	for _, u := range cat.Class(charset.CatUpper) {
		perLetter, err := words.NewSampler("en", GenerationSeed)
		if err != nil {
			return "", err
		}
		ws, err := perLetter.Words(words.Options{
			N: 4, Glyphs: string(u) + helperLower, Case: words.CaseCapitalized, MinWL: 5, MaxWL: 14,
		})
		if err == nil {
			initials.WriteString(strings.ToUpper(strings.Join(ws, " ")) + " ")
		}
	}
	sampler, err := words.NewSampler("en", GenerationSeed)
	if err != nil {
		return "", err
	}
	running, err := sampler.Text(words.Options{
		N: 1, Glyphs: helper, Case: words.CaseUpper, MinWL: 1, MaxWL: 14,
	}, req.Paragraphs, 0, 0)
	if err != nil {
		return "", core.WrapError(err, core.EDEGRADED, "uppercase text generation failed")
	}
	return initials.String() + "- " + running, nil
}

// lowercaseText mirrors uppercaseText for fonts without uppercase.
func lowercaseText(cat charset.Categorization, req Request) (string, error) {
	helper := req.FullCharset
	if helper == "" {
		helper = req.Charset
	}
	var initials strings.Builder
	for _, l := range cat.Class(charset.CatLower) {
		perLetter, err := words.NewSampler("en", GenerationSeed)
		if err != nil {
			return "", err
		}
		ws, err := perLetter.Words(words.Options{
			N: 4, Glyphs: strings.ToUpper(string(l)) + helper, Case: words.CaseCapitalized, MinWL: 5, MaxWL: 14,
		})
		if err == nil {
			initials.WriteString(strings.ToLower(strings.Join(ws, " ")) + " ")
		}
	}
	sampler, err := words.NewSampler("en", GenerationSeed)
	if err != nil {
		return "", err
	}
	running, err := sampler.Text(words.Options{
		N: 1, Glyphs: helper, Case: words.CaseLower, MinWL: 1, MaxWL: 14,
	}, req.Paragraphs, 0, 0)
	if err != nil {
		return "", core.WrapError(err, core.EDEGRADED, "lowercase text generation failed")
	}
	return initials.String() + running, nil
}

// positional form order for Arabic text generation
var posForms = []string{"init", "medi", "fina"}

// arabicFarsiText generates, for every character of the proof charset,
// words showing the character in initial, medial and final position. A
// position without matching words falls back to words merely containing
// the character. If generation fails entirely, the charset itself is
// returned together with a degradation error.
func arabicFarsiText(req Request) (string, error) {
	sampler, err := words.NewSampler(req.Lang, GenerationSeed)
	if err != nil {
		return strings.Join(strings.Split(req.Charset, ""), " "),
			core.WrapError(err, core.EDEGRADED, "%s vocabulary unavailable", req.Lang)
	}
	n := 6
	if req.Big {
		n = 4
	}
	var b strings.Builder
	for _, g := range req.Charset {
		ch := string(g)
		b.WriteString(ch + ". ")
		for _, p := range posForms {
			opts := words.Options{N: n, Glyphs: req.FullCharset, MinWL: 5, MaxWL: 14}
			switch p {
			case "init":
				opts.StartsWith = ch
			case "medi":
				opts.Inner = ch
			case "fina":
				opts.EndsWith = ch
			}
			ws, err := sampler.Words(opts)
			if err != nil {
				fallback := words.Options{N: n, Glyphs: req.FullCharset, MinWL: 5, MaxWL: 14, Contains: ch}
				ws, err = sampler.Words(fallback)
			}
			if err == nil {
				b.WriteString(strings.Join(ws, " ") + " ")
			}
		}
		b.WriteString("\n")
	}
	if strings.TrimSpace(b.String()) == "" {
		return strings.Join(strings.Split(req.Charset, ""), " "),
			core.Error(core.EDEGRADED, "no %s words for any requested character", req.Lang)
	}
	return b.String(), nil
}

// SpacingString builds the spacing proof: each character set between
// control characters matching its category, lowercase between n/o,
// figures between 0/1, everything else between H/O. For the character
// H the line reads HHHHHOHHOHOOOO.
func SpacingString(characterSet string) string {
	var lines []string
	for _, char := range characterSet {
		if char == '\n' || char == ' ' {
			continue
		}
		var c1, c2 string
		switch {
		case unicode.Is(unicode.Ll, char):
			c1, c2 = "n", "o"
		case unicode.Is(unicode.Nd, char):
			c1, c2 = "0", "1"
		default:
			c1, c2 = "H", "O"
		}
		ch := string(char)
		lines = append(lines, c1+c1+c1+ch+c1+c2+c1+ch+c2+ch+c2+c2+c2+c2)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// ArabicContextualForms builds the Arabic character-set proof: every
// typed Arabic character in isolation and in its joining forms. Hamza
// never joins, dual-joiners are shown tripled, right-joiners after a
// connecting ب.
func ArabicContextualForms(cat charset.Categorization) string {
	arabic := cat.Class(charset.CatArabicBlock)
	if arabic == "" {
		return ""
	}
	var b strings.Builder
	for _, char := range arabic {
		ch := string(char)
		switch {
		case char == 'ء':
			b.WriteString(ch + " ")
		case strings.ContainsRune(cat.Class(charset.CatDualJoin), char):
			b.WriteString(ch + " " + ch + ch + ch + " ")
		case strings.ContainsRune(cat.Class(charset.CatRightJoin), char):
			b.WriteString(ch + " " + "ب" + ch + " ")
		}
	}
	return b.String()
}

func containsAll(haystack, needles string) bool {
	for _, r := range needles {
		if !strings.ContainsRune(haystack, r) {
			return false
		}
	}
	return true
}
