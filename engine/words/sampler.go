package words

import (
	"math/rand"
	"strings"

	"golang.org/x/text/cases"

	"github.com/typeproof/typeproof/core"
)

// CaseMode selects the letter case of sampled words.
type CaseMode int

const (
	CaseAny CaseMode = iota
	CaseLower
	CaseUpper
	CaseCapitalized
)

// Options constrain a sampling call. The zero value places no
// constraints except N, which must be positive.
type Options struct {
	N          int      // number of words to draw
	Glyphs     string   // restrict to words renderable with these characters
	Case       CaseMode // letter case applied before the glyph filter
	MinWL      int      // minimum word length in runes, 0 for no bound
	MaxWL      int      // maximum word length in runes, 0 for no bound
	StartsWith string   // required word prefix
	EndsWith   string   // required word suffix
	Inner      string   // required substring strictly inside the word
	Contains   string   // required substring anywhere
}

// Sampler draws words from a vocabulary with a seeded random source.
type Sampler struct {
	vocab *Vocabulary
	rng   *rand.Rand
}

// NewSampler creates a sampler for a language with a deterministic
// random source.
func NewSampler(lang string, seed int64) (*Sampler, error) {
	vocab, err := LoadVocabulary(lang)
	if err != nil {
		return nil, err
	}
	return &Sampler{vocab: vocab, rng: rand.New(rand.NewSource(seed))}, nil
}

// Words draws opts.N words matching all constraints. It fails with
// EMISSING when the constraints leave no candidates. Repetition is
// allowed, but the same word never appears twice in a row as long as
// more than one candidate exists.
func (s *Sampler) Words(opts Options) ([]string, error) {
	if opts.N <= 0 {
		return nil, core.Error(core.EINVALID, "word count must be positive, is %d", opts.N)
	}
	candidates := s.candidates(opts)
	if len(candidates) == 0 {
		return nil, core.Error(core.EMISSING, "no words match the given constraints")
	}
	picked := make([]string, opts.N)
	prev := -1
	for i := range picked {
		j := s.rng.Intn(len(candidates))
		if j == prev && len(candidates) > 1 {
			j = (j + 1) % len(candidates)
		}
		picked[i] = candidates[j]
		prev = j
	}
	return picked, nil
}

func (s *Sampler) candidates(opts Options) []string {
	caser := s.caser(opts.Case)
	glyphs := opts.Glyphs
	var out []string
	for _, word := range s.vocab.withPrefix(opts.StartsWith) {
		if caser != nil {
			word = caser.String(word)
		}
		runes := []rune(word)
		if opts.MinWL > 0 && len(runes) < opts.MinWL {
			continue
		}
		if opts.MaxWL > 0 && len(runes) > opts.MaxWL {
			continue
		}
		if opts.EndsWith != "" && !strings.HasSuffix(word, opts.EndsWith) {
			continue
		}
		if opts.Inner != "" {
			if len(runes) < 3 || !strings.Contains(string(runes[1:len(runes)-1]), opts.Inner) {
				continue
			}
		}
		if opts.Contains != "" && !strings.Contains(word, opts.Contains) {
			continue
		}
		if glyphs != "" && !composableFrom(word, glyphs) {
			continue
		}
		out = append(out, word)
	}
	tracer().Debugf("%d of %d words match constraints", len(out), s.vocab.Len())
	return out
}

// caser returns nil for CaseAny; prefix-constrained sampling relies on
// the vocabulary's original case, so callers combine StartsWith with
// CaseAny or CaseLower only.
func (s *Sampler) caser(mode CaseMode) *cases.Caser {
	var c cases.Caser
	switch mode {
	case CaseLower:
		c = cases.Lower(s.vocab.Lang)
	case CaseUpper:
		c = cases.Upper(s.vocab.Lang)
	case CaseCapitalized:
		c = cases.Title(s.vocab.Lang)
	default:
		return nil
	}
	return &c
}

func composableFrom(word, glyphs string) bool {
	for _, r := range word {
		if !strings.ContainsRune(glyphs, r) {
			return false
		}
	}
	return true
}

// Text produces paragraphs of sampled words: sentences of 5 to 12
// words, the first word capitalized for Latin text, closed with a
// period. numberProb and punctProb inject a number word or a trailing
// comma with the given per-word probability.
func (s *Sampler) Text(opts Options, paragraphs int, numberProb, punctProb float64) (string, error) {
	if paragraphs <= 0 {
		return "", core.Error(core.EINVALID, "paragraph count must be positive, is %d", paragraphs)
	}
	digits := availableDigits(opts.Glyphs)
	var b strings.Builder
	for p := 0; p < paragraphs; p++ {
		if p > 0 {
			b.WriteString("\n\n")
		}
		sentences := 3 + s.rng.Intn(3)
		for sent := 0; sent < sentences; sent++ {
			if sent > 0 {
				b.WriteString(" ")
			}
			n := 5 + s.rng.Intn(8)
			wordOpts := opts
			wordOpts.N = n
			ws, err := s.Words(wordOpts)
			if err != nil {
				return "", err
			}
			if s.latin() && opts.Case == CaseAny {
				ws[0] = cases.Title(s.vocab.Lang).String(ws[0])
			}
			for i, w := range ws {
				if numberProb > 0 && len(digits) > 0 && s.rng.Float64() < numberProb {
					w = s.number(digits)
				}
				b.WriteString(w)
				if i < len(ws)-1 {
					if punctProb > 0 && s.rng.Float64() < punctProb {
						b.WriteString(",")
					}
					b.WriteString(" ")
				}
			}
			b.WriteString(".")
		}
	}
	return b.String(), nil
}

func (s *Sampler) latin() bool {
	return s.vocab.Lang == vocabLanguages["en"]
}

// number builds a 1 to 4 digit number from the digits the font has.
func (s *Sampler) number(digits []rune) string {
	n := 1 + s.rng.Intn(4)
	out := make([]rune, n)
	for i := range out {
		out[i] = digits[s.rng.Intn(len(digits))]
	}
	return string(out)
}

func availableDigits(glyphs string) []rune {
	if glyphs == "" {
		return []rune("0123456789")
	}
	var digits []rune
	for _, r := range glyphs {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	return digits
}
