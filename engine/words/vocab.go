package words

import (
	"embed"
	"strings"

	"github.com/derekparker/trie"
	"golang.org/x/text/language"

	"github.com/typeproof/typeproof/core"
)

//go:embed data/*.txt
var vocabData embed.FS

// Vocabulary is the word list of one language, with a prefix index for
// first-letter constrained sampling.
type Vocabulary struct {
	Lang  language.Tag
	words []string
	index *trie.Trie
}

var vocabLanguages = map[string]language.Tag{
	"en": language.English,
	"ar": language.Arabic,
	"fa": language.Persian,
}

// LoadVocabulary reads the embedded word list of a language ("en",
// "ar", "fa").
func LoadVocabulary(lang string) (*Vocabulary, error) {
	tag, ok := vocabLanguages[lang]
	if !ok {
		return nil, core.Error(core.EMISSING, "no vocabulary for language %q", lang)
	}
	data, err := vocabData.ReadFile("data/" + lang + ".txt")
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "vocabulary %q not embedded", lang)
	}
	v := &Vocabulary{Lang: tag, index: trie.New()}
	seen := map[string]bool{}
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		v.words = append(v.words, word)
		v.index.Add(word, len(v.words)-1)
	}
	tracer().Debugf("vocabulary %q has %d words", lang, len(v.words))
	return v, nil
}

// Len returns the vocabulary size.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// withPrefix returns all words starting with the given prefix, in
// vocabulary order.
func (v *Vocabulary) withPrefix(prefix string) []string {
	if prefix == "" {
		return v.words
	}
	matches := v.index.PrefixSearch(prefix)
	// restore vocabulary order, the trie walks its own key order
	ordered := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		seen[m] = true
	}
	for _, w := range v.words {
		if seen[w] {
			ordered = append(ordered, w)
		}
	}
	return ordered
}
