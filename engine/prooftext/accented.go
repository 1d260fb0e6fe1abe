package prooftext

import (
	"math/rand"
	"strings"
	"unicode"
)

// accentedWords maps an accented character to real words containing it,
// drawn from the European languages the character is native to. The
// diacritic-words proofs sample from this dictionary so that accented
// letters appear in realistic surroundings instead of isolated rows.
var accentedWords = map[rune][]string{
	'á': {"árbol", "fácil", "rápido", "sábado", "está", "página"},
	'à': {"voilà", "déjà", "città", "là-bas", "àpeine", "civiltà"},
	'â': {"château", "âge", "pâte", "grâce", "théâtre", "bâtiment"},
	'ä': {"mädchen", "träume", "gefährlich", "erzählen", "universität", "qualität"},
	'å': {"år", "språk", "båt", "påske", "håndverk", "småting"},
	'ã': {"não", "irmão", "coração", "manhã", "alemão", "informação"},
	'æ': {"lærer", "værelse", "bær", "kærlighed", "sæson", "færdig"},
	'ç': {"français", "garçon", "leçon", "façade", "reçu", "provençal"},
	'é': {"café", "été", "métier", "général", "qualité", "célèbre", "décidé"},
	'è': {"père", "très", "mère", "système", "première", "lumière"},
	'ê': {"fenêtre", "forêt", "être", "même", "tête", "bête"},
	'ë': {"noël", "citroën", "naïveté", "israël", "canoë"},
	'í': {"país", "típico", "difícil", "música", "capítulo", "política"},
	'ì': {"così", "lunedì", "perché", "città", "dì"},
	'î': {"île", "maître", "dîner", "boîte", "fraîche", "connaître"},
	'ï': {"naïf", "maïs", "héroïne", "égoïste", "caraïbes"},
	'ñ': {"señor", "mañana", "niño", "español", "pequeño", "año"},
	'ó': {"razón", "canción", "módulo", "teléfono", "próximo", "región"},
	'ò': {"però", "così", "può", "ciò", "perciò", "falò"},
	'ô': {"hôtel", "côté", "drôle", "bientôt", "contrôle", "rôle"},
	'ö': {"schön", "können", "möglich", "größe", "öffnung", "gehör"},
	'õ': {"lições", "limões", "põe", "corações", "opiniões"},
	'ø': {"høst", "født", "køkken", "søndag", "løsning", "brød"},
	'ú': {"número", "último", "música", "útil", "público", "según"},
	'ù': {"où", "più", "laggiù", "virtù", "gioventù"},
	'û': {"sûr", "coût", "goût", "août", "brûler", "flûte"},
	'ü': {"über", "früh", "müde", "glück", "übung", "künstler"},
	'ý': {"výborný", "nový", "systémový", "týden", "výlet"},
	'š': {"škola", "štěstí", "šest", "mašina", "píšeš"},
	'ž': {"život", "žena", "žlutý", "každý", "manžel"},
	'ß': {"straße", "größe", "weiß", "fußball", "schließen", "heißen"},
}

// AccentedCharacters returns the characters the dictionary covers.
func AccentedCharacters() string {
	chars := make([]rune, 0, len(accentedWords))
	for r := range accentedWords {
		chars = append(chars, r)
	}
	return sortRunes(chars)
}

// AccentedText builds a diacritic-words proof string: for up to ten of
// the requested characters, the first five dictionary words each,
// shuffled deterministically and capped at wordCount words. Characters
// without dictionary coverage contribute nothing.
func AccentedText(characters string, wordCount int, seed int64) string {
	if characters == "" {
		characters = AccentedCharacters()
	}
	var pool []string
	count := 0
	for _, r := range characters {
		if count >= 10 {
			break
		}
		count++
		ws, ok := accentedWords[r]
		if !ok {
			continue
		}
		if len(ws) > 5 {
			ws = ws[:5]
		}
		pool = append(pool, ws...)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if wordCount > 0 && len(pool) > wordCount {
		pool = pool[:wordCount]
	}
	return strings.Join(pool, " ")
}

// AccentedWordRows builds the diacritic-words proof body: for every
// character of the proof charset, up to wordsPerChar dictionary words
// that the font can fully render, introduced by a |x| marker. Uppercase
// charset members get their words uppercased, with ß widened to ẞ.
// Small proofs place each character's words on their own line.
func AccentedWordRows(characters, fullCharset string, wordsPerChar int, small bool, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	lowerFull := strings.ToLower(fullCharset)
	var b strings.Builder
	for _, a := range characters {
		lower := unicode.ToLower(a)
		ws, ok := accentedWords[lower]
		if !ok {
			continue
		}
		var available []string
		for _, w := range ws {
			if composable(w, lowerFull) {
				available = append(available, w)
			}
		}
		if len(available) == 0 {
			continue
		}
		count := wordsPerChar
		if len(available) < count {
			count = len(available)
		}
		b.WriteString(" |" + string(a) + "| ")
		picked := sampleWithout(rng, available, count)
		for _, w := range picked {
			if unicode.IsUpper(a) {
				w = strings.ToUpper(strings.ReplaceAll(w, "ß", "ẞ"))
			}
			b.WriteString(w + " ")
		}
		if small {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func composable(word, glyphs string) bool {
	for _, r := range word {
		if !strings.ContainsRune(glyphs, r) {
			return false
		}
	}
	return true
}

// sampleWithout draws count elements without replacement.
func sampleWithout(rng *rand.Rand, pool []string, count int) []string {
	idx := rng.Perm(len(pool))[:count]
	out := make([]string, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func sortRunes(runes []rune) string {
	for i := 1; i < len(runes); i++ {
		for j := i; j > 0 && runes[j] < runes[j-1]; j-- {
			runes[j], runes[j-1] = runes[j-1], runes[j]
		}
	}
	return string(runes)
}
