package proof

import (
	"math/rand"
	"strings"

	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/variation"
)

// DualStyleSeed drives the word-level alternation of paired-style
// proofs. Fixed, so the same text always alternates at the same words.
const DualStyleSeed = 1029384756

// StyledRun is a run of words rendered in one style. FontPath switches
// the font file for static pairings; Axes pins variation axes for
// variable ones. At most one of the two is set.
type StyledRun struct {
	Text     string
	FontPath string
	Axes     []variation.Setting
}

// MixedStyleRuns splits a proof text into runs alternating between two
// related styles of the same family. The pairing is resolved in order:
//
//  1. a Regular/Bold pair, when the current style is the Regular,
//  2. an upright/italic pair of the current weight, applied on the
//     italic member for weight 400 and on the upright otherwise,
//  3. a variable 'ital' axis pinned away from zero, alternating 0/1,
//  4. a variable 'wght' axis pinned to 700, alternating 400/700.
//
// When none applies the proof cannot be mixed for this style; the
// second return value is false and the caller renders the text plain.
func MixedStyleRuns(text string, style font.StyleInfo, inst variation.Instance, rb, ui []variation.Pair) ([]StyledRun, bool) {
	if paths, ok := pairedFonts(style, rb, ui); ok {
		return alternate(text, func(i int) StyledRun {
			return StyledRun{FontPath: paths[i]}
		}), true
	}
	if tag, values, ok := alternatingAxis(style, inst); ok {
		return alternate(text, func(i int) StyledRun {
			return StyledRun{Axes: pinAxis(inst.Settings, tag, values[i])}
		}), true
	}
	tracer().Debugf("no style pairing for %s, rendering unmixed", style.FullName)
	return nil, false
}

// pairedFonts resolves a static two-font pairing for the style.
func pairedFonts(style font.StyleInfo, rb, ui []variation.Pair) ([2]string, bool) {
	if style.Variable {
		return [2]string{}, false
	}
	if style.Subfamily == "Regular" {
		for _, p := range rb {
			if p.Key == "Regular" {
				return [2]string{p.A.Filepath, p.B.Filepath}, true
			}
		}
	}
	for _, p := range ui {
		if p.A.Weight != style.Weight {
			continue
		}
		// The regular weight mixes on its italic; heavier and lighter
		// weights mix on the upright, so each pairing renders once.
		if style.Weight == 400 && style.Italic || style.Weight != 400 && !style.Italic {
			return [2]string{p.A.Filepath, p.B.Filepath}, true
		}
	}
	return [2]string{}, false
}

// alternatingAxis resolves a variable-font pairing from the instance's
// pinned axis positions.
func alternatingAxis(style font.StyleInfo, inst variation.Instance) (string, [2]float64, bool) {
	if !style.Variable {
		return "", [2]float64{}, false
	}
	for _, s := range inst.Settings {
		if s.Tag == "ital" && s.Value != 0 {
			return "ital", [2]float64{0, 1}, true
		}
	}
	for _, s := range inst.Settings {
		if s.Tag == "wght" && s.Value == 700 {
			return "wght", [2]float64{400, 700}, true
		}
	}
	return "", [2]float64{}, false
}

// pinAxis returns the instance settings with one axis moved to value.
func pinAxis(settings []variation.Setting, tag string, value float64) []variation.Setting {
	pinned := make([]variation.Setting, len(settings))
	copy(pinned, settings)
	for i := range pinned {
		if pinned[i].Tag == tag {
			pinned[i].Value = value
		}
	}
	return pinned
}

// alternate walks the words of text and switches between the two styles
// at randomized but reproducible intervals. Consecutive words in the
// same style collapse into one run.
func alternate(text string, runFor func(i int) StyledRun) []StyledRun {
	rng := rand.New(rand.NewSource(DualStyleSeed))
	var runs []StyledRun
	current := 0
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			run := runFor(current)
			run.Text = b.String()
			runs = append(runs, run)
			b.Reset()
		}
	}
	for i, word := range strings.Fields(text) {
		if i%(1+rng.Intn(4)) == 0 {
			next := i % 2
			if next != current {
				flush()
				current = next
			}
		}
		b.WriteString(word + " ")
	}
	flush()
	return runs
}
