package proof

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/charset"
	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/variation"
)

func TestRegistryOrderAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	info, ok := Lookup(SpacingProof)
	require.True(t, ok)
	assert.Equal(t, "Spacing Proof", info.DisplayName)
	assert.Equal(t, float64(spacingFontSize), info.DefaultSize)
	_, ok = Lookup(Kind("no_such_proof"))
	assert.False(t, ok)
	//
	all := AllKinds(true)
	assert.Equal(t, len(registry), len(all))
	assert.Equal(t, FilteredCharacterSet, all[0])
	latin := AllKinds(false)
	assert.Less(t, len(latin), len(all))
	for _, kind := range latin {
		info, _ := Lookup(kind)
		assert.False(t, info.Arabic)
	}
}

func TestRegistryFormattingSupport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	assert.False(t, SupportsFormatting(FilteredCharacterSet))
	assert.False(t, SupportsFormatting(SpacingProof))
	assert.False(t, SupportsFormatting(ArCharacterSet))
	assert.True(t, SupportsFormatting(BasicParagraphSmall))
}

func TestSettingsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := DefaultSettings(FilteredCharacterSet)
	assert.Equal(t, float64(charsetFontSize), s.FontSize)
	assert.False(t, s.Category("accented"))
	assert.True(t, s.Category("uppercase_base"))
	//
	s = DefaultSettings(BasicParagraphSmall)
	assert.Equal(t, float64(smallTextFontSize), s.FontSize)
	assert.Nil(t, s.Categories)
}

func TestSettingsSetValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	st := NewStore()
	require.NoError(t, st.Set(SpacingProof, "font_size", "18"))
	assert.Equal(t, 18.0, st.Proof(SpacingProof).FontSize)
	//
	err := st.Set(SpacingProof, "font_size", "zero")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, 18.0, st.Proof(SpacingProof).FontSize, "invalid value must not change the setting")
	//
	require.NoError(t, st.Set(SpacingProof, "cat.accented", "on"))
	assert.True(t, st.Proof(SpacingProof).Category("accented"))
	assert.Error(t, st.Set(SpacingProof, "cat.cyrillic", "on"))
	//
	require.NoError(t, st.Set(BasicParagraphSmall, "otf.smcp", "true"))
	assert.True(t, st.Proof(BasicParagraphSmall).Features["smcp"])
	//
	assert.Error(t, st.Set(BasicParagraphSmall, "align", "justified"))
	assert.Error(t, st.Set(BasicParagraphSmall, "margin", "12"))
}

func TestSettingsSaveLoadRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	st := NewStore()
	require.NoError(t, st.Set(SpacingProof, "enabled", "true"))
	require.NoError(t, st.Set(SpacingProof, "columns", "3"))
	var buf bytes.Buffer
	require.NoError(t, st.Save(&buf))
	assert.Contains(t, buf.String(), `"spacing_proof_columns": 3`, "flat string-keyed persistence format")
	//
	loaded := NewStore()
	require.NoError(t, loaded.Load(&buf))
	assert.True(t, loaded.Proof(SpacingProof).Enabled)
	assert.Equal(t, 3, loaded.Proof(SpacingProof).Columns)
}

func TestSettingsLoadKeepsUnknownKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	st := NewStore()
	in := strings.NewReader(`{"future_proof_font_size": 12, "spacing_proof_tracking": 1.5}`)
	require.NoError(t, st.Load(in))
	assert.Equal(t, 1.5, st.Proof(SpacingProof).Tracking)
	//
	var buf bytes.Buffer
	require.NoError(t, st.Save(&buf))
	assert.Contains(t, buf.String(), `"future_proof_font_size": 12`, "unknown entries survive a save")
}

func TestFeatureNote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	assert.Equal(t, "", FeatureNote(nil, 0))
	assert.Equal(t, "Tracking: 1.5", FeatureNote(nil, 1.5))
	note := FeatureNote(map[string]bool{"smcp": true, "liga": false, "kern": true}, 2)
	assert.Equal(t, "ON: smcp - OFF: liga | Tracking: 2", note)
}

func TestFilterVisibleFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	visible := FilterVisibleFeatures([]string{"liga", "init", "smcp", "fina", "kern"})
	assert.Equal(t, []string{"liga", "smcp", "kern"}, visible)
}

func TestCharsetSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	cat := charset.Categorize("ABCabc123!éà")
	s := DefaultSettings(FilteredCharacterSet)
	sections, err := BuildSections(FilteredCharacterSet, cat, "ABCabc123!éà", &s)
	require.NoError(t, err)
	require.Len(t, sections, 4, "accented section is off by default")
	assert.Contains(t, sections[0].Title, "Uppercase")
	assert.Equal(t, "ABC", sections[0].Text)
	assert.Equal(t, s.FontSize/1.5, sections[0].Tracking)
	//
	s.Categories["accented"] = true
	sections, err = BuildSections(FilteredCharacterSet, cat, "ABCabc123!éà", &s)
	require.NoError(t, err)
	assert.Len(t, sections, 5)
}

func TestSpacingSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	cat := charset.Categorize("Hn")
	s := DefaultSettings(SpacingProof)
	sections, err := BuildSections(SpacingProof, cat, "Hn", &s)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "HHHHHOHHOHOOOO\n", sections[0].Text)
	assert.False(t, sections[0].Features["liga"])
	assert.False(t, sections[0].Features["kern"])
}

func TestParagraphSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	full := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz ,."
	cat := charset.Categorize(full)
	s := DefaultSettings(BasicParagraphSmall)
	sections, err := BuildSections(BasicParagraphSmall, cat, full, &s)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.NotEmpty(t, sections[0].Text)
	assert.Equal(t, "ltr", sections[0].Direction)
	assert.False(t, sections[0].Mixed)
	//
	sections, err = BuildSections(PairedStylesSmall, cat, full, &s)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.True(t, sections[0].Mixed)
}

func TestArabicParagraphSkippedWithoutRepertoire(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	cat := charset.Categorize("ABCabc")
	s := DefaultSettings(ArParagraphSmall)
	sections, err := BuildSections(ArParagraphSmall, cat, "ABCabc", &s)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestArabicParagraphCoversScriptExtensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	// Urdu letters sit in the Arabic block but outside the ar/fa
	// template alphabets; the proof must not come up empty for them
	urdu := "ٹڈڑں"
	cat := charset.Categorize(urdu)
	require.Empty(t, cat.Class(charset.CatArTemplate))
	require.Equal(t, urdu, cat.Class(charset.CatArabicScript))
	s := DefaultSettings(ArParagraphSmall)
	sections, err := BuildSections(ArParagraphSmall, cat, urdu, &s)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "rtl", sections[0].Direction)
	assert.Contains(t, sections[0].Text, "ٹ")
}

func TestInjectedSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := DefaultSettings(MiscParagraphSmall)
	sections, err := BuildSections(MiscParagraphSmall, charset.Categorize("abc"), "abc", &s)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Contains(t, sections[0].Text, "8002 137 4917")
	assert.True(t, strings.HasSuffix(sections[0].Text, "\n"))
	assert.False(t, strings.HasSuffix(sections[0].Text, "\n\n"))
}

func TestFooterLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	f := Footer{Family: "Testfamily", Title: "Spacing Proof - Regular"}
	now := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-04-01 09:30 | Testfamily | Spacing Proof - Regular", f.Line(now))
}

// --- Mixed styles ----------------------------------------------------------

func staticStyle(subfamily string, weight int, italic bool) font.StyleInfo {
	full := "Testfamily-" + subfamily
	return font.StyleInfo{
		Family:       "Testfamily",
		LegacyFamily: "Testfamily",
		Subfamily:    subfamily,
		FullName:     full,
		Weight:       weight,
		Italic:       italic,
		Filepath:     "/fonts/" + full + ".otf",
	}
}

func TestMixedStylesRegularBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	regular := staticStyle("Regular", 400, false)
	bold := staticStyle("Bold", 700, false)
	rb := []variation.Pair{{Key: "Regular", A: regular, B: bold}}
	runs, ok := MixedStyleRuns("one two three four five six", regular, variation.Instance{}, rb, nil)
	require.True(t, ok)
	require.NotEmpty(t, runs)
	paths := map[string]bool{}
	var words int
	for _, run := range runs {
		paths[run.FontPath] = true
		assert.Empty(t, run.Axes)
		words += len(strings.Fields(run.Text))
	}
	assert.Equal(t, 6, words, "every word survives the split")
	assert.True(t, paths[regular.Filepath])
}

func TestMixedStylesUprightItalic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	upright := staticStyle("Regular", 400, false)
	italic := staticStyle("Italic", 400, true)
	light := staticStyle("Light", 300, false)
	lightItalic := staticStyle("Light Italic", 300, true)
	ui := []variation.Pair{
		{Key: "Light", A: light, B: lightItalic},
		{Key: "Regular", A: upright, B: italic},
	}
	// weight 400 mixes on the italic member only
	_, ok := MixedStyleRuns("alpha beta gamma", upright, variation.Instance{}, nil, ui)
	assert.False(t, ok)
	runs, ok := MixedStyleRuns("alpha beta gamma", italic, variation.Instance{}, nil, ui)
	assert.True(t, ok)
	assert.NotEmpty(t, runs)
	// other weights mix on the upright only
	_, ok = MixedStyleRuns("alpha beta gamma", lightItalic, variation.Instance{}, nil, ui)
	assert.False(t, ok)
	_, ok = MixedStyleRuns("alpha beta gamma", light, variation.Instance{}, nil, ui)
	assert.True(t, ok)
}

func TestMixedStylesVariableAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	style := font.StyleInfo{FullName: "Testfamily-VF", Variable: true}
	inst := variation.Instance{Settings: []variation.Setting{{Tag: "ital", Value: 1}}}
	runs, ok := MixedStyleRuns("one two three four", style, inst, nil, nil)
	require.True(t, ok)
	for _, run := range runs {
		assert.Empty(t, run.FontPath)
		require.Len(t, run.Axes, 1)
		assert.Equal(t, "ital", run.Axes[0].Tag)
		assert.Contains(t, []float64{0, 1}, run.Axes[0].Value)
	}
	//
	inst = variation.Instance{Settings: []variation.Setting{{Tag: "wght", Value: 700}}}
	runs, ok = MixedStyleRuns("one two three four", style, inst, nil, nil)
	require.True(t, ok)
	for _, run := range runs {
		assert.Contains(t, []float64{400, 700}, run.Axes[0].Value)
	}
	// pinned to the regular weight there is nothing to alternate with
	inst = variation.Instance{Settings: []variation.Setting{{Tag: "wght", Value: 400}}}
	_, ok = MixedStyleRuns("one two three four", style, inst, nil, nil)
	assert.False(t, ok)
}

func TestMixedStylesDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	regular := staticStyle("Regular", 400, false)
	bold := staticStyle("Bold", 700, false)
	rb := []variation.Pair{{Key: "Regular", A: regular, B: bold}}
	text := "the quick brown fox jumps over the lazy dog again and again"
	a, _ := MixedStyleRuns(text, regular, variation.Instance{}, rb, nil)
	b, _ := MixedStyleRuns(text, regular, variation.Instance{}, rb, nil)
	assert.Equal(t, a, b)
}

// --- Session ---------------------------------------------------------------

type pageCollector struct {
	footers  []Footer
	placed   [][]TextRun
	finished bool
}

func (pc *pageCollector) NewPage(f Footer) (Region, error) {
	pc.footers = append(pc.footers, f)
	return Region{Capacity: 1000}, nil
}

func (pc *pageCollector) Place(region Region, runs []TextRun) ([]TextRun, error) {
	pc.placed = append(pc.placed, runs)
	return nil, nil
}

func (pc *pageCollector) Finish() error {
	pc.finished = true
	return nil
}

func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Testfamily-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))
	return path
}

func TestSessionRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := NewSession()
	require.NoError(t, s.AddFont(writeTestFont(t)))
	require.Len(t, s.Fonts(), 1)
	//
	pc := &pageCollector{}
	err := s.Run(pc, []Kind{FilteredCharacterSet, BasicParagraphSmall, ArParagraphSmall})
	require.NoError(t, err)
	assert.True(t, pc.finished)
	require.Len(t, pc.footers, 2, "Arabic proof is skipped for a Latin font")
	//
	assert.Equal(t, 1, pc.footers[0].Page)
	assert.Equal(t, 2, pc.footers[1].Page)
	assert.Equal(t, "Testfamily", pc.footers[0].Family)
	assert.Contains(t, pc.footers[0].Title, "Filtered Character Set")
	require.NotEmpty(t, pc.placed[0])
	assert.NotEmpty(t, pc.placed[0][0].Heading)
	assert.NotNil(t, pc.placed[0][0].Font)
}

func TestSessionEnabledKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := NewSession()
	require.NoError(t, s.AddFont(writeTestFont(t)))
	require.NoError(t, s.Settings().Set(SpacingProof, "enabled", "true"))
	//
	pc := &pageCollector{}
	require.NoError(t, s.Run(pc, nil))
	require.Len(t, pc.footers, 1)
	assert.Contains(t, pc.footers[0].Title, "Spacing Proof")
}

func TestSessionMixedProofSkippedWithoutPairing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := NewSession()
	require.NoError(t, s.AddFont(writeTestFont(t)))
	// only one static style, so no Regular/Bold pairing exists
	pc := &pageCollector{}
	require.NoError(t, s.Run(pc, []Kind{PairedStylesSmall}))
	assert.Empty(t, pc.footers)
}

func TestSessionSettingChangeDropsCachedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	s := NewSession()
	require.NoError(t, s.AddFont(writeTestFont(t)))
	//
	pc := &pageCollector{}
	require.NoError(t, s.Run(pc, []Kind{FilteredCharacterSet}))
	require.NotEmpty(t, pc.placed)
	before := pc.placed[0][0].Size
	//
	require.NoError(t, s.SetProofSetting(FilteredCharacterSet, "font_size", "60"))
	pc = &pageCollector{}
	require.NoError(t, s.Run(pc, []Kind{FilteredCharacterSet}))
	require.NotEmpty(t, pc.placed)
	assert.NotEqual(t, before, pc.placed[0][0].Size)
	assert.Equal(t, 60.0, pc.placed[0][0].Size)
}
