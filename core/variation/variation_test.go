package variation

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/font/ot"
)

func axis(tag string, min, def, max float64) ot.VariationAxis {
	return ot.VariationAxis{Tag: ot.T(tag), Minimum: min, Default: def, Maximum: max}
}

func TestInstancesStatic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	info := font.StyleInfo{FullName: "MyFamily-BoldItalic", Subfamily: "Bold Italic"}
	instances := Instances(info, nil)
	require.Len(t, instances, 1)
	assert.True(t, instances[0].Static())
	assert.Equal(t, "BoldItalic", instances[0].Label)
}

func TestInstancesDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	// default coincides with minimum, two distinct positions remain
	info := font.StyleInfo{Variable: true, Axes: []ot.VariationAxis{axis("ital", 0, 0, 1)}}
	instances := Instances(info, nil)
	require.Len(t, instances, 2)
	assert.Equal(t, "ital=0", instances[0].Label)
	assert.Equal(t, "ital=1", instances[1].Label)

	// default strictly inside, three positions
	info.Axes = []ot.VariationAxis{axis("wdth", 75, 100, 125)}
	instances = Instances(info, nil)
	require.Len(t, instances, 3)
	assert.Equal(t, "wdth=75", instances[0].Label)
	assert.Equal(t, "wdth=100", instances[1].Label)
	assert.Equal(t, "wdth=125", instances[2].Label)
}

func TestInstancesProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	info := font.StyleInfo{Variable: true, Axes: []ot.VariationAxis{
		axis("wght", 400, 400, 700),
		axis("ital", 0, 0, 1),
	}}
	instances := Instances(info, nil)
	require.Len(t, instances, 4)
	assert.Equal(t, "wght=400 ital=0", instances[0].Label)
	assert.Equal(t, "wght=700 ital=1", instances[3].Label)
}

func TestInstancesOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	info := font.StyleInfo{Variable: true, Axes: []ot.VariationAxis{
		axis("wght", 100, 400, 900),
	}}
	overrides := []AxisValues{{Tag: "wght", Values: []float64{300, 500, 300}}}
	instances := Instances(info, overrides)
	require.Len(t, instances, 2, "override values are deduplicated")
	assert.Equal(t, "wght=300", instances[0].Label)
	assert.Equal(t, "wght=500", instances[1].Label)
}

func TestParseOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	overrides, err := ParseOverrides("wght=400,700; wdth=100")
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, AxisValues{Tag: "wght", Values: []float64{400, 700}}, overrides[0])
	assert.Equal(t, AxisValues{Tag: "wdth", Values: []float64{100}}, overrides[1])

	_, err = ParseOverrides("wght")
	assert.Error(t, err)
	_, err = ParseOverrides("wght=abc")
	assert.Error(t, err)

	overrides, err = ParseOverrides("")
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestAllAxisTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	infos := []font.StyleInfo{
		{Axes: []ot.VariationAxis{axis("wght", 100, 400, 900), axis("ital", 0, 0, 1)}},
		{Axes: []ot.VariationAxis{axis("wght", 300, 400, 700), axis("opsz", 8, 12, 72)}},
	}
	assert.Equal(t, []string{"wght", "ital", "opsz"}, AllAxisTags(infos),
		"tags keep the order of their first appearance")
}

func styleMember(family, subfamily string, weight int, italic bool) font.StyleInfo {
	return font.StyleInfo{
		Family:       family,
		LegacyFamily: family,
		Subfamily:    subfamily,
		FullName:     family + "-" + subfamily,
		Weight:       weight,
		Italic:       italic,
	}
}

func TestPairRegularBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	members := []font.StyleInfo{
		styleMember("Demo", "Regular", 400, false),
		styleMember("Demo", "Bold", 700, false),
		styleMember("Demo", "Italic", 400, true),
		styleMember("Demo", "Bold Italic", 700, true),
		styleMember("Demo", "Medium", 500, false),
		styleMember("Other", "Regular", 400, false),
	}
	pairs := PairRegularBold("Demo", members)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Italic", pairs[0].Key)
	assert.Equal(t, "Bold Italic", pairs[0].B.Subfamily)
	assert.Equal(t, "Regular", pairs[1].Key)
	assert.Equal(t, "Bold", pairs[1].B.Subfamily)
}

func TestPairRegularBoldNeedsExactWeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	members := []font.StyleInfo{
		styleMember("Demo", "Regular", 450, false),
		styleMember("Demo", "Bold", 700, false),
	}
	assert.Empty(t, PairRegularBold("Demo", members))
}

func TestPairRegularBoldSkipsNamedSubStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	// a sub-style family carries its typographic family in the Family
	// field and must not pair, regardless of its weights
	condensed := styleMember("Demo Condensed", "Regular", 400, false)
	condensed.Family = "Demo"
	condensedBold := styleMember("Demo Condensed", "Bold", 700, false)
	condensedBold.Family = "Demo"
	members := []font.StyleInfo{condensed, condensedBold}
	assert.Empty(t, PairRegularBold("Demo Condensed", members))
}

func TestPairUprightItalic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	members := []font.StyleInfo{
		styleMember("Demo", "Bold", 700, false),
		styleMember("Demo", "Bold Italic", 700, true),
		styleMember("Demo", "Regular", 400, false),
		styleMember("Demo", "Italic", 400, true),
		styleMember("Demo", "Light", 300, false),
	}
	pairs := PairUprightItalic(members)
	require.Len(t, pairs, 2, "Light has no italic partner")
	assert.Equal(t, 400, pairs[0].A.Weight, "pairs sorted by weight")
	assert.True(t, pairs[0].B.Italic)
	assert.Equal(t, 700, pairs[1].A.Weight)
}

func TestPairUprightItalicAcrossFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.fonts")
	defer teardown()
	// the weight class alone keys the pairing, family names do not
	members := []font.StyleInfo{
		styleMember("Demo", "Light", 300, false),
		styleMember("Other", "Light Italic", 300, true),
	}
	pairs := PairUprightItalic(members)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Demo", pairs[0].A.LegacyFamily)
	assert.Equal(t, "Other", pairs[0].B.LegacyFamily)
}
