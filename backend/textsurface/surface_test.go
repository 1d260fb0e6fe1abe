package textsurface

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/variation"
	"github.com/typeproof/typeproof/engine/proof"
)

func fixedClock() time.Time {
	return time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
}

func TestSurfaceRendersPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	var out strings.Builder
	surf := New(&out)
	surf.SetClock(fixedClock)
	//
	region, err := surf.NewPage(proof.Footer{
		Family: "Testfamily", Title: "Spacing Proof - Regular", Page: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultPageLength, region.Capacity)
	remainder, err := surf.Place(region, []proof.TextRun{{
		Heading: "Spacing - Uppercase Base - 14pt",
		Text:    "HHHHHAHHAHAAAA\n",
		Font:    font.FallbackFont(),
		Size:    14,
	}})
	require.NoError(t, err)
	assert.Empty(t, remainder)
	require.NoError(t, surf.Finish())
	//
	text := out.String()
	assert.Contains(t, text, "[Testfamily / Spacing Proof - Regular]")
	assert.Contains(t, text, "--- Spacing - Uppercase Base - 14pt ---")
	assert.Contains(t, text, "HHHHHAHHAHAAAA")
	assert.Contains(t, text, "2025-04-01 09:30 | Testfamily | Spacing Proof - Regular")
	assert.Contains(t, text, "p. 3")
}

func TestSurfacePaginationRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	var out strings.Builder
	surf := New(&out)
	surf.SetClock(fixedClock)
	surf.SetPageLength(3)
	//
	run := proof.TextRun{
		Heading: "Character Set - Uppercase Base - 78pt",
		Text:    "AAA\nBBB\nCCC\nDDD\n",
		Font:    font.FallbackFont(),
	}
	region, err := surf.NewPage(proof.Footer{Family: "Test", Title: "Charset", Page: 1})
	require.NoError(t, err)
	remainder, err := surf.Place(region, []proof.TextRun{run})
	require.NoError(t, err)
	// heading takes one line, so only AAA and BBB fit
	require.Len(t, remainder, 1)
	assert.Equal(t, "", remainder[0].Heading, "continuation run loses the heading")
	assert.Equal(t, "CCC\nDDD", remainder[0].Text)
	assert.Contains(t, out.String(), "BBB")
	assert.NotContains(t, out.String(), "CCC")
	//
	region, err = surf.NewPage(proof.Footer{Family: "Test", Title: "Charset", Page: 2})
	require.NoError(t, err)
	remainder, err = surf.Place(region, remainder)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Contains(t, out.String(), "DDD")
}

func TestSurfaceRendersPairedRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeproof.proof")
	defer teardown()
	var out strings.Builder
	surf := New(&out)
	surf.SetClock(fixedClock)
	//
	region, err := surf.NewPage(proof.Footer{Family: "Test", Title: "Paired Styles", Page: 1})
	require.NoError(t, err)
	_, err = surf.Place(region, []proof.TextRun{
		{Heading: "Paired Styles - 10pt", Text: "one two", Paired: true,
			FontPath: "/fonts/Test-Regular.otf"},
		{Text: "three", Paired: true,
			Axes: []variation.Setting{{Tag: "wght", Value: 700}}},
	})
	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "</fonts/Test-Regular.otf> one two")
	assert.Contains(t, text, "<wght=700> three")
}
