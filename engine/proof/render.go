package proof

import (
	"fmt"
	"time"

	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/variation"
)

// Footer describes the footer of one proof page.
type Footer struct {
	Family string
	Title  string // proof display name plus instance label
	Note   string // feature and tracking deviations, possibly empty
	Page   int
}

// Line formats the footer line with the given timestamp.
func (f Footer) Line(now time.Time) string {
	return fmt.Sprintf("%s | %s | %s", now.Format("2006-01-02 15:04"), f.Family, f.Title)
}

// TextRun is one styled run of proof content. Runs carry everything a
// renderer needs to set them: the font, size, tracking, alignment,
// feature map and pinned axis values. FontPath and Axes switch the
// style mid-proof for paired-style content; at most one of them is set.
type TextRun struct {
	Heading   string // section heading, rendered before the text
	Text      string
	Font      *font.ScalableFont
	Paired    bool                // run alternates a paired style
	FontPath  string              // alternate font file for a paired style
	Axes      []variation.Setting // pinned axis positions
	Size      float64
	Tracking  float64
	Align     string
	Columns   int
	Direction string // "ltr" or "rtl"
	Features  map[string]bool
}

// Region is the content area of one page, measured in renderer-defined
// units (a text surface counts lines, a graphical one points).
type Region struct {
	Capacity int
}

// Renderer lays proof content out on pages. The session drives it page
// by page: NewPage opens a page and yields its content region, Place
// fills the region and returns the runs that did not fit, and the
// session loops while a remainder is left.
type Renderer interface {
	// NewPage starts a new page with the given footer.
	NewPage(footer Footer) (Region, error)
	// Place lays runs into the region, returning the remainder that
	// did not fit. Called exactly once per page.
	Place(region Region, runs []TextRun) ([]TextRun, error)
	// Finish flushes the document. No page follows.
	Finish() error
}
