package textsurface

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/engine/proof"
)

const pageWidth = 80
const defaultPageLength = 48

// Surface writes proof pages as plain text, one output line per content
// line. The zero value is not usable, create surfaces with New.
type Surface struct {
	w      io.Writer
	now    func() time.Time
	length int // content lines per page
	footer proof.Footer
	pages  int
	err    error
}

func New(w io.Writer) *Surface {
	return &Surface{w: w, now: time.Now, length: defaultPageLength}
}

// SetPageLength changes the number of content lines per page.
func (s *Surface) SetPageLength(lines int) {
	if lines > 0 {
		s.length = lines
	}
}

// SetClock replaces the timestamp source of the footer lines. Tests use
// this for reproducible output.
func (s *Surface) SetClock(now func() time.Time) {
	s.now = now
}

// NewPage opens a page: top rule plus a header naming the proof.
func (s *Surface) NewPage(footer proof.Footer) (proof.Region, error) {
	s.pages++
	s.footer = footer
	s.print(strings.Repeat("=", pageWidth))
	s.print(fmt.Sprintf("[%s / %s]", footer.Family, footer.Title))
	if s.err != nil {
		return proof.Region{}, core.WrapError(s.err, core.EINTERNAL, "cannot write proof page %d", footer.Page)
	}
	return proof.Region{Capacity: s.length}, nil
}

// Place fills the page with content lines up to the region's capacity
// and closes it with the footer. Runs that did not fit come back as the
// remainder; a partially placed run returns with its remaining lines
// and without its heading.
func (s *Surface) Place(region proof.Region, runs []proof.TextRun) ([]proof.TextRun, error) {
	left := region.Capacity
	var remainder []proof.TextRun
	for i, run := range runs {
		if left <= 0 {
			remainder = runs[i:]
			break
		}
		if run.Heading != "" {
			s.print("--- " + run.Heading + " ---")
			left--
		}
		lines := strings.Split(strings.TrimRight(run.Text, "\n"), "\n")
		prefix := runStyle(run)
		n := len(lines)
		if n > left {
			n = left
		}
		for _, line := range lines[:n] {
			s.print(prefix + line)
		}
		left -= n
		if n < len(lines) {
			rest := run
			rest.Heading = ""
			rest.Text = strings.Join(lines[n:], "\n")
			remainder = append([]proof.TextRun{rest}, runs[i+1:]...)
			break
		}
	}
	s.printFooter()
	if s.err != nil {
		return nil, core.WrapError(s.err, core.EINTERNAL, "cannot write proof page %d", s.footer.Page)
	}
	return remainder, nil
}

// Finish writes the closing rule.
func (s *Surface) Finish() error {
	tracer().Debugf("text surface finished after %d pages", s.pages)
	s.print(strings.Repeat("=", pageWidth))
	if s.err != nil {
		return core.WrapError(s.err, core.EINTERNAL, "cannot finish proof document")
	}
	return nil
}

func (s *Surface) printFooter() {
	footer := s.footer.Line(s.now())
	if s.footer.Note != "" {
		footer += " | " + s.footer.Note
	}
	pageno := fmt.Sprintf("p. %d", s.footer.Page)
	pad := pageWidth - len([]rune(footer)) - len(pageno)
	if pad < 1 {
		pad = 1
	}
	s.print(footer + strings.Repeat(" ", pad) + pageno)
}

func (s *Surface) print(line string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, line+"\n")
}

// runStyle labels a paired-style run for text output, either the font
// file or the pinned axes. Unmixed runs have no label.
func runStyle(run proof.TextRun) string {
	if !run.Paired {
		return ""
	}
	if run.FontPath != "" {
		return "<" + run.FontPath + "> "
	}
	if len(run.Axes) == 0 {
		return ""
	}
	parts := make([]string, len(run.Axes))
	for i, s := range run.Axes {
		parts[i] = fmt.Sprintf("%s=%g", s.Tag, s.Value)
	}
	return "<" + strings.Join(parts, " ") + "> "
}

var _ proof.Renderer = &Surface{}
