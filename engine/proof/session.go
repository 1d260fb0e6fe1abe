package proof

import (
	"errors"
	"strings"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/charset"
	"github.com/typeproof/typeproof/core/font"
	"github.com/typeproof/typeproof/core/variation"
)

// Session is one proofing run in the making: the fonts to proof, their
// cached analysis, the per-proof settings and the axis overrides. A
// session is not safe for concurrent use.
type Session struct {
	registry  *font.Registry
	settings  *Store
	overrides []variation.AxisValues

	paths []string // proofing order
	infos map[string]font.StyleInfo
	cats  map[string]charset.Categorization
	reps  map[string]string

	// built sections per font and proof kind, dropped when the font or
	// the proof's settings change
	sections map[sectionKey][]Section
}

type sectionKey struct {
	path string
	kind Kind
}

func NewSession() *Session {
	return &Session{
		registry: font.NewRegistry(),
		settings: NewStore(),
		infos:    make(map[string]font.StyleInfo),
		cats:     make(map[string]charset.Categorization),
		reps:     make(map[string]string),
		sections: make(map[sectionKey][]Section),
	}
}

// Settings returns the session's settings store. Mutations should go
// through SetProofSetting so cached content is dropped.
func (s *Session) Settings() *Store {
	return s.settings
}

// SetProofSetting updates one proof setting and drops the content built
// from the prior value.
func (s *Session) SetProofSetting(kind Kind, key, value string) error {
	if err := s.settings.Set(kind, key, value); err != nil {
		return err
	}
	for k := range s.sections {
		if k.kind == kind {
			delete(s.sections, k)
		}
	}
	return nil
}

// SetAxisOverrides replaces the axis values used when expanding
// variable fonts into instances.
func (s *Session) SetAxisOverrides(overrides []variation.AxisValues) {
	s.overrides = overrides
}

// AddFont loads a font file into the session. Fonts are proofed in the
// order they were added.
func (s *Session) AddFont(path string) error {
	f, err := s.registry.Load(path)
	if err != nil {
		return err
	}
	info, err := font.Styles(f)
	if err != nil {
		s.registry.Invalidate(path)
		return err
	}
	s.paths = append(s.paths, path)
	s.infos[path] = info
	return nil
}

// InvalidateFont drops all cached analysis of a font, e.g. after the
// file changed on disk. The font stays in the proofing order.
func (s *Session) InvalidateFont(path string) {
	s.registry.Invalidate(path)
	delete(s.cats, path)
	delete(s.reps, path)
	for k := range s.sections {
		if k.path == path {
			delete(s.sections, k)
		}
	}
}

// Fonts returns the style metadata of all fonts in proofing order.
func (s *Session) Fonts() []font.StyleInfo {
	infos := make([]font.StyleInfo, 0, len(s.paths))
	for _, path := range s.paths {
		infos = append(infos, s.infos[path])
	}
	return infos
}

// categorization returns the cached repertoire and categorization of a
// font, computing both on first use.
func (s *Session) categorization(path string, f *font.ScalableFont) (charset.Categorization, string, error) {
	if cat, ok := s.cats[path]; ok {
		return cat, s.reps[path], nil
	}
	rep, err := font.Repertoire(f)
	if err != nil {
		return charset.Categorization{}, "", err
	}
	cat := charset.Categorize(rep)
	s.cats[path] = cat
	s.reps[path] = rep
	return cat, rep, nil
}

// buildSections returns the cached sections of a proof for one font,
// building them on first use.
func (s *Session) buildSections(kind Kind, path string, cat charset.Categorization, rep string) ([]Section, error) {
	key := sectionKey{path: path, kind: kind}
	if sections, ok := s.sections[key]; ok {
		return sections, nil
	}
	sections, err := BuildSections(kind, cat, rep, s.settings.Proof(kind))
	if err != nil {
		return nil, err
	}
	s.sections[key] = sections
	return sections, nil
}

// Run proofs every session font with the given proof kinds and hands
// the pages to the renderer. A nil kinds slice selects the enabled
// proof types from the settings store. A failing proof is skipped and
// reported in the aggregated error; it never aborts the run.
func (s *Session) Run(r Renderer, kinds []Kind) error {
	var failures []error
	allInfos := s.Fonts()
	page := 0
	for _, path := range s.paths {
		f, err := s.registry.Load(path)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		info := s.infos[path]
		cat, rep, err := s.categorization(path, f)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		arabic := charset.ArabicSupport(rep)
		family := font.FamilyFromFilename(path)
		rb := variation.PairRegularBold(info.LegacyFamily, allInfos)
		ui := variation.PairUprightItalic(allInfos)
		selected := kinds
		if selected == nil {
			selected = s.enabledKinds(arabic)
		}
		for _, inst := range variation.Instances(info, s.overrides) {
			for _, kind := range selected {
				kinfo, ok := Lookup(kind)
				if !ok {
					failures = append(failures, core.Error(core.EMISSING, "unknown proof type %q", kind))
					continue
				}
				if kinfo.Arabic && !arabic {
					continue
				}
				runs, footer, err := s.assemble(kinfo, path, f, info, inst, cat, rep, rb, ui, family)
				if err != nil {
					failures = append(failures, err)
					continue
				}
				if runs == nil {
					continue
				}
				if err := paginate(r, runs, footer, &page); err != nil {
					failures = append(failures, core.WrapError(err, core.Code(err),
						"rendering %s for %s failed", kinfo.DisplayName, info.FullName))
				}
			}
		}
	}
	if err := r.Finish(); err != nil {
		failures = append(failures, err)
	}
	return errors.Join(failures...)
}

// paginate drives the renderer's remainder loop: open a page, place as
// much as fits, repeat with the rest.
func paginate(r Renderer, runs []TextRun, footer Footer, page *int) error {
	for len(runs) > 0 {
		*page++
		footer.Page = *page
		region, err := r.NewPage(footer)
		if err != nil {
			return err
		}
		remainder, err := r.Place(region, runs)
		if err != nil {
			return err
		}
		if len(remainder) >= len(runs) {
			return core.Error(core.EINTERNAL, "renderer made no progress on page %d", *page)
		}
		runs = remainder
	}
	return nil
}

// assemble builds the styled runs of one proof, or nil when the proof
// has nothing to show for this font and instance.
func (s *Session) assemble(info Info, path string, f *font.ScalableFont, style font.StyleInfo,
	inst variation.Instance, cat charset.Categorization, rep string,
	rb, ui []variation.Pair, family string) ([]TextRun, Footer, error) {
	//
	st := s.settings.Proof(info.Key)
	sections, err := s.buildSections(info.Key, path, cat, rep)
	if err != nil {
		return nil, Footer{}, core.WrapError(err, core.Code(err),
			"proof %s for %s failed", info.DisplayName, style.FullName)
	}
	if len(sections) == 0 {
		tracer().Debugf("proof %s has no content for %s", info.DisplayName, style.FullName)
		return nil, Footer{}, nil
	}
	var runs []TextRun
	for _, sec := range sections {
		if sec.Mixed {
			styled, ok := MixedStyleRuns(sec.Text, style, inst, rb, ui)
			if !ok {
				return nil, Footer{}, nil // no pairing for this style, silently skip
			}
			for i, sr := range styled {
				run := sectionRun(sec, f, inst)
				run.Text = strings.TrimRight(sr.Text, " ")
				run.Paired = true
				run.FontPath = sr.FontPath
				run.Axes = sr.Axes
				if i > 0 {
					run.Heading = ""
				}
				runs = append(runs, run)
			}
			continue
		}
		run := sectionRun(sec, f, inst)
		run.Text = sec.Text
		runs = append(runs, run)
	}
	title := info.DisplayName
	if label := inst.Label; label != "" {
		title += " - " + label
	}
	tracking := 0.0
	if SupportsFormatting(info.Key) {
		tracking = st.Tracking
	}
	footer := Footer{
		Family: family,
		Title:  title,
		Note:   FeatureNote(st.Features, tracking),
	}
	return runs, footer, nil
}

// sectionRun carries a section's layout parameters into a run.
func sectionRun(sec Section, f *font.ScalableFont, inst variation.Instance) TextRun {
	return TextRun{
		Heading:   sec.Title,
		Font:      f,
		Axes:      inst.Settings,
		Size:      sec.FontSize,
		Tracking:  sec.Tracking,
		Align:     sec.Align,
		Columns:   sec.Columns,
		Direction: sec.Direction,
		Features:  sec.Features,
	}
}

// enabledKinds selects the proof types switched on in the settings
// store, in display order.
func (s *Session) enabledKinds(arabic bool) []Kind {
	var kinds []Kind
	for _, kind := range AllKinds(arabic) {
		if s.settings.Proof(kind).Enabled {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
