package proof

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/typeproof/typeproof/core"
)

// Settings are the user-adjustable parameters of one proof type.
type Settings struct {
	Enabled    bool
	FontSize   float64
	Columns    int
	Paragraphs int
	Tracking   float64
	Align      string
	Features   map[string]bool // OpenType feature toggles by tag
	Categories map[string]bool // character-set section toggles
}

// categoryDefaults: every character-set section is shown except the
// accented one.
var categoryDefaults = map[string]bool{
	"uppercase_base":  true,
	"lowercase_base":  true,
	"numbers_symbols": true,
	"punctuation":     true,
	"accented":        false,
}

// DefaultSettings returns the registry defaults for a proof kind.
func DefaultSettings(kind Kind) Settings {
	info, ok := registryByKey[kind]
	if !ok {
		return Settings{FontSize: smallTextFontSize, Columns: 2, Paragraphs: 3, Align: "left"}
	}
	s := Settings{
		FontSize:   info.DefaultSize,
		Columns:    info.DefaultColumns,
		Paragraphs: 3,
		Align:      "left",
	}
	if info.variant == contentCharset || info.variant == contentSpacing {
		s.Categories = make(map[string]bool, len(categoryDefaults))
		for k, v := range categoryDefaults {
			s.Categories[k] = v
		}
	}
	return s
}

// Store keeps the settings of all proof types. Mutation goes through
// the string-keyed Set boundary, which validates values and leaves the
// prior value untouched on invalid input.
type Store struct {
	byProof map[Kind]*Settings
	unknown map[string]interface{} // loaded entries of unknown proof types
}

func NewStore() *Store {
	return &Store{
		byProof: make(map[Kind]*Settings),
		unknown: make(map[string]interface{}),
	}
}

// Proof returns the settings of a proof kind, created from the registry
// defaults on first access.
func (st *Store) Proof(kind Kind) *Settings {
	if s, ok := st.byProof[kind]; ok {
		return s
	}
	s := DefaultSettings(kind)
	st.byProof[kind] = &s
	return &s
}

// Set updates one setting from its string form. Recognized keys are
// enabled, font_size, columns, paragraphs, tracking, align, cat.<name>
// and otf.<tag>. Invalid values are rejected with EINVALID.
func (st *Store) Set(kind Kind, key, value string) error {
	s := st.Proof(kind)
	switch {
	case key == "enabled":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Enabled = b
	case key == "font_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return core.Error(core.EINVALID, "font size must be a positive number, got %q", value)
		}
		s.FontSize = v
	case key == "columns":
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return core.Error(core.EINVALID, "column count must be a positive integer, got %q", value)
		}
		s.Columns = v
	case key == "paragraphs":
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return core.Error(core.EINVALID, "paragraph count must be a positive integer, got %q", value)
		}
		s.Paragraphs = v
	case key == "tracking":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return core.Error(core.EINVALID, "tracking must be a number, got %q", value)
		}
		s.Tracking = v
	case key == "align":
		switch value {
		case "left", "center", "right":
			s.Align = value
		default:
			return core.Error(core.EINVALID, "alignment must be left, center or right, got %q", value)
		}
	case strings.HasPrefix(key, "cat."):
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		name := strings.TrimPrefix(key, "cat.")
		if _, ok := categoryDefaults[name]; !ok {
			return core.Error(core.EINVALID, "unknown character category %q", name)
		}
		if s.Categories == nil {
			s.Categories = map[string]bool{}
		}
		s.Categories[name] = b
	case strings.HasPrefix(key, "otf."):
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		if s.Features == nil {
			s.Features = map[string]bool{}
		}
		s.Features[strings.TrimPrefix(key, "otf.")] = b
	default:
		return core.Error(core.EINVALID, "unknown setting %q", key)
	}
	return nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	}
	return false, core.Error(core.EINVALID, "boolean setting must be true or false, got %q", value)
}

// Category reports a character-category toggle, falling back to the
// documented defaults.
func (s *Settings) Category(name string) bool {
	if s.Categories != nil {
		if v, ok := s.Categories[name]; ok {
			return v
		}
	}
	return categoryDefaults[name]
}

// Save writes all proof settings as JSON in their flat string-keyed
// form, one "{proof}_{field}" entry per setting. Entries loaded from
// unknown proof types are written back unchanged.
func (st *Store) Save(w io.Writer) error {
	flat := make(map[string]interface{})
	for key, value := range st.unknown {
		flat[key] = value
	}
	for kind, s := range st.byProof {
		prefix := string(kind) + "_"
		flat[prefix+"enabled"] = s.Enabled
		flat[prefix+"font_size"] = s.FontSize
		flat[prefix+"columns"] = s.Columns
		flat[prefix+"paragraphs"] = s.Paragraphs
		flat[prefix+"tracking"] = s.Tracking
		flat[prefix+"align"] = s.Align
		for name, on := range s.Categories {
			flat[prefix+"cat."+name] = on
		}
		for tag, on := range s.Features {
			flat[prefix+"otf."+tag] = on
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(flat); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot serialize proof settings")
	}
	return nil
}

// Load merges previously saved flat-keyed JSON into the store. Keys of
// unknown proof types are retained for the next Save, so settings files
// survive version changes. Invalid values are skipped with a warning
// and the prior value stays.
func (st *Store) Load(r io.Reader) error {
	flat := make(map[string]interface{})
	if err := json.NewDecoder(r).Decode(&flat); err != nil {
		return core.WrapError(err, core.EINVALID, "proof settings unreadable")
	}
	for key, value := range flat {
		kind, field, ok := splitSettingKey(key)
		if !ok {
			st.unknown[key] = value
			continue
		}
		if err := st.Set(kind, field, settingString(value)); err != nil {
			tracer().Infof("ignoring stored setting %s: %s", key, core.UserMessage(err))
		}
	}
	return nil
}

// splitSettingKey matches a flat "{proof}_{field}" key against the
// registered proof types.
func splitSettingKey(key string) (Kind, string, bool) {
	for kind := range registryByKey {
		prefix := string(kind) + "_"
		if strings.HasPrefix(key, prefix) {
			return kind, strings.TrimPrefix(key, prefix), true
		}
	}
	return "", "", false
}

// settingString renders a JSON value into the form Set validates.
func settingString(value interface{}) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	return ""
}
