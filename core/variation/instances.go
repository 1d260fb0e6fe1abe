package variation

import (
	"strconv"
	"strings"

	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/font"
)

// Setting is one axis position of an instance.
type Setting struct {
	Tag   string
	Value float64
}

// Instance is one style a proof renders: either a static font (no
// settings) or a variable font pinned to axis positions. Settings keep
// the axis order of the font's fvar table.
type Instance struct {
	Label    string
	Settings []Setting
}

// Static reports whether the instance carries no axis settings.
func (inst Instance) Static() bool {
	return len(inst.Settings) == 0
}

func (inst Instance) String() string {
	if inst.Static() {
		return inst.Label
	}
	parts := make([]string, len(inst.Settings))
	for i, s := range inst.Settings {
		parts[i] = s.Tag + "=" + formatAxisValue(s.Value)
	}
	return strings.Join(parts, " ")
}

// AxisValues is a per-axis override: the values to proof for one axis,
// in the order given by the user.
type AxisValues struct {
	Tag    string
	Values []float64
}

// Instances expands a font's style space. A static font yields a single
// instance labeled with its style suffix. A variable font yields the
// product over all axes, where each axis contributes either its
// override values or the deduplicated set {minimum, default, maximum}.
func Instances(info font.StyleInfo, overrides []AxisValues) []Instance {
	if !info.Variable || len(info.Axes) == 0 {
		label := font.StyleSuffix(info.FullName)
		if label == "" {
			label = info.Subfamily
		}
		return []Instance{{Label: label}}
	}
	perAxis := make([][]Setting, 0, len(info.Axes))
	for _, axis := range info.Axes {
		tag := axis.Tag.String()
		values := axisValues(axis.Minimum, axis.Default, axis.Maximum)
		for _, ov := range overrides {
			if ov.Tag == tag && len(ov.Values) > 0 {
				values = dedupValues(ov.Values)
				break
			}
		}
		settings := make([]Setting, len(values))
		for i, v := range values {
			settings[i] = Setting{Tag: tag, Value: v}
		}
		perAxis = append(perAxis, settings)
	}
	instances := product(perAxis)
	for i := range instances {
		instances[i].Label = instances[i].String()
	}
	tracer().Debugf("font %s expands to %d instances", info.FullName, len(instances))
	return instances
}

// axisValues returns {min, default, max} with duplicates removed,
// keeping that order.
func axisValues(min, def, max float64) []float64 {
	return dedupValues([]float64{min, def, max})
}

func dedupValues(values []float64) []float64 {
	out := values[:0:0]
	for _, v := range values {
		dup := false
		for _, seen := range out {
			if seen == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}

func product(perAxis [][]Setting) []Instance {
	instances := []Instance{{}}
	for _, axis := range perAxis {
		next := make([]Instance, 0, len(instances)*len(axis))
		for _, inst := range instances {
			for _, s := range axis {
				settings := make([]Setting, len(inst.Settings), len(inst.Settings)+1)
				copy(settings, inst.Settings)
				next = append(next, Instance{Settings: append(settings, s)})
			}
		}
		instances = next
	}
	return instances
}

// AllAxisTags returns the union of axis tags over a set of fonts, in
// the order the tags first appear in the fonts' fvar tables.
func AllAxisTags(infos []font.StyleInfo) []string {
	seen := map[string]bool{}
	var tags []string
	for _, info := range infos {
		for _, axis := range info.Axes {
			tag := axis.Tag.String()
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// ParseOverrides reads axis overrides from their command-line form,
// e.g. "wght=400,700;wdth=100".
func ParseOverrides(s string) ([]AxisValues, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var overrides []AxisValues
	for _, clause := range strings.Split(s, ";") {
		tag, values, ok := strings.Cut(clause, "=")
		tag = strings.TrimSpace(tag)
		if !ok || tag == "" {
			return nil, core.Error(core.EINVALID, "axis override %q not of form tag=v1,v2", clause)
		}
		ov := AxisValues{Tag: tag}
		for _, vs := range strings.Split(values, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "axis value %q not a number", vs)
			}
			ov.Values = append(ov.Values, v)
		}
		overrides = append(overrides, ov)
	}
	return overrides, nil
}

func formatAxisValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
