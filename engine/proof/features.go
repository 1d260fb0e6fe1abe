package proof

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultOnFeatures are the OpenType features shapers enable by
// default. The footer only mentions deviations from this set.
var DefaultOnFeatures = map[string]bool{
	"ccmp": true, "kern": true, "calt": true, "rlig": true,
	"liga": true, "mark": true, "mkmk": true, "clig": true,
	"dist": true, "rclt": true, "rvrn": true, "curs": true,
	"locl": true,
}

// hiddenFeatures are positional and access features a user never
// toggles by hand; they are filtered from feature listings.
var hiddenFeatures = map[string]bool{
	"init": true, "medi": true, "med2": true, "fina": true,
	"fin2": true, "fin3": true, "isol": true, "curs": true,
	"aalt": true, "rand": true,
}

// FilterVisibleFeatures removes hidden features from a tag list,
// keeping the order.
func FilterVisibleFeatures(tags []string) []string {
	visible := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !hiddenFeatures[tag] {
			visible = append(visible, tag)
		}
	}
	return visible
}

// spacingFeatureDefaults turn off ligatures and kerning so the spacing
// proof shows raw sidebearings.
func spacingFeatureDefaults() map[string]bool {
	return map[string]bool{"liga": false, "kern": false}
}

// FeatureNote summarizes feature deviations and tracking for the page
// footer: features switched on that default to off, features switched
// off that default to on, and a non-zero tracking value.
func FeatureNote(features map[string]bool, tracking float64) string {
	var on, off []string
	for tag, enabled := range features {
		if enabled && !DefaultOnFeatures[tag] {
			on = append(on, tag)
		} else if !enabled && DefaultOnFeatures[tag] {
			off = append(off, tag)
		}
	}
	sort.Strings(on)
	sort.Strings(off)
	var parts []string
	if len(on) > 0 {
		parts = append(parts, "ON: "+strings.Join(on, ", "))
	}
	if len(off) > 0 {
		parts = append(parts, "OFF: "+strings.Join(off, ", "))
	}
	note := strings.Join(parts, " - ")
	if tracking != 0 {
		trackingNote := fmt.Sprintf("Tracking: %g", tracking)
		if note != "" {
			note += " | " + trackingNote
		} else {
			note = trackingNote
		}
	}
	return note
}
