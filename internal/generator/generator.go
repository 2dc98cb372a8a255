// Package generator turns six integer rolls plus the reference data snapshot
// into the generation-derived fields of a concept. It is a pure function:
// identical inputs produce identical output, and the caller supplies all
// randomness through the rolls.
package generator

import (
	"strings"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// Fallbacks used when a reference category is absent or empty.
const (
	FallbackType         = "Hypercoaster"
	FallbackThrillLevel  = "High Thrill"
	FallbackManufacturer = "Bolliger & Mabillard"
	FallbackLayout       = "Out and Back"
	FallbackTheme        = "Medieval Castle"
)

// Reference category names.
const (
	CategoryTypes         = "types"
	CategoryThrillLevels  = "thrillLevels"
	CategoryManufacturers = "manufacturers"
	CategoryLayouts       = "layouts"
	CategoryThemes        = "themes"
	CategoryElements      = "elements"
)

// elementProbeStride spaces successive element probes across the list.
const elementProbeStride = 7

// Generate resolves rolls against the reference snapshot and returns a concept
// with only generation-derived fields set (no identity, owner or timestamps).
// Rolls must be non-negative; the service layer rejects negative rolls before
// calling here.
func Generate(rolls model.RollData, ref map[string][]string) model.CoasterConcept {
	coasterType := pick(ref[CategoryTypes], rolls.TypeRoll, FallbackType)
	thrillLevel := pick(ref[CategoryThrillLevels], rolls.ThrillRoll, FallbackThrillLevel)
	manufacturer := pick(ref[CategoryManufacturers], rolls.ManufacturerRoll, FallbackManufacturer)
	layout := pick(ref[CategoryLayouts], rolls.LayoutRoll, FallbackLayout)
	theme := pick(ref[CategoryThemes], rolls.ThemeRoll, FallbackTheme)

	return model.CoasterConcept{
		Name:            firstWord(theme) + " " + coasterType,
		CoasterType:     coasterType,
		ThrillLevel:     thrillLevel,
		Manufacturer:    manufacturer,
		Layout:          layout,
		Theme:           theme,
		SpecialElements: pickElements(ref[CategoryElements], rolls.ElementsRoll),
		RollData:        rolls,
	}
}

// firstWord returns the first whitespace-delimited token of s, or "" when s
// is blank.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// pick selects list[roll % len(list)], or the fallback when the list is empty.
func pick(list []string, roll int, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[roll%len(list)]
}

// pickElements chooses 2 + elementsRoll%3 distinct elements by probing the
// list at (elementsRoll + i*7) % len, skipping duplicates. Probing is capped
// at 3x the list length: when the list holds fewer distinct entries than the
// target count, the result is whatever distinct elements were found. An empty
// list yields an empty selection.
func pickElements(elements []string, elementsRoll int) []string {
	selected := []string{}
	if len(elements) == 0 {
		return selected
	}

	want := 2 + elementsRoll%3
	maxProbes := 3 * len(elements)
	for i := 0; i < maxProbes && len(selected) < want; i++ {
		candidate := elements[(elementsRoll+i*elementProbeStride)%len(elements)]
		if !contains(selected, candidate) {
			selected = append(selected, candidate)
		}
	}
	return selected
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
