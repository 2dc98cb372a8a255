package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

func refSnapshot() map[string][]string {
	return map[string][]string{
		CategoryTypes:         {"Wooden", "Steel", "Inverted"},
		CategoryThrillLevels:  {"Family", "Moderate", "High Thrill"},
		CategoryManufacturers: {"Intamin", "Bolliger & Mabillard", "Vekoma"},
		CategoryLayouts:       {"Out and Back", "Twister", "Dueling"},
		CategoryThemes:        {"Space Odyssey", "Jungle Ruins", "Haunted Manor"},
		CategoryElements:      {"Loop", "Corkscrew", "Zero-G Roll", "Airtime Hill", "Helix"},
	}
}

func TestGenerate_PicksByModulo(t *testing.T) {
	rolls := model.RollData{
		TypeRoll:         4, // 4 % 3 = 1
		ThrillRoll:       0,
		ManufacturerRoll: 8, // 8 % 3 = 2
		LayoutRoll:       3, // 3 % 3 = 0
		ElementsRoll:     0,
		ThemeRoll:        2,
	}

	c := Generate(rolls, refSnapshot())

	assert.Equal(t, "Steel", c.CoasterType)
	assert.Equal(t, "Family", c.ThrillLevel)
	assert.Equal(t, "Vekoma", c.Manufacturer)
	assert.Equal(t, "Out and Back", c.Layout)
	assert.Equal(t, "Haunted Manor", c.Theme)
	assert.Equal(t, rolls, c.RollData)
}

func TestGenerate_Deterministic(t *testing.T) {
	rolls := model.RollData{TypeRoll: 7, ThrillRoll: 11, ManufacturerRoll: 13, LayoutRoll: 17, ElementsRoll: 19, ThemeRoll: 23}
	a := Generate(rolls, refSnapshot())
	b := Generate(rolls, refSnapshot())
	assert.Equal(t, a, b)
}

func TestGenerate_NameIsFirstThemeWordPlusType(t *testing.T) {
	c := Generate(model.RollData{TypeRoll: 1, ThemeRoll: 1}, refSnapshot())
	assert.Equal(t, "Jungle Ruins", c.Theme)
	assert.Equal(t, "Steel", c.CoasterType)
	assert.Equal(t, "Jungle Steel", c.Name)
}

func TestGenerate_FallbacksWhenCategoriesMissing(t *testing.T) {
	c := Generate(model.RollData{}, map[string][]string{})

	assert.Equal(t, FallbackType, c.CoasterType)
	assert.Equal(t, FallbackThrillLevel, c.ThrillLevel)
	assert.Equal(t, FallbackManufacturer, c.Manufacturer)
	assert.Equal(t, FallbackLayout, c.Layout)
	assert.Equal(t, FallbackTheme, c.Theme)
	assert.Equal(t, "Medieval Hypercoaster", c.Name)
	assert.Empty(t, c.SpecialElements)
}

func TestGenerate_FallbacksWhenCategoriesEmpty(t *testing.T) {
	ref := map[string][]string{
		CategoryTypes:  {},
		CategoryThemes: {},
	}
	c := Generate(model.RollData{TypeRoll: 5, ThemeRoll: 9}, ref)
	assert.Equal(t, FallbackType, c.CoasterType)
	assert.Equal(t, FallbackTheme, c.Theme)
}

func TestPickElements_CountFollowsRoll(t *testing.T) {
	elements := refSnapshot()[CategoryElements]

	// want = 2 + roll%3
	assert.Len(t, pickElements(elements, 0), 2)
	assert.Len(t, pickElements(elements, 1), 3)
	assert.Len(t, pickElements(elements, 2), 4)
	assert.Len(t, pickElements(elements, 3), 2)
}

func TestPickElements_ProbeOrderAndDistinctness(t *testing.T) {
	elements := refSnapshot()[CategoryElements] // len 5

	// roll 2: want 4; probes (2+7i)%5 -> 2, 4, 1, 3
	got := pickElements(elements, 2)
	assert.Equal(t, []string{"Zero-G Roll", "Helix", "Corkscrew", "Airtime Hill"}, got)
}

func TestPickElements_EmptyList(t *testing.T) {
	got := pickElements(nil, 4)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPickElements_TerminatesWhenProbesCycle(t *testing.T) {
	// Stride and length share a factor of 7, so probing revisits a single
	// index forever; the cap must end the loop with a short selection.
	elements := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := pickElements(elements, 9) // want 2+9%3 = 2, probes stuck at 9%7 = 2
	assert.Equal(t, []string{"c"}, got)
}

func TestPickElements_SkipsDuplicateEntries(t *testing.T) {
	elements := []string{"Loop", "Loop", "Helix"} // len 3, coprime with 7
	got := pickElements(elements, 0)              // want 2; probes 0, 1, 2, ...
	assert.Equal(t, []string{"Loop", "Helix"}, got)
}
