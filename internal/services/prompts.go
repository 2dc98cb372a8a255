package services

import (
	"fmt"
	"strings"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// buildPrompt renders the fixed template for the enrichment kind, embedding
// the concept's generation-derived fields.
func buildPrompt(kind model.EnrichmentKind, c *model.CoasterConcept) string {
	elements := strings.Join(c.SpecialElements, ", ")

	switch kind {
	case model.EnrichDescription:
		return fmt.Sprintf(`Create an exciting description for a roller coaster with these specs:
Type: %s
Thrill Level: %s
Manufacturer: %s
Layout: %s
Theme: %s
Special Elements: %s

Write a compelling 2-3 sentence description that captures the excitement and unique features of this coaster.`,
			c.CoasterType, c.ThrillLevel, c.Manufacturer, c.Layout, c.Theme, elements)

	case model.EnrichTheming:
		return fmt.Sprintf(`Design detailed theming for a %s themed roller coaster called "%s":
Type: %s
Layout: %s
Elements: %s

Describe the visual theming, story elements, queue experience, and special effects that would bring this theme to life. Be creative and immersive!`,
			c.Theme, c.Name, c.CoasterType, c.Layout, elements)

	case model.EnrichLayout:
		return fmt.Sprintf(`Create a detailed layout description for this roller coaster:
Name: %s
Type: %s
Manufacturer: %s
Layout Style: %s
Thrill Level: %s
Key Elements: %s

Describe the ride experience from start to finish, including lift hill, key elements, pacing, and finale. Make it exciting and technically feasible!`,
			c.Name, c.CoasterType, c.Manufacturer, c.Layout, c.ThrillLevel, elements)
	}
	return ""
}
