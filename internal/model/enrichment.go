package model

import "fmt"

// EnrichmentKind is a closed set of AI text-generation tasks. Each kind maps
// to exactly one concept field; arbitrary field names are unrepresentable.
type EnrichmentKind string

const (
	EnrichDescription EnrichmentKind = "description"
	EnrichTheming     EnrichmentKind = "theming"
	EnrichLayout      EnrichmentKind = "layout"
)

// ParseEnrichmentKind validates a wire-level kind string.
func ParseEnrichmentKind(s string) (EnrichmentKind, error) {
	switch EnrichmentKind(s) {
	case EnrichDescription, EnrichTheming, EnrichLayout:
		return EnrichmentKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown enrichment kind %q", ErrValidation, s)
}

// Apply writes content into the concept field keyed by the kind.
func (k EnrichmentKind) Apply(c *CoasterConcept, content string) {
	switch k {
	case EnrichDescription:
		c.AIDescription = &content
	case EnrichTheming:
		c.AITheming = &content
	case EnrichLayout:
		c.AILayoutIdeas = &content
	}
}
