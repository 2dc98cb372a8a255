package model

import "time"

// ReferenceCategory is a named, ordered list of candidate strings used for one
// generation dimension (types, thrillLevels, manufacturers, layouts, themes,
// elements). Category names are unique. The lists are owned by an
// administrative process; this service reads them and never mutates them
// outside the seeding CLI.
type ReferenceCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// RollData holds the six caller-supplied integer rolls used to generate a
// concept. Retained verbatim on the concept for provenance.
type RollData struct {
	TypeRoll         int `json:"typeRoll"`
	ThrillRoll       int `json:"thrillRoll"`
	ManufacturerRoll int `json:"manufacturerRoll"`
	LayoutRoll       int `json:"layoutRoll"`
	ElementsRoll     int `json:"elementsRoll"`
	ThemeRoll        int `json:"themeRoll"`
}

// CoasterConcept is the central entity: one generated roller-coaster design.
// Generation-derived fields are immutable after creation; Name, IsPublic and
// the three AI fields are mutable by the owner.
type CoasterConcept struct {
	ConceptID       string    `json:"conceptId"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	CoasterType     string    `json:"coasterType"`
	ThrillLevel     string    `json:"thrillLevel"`
	Manufacturer    string    `json:"manufacturer"`
	Layout          string    `json:"layout"`
	Theme           string    `json:"theme"`
	SpecialElements []string  `json:"specialElements"`
	RollData        RollData  `json:"rollData"`
	IsPublic        bool      `json:"isPublic"`
	AIDescription   *string   `json:"aiDescription,omitempty"`
	AITheming       *string   `json:"aiTheming,omitempty"`
	AILayoutIdeas   *string   `json:"aiLayoutIdeas,omitempty"`
	CreationTime    time.Time `json:"creationTime"`
}
