// Package catalog holds the immutable reference data the questionnaire runs
// on: the question catalog, part definitions, evaluation bands, suggestion
// entries, locality and industry lists, and the intro text. The data is
// supplied once at startup — either the built-in set or a YAML override — and
// is never mutated afterwards.
package catalog

import "github.com/slam0615/sc2026/internal/schema"

// Catalog is one complete reference data set.
type Catalog struct {
	Intro       string
	Parts       []schema.Part
	Questions   []schema.Question
	Bands       []schema.EvaluationBand
	Suggestions []schema.Suggestion
	Cities      []schema.City
	Industries  []string
}

// Default returns the built-in 職場健康促進表現計分表 data set.
func Default() *Catalog {
	return &Catalog{
		Intro:       introText,
		Parts:       defaultParts,
		Questions:   defaultQuestions,
		Bands:       defaultBands,
		Suggestions: defaultSuggestions,
		Cities:      defaultCities,
		Industries:  defaultIndustries,
	}
}

// Question returns the catalog entry for id.
func (c *Catalog) Question(id int) (schema.Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return schema.Question{}, false
}

// Part returns the part definition for partID.
func (c *Catalog) Part(partID int) (schema.Part, bool) {
	for _, p := range c.Parts {
		if p.ID == partID {
			return p, true
		}
	}
	return schema.Part{}, false
}

// PartQuestions returns the questions belonging to partID in catalog order.
func (c *Catalog) PartQuestions(partID int) []schema.Question {
	var out []schema.Question
	for _, q := range c.Questions {
		if q.Part == partID {
			out = append(out, q)
		}
	}
	return out
}

// Districts returns the selectable districts for a city, or nil if the city
// is not in the locality table.
func (c *Catalog) Districts(city string) []string {
	for _, entry := range c.Cities {
		if entry.Name == city {
			return entry.Districts
		}
	}
	return nil
}

// partOrdinals maps a part ID to its localized ordinal for user messaging.
var partOrdinals = []string{"", "一", "二", "三", "四", "五"}

// PartOrdinal returns the localized ordinal label (一..五) for a part ID,
// or the empty string for an out-of-range ID.
func PartOrdinal(partID int) string {
	if partID < 1 || partID >= len(partOrdinals) {
		return ""
	}
	return partOrdinals[partID]
}
