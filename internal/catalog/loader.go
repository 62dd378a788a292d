package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slam0615/sc2026/internal/schema"
)

// catalogFile is the on-disk shape of a reference-data override. Sections
// left empty fall back to the built-in data set.
type catalogFile struct {
	Intro       string                  `yaml:"intro"`
	Parts       []schema.Part           `yaml:"parts"`
	Questions   []schema.Question       `yaml:"questions"`
	Bands       []schema.EvaluationBand `yaml:"bands"`
	Suggestions []schema.Suggestion     `yaml:"suggestions"`
	Cities      []schema.City           `yaml:"cities"`
	Industries  []string                `yaml:"industries"`
}

// Load reads a YAML reference-data file, merges it over the built-in data,
// and verifies the result. A file that fails verification is rejected whole.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}

	c := Default()
	if f.Intro != "" {
		c.Intro = f.Intro
	}
	if len(f.Parts) > 0 {
		c.Parts = f.Parts
	}
	if len(f.Questions) > 0 {
		c.Questions = f.Questions
	}
	if len(f.Bands) > 0 {
		c.Bands = f.Bands
	}
	if len(f.Suggestions) > 0 {
		c.Suggestions = f.Suggestions
	}
	if len(f.Cities) > 0 {
		c.Cities = f.Cities
	}
	if len(f.Industries) > 0 {
		c.Industries = f.Industries
	}

	if err := c.Verify(); err != nil {
		return nil, fmt.Errorf("invalid reference data in %s: %w", path, err)
	}
	return c, nil
}
