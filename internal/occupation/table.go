// Package occupation provides the static occupation reference table used to
// tailor nutrition recommendations.
package occupation

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Activity levels recognized by the table.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very active"
)

var activityLevels = map[string]bool{
	ActivitySedentary:  true,
	ActivityLight:      true,
	ActivityModerate:   true,
	ActivityActive:     true,
	ActivityVeryActive: true,
}

//go:embed occupations.yaml
var occupationsYAML []byte

// Profile describes the nutritional context of an occupation.
type Profile struct {
	Name              string   `yaml:"name" json:"name"`
	ActivityLevel     string   `yaml:"activity_level" json:"activityLevel"`
	StressPattern     string   `yaml:"stress_pattern" json:"stressPattern"`
	CalorieMultiplier float64  `yaml:"calorie_multiplier" json:"calorieMultiplier"`
	Concerns          []string `yaml:"concerns" json:"concerns"`
	Recommendations   []string `yaml:"recommendations" json:"recommendations,omitempty"`
}

// IsActive reports whether the occupation involves sustained physical activity.
func (p Profile) IsActive() bool {
	return p.ActivityLevel == ActivityActive || p.ActivityLevel == ActivityVeryActive
}

func (p Profile) clone() Profile {
	p.Concerns = slices.Clone(p.Concerns)
	p.Recommendations = slices.Clone(p.Recommendations)
	return p
}

type tableFile struct {
	Default     Profile   `yaml:"default"`
	Occupations []Profile `yaml:"occupations"`
}

// Table is an immutable occupation lookup table.
type Table struct {
	byName   map[string]Profile
	names    []string
	fallback Profile
}

// Parse builds a Table from YAML data.
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	if err := checkProfile(file.Default, "default"); err != nil {
		return nil, err
	}
	if len(file.Default.Recommendations) == 0 {
		return nil, &LoadError{Message: "default profile must define recommendations"}
	}

	t := &Table{
		byName:   make(map[string]Profile, len(file.Occupations)),
		names:    make([]string, 0, len(file.Occupations)),
		fallback: file.Default,
	}
	for _, p := range file.Occupations {
		if p.Name == "" {
			return nil, &LoadError{Message: "occupation with empty name"}
		}
		if _, dup := t.byName[p.Name]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate occupation %q", p.Name)}
		}
		if err := checkProfile(p, p.Name); err != nil {
			return nil, err
		}
		t.byName[p.Name] = p
		t.names = append(t.names, p.Name)
	}
	sort.Strings(t.names)

	return t, nil
}

func checkProfile(p Profile, label string) error {
	if !activityLevels[p.ActivityLevel] {
		return &LoadError{Message: fmt.Sprintf("%s: unknown activity level %q", label, p.ActivityLevel)}
	}
	if p.CalorieMultiplier <= 0 {
		return &LoadError{Message: fmt.Sprintf("%s: calorie multiplier must be positive", label)}
	}
	return nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table parsed from the embedded data.
// It panics if the embedded data is malformed.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(occupationsYAML)
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded occupation table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the profile for an exact occupation name, or the default
// profile when the name is unknown. The returned value is a copy.
func (t *Table) Lookup(name string) Profile {
	if p, ok := t.byName[name]; ok {
		return p.clone()
	}
	fallback := t.fallback.clone()
	fallback.Name = name
	return fallback
}

// Known reports whether the occupation has its own entry.
func (t *Table) Known(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns the known occupation names in lexical order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// GeneralRecommendations returns the balanced-nutrition advice used for
// occupations without their own list.
func (t *Table) GeneralRecommendations() []string {
	return slices.Clone(t.fallback.Recommendations)
}
