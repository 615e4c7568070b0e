package report

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/talentai/talentai/internal/assessment"
)

//go:embed content.yaml
var defaultContent []byte

// Career is one entry of the career database.
type Career struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Salary      string `yaml:"salary" json:"salary"`
	Pathway     string `yaml:"pathway" json:"pathway"`
}

// ArchetypeDef is a premium archetype with the dimensions it is scored on.
type ArchetypeDef struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Dimensions  []assessment.Dimension `yaml:"dimensions"`
	Strengths   []string               `yaml:"strengths"`
	Weaknesses  []string               `yaml:"weaknesses"`
}

// BucketDef is a future-career bucket with its rationale.
type BucketDef struct {
	Name       string                 `yaml:"name"`
	Rationale  string                 `yaml:"rationale"`
	Dimensions []assessment.Dimension `yaml:"dimensions"`
}

type RoadmapWeek struct {
	Week  int      `yaml:"week" json:"week"`
	Title string   `yaml:"title" json:"title"`
	Tasks []string `yaml:"tasks" json:"tasks"`
}

type Resource struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
	Type  string `yaml:"type" json:"type"`
}

// Roadmap is a multi-week learning plan.
type Roadmap struct {
	Skill     string        `yaml:"skill" json:"skill"`
	Why       string        `yaml:"why" json:"why"`
	Weeks     []RoadmapWeek `yaml:"weeks" json:"weeks"`
	Resources []Resource    `yaml:"resources" json:"resources"`
}

// DimensionText is the narrative shown for a dimension in insights.
type DimensionText struct {
	Description string `yaml:"description"`
	Suggestion  string `yaml:"suggestion"`
}

// Content is the static report data. It is loaded once and only read after.
type Content struct {
	UpgradeMessage  string                                 `yaml:"upgradeMessage"`
	Dimensions      map[assessment.Dimension]DimensionText `yaml:"dimensions"`
	Archetypes      []ArchetypeDef                         `yaml:"archetypes"`
	FutureBuckets   []BucketDef                            `yaml:"futureBuckets"`
	Roadmaps        map[assessment.Dimension]Roadmap       `yaml:"roadmaps"`
	FallbackRoadmap Roadmap                                `yaml:"fallbackRoadmap"`
	Careers         map[assessment.Holland][]Career        `yaml:"careers"`
}

// LoadContent parses and validates a YAML content document.
func LoadContent(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse report content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid report content: %w", err)
	}
	return &c, nil
}

// DefaultContent parses the embedded content document.
func DefaultContent() (*Content, error) {
	return LoadContent(defaultContent)
}

func (c *Content) validate() error {
	for _, d := range assessment.Dimensions {
		if _, ok := c.Dimensions[d]; !ok {
			return fmt.Errorf("dimensions: missing %s", d)
		}
	}
	if len(c.Archetypes) < 2 {
		return errors.New("archetypes: need at least two")
	}
	for _, a := range c.Archetypes {
		if err := checkDims(a.Name, a.Dimensions); err != nil {
			return fmt.Errorf("archetypes: %w", err)
		}
	}
	for _, b := range c.FutureBuckets {
		if err := checkDims(b.Name, b.Dimensions); err != nil {
			return fmt.Errorf("futureBuckets: %w", err)
		}
	}
	for d := range c.Roadmaps {
		if !d.Valid() {
			return fmt.Errorf("roadmaps: unknown dimension %q", d)
		}
	}
	if c.FallbackRoadmap.Skill == "" {
		return errors.New("fallbackRoadmap: skill required")
	}
	if len(c.Careers[assessment.Investigative]) == 0 {
		return errors.New("careers: investigative list required")
	}
	return nil
}

func checkDims(name string, dims []assessment.Dimension) error {
	if len(dims) == 0 {
		return fmt.Errorf("%s: no dimensions", name)
	}
	for _, d := range dims {
		if !d.Valid() {
			return fmt.Errorf("%s: unknown dimension %q", name, d)
		}
	}
	return nil
}
