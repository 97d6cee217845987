package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var defaultSkillsYAML []byte

// Course maps a skill keyword to a recommended course.
type Course struct {
	Key    string `yaml:"key"`
	Course string `yaml:"course"`
}

// Catalog is the skill vocabulary and course list loaded at startup.
type Catalog struct {
	Skills  []string `yaml:"skills"`
	Courses []Course `yaml:"courses"`
}

// LoadCatalog reads the catalog from path, or the embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultSkillsYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read skills file: %w", err)
		}
		data = b
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse skills catalog: %w", err)
	}
	if len(c.Skills) == 0 {
		return nil, &ConfigError{Field: "skills", Message: "skills catalog has no skills"}
	}
	for i, course := range c.Courses {
		if strings.TrimSpace(course.Key) == "" || strings.TrimSpace(course.Course) == "" {
			return nil, &ConfigError{
				Field:   "courses",
				Message: fmt.Sprintf("course entry %d needs both key and course", i),
			}
		}
	}
	return &c, nil
}
