package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gpakit/gpakit/pkg/course"
	"github.com/gpakit/gpakit/pkg/gpa"
	"github.com/gpakit/gpakit/pkg/score"
)

const fileMode = 0600

// Config carries the data tables the pipeline runs on: the grade-label
// scale, the component field pairs, the official enrollment categories, the
// core-major keyword and exclusion lists, and the GPA breakpoints. All of
// them default to the grade system's conventions and can be overridden from
// a YAML file.
type Config struct {
	ScoreKey       string            `yaml:"score_key"`
	GradeScale     score.Scale       `yaml:"grade_scale"`
	Components     []score.Component `yaml:"components"`
	OfficialTypes  []string          `yaml:"official_types"`
	CoreKeywords   []string          `yaml:"core_keywords"`
	ExcludeCourses []string          `yaml:"exclude_courses"`
	GPATable       gpa.Table         `yaml:"gpa_table"`
}

// Default returns the built-in tables.
func Default() *Config {
	return &Config{
		ScoreKey:       score.DefaultScoreKey,
		GradeScale:     score.DefaultScale(),
		Components:     score.DefaultComponents(),
		OfficialTypes:  course.DefaultOfficialTypes(),
		CoreKeywords:   course.DefaultCoreKeywords(),
		ExcludeCourses: course.DefaultExcludeCourses(),
		GPATable:       gpa.DefaultTable(),
	}
}

// Load reads a config file, filling any section the file omits with the
// built-in default. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file: %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling config file: %s", path)
	}

	d := Default()
	if c.ScoreKey == "" {
		c.ScoreKey = d.ScoreKey
	}
	if len(c.GradeScale) == 0 {
		c.GradeScale = d.GradeScale
	}
	if len(c.Components) == 0 {
		c.Components = d.Components
	}
	if len(c.OfficialTypes) == 0 {
		c.OfficialTypes = d.OfficialTypes
	}
	if len(c.CoreKeywords) == 0 {
		c.CoreKeywords = d.CoreKeywords
	}
	if len(c.ExcludeCourses) == 0 {
		c.ExcludeCourses = d.ExcludeCourses
	}
	if len(c.GPATable) == 0 {
		c.GPATable = d.GPATable
	}
	return &c, nil
}

// Save writes the config as YAML, used to seed an editable starter file.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}

// Resolver builds a score resolver from the configured tables.
func (c *Config) Resolver() *score.Resolver {
	return &score.Resolver{
		ScoreKey:   c.ScoreKey,
		Scale:      c.GradeScale,
		Components: c.Components,
	}
}

// Filter builds the official-course filter from the configured tables.
func (c *Config) Filter() *course.Filter {
	return &course.Filter{
		OfficialTypes: c.OfficialTypes,
		Resolver:      c.Resolver(),
	}
}

// Classifier builds the core-major classifier from the configured lists.
func (c *Config) Classifier() *course.Classifier {
	return &course.Classifier{
		Exclude:  c.ExcludeCourses,
		Keywords: c.CoreKeywords,
	}
}
