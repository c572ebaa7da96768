package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Option is a selectable answer. Its ID doubles as the tag used for
// conditional triggers and career matching.
type Option struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Question is a single interview prompt.
type Question struct {
	ID          string   `yaml:"id" validate:"required"`
	Prompt      string   `yaml:"prompt" validate:"required"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options" validate:"min=2,dive"`
	MultiSelect bool     `yaml:"multi_select"`
	Required    bool     `yaml:"required"`
}

// HasOption reports whether id is one of the question's options.
func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// ConditionalQuestion is a follow-up that joins the interview once any of
// its DependsOn tags is selected.
type ConditionalQuestion struct {
	Question  `yaml:",inline"`
	DependsOn []string `yaml:"depends_on" validate:"min=1,dive,required"`
}

// Resource is an external learning link attached to a career.
type Resource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url" validate:"omitempty,url"`
}

// Career is an outcome profile scored by the recommendation engine.
// Tags may name options that do not exist in the question bank; those
// simply never match.
type Career struct {
	ID               string   `yaml:"id" validate:"required"`
	Title            string   `yaml:"title" validate:"required"`
	Category         string   `yaml:"category"`
	Description      string   `yaml:"description"`
	Tags             []string `yaml:"tags"`
	Skills           []string `yaml:"skills"`
	Tools            []string `yaml:"tools"`
	Outlook          string   `yaml:"outlook"`
	Traits           []string `yaml:"traits"`
	LearningResource Resource `yaml:"learning_resource"`
	JobSearchURL     string   `yaml:"job_search_url" validate:"omitempty,url"`
}

// Catalog holds the question bank and career profiles. It is read-only
// once built.
type Catalog struct {
	Version      string                `yaml:"version" validate:"required"`
	Questions    []Question            `yaml:"questions" validate:"min=1,dive"`
	Conditionals []ConditionalQuestion `yaml:"conditionals" validate:"dive"`
	Careers      []Career              `yaml:"careers" validate:"dive"`

	byTag        map[string][]int
	conditionals map[string]int
	questions    map[string]int
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateCatalog(&c); err != nil {
		return nil, err
	}
	c.buildIndex()
	return &c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which catalog tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func (c *Catalog) buildIndex() {
	c.byTag = make(map[string][]int)
	c.conditionals = make(map[string]int, len(c.Conditionals))
	c.questions = make(map[string]int, len(c.Questions))

	for i, q := range c.Questions {
		c.questions[q.ID] = i
	}
	for i, cq := range c.Conditionals {
		c.conditionals[cq.ID] = i
		for _, tag := range cq.DependsOn {
			c.byTag[tag] = append(c.byTag[tag], i)
		}
	}
}

// Question looks up a base or conditional question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	if i, ok := c.questions[id]; ok {
		return c.Questions[i], true
	}
	if i, ok := c.conditionals[id]; ok {
		return c.Conditionals[i].Question, true
	}
	return Question{}, false
}

// Conditional looks up a conditional question by ID.
func (c *Catalog) Conditional(id string) (ConditionalQuestion, bool) {
	i, ok := c.conditionals[id]
	if !ok {
		return ConditionalQuestion{}, false
	}
	return c.Conditionals[i], true
}

// TriggeredBy returns the conditional questions keyed by tag, in catalog
// order.
func (c *Catalog) TriggeredBy(tag string) []ConditionalQuestion {
	idx := c.byTag[tag]
	if len(idx) == 0 {
		return nil
	}
	out := make([]ConditionalQuestion, len(idx))
	for i, j := range idx {
		out[i] = c.Conditionals[j]
	}
	return out
}

// Career looks up a career by ID.
func (c *Catalog) Career(id string) (Career, bool) {
	for _, cr := range c.Careers {
		if cr.ID == id {
			return cr, true
		}
	}
	return Career{}, false
}

// Tags returns every option tag defined by base and conditional questions.
func (c *Catalog) Tags() map[string]bool {
	tags := make(map[string]bool)
	for _, q := range c.Questions {
		for _, o := range q.Options {
			tags[o.ID] = true
		}
	}
	for _, cq := range c.Conditionals {
		for _, o := range cq.Options {
			tags[o.ID] = true
		}
	}
	return tags
}
