package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

var validate = validator.New()

// New builds a catalog from in-memory definitions, applying the same
// checks as Parse.
func New(version string, questions []Question, conditionals []ConditionalQuestion, careers []Career) (*Catalog, error) {
	c := &Catalog{
		Version:      version,
		Questions:    questions,
		Conditionals: conditionals,
		Careers:      careers,
	}
	if err := validateCatalog(c); err != nil {
		return nil, err
	}
	c.buildIndex()
	return c, nil
}

// validateCatalog runs field checks and the cross-reference checks that
// struct tags cannot express. All problems are reported together.
func validateCatalog(c *Catalog) error {
	var errs []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s: failed %q check", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	v := "v" + strings.TrimPrefix(c.Version, "v")
	switch {
	case !semver.IsValid(v):
		errs = append(errs, fmt.Sprintf("version %q is not a semantic version", c.Version))
	case semver.Major(v) != SupportedMajor:
		errs = append(errs, fmt.Sprintf("version %q is not supported (want %s.x.x)", c.Version, SupportedMajor))
	}

	ids := make(map[string]bool)
	tags := make(map[string]bool)
	checkQuestion := func(q Question) {
		if q.ID == "" {
			return
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.ID] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option %q", q.ID, o.ID))
			}
			seen[o.ID] = true
			tags[o.ID] = true
		}
	}

	for _, q := range c.Questions {
		checkQuestion(q)
	}
	for _, cq := range c.Conditionals {
		checkQuestion(cq.Question)
	}

	for _, cq := range c.Conditionals {
		for _, dep := range cq.DependsOn {
			if !tags[dep] {
				errs = append(errs, fmt.Sprintf("conditional %q depends on unknown tag %q", cq.ID, dep))
			}
		}
	}

	careerIDs := make(map[string]bool, len(c.Careers))
	for _, cr := range c.Careers {
		if careerIDs[cr.ID] {
			errs = append(errs, fmt.Sprintf("duplicate career ID: %q", cr.ID))
		}
		careerIDs[cr.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// UnmatchedTags lists career tags that no option in the catalog can
// produce, keyed by career ID. Such tags are legal but never match.
func (c *Catalog) UnmatchedTags() map[string][]string {
	known := c.Tags()
	out := make(map[string][]string)
	for _, cr := range c.Careers {
		for _, t := range cr.Tags {
			if !known[t] {
				out[cr.ID] = append(out[cr.ID], t)
			}
		}
	}
	return out
}
