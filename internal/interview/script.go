package interview

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a pre-recorded set of answers keyed by question ID. Questions
// the script does not mention, or maps to an empty list, are skipped.
type Script struct {
	Answers map[string][]string `yaml:"answers"`
}

// ParseScript decodes a YAML (or JSON) answer script.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode answer script: %w", err)
	}
	return &sc, nil
}

// LoadScript reads an answer script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer script: %w", err)
	}
	return ParseScript(data)
}

// Play answers every question s presents, conditionals included, and
// submits. A required question the script leaves out fails with
// ErrRequiredQuestion.
func (sc *Script) Play(s *Session) ([]Response, error) {
	for {
		q, err := s.CurrentQuestion()
		if errors.Is(err, ErrOutOfQuestions) {
			return s.Submit()
		}
		if err != nil {
			return nil, err
		}

		if sel := sc.Answers[q.ID]; len(sel) > 0 {
			err = s.Answer(sel...)
		} else {
			err = s.Skip()
		}
		if err != nil {
			return nil, err
		}
	}
}
