package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedQuestionSet is returned when a question set does not carry
// all four non-empty question groups. It is never repaired locally.
var ErrMalformedQuestionSet = errors.New("malformed question set")

// MultipleChoiceQuestion has a fixed list of options and one correct option
// text.
type MultipleChoiceQuestion struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"min=2,dive,required"`
	Answer   string   `json:"answer" validate:"required"`
}

// TrueFalseQuestion is a statement that is either true or false.
type TrueFalseQuestion struct {
	Question string `json:"question" validate:"required"`
	Answer   bool   `json:"answer"`
}

// ShortAnswerQuestion is an open question graded by an open-ended checker.
type ShortAnswerQuestion struct {
	Question string `json:"question" validate:"required"`
}

// SummaryQuestion asks the learner to summarize the source material.
type SummaryQuestion struct {
	Question string `json:"question" validate:"required"`
}

// QuestionSet is a generated quiz. All four question groups must be present
// and non-empty; the summary group is a single question.
type QuestionSet struct {
	MultipleChoice []MultipleChoiceQuestion `json:"multipleChoice" validate:"required,min=1,dive"`
	TrueFalse      []TrueFalseQuestion      `json:"trueFalse" validate:"required,min=1,dive"`
	ShortAnswer    []ShortAnswerQuestion    `json:"shortAnswer" validate:"required,min=1,dive"`
	Summary        *SummaryQuestion         `json:"summary" validate:"required"`

	// Study aids generated alongside the questions. Optional.
	ConciseSummary  string `json:"conciseSummary,omitempty"`
	DetailedSummary string `json:"detailedSummary,omitempty"`
}

// UnmarshalJSON accepts the "quiz" key used by older payloads for the
// multiple-choice group.
func (s *QuestionSet) UnmarshalJSON(data []byte) error {
	type plain QuestionSet
	aux := struct {
		*plain
		Quiz []MultipleChoiceQuestion `json:"quiz"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.MultipleChoice == nil && aux.Quiz != nil {
		s.MultipleChoice = aux.Quiz
	}
	return nil
}

// Decode parses and validates a question set payload.
func Decode(data []byte) (*QuestionSet, error) {
	var s QuestionSet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuestionSet, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var validate = validator.New()

// Validate checks the group structure. Every problem is reported in a
// single error wrapping ErrMalformedQuestionSet.
func (s *QuestionSet) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil question set", ErrMalformedQuestionSet)
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrMalformedQuestionSet, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w:\n  %s", ErrMalformedQuestionSet, strings.Join(msgs, "\n  "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "QuestionSet.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is missing", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q check", field, fe.Tag())
	}
}

// Len returns the number of questions in a category.
func (s *QuestionSet) Len(c Category) int {
	switch c {
	case MultipleChoice:
		return len(s.MultipleChoice)
	case TrueFalse:
		return len(s.TrueFalse)
	case ShortAnswer:
		return len(s.ShortAnswer)
	case Summary:
		if s.Summary == nil {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// Total is the number of gradable items. The summary counts once.
func (s *QuestionSet) Total() int {
	return len(s.MultipleChoice) + len(s.ShortAnswer) + len(s.TrueFalse) + 1
}

// Prompt returns the question text for a key, or "" when the key is out of
// range.
func (s *QuestionSet) Prompt(k AnswerKey) string {
	if k.Index < 0 || k.Index >= s.Len(k.Category) {
		return ""
	}
	switch k.Category {
	case MultipleChoice:
		return s.MultipleChoice[k.Index].Question
	case TrueFalse:
		return s.TrueFalse[k.Index].Question
	case ShortAnswer:
		return s.ShortAnswer[k.Index].Question
	case Summary:
		return s.Summary.Question
	}
	return ""
}
