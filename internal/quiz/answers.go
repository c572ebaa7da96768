package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned when an answer set does not fit the shape of
// the question set it is graded against.
var ErrInvalidAnswer = errors.New("invalid answer")

// Category identifies a question group.
type Category int

const (
	MultipleChoice Category = iota
	TrueFalse
	ShortAnswer
	Summary
)

// Categories returns all categories in grading order.
func Categories() []Category {
	return []Category{MultipleChoice, TrueFalse, ShortAnswer, Summary}
}

func (c Category) String() string {
	switch c {
	case MultipleChoice:
		return "multiple-choice"
	case TrueFalse:
		return "true-false"
	case ShortAnswer:
		return "short-answer"
	case Summary:
		return "summary"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// keyPrefix is the prefix used by flat answer maps ("quiz-0", "summary-0").
func (c Category) keyPrefix() string {
	switch c {
	case MultipleChoice:
		return "quiz"
	case TrueFalse:
		return "trueFalse"
	case ShortAnswer:
		return "shortAnswer"
	case Summary:
		return "summary"
	default:
		return ""
	}
}

// AnswerKey addresses one question in a set.
type AnswerKey struct {
	Category Category
	Index    int
}

// Key is shorthand for AnswerKey{c, i}.
func Key(c Category, i int) AnswerKey {
	return AnswerKey{Category: c, Index: i}
}

// String renders the flat key form, e.g. "trueFalse-1".
func (k AnswerKey) String() string {
	return fmt.Sprintf("%s-%d", k.Category.keyPrefix(), k.Index)
}

// MarshalText implements encoding.TextMarshaler using the flat key form.
func (k AnswerKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AnswerKey) UnmarshalText(b []byte) error {
	parsed, err := ParseAnswerKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseAnswerKey parses the flat key form produced by String.
func ParseAnswerKey(s string) (AnswerKey, error) {
	prefix, idx, ok := strings.Cut(s, "-")
	if !ok {
		return AnswerKey{}, fmt.Errorf("%w: malformed key %q", ErrInvalidAnswer, s)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 {
		return AnswerKey{}, fmt.Errorf("%w: malformed index in key %q", ErrInvalidAnswer, s)
	}
	for _, c := range Categories() {
		if c.keyPrefix() == prefix {
			return AnswerKey{Category: c, Index: i}, nil
		}
	}
	return AnswerKey{}, fmt.Errorf("%w: unknown category in key %q", ErrInvalidAnswer, s)
}

type answerKind int

const (
	kindNone answerKind = iota
	kindText
	kindBool
)

// Answer is a learner's response: text for multiple-choice, short-answer and
// summary questions, a boolean for true/false questions.
type Answer struct {
	kind answerKind
	text string
	b    bool
}

// TextAnswer wraps a text response.
func TextAnswer(s string) Answer { return Answer{kind: kindText, text: s} }

// BoolAnswer wraps a true/false response.
func BoolAnswer(b bool) Answer { return Answer{kind: kindBool, b: b} }

// AsText returns the text and whether the answer is textual.
func (a Answer) AsText() (string, bool) { return a.text, a.kind == kindText }

// AsBool returns the value and whether the answer is boolean.
func (a Answer) AsBool() (bool, bool) { return a.b, a.kind == kindBool }

// Answers maps question keys to responses. A missing key means the question
// was not answered.
type Answers map[AnswerKey]Answer

// Check validates the answers against the set's shape: every key must
// address an existing question and carry the answer kind its category
// expects. All problems are reported together.
func (s *QuestionSet) Check(answers Answers) error {
	keys := make([]AnswerKey, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].Index < keys[j].Index
	})

	var errs []string
	for _, k := range keys {
		if k.Category < MultipleChoice || k.Category > Summary {
			errs = append(errs, fmt.Sprintf("unknown category %d", int(k.Category)))
			continue
		}
		if k.Index < 0 || k.Index >= s.Len(k.Category) {
			errs = append(errs, fmt.Sprintf("%s: no such question", k))
			continue
		}
		a := answers[k]
		if k.Category == TrueFalse {
			if _, ok := a.AsBool(); !ok {
				errs = append(errs, fmt.Sprintf("%s: expected a true/false answer", k))
			}
		} else if _, ok := a.AsText(); !ok {
			errs = append(errs, fmt.Sprintf("%s: expected a text answer", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidAnswer, strings.Join(errs, "\n  "))
	}
	return nil
}

// ParseFlatAnswers converts a flat answer map ({"quiz-0": "Paris",
// "trueFalse-0": true}) into Answers. True/false values may be booleans or
// the strings "true"/"false".
func ParseFlatAnswers(raw map[string]any) (Answers, error) {
	out := make(Answers, len(raw))
	for key, v := range raw {
		k, err := ParseAnswerKey(key)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}

		if k.Category == TrueFalse {
			switch tv := v.(type) {
			case bool:
				out[k] = BoolAnswer(tv)
			case string:
				b, err := strconv.ParseBool(strings.TrimSpace(tv))
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %q is not true or false", ErrInvalidAnswer, key, tv)
				}
				out[k] = BoolAnswer(b)
			default:
				return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidAnswer, key, v)
			}
			continue
		}

		sv, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidAnswer, key, v)
		}
		out[k] = TextAnswer(sv)
	}
	return out, nil
}

// DecodeAnswers parses a flat JSON answer object.
func DecodeAnswers(data []byte) (Answers, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	return ParseFlatAnswers(raw)
}

// MarshalJSON writes the flat key form.
func (a Answers) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(a))
	for k, v := range a {
		if b, ok := v.AsBool(); ok {
			flat[k.String()] = b
			continue
		}
		if s, ok := v.AsText(); ok {
			flat[k.String()] = s
		}
	}
	return json.Marshal(flat)
}
