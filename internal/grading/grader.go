// Package grading scores a learner's answers against a generated question
// set and produces per-question feedback.
package grading

import (
	"fmt"
	"math"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

// Feedback explanations.
const (
	mcCorrect      = "Correct! You selected the right option."
	mcIncorrect    = `Incorrect. The correct answer is "%s". Review the relevant section of the document to understand why.`
	tfCorrect      = "Correct! You identified the statement correctly."
	tfIncorrect    = "Incorrect. The correct answer is %s. Check the document for clarification."
	saCorrect      = "Your answer seems detailed. Ensure it addresses all key points."
	saIncorrect    = "Answer is too short or missing. Provide a more detailed response."
	sumCorrect     = "Your summary is sufficiently detailed. Ensure it captures the main ideas."
	sumIncorrect   = "Summary is too short or missing. Include key points from the document."
	manualGrading  = "N/A (requires manual grading)"
	suggestion     = `For "%s", review the document section related to %s to clarify your understanding.`
	openEndedTopic = "the topic"
	encouragement  = "Great job! Keep reviewing to reinforce your understanding."
)

// FeedbackItem reports the outcome for one question.
type FeedbackItem struct {
	Key           quiz.AnswerKey `json:"key"`
	Category      string         `json:"type"`
	Question      string         `json:"question"`
	UserAnswer    string         `json:"userAnswer"`
	CorrectAnswer string         `json:"correctAnswer"`
	Correct       bool           `json:"isCorrect"`
	Explanation   string         `json:"explanation"`
}

// Result is the outcome of grading a question set.
type Result struct {
	Score       int            `json:"score"`
	Total       int            `json:"total"`
	Percentage  float64        `json:"percentage"`
	Feedback    []FeedbackItem `json:"feedback"`
	Suggestions []string       `json:"suggestions"`
}

// Incorrect returns the feedback items that were graded wrong.
func (r *Result) Incorrect() []FeedbackItem {
	var out []FeedbackItem
	for _, f := range r.Feedback {
		if !f.Correct {
			out = append(out, f)
		}
	}
	return out
}

type options struct {
	shortAnswer OpenEndedChecker
	summary     OpenEndedChecker
}

// Option configures Grade.
type Option func(*options)

// WithShortAnswerChecker replaces the short-answer heuristic.
func WithShortAnswerChecker(c OpenEndedChecker) Option {
	return func(o *options) { o.shortAnswer = c }
}

// WithSummaryChecker replaces the summary heuristic.
func WithSummaryChecker(c OpenEndedChecker) Option {
	return func(o *options) { o.summary = c }
}

// Grade scores answers against set. It returns quiz.ErrMalformedQuestionSet
// when a question group is absent or empty and quiz.ErrInvalidAnswer when an
// answer addresses a question that does not exist or has the wrong kind.
// Unanswered questions are graded incorrect.
//
// Feedback is ordered multiple-choice, true/false, short-answer, summary.
// The summary group counts once towards Total.
func Grade(set *quiz.QuestionSet, answers quiz.Answers, opts ...Option) (*Result, error) {
	o := options{
		shortAnswer: LengthHeuristic{MinRunes: ShortAnswerMinRunes},
		summary:     LengthHeuristic{MinRunes: SummaryMinRunes},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	if err := set.Check(answers); err != nil {
		return nil, err
	}

	res := &Result{
		Total:    set.Total(),
		Feedback: make([]FeedbackItem, 0, set.Total()),
	}

	for i, q := range set.MultipleChoice {
		key := quiz.Key(quiz.MultipleChoice, i)
		given, _ := answers[key].AsText()
		ok := given == q.Answer
		item := FeedbackItem{
			Key:           key,
			Question:      q.Question,
			UserAnswer:    given,
			CorrectAnswer: q.Answer,
			Correct:       ok,
			Explanation:   mcCorrect,
		}
		if !ok {
			item.Explanation = fmt.Sprintf(mcIncorrect, q.Answer)
		}
		res.add(item, q.Answer)
	}

	for i, q := range set.TrueFalse {
		key := quiz.Key(quiz.TrueFalse, i)
		given, answered := answers[key].AsBool()
		ok := answered && given == q.Answer
		item := FeedbackItem{
			Key:           key,
			Question:      q.Question,
			CorrectAnswer: boolLabel(q.Answer),
			Correct:       ok,
			Explanation:   tfCorrect,
		}
		if answered {
			item.UserAnswer = boolLabel(given)
		}
		if !ok {
			item.Explanation = fmt.Sprintf(tfIncorrect, boolLabel(q.Answer))
		}
		res.add(item, boolLabel(q.Answer))
	}

	for i, q := range set.ShortAnswer {
		key := quiz.Key(quiz.ShortAnswer, i)
		res.add(gradeOpenEnded(key, q.Question, answers, o.shortAnswer, saCorrect, saIncorrect), openEndedTopic)
	}

	key := quiz.Key(quiz.Summary, 0)
	res.add(gradeOpenEnded(key, set.Summary.Question, answers, o.summary, sumCorrect, sumIncorrect), openEndedTopic)

	res.Percentage = percentage(res.Score, res.Total)
	if len(res.Suggestions) == 0 {
		res.Suggestions = []string{encouragement}
	}
	return res, nil
}

func gradeOpenEnded(key quiz.AnswerKey, question string, answers quiz.Answers, c OpenEndedChecker, correct, incorrect string) FeedbackItem {
	given, answered := answers[key].AsText()
	ok := answered && c.Check(question, given)
	item := FeedbackItem{
		Key:           key,
		Question:      question,
		UserAnswer:    given,
		CorrectAnswer: manualGrading,
		Correct:       ok,
		Explanation:   correct,
	}
	if !ok {
		item.Explanation = incorrect
	}
	return item
}

// add records item and, when it is wrong, a review suggestion naming topic.
func (r *Result) add(item FeedbackItem, topic string) {
	item.Category = item.Key.Category.String()
	r.Feedback = append(r.Feedback, item)
	if item.Correct {
		r.Score++
		return
	}
	r.Suggestions = append(r.Suggestions, fmt.Sprintf(suggestion, item.Question, topic))
}

// percentage returns 100*score/total rounded to two decimals.
func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)*10000/float64(total)) / 100
}

func boolLabel(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
