package grading

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aryan24-cs/StudyGenie/internal/quiz"
)

func sampleSet() *quiz.QuestionSet {
	return &quiz.QuestionSet{
		MultipleChoice: []quiz.MultipleChoiceQuestion{
			{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Paris"},
			{Question: "Largest planet?", Options: []string{"Mars", "Jupiter", "Venus", "Earth"}, Answer: "Jupiter"},
		},
		TrueFalse: []quiz.TrueFalseQuestion{
			{Question: "Water boils at 100C at sea level.", Answer: true},
		},
		ShortAnswer: []quiz.ShortAnswerQuestion{
			{Question: "Explain photosynthesis."},
		},
		Summary: &quiz.SummaryQuestion{Question: "Summarize the document."},
	}
}

var longSummary = strings.Repeat("The document covers the basics of astronomy. ", 3)

func TestGrade_Scenario(t *testing.T) {
	answers := quiz.Answers{
		quiz.Key(quiz.MultipleChoice, 0): quiz.TextAnswer("Paris"),
		quiz.Key(quiz.MultipleChoice, 1): quiz.TextAnswer("Mars"),
		quiz.Key(quiz.TrueFalse, 0):      quiz.BoolAnswer(true),
		quiz.Key(quiz.ShortAnswer, 0):    quiz.TextAnswer("Plants convert light into chemical energy."),
		quiz.Key(quiz.Summary, 0):        quiz.TextAnswer(longSummary),
	}

	res, err := Grade(sampleSet(), answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Score != 4 || res.Total != 5 {
		t.Errorf("score = %d/%d, want 4/5", res.Score, res.Total)
	}
	if res.Percentage != 80 {
		t.Errorf("percentage = %v, want 80", res.Percentage)
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("suggestions = %v, want 1", res.Suggestions)
	}
	want := `For "Largest planet?", review the document section related to Jupiter to clarify your understanding.`
	if res.Suggestions[0] != want {
		t.Errorf("suggestion = %q, want %q", res.Suggestions[0], want)
	}

	wrong := res.Feedback[1]
	if wrong.Correct || wrong.UserAnswer != "Mars" || wrong.CorrectAnswer != "Jupiter" {
		t.Errorf("feedback[1] = %+v", wrong)
	}
	wantExpl := `Incorrect. The correct answer is "Jupiter". Review the relevant section of the document to understand why.`
	if wrong.Explanation != wantExpl {
		t.Errorf("explanation = %q", wrong.Explanation)
	}
}

func TestGrade_FeedbackOrder(t *testing.T) {
	res, err := Grade(sampleSet(), nil)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	var got []string
	for _, f := range res.Feedback {
		got = append(got, f.Key.String())
	}
	want := []string{"quiz-0", "quiz-1", "trueFalse-0", "shortAnswer-0", "summary-0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if res.Feedback[2].Category != "true-false" {
		t.Errorf("category = %q", res.Feedback[2].Category)
	}
}

func TestGrade_Unanswered(t *testing.T) {
	res, err := Grade(sampleSet(), quiz.Answers{})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Score != 0 || res.Percentage != 0 {
		t.Errorf("score = %d (%v%%), want 0", res.Score, res.Percentage)
	}
	if len(res.Suggestions) != 5 {
		t.Errorf("suggestions = %d, want 5", len(res.Suggestions))
	}
	tf := res.Feedback[2]
	if tf.UserAnswer != "" || tf.Correct {
		t.Errorf("unanswered true/false = %+v", tf)
	}
	if tf.Explanation != "Incorrect. The correct answer is True. Check the document for clarification." {
		t.Errorf("explanation = %q", tf.Explanation)
	}
	sa := res.Feedback[3]
	if sa.CorrectAnswer != "N/A (requires manual grading)" {
		t.Errorf("short answer correct answer = %q", sa.CorrectAnswer)
	}
	if !strings.Contains(res.Suggestions[3], "related to the topic") {
		t.Errorf("open-ended suggestion = %q", res.Suggestions[3])
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	answers := quiz.Answers{
		quiz.Key(quiz.MultipleChoice, 0): quiz.TextAnswer("Paris"),
		quiz.Key(quiz.MultipleChoice, 1): quiz.TextAnswer("Jupiter"),
		quiz.Key(quiz.TrueFalse, 0):      quiz.BoolAnswer(true),
		quiz.Key(quiz.ShortAnswer, 0):    quiz.TextAnswer("Light becomes sugar."),
		quiz.Key(quiz.Summary, 0):        quiz.TextAnswer(longSummary),
	}
	res, err := Grade(sampleSet(), answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", res.Percentage)
	}
	want := []string{"Great job! Keep reviewing to reinforce your understanding."}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Errorf("suggestions = %v", res.Suggestions)
	}
	if got := res.Incorrect(); len(got) != 0 {
		t.Errorf("incorrect = %v, want none", got)
	}
}

func TestGrade_CaseSensitiveChoice(t *testing.T) {
	res, err := Grade(sampleSet(), quiz.Answers{quiz.Key(quiz.MultipleChoice, 0): quiz.TextAnswer("paris")})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Feedback[0].Correct {
		t.Error("choice comparison should be case-sensitive")
	}
}

func TestGrade_OpenEndedThresholds(t *testing.T) {
	tests := []struct {
		name   string
		key    quiz.AnswerKey
		answer string
		want   bool
	}{
		{"short answer at limit", quiz.Key(quiz.ShortAnswer, 0), "abcdefghij", false},
		{"short answer over limit", quiz.Key(quiz.ShortAnswer, 0), "abcdefghijk", true},
		{"short answer padded", quiz.Key(quiz.ShortAnswer, 0), "   abcdefghij   ", false},
		{"summary at limit", quiz.Key(quiz.Summary, 0), strings.Repeat("x", 50), false},
		{"summary over limit", quiz.Key(quiz.Summary, 0), strings.Repeat("x", 51), true},
		{"multibyte runes", quiz.Key(quiz.ShortAnswer, 0), strings.Repeat("é", 11), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Grade(sampleSet(), quiz.Answers{tt.key: quiz.TextAnswer(tt.answer)})
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			idx := 3
			if tt.key.Category == quiz.Summary {
				idx = 4
			}
			if got := res.Feedback[idx].Correct; got != tt.want {
				t.Errorf("correct = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrade_CustomChecker(t *testing.T) {
	mentions := CheckerFunc(func(_, answer string) bool {
		return strings.Contains(strings.ToLower(answer), "chlorophyll")
	})
	answers := quiz.Answers{quiz.Key(quiz.ShortAnswer, 0): quiz.TextAnswer("Chlorophyll")}

	res, err := Grade(sampleSet(), answers, WithShortAnswerChecker(mentions))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !res.Feedback[3].Correct {
		t.Error("custom checker should accept the answer")
	}

	res, err = Grade(sampleSet(), nil, WithSummaryChecker(CheckerFunc(func(string, string) bool { return true })))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Feedback[4].Correct {
		t.Error("a missing summary is never correct")
	}
}

func TestGrade_Deterministic(t *testing.T) {
	answers := quiz.Answers{
		quiz.Key(quiz.MultipleChoice, 1): quiz.TextAnswer("Jupiter"),
		quiz.Key(quiz.TrueFalse, 0):      quiz.BoolAnswer(false),
		quiz.Key(quiz.ShortAnswer, 0):    quiz.TextAnswer("too short"),
	}
	first, err := Grade(sampleSet(), answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	for range 10 {
		again, err := Grade(sampleSet(), answers)
		if err != nil {
			t.Fatalf("grade: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("grading is not deterministic:\n%+v\n%+v", first, again)
		}
	}
}

func TestGrade_MalformedSet(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*quiz.QuestionSet)
	}{
		{"no multiple choice", func(s *quiz.QuestionSet) { s.MultipleChoice = nil }},
		{"empty true/false", func(s *quiz.QuestionSet) { s.TrueFalse = []quiz.TrueFalseQuestion{} }},
		{"no short answer", func(s *quiz.QuestionSet) { s.ShortAnswer = nil }},
		{"no summary", func(s *quiz.QuestionSet) { s.Summary = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := sampleSet()
			tt.mutate(set)
			_, err := Grade(set, nil)
			if !errors.Is(err, quiz.ErrMalformedQuestionSet) {
				t.Errorf("err = %v, want ErrMalformedQuestionSet", err)
			}
		})
	}
}

func TestGrade_InvalidAnswers(t *testing.T) {
	_, err := Grade(sampleSet(), quiz.Answers{quiz.Key(quiz.TrueFalse, 0): quiz.TextAnswer("yes")})
	if !errors.Is(err, quiz.ErrInvalidAnswer) {
		t.Errorf("err = %v, want ErrInvalidAnswer", err)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{0, 5, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{5, 5, 100},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}
