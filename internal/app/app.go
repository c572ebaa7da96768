// Package app wires the store, catalog and LLM provider into the
// operations the command line exposes.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aryan24-cs/StudyGenie/internal/achievements"
	"github.com/aryan24-cs/StudyGenie/internal/catalog"
	"github.com/aryan24-cs/StudyGenie/internal/grading"
	"github.com/aryan24-cs/StudyGenie/internal/interview"
	"github.com/aryan24-cs/StudyGenie/internal/llm"
	"github.com/aryan24-cs/StudyGenie/internal/profile"
	"github.com/aryan24-cs/StudyGenie/internal/qa"
	"github.com/aryan24-cs/StudyGenie/internal/quiz"
	"github.com/aryan24-cs/StudyGenie/internal/quizgen"
	"github.com/aryan24-cs/StudyGenie/internal/recommend"
	"github.com/aryan24-cs/StudyGenie/internal/store"
)

var (
	// ErrNoGenerator is returned by GenerateQuiz when no LLM provider is
	// configured.
	ErrNoGenerator = errors.New("quiz generation needs an LLM provider")

	// ErrNoAnswerer is returned by Ask when no LLM provider is configured.
	ErrNoAnswerer = errors.New("asking about a document needs an LLM provider")
)

// Options holds the dependencies for an App. Catalog defaults to the
// embedded catalog; Provider may be nil. Warnings defaults to stderr.
type Options struct {
	Store    *store.Store
	Catalog  *catalog.Catalog
	Provider llm.Provider
	Warnings io.Writer
}

// App is the application core shared by every command.
type App struct {
	Catalog      *catalog.Catalog
	Assessments  store.AssessmentRepo
	Quizzes      store.QuizRepo
	Events       store.EventRepo
	Achievements *achievements.Service
	Generator    quizgen.Generator
	Answerer     *qa.Answerer

	// Warnings receives non-fatal failures, such as achievements that
	// could not be awarded after a result was stored.
	Warnings io.Writer
}

// New builds an App from opts.
func New(opts Options) *App {
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}
	a := &App{
		Catalog:      c,
		Assessments:  opts.Store.AssessmentRepo(),
		Quizzes:      opts.Store.QuizRepo(),
		Events:       opts.Store.EventRepo(),
		Achievements: achievements.NewService(opts.Store.AchievementRepo()),
		Warnings:     opts.Warnings,
	}
	if a.Warnings == nil {
		a.Warnings = os.Stderr
	}
	if opts.Provider != nil {
		a.Generator = quizgen.New(opts.Provider, quizgen.DefaultConfig())
		a.Answerer = qa.New(opts.Provider, qa.DefaultConfig())
	}
	return a
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintf(a.Warnings, "warning: "+format+"\n", args...)
}

// Assessment is the outcome of a submitted interview.
type Assessment struct {
	ID              string                     `json:"id,omitempty"`
	Responses       []interview.Response       `json:"responses"`
	Recommendations []recommend.Match          `json:"recommendations"`
	Insights        []profile.Insight          `json:"insights"`
	Awards          []achievements.Achievement `json:"awards,omitempty"`
}

// Assess computes recommendations and insights for a response log. When
// save is set the assessment is stored and achievements are awarded.
func (a *App) Assess(ctx context.Context, responses []interview.Response, save bool) (*Assessment, error) {
	tags := recommend.FlattenResponses(responses)
	out := &Assessment{
		Responses:       responses,
		Recommendations: recommend.Recommend(tags, a.Catalog.Careers),
		Insights:        profile.Summarize(tags),
	}
	if !save {
		return out, nil
	}

	rec := &store.AssessmentRecord{
		CatalogVersion:  a.Catalog.Version,
		Responses:       mustJSON(out.Responses),
		Recommendations: mustJSON(out.Recommendations),
		Insights:        mustJSON(out.Insights),
	}
	if err := a.Assessments.Save(ctx, rec); err != nil {
		return nil, err
	}
	out.ID = rec.ID

	// The assessment row exists from here on; award failures are not fatal.
	awards, err := a.Achievements.EvaluateAssessment(ctx, rec.ID)
	out.Awards = awards
	if err != nil {
		a.warn("achievements not updated for assessment %s: %v", rec.ID, err)
	}
	return out, nil
}

// StoredQuiz is a question set with its store ID.
type StoredQuiz struct {
	ID  string
	Set *quiz.QuestionSet
}

// GenerateQuiz asks the LLM for a question set covering input and stores
// it. source names where the material came from.
func (a *App) GenerateQuiz(ctx context.Context, input quizgen.Input, source string) (*StoredQuiz, error) {
	if a.Generator == nil {
		return nil, ErrNoGenerator
	}
	set, err := a.Generator.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	return a.SaveQuiz(ctx, set, input.Title, source)
}

// SaveQuiz stores an existing question set.
func (a *App) SaveQuiz(ctx context.Context, set *quiz.QuestionSet, title, source string) (*StoredQuiz, error) {
	payload, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encode question set: %w", err)
	}
	rec := &store.QuestionSetRecord{Title: title, Source: source, Payload: payload}
	if err := a.Quizzes.SaveQuestionSet(ctx, rec); err != nil {
		return nil, err
	}
	return &StoredQuiz{ID: rec.ID, Set: set}, nil
}

// LoadQuiz returns a stored question set.
func (a *App) LoadQuiz(ctx context.Context, id string) (*StoredQuiz, error) {
	rec, err := a.Quizzes.GetQuestionSet(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := quiz.Decode(rec.Payload)
	if err != nil {
		return nil, fmt.Errorf("question set %s: %w", id, err)
	}
	return &StoredQuiz{ID: rec.ID, Set: set}, nil
}

// LoadQuizFile reads a question set from a JSON file.
func LoadQuizFile(path string) (*quiz.QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	return quiz.Decode(data)
}

// GradedQuiz is a stored grading outcome.
type GradedQuiz struct {
	ResultID string
	Result   *grading.Result
	Awards   []achievements.Achievement
}

// GradeQuiz grades answers against a stored question set, stores the
// result and awards achievements. Once the result is stored it is always
// returned; award failures are reported on Warnings.
func (a *App) GradeQuiz(ctx context.Context, q *StoredQuiz, answers quiz.Answers) (*GradedQuiz, error) {
	result, err := grading.Grade(q.Set, answers)
	if err != nil {
		return nil, err
	}

	rec := &store.QuizResultRecord{
		QuestionSetID: q.ID,
		Score:         result.Score,
		Total:         result.Total,
		Percentage:    result.Percentage,
		Result:        mustJSON(result),
	}
	if err := a.Quizzes.SaveResult(ctx, rec); err != nil {
		return nil, err
	}

	graded := &GradedQuiz{ResultID: rec.ID, Result: result}

	history, err := a.Quizzes.ListResults(ctx, "", store.QueryOpts{})
	if err != nil {
		a.warn("achievements not updated for result %s: %v", rec.ID, err)
		return graded, nil
	}
	awards, err := a.Achievements.EvaluateQuiz(ctx, achievements.QuizOutcome{
		ResultID:   rec.ID,
		Percentage: result.Percentage,
		Total:      result.Total,
		Attempts:   len(history),
	})
	// Awards granted before a failure are stored and still reported.
	graded.Awards = awards
	if err != nil {
		a.warn("achievements not updated for result %s: %v", rec.ID, err)
	}
	return graded, nil
}

// Ask answers a question from the given study material.
func (a *App) Ask(ctx context.Context, input qa.Input) (*qa.Answer, error) {
	if a.Answerer == nil {
		return nil, ErrNoAnswerer
	}
	return a.Answerer.Ask(ctx, input)
}

// Progress is the learner's achievement standing.
type Progress struct {
	Ledger achievements.Ledger
	Level  achievements.Level
}

// Progress loads the achievement ledger and the level it earns.
func (a *App) Progress(ctx context.Context) (*Progress, error) {
	ledger, err := a.Achievements.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	return &Progress{Ledger: ledger, Level: achievements.LevelFor(ledger.TotalPoints())}, nil
}

// mustJSON encodes values built from plain structs, which cannot fail.
func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("app: encode %T: %v", v, err))
	}
	return data
}
