package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"quiz-gen", "quiz-gen", "open-ended-grading"} {
		errMsg := ""
		if i == 2 {
			errMsg = "timeout"
		}
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-20250514",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 10 * (i + 1),
			LatencyMs:    int64(200 * (i + 1)),
			Success:      i != 2,
			ErrorMessage: errMsg,
			RequestBody:  `{"messages":[]}`,
		})
		require.NoError(t, err)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].Sequence, "newest first")
	assert.Equal(t, int64(1), all[2].Sequence)
	assert.False(t, all[0].Success)
	assert.Equal(t, "timeout", all[0].ErrorMessage)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(3), limited[0].Sequence)

	gen, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	require.NoError(t, err)
	assert.Len(t, gen, 2)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 1, Before: 3})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, int64(2), after[0].Sequence)

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", Success: true,
		ResponseBody: `{"multipleChoice":[]}`,
	}))
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, `{"multipleChoice":[]}`, got.ResponseBody)

	_, err = repo.GetLLMEvent(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gpt-4o", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		{Model: "gpt-4o", Purpose: "quiz-gen", InputTokens: 200, OutputTokens: 70, LatencyMs: 301, Success: true},
		{Model: "gemini-2.0-flash", Purpose: "open-ended-grading", InputTokens: 10, OutputTokens: 1, LatencyMs: 40, Success: true},
	}
	for _, e := range events {
		e.Provider = "test"
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{
		Purpose: "quiz-gen", Calls: 2, InputTokens: 300, OutputTokens: 120, AvgLatencyMs: 201,
	}, byPurpose[0])
	assert.Equal(t, "open-ended-grading", byPurpose[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "gpt-4o", Calls: 2, InputTokens: 300, OutputTokens: 120}, byModel[0])
	assert.Equal(t, ModelUsage{Model: "gemini-2.0-flash", Calls: 1, InputTokens: 10, OutputTokens: 1}, byModel[1])
}

func TestAssessmentSaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	first := &AssessmentRecord{
		CreatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		CatalogVersion:  "1.0.0",
		Responses:       json.RawMessage(`[{"questionId":"interests","selected":["coding"]}]`),
		Recommendations: json.RawMessage(`[]`),
	}
	require.NoError(t, repo.Save(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &AssessmentRecord{CatalogVersion: "1.0.0"}
	require.NoError(t, repo.Save(ctx, second))
	assert.False(t, second.CreatedAt.IsZero())

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.CatalogVersion)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
	assert.JSONEq(t, string(first.Responses), string(got.Responses))
	assert.JSONEq(t, `null`, string(got.Insights))

	list, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	older, err := repo.List(ctx, QueryOpts{To: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, first.ID, older[0].ID)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizRepoResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	set := &QuestionSetRecord{Title: "Solar System", Source: "notes.txt", Payload: json.RawMessage(`{"multipleChoice":[]}`)}
	require.NoError(t, repo.SaveQuestionSet(ctx, set))

	gotSet, err := repo.GetQuestionSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar System", gotSet.Title)
	assert.Equal(t, "notes.txt", gotSet.Source)

	for _, score := range []int{3, 5} {
		require.NoError(t, repo.SaveResult(ctx, &QuizResultRecord{
			QuestionSetID: set.ID,
			Score:         score,
			Total:         5,
			Percentage:    float64(score) * 20,
			Result:        json.RawMessage(`{}`),
		}))
	}

	results, err := repo.ListResults(ctx, set.ID, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, set.ID, r.QuestionSetID)
		assert.Equal(t, 5, r.Total)
	}

	none, err := repo.ListResults(ctx, "other", QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, none)

	sets, err := repo.ListQuestionSets(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, sets, 1)

	_, err = repo.GetQuestionSet(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizResultRequiresQuestionSet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.QuizRepo().SaveResult(ctx, &QuizResultRecord{QuestionSetID: "does-not-exist", Total: 1})
	assert.Error(t, err)
}

func TestAchievementAppendIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AchievementRepo()
	ctx := context.Background()

	added, err := repo.Append(ctx, &AchievementRecord{Kind: "perfect_score", Title: "Perfect Score", Points: 100, Reference: "set-1"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Append(ctx, &AchievementRecord{Kind: "perfect_score", Title: "Perfect Score", Points: 100, Reference: "set-1"})
	require.NoError(t, err)
	assert.False(t, added, "same kind and reference is stored once")

	added, err = repo.Append(ctx, &AchievementRecord{Kind: "perfect_score", Title: "Perfect Score", Points: 100, Reference: "set-2"})
	require.NoError(t, err)
	assert.True(t, added)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "set-1", list[0].Reference)
	assert.Equal(t, "set-2", list[1].Reference)
}
