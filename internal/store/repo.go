package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures list queries. Zero values disable a filter.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // event sequence > After
	Before  int64     // event sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only
}

// LLMRequestEventData captures a single LLM call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls by purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and inspects LLM calls.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns ErrNotFound when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// AssessmentRecord is a submitted interview with its computed outcome.
// The JSON payloads are owned by the caller.
type AssessmentRecord struct {
	ID              string
	CreatedAt       time.Time
	CatalogVersion  string
	Responses       json.RawMessage
	Recommendations json.RawMessage
	Insights        json.RawMessage
}

// AssessmentRepo stores completed interviews.
type AssessmentRepo interface {
	// Save assigns ID and CreatedAt when they are empty.
	Save(ctx context.Context, rec *AssessmentRecord) error
	Get(ctx context.Context, id string) (*AssessmentRecord, error)
	List(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error)
}

// QuestionSetRecord is a generated quiz.
type QuestionSetRecord struct {
	ID        string
	CreatedAt time.Time
	Title     string
	Source    string
	Payload   json.RawMessage
}

// QuizResultRecord is one graded attempt at a question set.
type QuizResultRecord struct {
	ID            string
	QuestionSetID string
	CreatedAt     time.Time
	Score         int
	Total         int
	Percentage    float64
	Result        json.RawMessage
}

// QuizRepo stores question sets and graded attempts.
type QuizRepo interface {
	SaveQuestionSet(ctx context.Context, rec *QuestionSetRecord) error
	GetQuestionSet(ctx context.Context, id string) (*QuestionSetRecord, error)
	ListQuestionSets(ctx context.Context, opts QueryOpts) ([]QuestionSetRecord, error)

	// SaveResult fails if the referenced question set does not exist.
	SaveResult(ctx context.Context, rec *QuizResultRecord) error

	// ListResults returns results newest first; an empty setID lists all.
	ListResults(ctx context.Context, setID string, opts QueryOpts) ([]QuizResultRecord, error)
}

// AchievementRecord is one awarded achievement.
type AchievementRecord struct {
	ID        int
	Kind      string
	Title     string
	Points    int
	Reference string
	AwardedAt time.Time
}

// AchievementRepo is an append-only achievement ledger.
type AchievementRepo interface {
	// Append stores rec and reports false, without error, when the
	// (Kind, Reference) pair was already awarded.
	Append(ctx context.Context, rec *AchievementRecord) (bool, error)

	// List returns the ledger in award order.
	List(ctx context.Context) ([]AchievementRecord, error)
}
