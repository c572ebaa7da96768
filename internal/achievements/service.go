package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/aryan24-cs/StudyGenie/internal/store"
)

// firstQuizRef is the reference for the one-off first quiz award.
const firstQuizRef = "first"

// QuizOutcome is what the service needs to know about a graded quiz.
type QuizOutcome struct {
	ResultID   string
	Percentage float64
	Total      int

	// Attempts is the number of graded quizzes so far, including this one.
	Attempts int
}

// Service evaluates milestones and records new awards in the ledger.
type Service struct {
	repo store.AchievementRepo
	now  func() time.Time

	// SessionAwards accumulates achievements awarded by this service.
	SessionAwards []Achievement
}

// NewService creates a Service backed by repo. A nil repo keeps awards in
// memory only.
func NewService(repo store.AchievementRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// EvaluateQuiz awards every milestone the outcome reaches and returns the
// ones that were new.
func (s *Service) EvaluateQuiz(ctx context.Context, o QuizOutcome) ([]Achievement, error) {
	var candidates []Achievement
	at := s.now().UTC()

	if o.Attempts >= 1 {
		candidates = append(candidates, New(KindFirstQuiz, firstQuizRef, at))
	}
	if o.Total > 0 && o.Percentage >= 100 {
		candidates = append(candidates, New(KindPerfectScore, o.ResultID, at))
	}
	if o.Total > 0 && o.Percentage >= HighAchieverPercent {
		candidates = append(candidates, New(KindHighAchiever, o.ResultID, at))
	}
	if o.Attempts > 0 && o.Attempts%StreakLength == 0 {
		candidates = append(candidates, New(KindQuizStreak, fmt.Sprintf("attempts-%d", o.Attempts), at))
	}

	return s.awardAll(ctx, candidates)
}

// EvaluateAssessment awards completion of the assessment with the given ID.
func (s *Service) EvaluateAssessment(ctx context.Context, assessmentID string) ([]Achievement, error) {
	return s.awardAll(ctx, []Achievement{New(KindAssessmentComplete, assessmentID, s.now().UTC())})
}

// Ledger loads every stored achievement.
func (s *Service) Ledger(ctx context.Context) (Ledger, error) {
	if s.repo == nil {
		return Ledger(s.SessionAwards), nil
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ledger := make(Ledger, 0, len(records))
	for _, r := range records {
		ledger = append(ledger, Achievement{
			Kind:      Kind(r.Kind),
			Title:     r.Title,
			Points:    r.Points,
			Reference: r.Reference,
			AwardedAt: r.AwardedAt,
		})
	}
	return ledger, nil
}

func (s *Service) awardAll(ctx context.Context, candidates []Achievement) ([]Achievement, error) {
	var awarded []Achievement
	for _, a := range candidates {
		ok, err := s.persist(ctx, a)
		if err != nil {
			return awarded, err
		}
		if ok {
			awarded = append(awarded, a)
		}
	}
	return awarded, nil
}

func (s *Service) persist(ctx context.Context, a Achievement) (bool, error) {
	if s.repo == nil {
		var ok bool
		s.SessionAwards, ok = Award(s.SessionAwards, a)
		return ok, nil
	}
	ok, err := s.repo.Append(ctx, &store.AchievementRecord{
		Kind:      string(a.Kind),
		Title:     a.Title,
		Points:    a.Points,
		Reference: a.Reference,
		AwardedAt: a.AwardedAt,
	})
	if err != nil {
		return false, fmt.Errorf("award %s: %w", a.Kind, err)
	}
	if ok {
		s.SessionAwards = append(s.SessionAwards, a)
	}
	return ok, nil
}
