// Package achievements awards points for quiz and interview milestones and
// ranks learners on a leaderboard.
package achievements

// Kind identifies the category of achievement.
type Kind string

const (
	KindFirstQuiz          Kind = "first_quiz"
	KindPerfectScore       Kind = "perfect_score"
	KindHighAchiever       Kind = "high_achiever"
	KindAssessmentComplete Kind = "assessment_complete"
	KindQuizStreak         Kind = "quiz_streak"
)

const (
	// HighAchieverPercent is the minimum quiz percentage for KindHighAchiever.
	HighAchieverPercent = 80

	// StreakLength is how many graded quizzes earn one KindQuizStreak.
	StreakLength = 5
)

// AllKinds returns all kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindFirstQuiz, KindPerfectScore, KindHighAchiever, KindQuizStreak, KindAssessmentComplete}
}

// Title returns the human-readable name of the kind.
func (k Kind) Title() string {
	switch k {
	case KindFirstQuiz:
		return "First Steps"
	case KindPerfectScore:
		return "Perfect Score"
	case KindHighAchiever:
		return "High Achiever"
	case KindAssessmentComplete:
		return "Know Thyself"
	case KindQuizStreak:
		return "On a Roll"
	default:
		return string(k)
	}
}

// Points returns the points awarded for the kind.
func (k Kind) Points() int {
	switch k {
	case KindFirstQuiz:
		return 50
	case KindPerfectScore:
		return 100
	case KindHighAchiever:
		return 50
	case KindAssessmentComplete:
		return 75
	case KindQuizStreak:
		return 150
	default:
		return 0
	}
}

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindFirstQuiz:
		return "🌱"
	case KindPerfectScore:
		return "💯"
	case KindHighAchiever:
		return "🏅"
	case KindAssessmentComplete:
		return "🧭"
	case KindQuizStreak:
		return "⚡"
	default:
		return "✦"
	}
}
