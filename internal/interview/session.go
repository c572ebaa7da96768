package interview

import (
	"fmt"

	"github.com/aryan24-cs/StudyGenie/internal/catalog"
)

// Phase represents the lifecycle phase of a session.
type Phase int

const (
	PhaseInProgress Phase = iota // Presenting questions
	PhaseSubmitting              // Submit accepted, building the response log
	PhaseComplete                // Response log handed to the caller
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitting:
		return "submitting"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Response is the recorded outcome of one presented question.
type Response struct {
	QuestionID string   `json:"question_id"`
	Selected   []string `json:"selected"`
	Skipped    bool     `json:"skipped"`
}

// Progress summarizes how far a session has advanced.
type Progress struct {
	// Position is the 1-based index of the current question.
	Position int
	// Known is the number of questions known so far: the effective
	// sequence plus queued conditionals. It grows as conditionals trigger.
	Known int
	// Answered counts positions holding a response, skipped ones included.
	Answered int
}

// Session walks a catalog as an adaptive interview. A Session is not safe
// for concurrent use; see Manager.
type Session struct {
	catalog *catalog.Catalog

	// sequence is the effective sequence: base questions followed by
	// conditionals in the order they were inserted.
	sequence []catalog.Question

	// responses is indexed by position in sequence. A nil entry has not been
	// answered yet.
	responses []*Response

	// queue holds conditional IDs waiting to be appended to sequence. It is
	// always the output of recomputeConditionalQueue for the current state.
	queue []string

	// inserted holds conditional IDs already appended to sequence.
	inserted map[string]bool

	// skipped holds IDs of every question the user skipped.
	skipped map[string]bool

	cursor int
	phase  Phase
}

// NewSession creates a session over the catalog's base questions.
func NewSession(c *catalog.Catalog) *Session {
	seq := make([]catalog.Question, len(c.Questions))
	copy(seq, c.Questions)
	return &Session{
		catalog:   c,
		sequence:  seq,
		responses: make([]*Response, len(seq)),
		inserted:  make(map[string]bool),
		skipped:   make(map[string]bool),
	}
}

// Phase returns the session's lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// CurrentQuestion returns the question at the cursor. It returns
// ErrOutOfQuestions once the effective sequence is exhausted and nothing is
// queued.
func (s *Session) CurrentQuestion() (catalog.Question, error) {
	if s.phase != PhaseInProgress {
		return catalog.Question{}, ErrSessionComplete
	}
	if s.cursor >= len(s.sequence) {
		return catalog.Question{}, ErrOutOfQuestions
	}
	return s.sequence[s.cursor], nil
}

// Previous returns the response already recorded at the cursor, if the user
// navigated back to an answered question.
func (s *Session) Previous() (Response, bool) {
	if s.cursor >= len(s.responses) || s.responses[s.cursor] == nil {
		return Response{}, false
	}
	return cloneResponse(*s.responses[s.cursor]), true
}

// Answer records the selection for the current question and advances.
// Duplicate IDs collapse. On error the session is unchanged.
func (s *Session) Answer(selected ...string) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}

	picked := make([]string, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		if !q.HasOption(id) {
			return fmt.Errorf("%w %q for question %q", ErrUnknownOption, id, q.ID)
		}
		seen[id] = true
		picked = append(picked, id)
	}

	if len(picked) == 0 && q.Required {
		return fmt.Errorf("%w: %q", ErrRequiredQuestion, q.ID)
	}
	if len(picked) > 1 && !q.MultiSelect {
		return fmt.Errorf("%w: %q", ErrTooManySelections, q.ID)
	}

	s.responses[s.cursor] = &Response{QuestionID: q.ID, Selected: picked}
	s.refreshQueue()
	s.advance()
	return nil
}

// Skip records the current question as skipped and advances. A skipped
// question can never be enqueued again as a conditional.
func (s *Session) Skip() error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if q.Required {
		return fmt.Errorf("%w: %q", ErrRequiredQuestion, q.ID)
	}

	s.responses[s.cursor] = &Response{QuestionID: q.ID, Skipped: true}
	s.skipped[q.ID] = true
	s.refreshQueue()
	s.advance()
	return nil
}

// Back moves the cursor to the previous question. The response recorded
// there is kept until the question is answered again.
func (s *Session) Back() error {
	if s.phase != PhaseInProgress {
		return ErrSessionComplete
	}
	if s.cursor == 0 {
		return ErrAtStart
	}
	s.cursor--
	s.refreshQueue()
	return nil
}

// Submit returns the ordered response log once every question has been
// presented. It fails with ErrAssessmentIncomplete before that.
func (s *Session) Submit() ([]Response, error) {
	if s.phase != PhaseInProgress {
		return nil, ErrSessionComplete
	}
	if s.cursor < len(s.sequence) || len(s.queue) > 0 {
		return nil, ErrAssessmentIncomplete
	}

	s.phase = PhaseSubmitting
	out := s.Responses()
	s.phase = PhaseComplete
	return out, nil
}

// Responses returns a copy of the responses recorded so far, in
// presentation order.
func (s *Session) Responses() []Response {
	out := make([]Response, 0, len(s.responses))
	for _, r := range s.responses {
		if r != nil {
			out = append(out, cloneResponse(*r))
		}
	}
	return out
}

// Queued returns the IDs of conditionals waiting to be presented.
func (s *Session) Queued() []string {
	return append([]string(nil), s.queue...)
}

// Sequence returns the IDs of the effective sequence.
func (s *Session) Sequence() []string {
	ids := make([]string, len(s.sequence))
	for i, q := range s.sequence {
		ids[i] = q.ID
	}
	return ids
}

// Progress reports the session's position.
func (s *Session) Progress() Progress {
	p := Progress{
		Position: s.cursor + 1,
		Known:    len(s.sequence) + len(s.queue),
	}
	if p.Position > p.Known {
		p.Position = p.Known
	}
	for _, r := range s.responses {
		if r != nil {
			p.Answered++
		}
	}
	return p
}

func (s *Session) refreshQueue() {
	s.queue = recomputeConditionalQueue(s.catalog, s.responses, s.inserted, s.skipped)
}

// advance moves past the current position, pulling the next queued
// conditional into the sequence when the cursor runs off the end.
func (s *Session) advance() {
	s.cursor++
	if s.cursor < len(s.sequence) || len(s.queue) == 0 {
		return
	}

	id := s.queue[0]
	s.queue = s.queue[1:]
	cq, _ := s.catalog.Conditional(id)
	s.sequence = append(s.sequence, cq.Question)
	s.responses = append(s.responses, nil)
	s.inserted[id] = true
}

// recomputeConditionalQueue derives the pending conditional queue from the
// response log alone. Responses are scanned in presentation order; every
// conditional keyed by a currently selected tag is queued once, unless it is
// already in the sequence or was skipped.
func recomputeConditionalQueue(c *catalog.Catalog, responses []*Response, inserted, skipped map[string]bool) []string {
	var queue []string
	queued := make(map[string]bool)
	for _, r := range responses {
		if r == nil || r.Skipped {
			continue
		}
		for _, tag := range r.Selected {
			for _, cq := range c.TriggeredBy(tag) {
				if inserted[cq.ID] || skipped[cq.ID] || queued[cq.ID] {
					continue
				}
				queued[cq.ID] = true
				queue = append(queue, cq.ID)
			}
		}
	}
	return queue
}

func cloneResponse(r Response) Response {
	r.Selected = append([]string(nil), r.Selected...)
	return r
}
