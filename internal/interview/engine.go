package interview

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-screener/internal/evaluation"
	"github.com/jonathan/candidate-screener/internal/parsing"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

// Session errors
var (
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrSessionCompleted = errors.New("interview session is completed")
)

// Status is the lifecycle state of a session
type Status string

// DefaultSessionTTL is how long a session is kept after its last activity
const DefaultSessionTTL = 24 * time.Hour

// Session statuses
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Turn is one question of a session and, once given, its answer and evaluation
type Turn struct {
	Question   Question                `json:"question"`
	Answer     string                  `json:"answer,omitempty"`
	Evaluation *types.AnswerEvaluation `json:"evaluation,omitempty"`
}

// Session is a snapshot of an interview. Snapshots are copies; mutating one does
// not affect the engine.
type Session struct {
	ID            string             `json:"id"`
	CandidateName string             `json:"candidate_name,omitempty"`
	Status        Status             `json:"status"`
	Turns         []Turn             `json:"turns"`
	NextTurn      int                `json:"next_turn"`
	StartedAt     time.Time          `json:"started_at"`
	EndedAt       *time.Time         `json:"ended_at,omitempty"`
	Averages      reporting.Averages `json:"averages"`
}

// CurrentQuestion returns the question awaiting an answer
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Status != StatusActive || s.NextTurn >= len(s.Turns) {
		return Question{}, false
	}
	return s.Turns[s.NextTurn].Question, true
}

type session struct {
	Session
	report     *reporting.BatchReport
	lastActive time.Time
}

func (s *session) snapshot() *Session {
	out := s.Session
	out.Turns = make([]Turn, len(s.Turns))
	for i, t := range s.Turns {
		t.Evaluation = t.Evaluation.Clone()
		out.Turns[i] = t
	}
	if s.EndedAt != nil {
		ended := *s.EndedAt
		out.EndedAt = &ended
	}
	out.Averages = s.report.Averages()
	return &out
}

// Engine runs text interviews held in memory. It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	sessions  map[string]*session
	parser    *parsing.RequirementParser
	evaluator *evaluation.Evaluator
	stopWords map[string]bool
	ttl       time.Duration
	now       func() time.Time
	newID     func() string
}

// NewEngine creates an Engine. now is the session clock; nil means time.Now.
func NewEngine(v *vocab.Vocabulary, evaluator *evaluation.Evaluator, now func() time.Time) *Engine {
	if v == nil {
		v = vocab.Default()
	}
	if evaluator == nil {
		evaluator = evaluation.NewEvaluator(v)
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		sessions:  make(map[string]*session),
		parser:    parsing.NewRequirementParser(v),
		evaluator: evaluator,
		stopWords: v.StopWordSet(),
		ttl:       DefaultSessionTTL,
		now:       now,
		newID:     func() string { return uuid.New().String() },
	}
}

// SetSessionTTL sets how long sessions are kept after their last activity. Zero or
// less keeps sessions until they are deleted.
func (e *Engine) SetSessionTTL(ttl time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ttl = ttl
}

// Sweep discards sessions idle for longer than the TTL, completed or not, and returns
// how many were removed. Start sweeps on every call.
func (e *Engine) Sweep() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sweepLocked()
}

func (e *Engine) sweepLocked() int {
	if e.ttl <= 0 {
		return 0
	}
	cutoff := e.now().Add(-e.ttl)
	removed := 0
	for id, s := range e.sessions {
		if s.lastActive.Before(cutoff) {
			delete(e.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions held
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// Start plans questions for the job and opens an active session
func (e *Engine) Start(req types.StartInterviewRequest) (*Session, error) {
	if err := types.RequireText("job_description", req.JobDescription); err != nil {
		return nil, err
	}
	reqs := e.parser.Parse(req.JobDescription)
	keywords := Keywords(req.JobDescription, e.stopWords, DefaultMaxQuestions)
	return e.StartWithPlan(req.CandidateName, BuildPlan(reqs, req.JobTitle, keywords, req.MaxQuestions))
}

// StartWithPlan opens an active session over a prepared plan
func (e *Engine) StartWithPlan(candidateName string, plan []Question) (*Session, error) {
	if len(plan) == 0 {
		return nil, &types.InputError{Field: "plan", Message: "must contain at least one question"}
	}
	turns := make([]Turn, len(plan))
	for i, q := range plan {
		turns[i] = Turn{Question: q}
	}
	started := e.now()
	s := &session{
		Session: Session{
			ID:            e.newID(),
			CandidateName: candidateName,
			Status:        StatusActive,
			Turns:         turns,
			StartedAt:     started.UTC(),
		},
		report:     reporting.NewBatchReport(candidateName),
		lastActive: started,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweepLocked()
	e.sessions[s.ID] = s
	return s.snapshot(), nil
}

// Get returns a snapshot of a session
func (e *Engine) Get(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.snapshot(), nil
}

// CurrentQuestion returns the question awaiting an answer. ok is false once the
// session is completed.
func (e *Engine) CurrentQuestion(id string) (q Question, ok bool, err error) {
	s, err := e.Get(id)
	if err != nil {
		return Question{}, false, err
	}
	q, ok = s.CurrentQuestion()
	return q, ok, nil
}

// SubmitAnswer records and scores the answer to the current question, then moves
// to the next one. The session completes after its last question.
func (e *Engine) SubmitAnswer(id, answer string) (*types.AnswerEvaluation, *Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if s.Status != StatusActive {
		return nil, nil, fmt.Errorf("%w: %s", ErrSessionCompleted, id)
	}

	turn := &s.Turns[s.NextTurn]
	ev, err := e.evaluator.Evaluate(turn.Question.Text, answer, string(turn.Question.Type))
	if err != nil {
		return nil, nil, err
	}
	if err := s.report.Add(reporting.Entry{
		Question:     turn.Question.Text,
		Answer:       answer,
		QuestionType: turn.Question.Type,
		Evaluation:   ev,
	}); err != nil {
		return nil, nil, err
	}

	now := e.now()
	turn.Answer = answer
	turn.Evaluation = ev.Clone()
	s.lastActive = now
	s.NextTurn++
	if s.NextTurn >= len(s.Turns) {
		s.Status = StatusCompleted
		ended := now.UTC()
		s.EndedAt = &ended
	}
	return ev, s.snapshot(), nil
}

// Transcript returns the turns of a session in order
func (e *Engine) Transcript(id string) ([]Turn, error) {
	s, err := e.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Turns, nil
}

// Report renders the evaluations collected so far
func (e *Engine) Report(id string, format reporting.Format) (*reporting.Output, error) {
	e.mu.Lock()
	s, ok := e.sessions[id]
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.report.Render(format)
}

// Delete discards a session
func (e *Engine) Delete(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(e.sessions, id)
	return nil
}

// Results returns a copy of the evaluations collected so far as a batch report
func (e *Engine) Results(id string) (*reporting.BatchReport, error) {
	e.mu.Lock()
	s, ok := e.sessions[id]
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	out := reporting.NewBatchReport(s.report.Candidate())
	for _, entry := range s.report.Entries() {
		if err := out.Add(entry); err != nil {
			return nil, err
		}
	}
	return out, nil
}
