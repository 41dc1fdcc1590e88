// Package quiz implements the per-module quiz attempt: a fixed, ordered
// question sequence walked forward one question at a time with a running score.
package quiz

import (
	"errors"
	"fmt"
	"time"
)

type State string

const (
	StateNoQuestions     State = "no_questions"
	StateAwaitingAnswer  State = "awaiting_answer"
	StateAnswerRevealed  State = "answer_revealed"
	StateSessionComplete State = "session_complete"
)

var (
	ErrNoQuestions       = errors.New("no questions for module")
	ErrInvalidTransition = errors.New("invalid quiz transition")
	ErrNoSelection       = errors.New("no option selected")
	ErrNotComplete       = errors.New("quiz session not complete")
	ErrCorruptSnapshot   = errors.New("corrupt quiz session snapshot")
)

// ProgressUpdate is the record a submission asks the progress store to upsert.
type ProgressUpdate struct {
	UserID      uint       `json:"user_id"`
	Module      string     `json:"module_name"`
	Score       int        `json:"score"`
	Completed   bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Outcome describes a submitted answer.
type Outcome struct {
	QuestionIndex int            `json:"question_index"`
	QuestionID    uint           `json:"question_id"`
	Choice        Choice         `json:"choice"`
	Correct       bool           `json:"correct"`
	PointsAwarded int            `json:"points_awarded"`
	CorrectAnswer Choice         `json:"correct_answer"`
	Options       []OptionMark   `json:"options"`
	Score         int            `json:"score"`
	Last          bool           `json:"last"`
	Progress      ProgressUpdate `json:"-"`
}

// Result is the final tally of a completed session.
type Result struct {
	Score  int   `json:"score"`
	Passed bool  `json:"passed"`
	Rules  Rules `json:"rules"`
}

type Session struct {
	userID    uint
	module    string
	questions []Question
	rules     Rules

	state    State
	index    int
	selected Choice
	score    int
	revealed bool
	credited []bool
	last     *Outcome

	startedAt time.Time
	now       func() time.Time
}

type SessionOption func(*Session)

// WithClock replaces time.Now for completion timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession starts an attempt at question 0 with score 0. An empty question
// list returns a session parked in StateNoQuestions together with
// ErrNoQuestions; such a session accepts no transitions.
func NewSession(userID uint, module string, questions []Question, opts ...SessionOption) (*Session, error) {
	qs := make([]Question, len(questions))
	copy(qs, questions)

	s := &Session{
		userID:    userID,
		module:    module,
		questions: qs,
		rules:     ComputeRules(qs),
		credited:  make([]bool, len(qs)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()

	if len(qs) == 0 {
		s.state = StateNoQuestions
		return s, ErrNoQuestions
	}
	s.state = StateAwaitingAnswer
	return s, nil
}

func (s *Session) UserID() uint          { return s.userID }
func (s *Session) Module() string        { return s.module }
func (s *Session) State() State          { return s.state }
func (s *Session) Index() int            { return s.index }
func (s *Session) Score() int            { return s.score }
func (s *Session) Selected() Choice      { return s.selected }
func (s *Session) Revealed() bool        { return s.revealed }
func (s *Session) Rules() Rules          { return s.rules }
func (s *Session) Total() int            { return len(s.questions) }
func (s *Session) StartedAt() time.Time  { return s.startedAt }
func (s *Session) LastOutcome() *Outcome { return s.last }

func (s *Session) isLast() bool {
	return s.index == len(s.questions)-1
}

// Completed reports whether the last question has been revealed.
func (s *Session) Completed() bool {
	return s.state == StateSessionComplete || (s.state == StateAnswerRevealed && s.isLast())
}

// Current returns the question being asked, if any.
func (s *Session) Current() (Question, bool) {
	if s.state == StateNoQuestions || s.state == StateSessionComplete {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Select records the pending choice for the current question.
func (s *Session) Select(c Choice) error {
	if s.state != StateAwaitingAnswer {
		return fmt.Errorf("%w: select in state %s", ErrInvalidTransition, s.state)
	}
	if c != None && !c.Valid() {
		return ErrInvalidChoice
	}
	s.selected = c
	return nil
}

// SubmitAnswer checks choice (or the pending selection when choice is None)
// against the current question and reveals it. Points are credited at most
// once per question. The returned Outcome carries the progress record the
// caller is expected to persist.
func (s *Session) SubmitAnswer(c Choice) (Outcome, error) {
	if s.state != StateAwaitingAnswer {
		return Outcome{}, fmt.Errorf("%w: submit in state %s", ErrInvalidTransition, s.state)
	}
	if c == None {
		c = s.selected
	}
	if c == None {
		return Outcome{}, ErrNoSelection
	}
	if !c.Valid() {
		return Outcome{}, ErrInvalidChoice
	}

	q := s.questions[s.index]
	s.selected = c
	correct := c == q.Correct

	awarded := 0
	if correct && !s.credited[s.index] {
		awarded = q.Points
		s.score += awarded
		s.credited[s.index] = true
	}
	s.revealed = true
	s.state = StateAnswerRevealed

	last := s.isLast()
	update := ProgressUpdate{
		UserID:    s.userID,
		Module:    s.module,
		Score:     s.score,
		Completed: last,
	}
	if last {
		at := s.now()
		update.CompletedAt = &at
	}

	out := Outcome{
		QuestionIndex: s.index,
		QuestionID:    q.ID,
		Choice:        c,
		Correct:       correct,
		PointsAwarded: awarded,
		CorrectAnswer: q.Correct,
		Options:       q.marks(c),
		Score:         s.score,
		Last:          last,
		Progress:      update,
	}
	s.last = &out
	return out, nil
}

// Advance moves to the next question, or to StateSessionComplete after the
// last one.
func (s *Session) Advance() error {
	if s.state != StateAnswerRevealed {
		return fmt.Errorf("%w: advance in state %s", ErrInvalidTransition, s.state)
	}
	if s.isLast() {
		s.state = StateSessionComplete
		return nil
	}
	s.index++
	s.selected = None
	s.revealed = false
	s.last = nil
	s.state = StateAwaitingAnswer
	return nil
}

func (s *Session) Passed() (bool, error) {
	if s.state != StateSessionComplete {
		return false, ErrNotComplete
	}
	return s.score >= s.rules.PassingPoints, nil
}

func (s *Session) Result() (Result, error) {
	passed, err := s.Passed()
	if err != nil {
		return Result{}, err
	}
	return Result{Score: s.score, Passed: passed, Rules: s.rules}, nil
}

// QuestionView is the current question without its answer.
type QuestionView struct {
	ID      uint     `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
	Points  int      `json:"points"`
}

type View struct {
	Module   string        `json:"module_name"`
	State    State         `json:"state"`
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Score    int           `json:"score"`
	Selected Choice        `json:"selected"`
	Question *QuestionView `json:"question,omitempty"`
	Outcome  *Outcome      `json:"outcome,omitempty"`
	Rules    Rules         `json:"rules"`
	Result   *Result       `json:"result,omitempty"`
}

// View renders the session for a client. The correct answer only appears
// once the current question has been revealed.
func (s *Session) View() View {
	v := View{
		Module:   s.module,
		State:    s.state,
		Index:    s.index,
		Total:    len(s.questions),
		Score:    s.score,
		Selected: s.selected,
		Rules:    s.rules,
	}
	if q, ok := s.Current(); ok {
		v.Question = &QuestionView{ID: q.ID, Text: q.Text, Options: q.options(), Points: q.Points}
	}
	if s.revealed && s.last != nil {
		out := *s.last
		v.Outcome = &out
	}
	if res, err := s.Result(); err == nil {
		v.Result = &res
	}
	return v
}
