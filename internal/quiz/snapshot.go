package quiz

import (
	"fmt"
	"time"
)

// Snapshot is the serialisable form of a Session, used by session stores
// that keep attempts outside the process.
type Snapshot struct {
	UserID    uint       `json:"user_id"`
	Module    string     `json:"module_name"`
	Questions []Question `json:"questions"`
	State     State      `json:"state"`
	Index     int        `json:"index"`
	Selected  Choice     `json:"selected"`
	Score     int        `json:"score"`
	Revealed  bool       `json:"revealed"`
	Credited  []bool     `json:"credited"`
	Last      *Outcome   `json:"last,omitempty"`
	StartedAt time.Time  `json:"started_at"`
}

func (s *Session) Snapshot() Snapshot {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)
	credited := make([]bool, len(s.credited))
	copy(credited, s.credited)

	snap := Snapshot{
		UserID:    s.userID,
		Module:    s.module,
		Questions: qs,
		State:     s.state,
		Index:     s.index,
		Selected:  s.selected,
		Score:     s.score,
		Revealed:  s.revealed,
		Credited:  credited,
		StartedAt: s.startedAt,
	}
	if s.last != nil {
		out := *s.last
		snap.Last = &out
	}
	return snap
}

// Restore rebuilds a session from a snapshot after checking that it
// describes a reachable state.
func Restore(snap Snapshot, opts ...SessionOption) (*Session, error) {
	n := len(snap.Questions)
	switch snap.State {
	case StateNoQuestions:
		if n != 0 {
			return nil, fmt.Errorf("%w: questions present in %s", ErrCorruptSnapshot, snap.State)
		}
	case StateAwaitingAnswer, StateAnswerRevealed, StateSessionComplete:
		if n == 0 || snap.Index < 0 || snap.Index >= n {
			return nil, fmt.Errorf("%w: index %d of %d", ErrCorruptSnapshot, snap.Index, n)
		}
	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrCorruptSnapshot, snap.State)
	}
	if snap.Score < 0 {
		return nil, fmt.Errorf("%w: negative score", ErrCorruptSnapshot)
	}
	if snap.State == StateSessionComplete && snap.Index != n-1 {
		return nil, fmt.Errorf("%w: complete before last question", ErrCorruptSnapshot)
	}

	credited := make([]bool, n)
	copy(credited, snap.Credited)

	s := &Session{
		userID:    snap.UserID,
		module:    snap.Module,
		questions: snap.Questions,
		rules:     ComputeRules(snap.Questions),
		state:     snap.State,
		index:     snap.Index,
		selected:  snap.Selected,
		score:     snap.Score,
		revealed:  snap.State == StateAnswerRevealed || snap.State == StateSessionComplete,
		credited:  credited,
		last:      snap.Last,
		startedAt: snap.StartedAt,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
