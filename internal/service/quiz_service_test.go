package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"explore_ia_backend/internal/config"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func introQuestions() []model.Question {
	answers := []string{"a", "b", "c"}
	qs := make([]model.Question, len(answers))
	for i, a := range answers {
		qs[i] = model.Question{
			ModuleName:    course.Introducao,
			Question:      "pergunta",
			OptionA:       "A",
			OptionB:       "B",
			OptionC:       "C",
			OptionD:       "D",
			CorrectAnswer: a,
			Points:        10,
		}
		qs[i].ID = uint(i + 1)
	}
	return qs
}

type persisted struct {
	update quiz.ProgressUpdate
	err    error
}

type quizFixture struct {
	svc      *QuizService
	progress *stubProgress
	sessions *MemorySessionStore
	events   chan persisted
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	cfg := &config.Config{Quiz: config.QuizConfig{PersistTimeoutSeconds: 1}}
	f := &quizFixture{
		progress: newStubProgress(),
		sessions: NewMemorySessionStore(time.Hour),
		events:   make(chan persisted, 32),
	}
	questions := &stubQuestions{byModule: map[string][]model.Question{
		course.Introducao: introQuestions(),
	}}
	f.svc = NewQuizService(questions, f.progress, f.sessions, cfg)
	f.svc.SetClock(func() time.Time { return quizNow })
	f.svc.SetPersistObserver(func(u quiz.ProgressUpdate, err error) {
		f.events <- persisted{update: u, err: err}
	})
	t.Cleanup(f.svc.Wait)
	return f
}

func (f *quizFixture) next(t *testing.T) persisted {
	t.Helper()
	select {
	case p := <-f.events:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("progress was not persisted")
		return persisted{}
	}
}

func TestQuizStart_UnknownModule(t *testing.T) {
	f := newQuizFixture(t)
	_, err := f.svc.Start(context.Background(), 1, "nonexistent-module")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestQuizStart_ContentFailure(t *testing.T) {
	f := newQuizFixture(t)
	f.svc.Questions = &stubQuestions{err: errors.New("connection refused")}

	_, err := f.svc.Start(context.Background(), 1, course.Introducao)
	assert.ErrorIs(t, err, util.ErrContentUnavailable)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestQuizStart_NoQuestions(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	view, err := f.svc.Start(ctx, 1, course.IAEtica)
	require.ErrorIs(t, err, quiz.ErrNoQuestions)
	assert.Equal(t, quiz.StateNoQuestions, view.State)
	assert.Nil(t, view.Question)

	_, err = f.svc.Get(ctx, 1, course.IAEtica)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = f.svc.Rules(ctx, course.IAEtica)
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
}

func TestQuizFullAttemptPersistsEverySubmission(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	view, err := f.svc.Start(ctx, 7, course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, quiz.StateAwaitingAnswer, view.State)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 20, view.Rules.PassingPoints)

	out, err := f.svc.Answer(ctx, 7, course.Introducao, quiz.A)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	p := f.next(t)
	require.NoError(t, p.err)
	assert.Equal(t, quiz.ProgressUpdate{UserID: 7, Module: course.Introducao, Score: 10}, p.update)

	res, err := f.svc.Advance(ctx, 7, course.Introducao)
	require.NoError(t, err)
	assert.Nil(t, res.Result)
	assert.Equal(t, 1, res.View.Index)

	_, err = f.svc.Answer(ctx, 7, course.Introducao, quiz.B)
	require.NoError(t, err)
	f.next(t)
	_, err = f.svc.Advance(ctx, 7, course.Introducao)
	require.NoError(t, err)

	out, err = f.svc.Answer(ctx, 7, course.Introducao, quiz.D)
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.True(t, out.Last)
	p = f.next(t)
	assert.True(t, p.update.Completed)
	assert.Equal(t, 20, p.update.Score)
	require.NotNil(t, p.update.CompletedAt)
	assert.Equal(t, quizNow, *p.update.CompletedAt)

	res, err = f.svc.Advance(ctx, 7, course.Introducao)
	require.NoError(t, err)
	require.NotNil(t, res.Result)
	assert.True(t, res.Result.Passed)
	assert.Equal(t, 20, res.Result.Score)
	assert.Equal(t, course.FundamentosML, res.NextModule)
	assert.Equal(t, quiz.StateSessionComplete, res.View.State)

	f.svc.Wait()
	calls := f.progress.calls()
	require.Len(t, calls, 3)
	recs, _ := f.progress.ListByUser(ctx, 7)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].IsCompleted)
	assert.Equal(t, 20, recs[0].Score)
}

func TestQuizFailedAttemptHasNoNextModule(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := f.svc.Answer(ctx, 1, course.Introducao, quiz.D)
		require.NoError(t, err)
		res, err := f.svc.Advance(ctx, 1, course.Introducao)
		require.NoError(t, err)
		if i == 2 {
			require.NotNil(t, res.Result)
			assert.False(t, res.Result.Passed)
			assert.Empty(t, res.NextModule)
		}
	}
}

func TestQuizPersistFailureKeepsLocalScore(t *testing.T) {
	f := newQuizFixture(t)
	f.progress.err = errors.New("db down")
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	out, err := f.svc.Answer(ctx, 1, course.Introducao, quiz.A)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Score)

	p := f.next(t)
	assert.Error(t, p.err)

	view, err := f.svc.Get(ctx, 1, course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Score)
	assert.Equal(t, quiz.StateAnswerRevealed, view.State)
	assert.Len(t, f.progress.calls(), 1)
}

func TestQuizAnswerDoesNotWaitForPersistence(t *testing.T) {
	f := newQuizFixture(t)
	f.progress.block = make(chan struct{})
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := f.svc.Answer(ctx, 1, course.Introducao, quiz.A)
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("answer blocked on progress store")
	}
	close(f.progress.block)
	p := f.next(t)
	assert.NoError(t, p.err)
}

func TestQuizSlowEarlierWriteDoesNotOverwriteCompletion(t *testing.T) {
	f := newQuizFixture(t)
	f.progress.delay = func(p *model.Progress) time.Duration {
		if p.Score == 10 && !p.IsCompleted {
			return 100 * time.Millisecond
		}
		return 0
	}
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	for i, c := range []quiz.Choice{quiz.A, quiz.B, quiz.C} {
		_, err := f.svc.Answer(ctx, 1, course.Introducao, c)
		require.NoError(t, err)
		if i < 2 {
			_, err = f.svc.Advance(ctx, 1, course.Introducao)
			require.NoError(t, err)
		}
	}
	f.svc.Wait()

	calls := f.progress.calls()
	require.Len(t, calls, 3)
	for i, want := range []int{10, 20, 30} {
		assert.Equal(t, want, calls[i].Score)
	}

	recs, err := f.progress.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 30, recs[0].Score)
	assert.True(t, recs[0].IsCompleted)
	require.NotNil(t, recs[0].CompletedAt)
}

func TestQuizWritesForDifferentUsersDoNotQueueTogether(t *testing.T) {
	f := newQuizFixture(t)
	f.progress.delay = func(p *model.Progress) time.Duration {
		if p.UserID == 1 {
			return 300 * time.Millisecond
		}
		return 0
	}
	ctx := context.Background()

	for _, id := range []uint{1, 2} {
		_, err := f.svc.Start(ctx, id, course.Introducao)
		require.NoError(t, err)
		_, err = f.svc.Answer(ctx, id, course.Introducao, quiz.A)
		require.NoError(t, err)
	}

	p := f.next(t)
	assert.Equal(t, uint(2), p.update.UserID)
	p = f.next(t)
	assert.Equal(t, uint(1), p.update.UserID)
}

func TestQuizRepeatedSubmissionRejected(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, course.Introducao, quiz.A)
	require.NoError(t, err)

	_, err = f.svc.Answer(ctx, 1, course.Introducao, quiz.A)
	assert.ErrorIs(t, err, quiz.ErrInvalidTransition)

	f.svc.Wait()
	assert.Len(t, f.progress.calls(), 1)

	view, err := f.svc.Get(ctx, 1, course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Score)
}

func TestQuizConcurrentAnswersCreditOnce(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Answer(ctx, 1, course.Introducao, quiz.A); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	f.svc.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.progress.calls(), 1)
}

func TestQuizRestartStartsFresh(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, course.Introducao, quiz.A)
	require.NoError(t, err)

	view, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, quiz.StateAwaitingAnswer, view.State)
}

func TestQuizSelectThenAnswer(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	view, err := f.svc.Select(ctx, 1, course.Introducao, quiz.A)
	require.NoError(t, err)
	assert.Equal(t, quiz.A, view.Selected)

	out, err := f.svc.Answer(ctx, 1, course.Introducao, quiz.None)
	require.NoError(t, err)
	assert.True(t, out.Correct)
}

func TestQuizAdvanceBeforeAnswer(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	_, err = f.svc.Advance(ctx, 1, course.Introducao)
	assert.ErrorIs(t, err, quiz.ErrInvalidTransition)

	view, err := f.svc.Get(ctx, 1, course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Index)
}

func TestQuizAbandon(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)

	require.NoError(t, f.svc.Abandon(ctx, 1, course.Introducao))
	_, err = f.svc.Get(ctx, 1, course.Introducao)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.Abandon(ctx, 1, course.Introducao), util.ErrSessionNotFound)
}

func TestQuizRules(t *testing.T) {
	f := newQuizFixture(t)

	rules, err := f.svc.Rules(context.Background(), course.Introducao)
	require.NoError(t, err)
	assert.Equal(t, 3, rules.TotalQuestions)
	assert.Equal(t, 2, rules.PassingGrade)
	assert.Equal(t, 10, rules.PointsPerQuestion)
	assert.Equal(t, 20, rules.PassingPoints)
}

func TestQuizSessionsAreIsolatedPerUser(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1, course.Introducao)
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, 2, course.Introducao)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
