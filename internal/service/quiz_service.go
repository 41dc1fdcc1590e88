package service

import (
	"context"
	"errors"
	"explore_ia_backend/internal/config"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/util"
	"explore_ia_backend/pkg/logger"
	"explore_ia_backend/pkg/monitoring"
	"explore_ia_backend/pkg/tracing"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PersistObserver 每次后台进度写入结束后回调，err 为 nil 表示成功
type PersistObserver func(update quiz.ProgressUpdate, err error)

// AdvanceResult 进入下一题后的会话视图；最后一题之后附带最终结果
type AdvanceResult struct {
	View       quiz.View    `json:"session"`
	Result     *quiz.Result `json:"result,omitempty"`
	NextModule string       `json:"next_module,omitempty"`
}

type QuizService struct {
	Questions QuestionStore
	Progress  ProgressStore
	Sessions  SessionStore

	persistTimeout time.Duration
	observer       PersistObserver
	clock          func() time.Time

	locks   keyLocks
	pending sync.WaitGroup

	// writes 按会话 key 排队，同一 key 的进度按提交顺序写入
	writeMu sync.Mutex
	writes  map[string][]persistJob
}

type persistJob struct {
	ctx    context.Context
	update quiz.ProgressUpdate
}

func NewQuizService(questions QuestionStore, progress ProgressStore, sessions SessionStore, cfg *config.Config) *QuizService {
	return &QuizService{
		Questions:      questions,
		Progress:       progress,
		Sessions:       sessions,
		persistTimeout: cfg.Quiz.PersistTimeout(),
		clock:          time.Now,
	}
}

func (s *QuizService) SetPersistObserver(fn PersistObserver) {
	s.observer = fn
}

// SetClock 替换完成时间的时钟
func (s *QuizService) SetClock(now func() time.Time) {
	s.clock = now
}

// Wait 等待所有后台进度写入结束，关闭服务时调用
func (s *QuizService) Wait() {
	s.pending.Wait()
}

func (s *QuizService) loadQuestions(ctx context.Context, module string) ([]quiz.Question, error) {
	if _, ok := course.Find(module); !ok {
		return nil, util.ErrModuleNotFound
	}

	rows, err := s.Questions.FindByModule(ctx, module)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrContentUnavailable, err)
	}

	questions := make([]quiz.Question, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, r.ToQuiz())
	}
	return questions, nil
}

// Rules 返回开始答题前展示的规则（题数、及格题数、每题分值）
func (s *QuizService) Rules(ctx context.Context, module string) (quiz.Rules, error) {
	questions, err := s.loadQuestions(ctx, module)
	if err != nil {
		return quiz.Rules{}, err
	}
	if len(questions) == 0 {
		return quiz.Rules{}, quiz.ErrNoQuestions
	}
	return quiz.ComputeRules(questions), nil
}

// Start 总是开始新的一轮，得分从 0 计，已有的会话被覆盖
func (s *QuizService) Start(ctx context.Context, userID uint, module string) (quiz.View, error) {
	key := SessionKey{UserID: userID, Module: module}
	unlock := s.locks.lock(key.String())
	defer unlock()

	questions, err := s.loadQuestions(ctx, module)
	if err != nil {
		return quiz.View{}, err
	}

	sess, err := quiz.NewSession(userID, module, questions, quiz.WithClock(s.clock))
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestions) {
			_ = s.Sessions.Delete(ctx, key)
			return sess.View(), err
		}
		return quiz.View{}, err
	}

	if err := s.Sessions.Save(ctx, key, sess.Snapshot()); err != nil {
		return quiz.View{}, err
	}

	logger.Log.Debug("Quiz session started",
		zap.Uint("userID", userID),
		zap.String("module", module),
		zap.Int("questions", sess.Total()))
	return sess.View(), nil
}

func (s *QuizService) restore(ctx context.Context, key SessionKey) (*quiz.Session, error) {
	snap, err := s.Sessions.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return quiz.Restore(snap, quiz.WithClock(s.clock))
}

// mutate 在 key 锁内加载会话、执行 fn 并保存
func (s *QuizService) mutate(ctx context.Context, userID uint, module string, fn func(*quiz.Session) error) (*quiz.Session, error) {
	key := SessionKey{UserID: userID, Module: module}
	unlock := s.locks.lock(key.String())
	defer unlock()

	sess, err := s.restore(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return sess, err
	}
	if err := s.Sessions.Save(ctx, key, sess.Snapshot()); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *QuizService) Get(ctx context.Context, userID uint, module string) (quiz.View, error) {
	sess, err := s.restore(ctx, SessionKey{UserID: userID, Module: module})
	if err != nil {
		return quiz.View{}, err
	}
	return sess.View(), nil
}

func (s *QuizService) Select(ctx context.Context, userID uint, module string, choice quiz.Choice) (quiz.View, error) {
	sess, err := s.mutate(ctx, userID, module, func(sess *quiz.Session) error {
		return sess.Select(choice)
	})
	if err != nil {
		return quiz.View{}, err
	}
	return sess.View(), nil
}

// Answer 同步判分并立即返回结果，进度写入在后台进行且只尝试一次
func (s *QuizService) Answer(ctx context.Context, userID uint, module string, choice quiz.Choice) (quiz.Outcome, error) {
	key := SessionKey{UserID: userID, Module: module}
	unlock := s.locks.lock(key.String())
	defer unlock()

	sess, err := s.restore(ctx, key)
	if err != nil {
		return quiz.Outcome{}, err
	}
	out, err := sess.SubmitAnswer(choice)
	if err != nil {
		return quiz.Outcome{}, err
	}
	if err := s.Sessions.Save(ctx, key, sess.Snapshot()); err != nil {
		return quiz.Outcome{}, err
	}

	result := "incorrect"
	if out.Correct {
		result = "correct"
	}
	monitoring.QuizAnswers.WithLabelValues(module, result).Inc()

	// 入队必须在 key 锁内，保证写入顺序与提交顺序一致
	s.persist(context.WithoutCancel(ctx), key.String(), out.Progress)
	return out, nil
}

// persist 把进度写入加入该 key 的队列；队列为空时启动一个 goroutine 依次写完
func (s *QuizService) persist(ctx context.Context, key string, update quiz.ProgressUpdate) {
	s.pending.Add(1)

	s.writeMu.Lock()
	if s.writes == nil {
		s.writes = make(map[string][]persistJob)
	}
	queued := s.writes[key]
	s.writes[key] = append(queued, persistJob{ctx: ctx, update: update})
	s.writeMu.Unlock()

	if len(queued) == 0 {
		go s.drain(key)
	}
}

func (s *QuizService) drain(key string) {
	for {
		s.writeMu.Lock()
		job := s.writes[key][0]
		s.writeMu.Unlock()

		s.write(job.ctx, job.update)

		s.writeMu.Lock()
		rest := s.writes[key][1:]
		if len(rest) == 0 {
			delete(s.writes, key)
			s.writeMu.Unlock()
			return
		}
		s.writes[key] = rest
		s.writeMu.Unlock()
	}
}

func (s *QuizService) write(ctx context.Context, update quiz.ProgressUpdate) {
	defer s.pending.Done()

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "quiz.progress.upsert",
		attribute.Int64("user.id", int64(update.UserID)),
		attribute.String("quiz.module", update.Module),
		attribute.Int("quiz.score", update.Score),
		attribute.Bool("quiz.completed", update.Completed))

	err := s.Progress.Upsert(ctx, model.ProgressFromUpdate(update))
	tracing.EndSpan(span, err)

	if err != nil {
		monitoring.ProgressPersistFailures.Inc()
		logger.Log.Warn("Failed to persist quiz progress",
			zap.Uint("userID", update.UserID),
			zap.String("module", update.Module),
			zap.Int("score", update.Score),
			zap.Bool("completed", update.Completed),
			zap.Error(err))
	}

	if s.observer != nil {
		s.observer(update, err)
	}
}

// Advance 进入下一题；最后一题后会话结束并返回最终结果，及格时给出下一模块
func (s *QuizService) Advance(ctx context.Context, userID uint, module string) (*AdvanceResult, error) {
	sess, err := s.mutate(ctx, userID, module, func(sess *quiz.Session) error {
		return sess.Advance()
	})
	if err != nil {
		return nil, err
	}

	res := &AdvanceResult{View: sess.View()}
	if sess.State() != quiz.StateSessionComplete {
		return res, nil
	}

	final, err := sess.Result()
	if err != nil {
		return nil, err
	}
	res.Result = &final

	outcome := "failed"
	if final.Passed {
		outcome = "passed"
		res.NextModule = course.NextModule(module)
	}
	monitoring.QuizCompletions.WithLabelValues(module, outcome).Inc()

	logger.Log.Info("Quiz session completed",
		zap.Uint("userID", userID),
		zap.String("module", module),
		zap.Int("score", final.Score),
		zap.Bool("passed", final.Passed))
	return res, nil
}

// Abandon 放弃当前会话，已写入的进度保留
func (s *QuizService) Abandon(ctx context.Context, userID uint, module string) error {
	key := SessionKey{UserID: userID, Module: module}
	unlock := s.locks.lock(key.String())
	defer unlock()

	if _, err := s.Sessions.Load(ctx, key); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, key)
}
