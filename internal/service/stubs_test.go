package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"explore_ia_backend/internal/model"

	"gorm.io/gorm"
)

type stubQuestions struct {
	byModule map[string][]model.Question
	err      error
}

func (s *stubQuestions) FindByModule(ctx context.Context, module string) ([]model.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byModule[module], nil
}

// stubProgress 记录每次 upsert，可注入失败和阻塞
type stubProgress struct {
	mu      sync.Mutex
	rows    map[string]model.Progress
	order   []string
	upserts []model.Progress
	err     error
	block   chan struct{}
	delay   func(p *model.Progress) time.Duration
}

func newStubProgress() *stubProgress {
	return &stubProgress{rows: make(map[string]model.Progress)}
}

func progressKey(userID uint, module string) string {
	return fmt.Sprintf("%d:%s", userID, module)
}

func (s *stubProgress) Upsert(ctx context.Context, p *model.Progress) error {
	if s.delay != nil {
		time.Sleep(s.delay(p))
	}
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, *p)
	if s.err != nil {
		return s.err
	}
	k := progressKey(p.UserID, p.ModuleName)
	if _, ok := s.rows[k]; !ok {
		s.order = append(s.order, k)
	}
	s.rows[k] = *p
	return nil
}

func (s *stubProgress) ListByUser(ctx context.Context, userID uint) ([]model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Progress{}
	for _, k := range s.order {
		if r := s.rows[k]; r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubProgress) CompletedModules(ctx context.Context, userID uint) ([]string, error) {
	recs, _ := s.ListByUser(ctx, userID)
	var out []string
	for _, r := range recs {
		if r.IsCompleted {
			out = append(out, r.ModuleName)
		}
	}
	return out, nil
}

func (s *stubProgress) complete(userID uint, modules ...string) {
	now := time.Now()
	for _, m := range modules {
		_ = s.Upsert(context.Background(), &model.Progress{UserID: userID, ModuleName: m, Score: 30, IsCompleted: true, CompletedAt: &now})
	}
	s.mu.Lock()
	s.upserts = nil
	s.mu.Unlock()
}

func (s *stubProgress) calls() []model.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Progress, len(s.upserts))
	copy(out, s.upserts)
	return out
}

type stubUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*model.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{byID: make(map[uint]*model.User)}
}

func (s *stubUsers) Create(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return errors.New("duplicate email")
		}
	}
	s.nextID++
	u.ID = s.nextID
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *stubUsers) FindByID(ctx context.Context, id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) UpdateProfile(ctx context.Context, userID uint, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byID[userID]; ok {
		u.Name, u.Phone = name, phone
	}
	return nil
}

func (s *stubUsers) UpdateAvatar(ctx context.Context, userID uint, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byID[userID]; ok {
		u.Avatar = url
	}
	return nil
}

func (s *stubUsers) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byID[userID]; ok {
		u.Password = hash
	}
	return nil
}

func (s *stubUsers) UpdateLastLogin(ctx context.Context, userID uint) error {
	return nil
}

type stubCerts struct {
	mu     sync.Mutex
	byUser map[uint]*model.Certificate
}

func newStubCerts() *stubCerts {
	return &stubCerts{byUser: make(map[uint]*model.Certificate)}
}

func (s *stubCerts) Create(ctx context.Context, c *model.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[c.UserID]; ok {
		return errors.New("UNIQUE constraint failed: certificates.user_id")
	}
	cp := *c
	s.byUser[c.UserID] = &cp
	return nil
}

func (s *stubCerts) FindByUser(ctx context.Context, userID uint) (*model.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byUser[userID], nil
}
