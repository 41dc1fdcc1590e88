package service

import (
	"context"
	"explore_ia_backend/internal/model"
)

// 服务依赖的存储接口，由 repository 包实现，测试中可替换

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, phone string) error
	UpdateAvatar(ctx context.Context, userID uint, url string) error
	UpdatePassword(ctx context.Context, userID uint, hash string) error
	UpdateLastLogin(ctx context.Context, userID uint) error
}

type QuestionStore interface {
	FindByModule(ctx context.Context, moduleName string) ([]model.Question, error)
}

type ProgressStore interface {
	Upsert(ctx context.Context, p *model.Progress) error
	ListByUser(ctx context.Context, userID uint) ([]model.Progress, error)
	CompletedModules(ctx context.Context, userID uint) ([]string, error)
}

type CertificateStore interface {
	Create(ctx context.Context, cert *model.Certificate) error
	FindByUser(ctx context.Context, userID uint) (*model.Certificate, error)
}
