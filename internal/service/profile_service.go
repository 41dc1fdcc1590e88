package service

import (
	"context"
	"errors"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"
	"explore_ia_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService struct {
	Users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{Users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// Update 修改姓名和电话，返回更新后的用户
func (s *ProfileService) Update(ctx context.Context, userID uint, fullName, phone string) (*model.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.Users.UpdateProfile(ctx, userID, strings.TrimSpace(fullName), strings.TrimSpace(phone)); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// ChangePassword 校验当前密码后设置新密码，新密码需与确认密码一致
func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, current, next, confirm string) error {
	if next != confirm {
		return util.ErrPasswordMismatch
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return util.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return err
	}

	logger.Log.Info("Password changed", zap.Uint("userID", userID))
	return nil
}
