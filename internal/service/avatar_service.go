package service

import (
	"bytes"
	"context"
	"errors"
	"explore_ia_backend/internal/util"
	"fmt"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"gorm.io/gorm"
)

// AvatarService 头像统一裁剪为正方形并转为 WebP，每个用户固定一个对象
type AvatarService struct {
	Storage *StorageService
	Users   UserStore
}

func NewAvatarService(storage *StorageService, users UserStore) *AvatarService {
	return &AvatarService{Storage: storage, Users: users}
}

func AvatarKey(userID uint) string {
	return fmt.Sprintf("avatars/%d/avatar.webp", userID)
}

// NormalizeAvatar 校验并转换上传图片
func NormalizeAvatar(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, util.ErrInvalidImage
	}
	if len(raw) > util.MaxAvatarSize {
		return nil, util.ErrFileTooLarge
	}
	if _, err := util.ValidateMimeType(bytes.NewReader(raw), util.AllowedAvatarTypes); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidImage, err)
	}

	square := imaging.Fill(img, util.AvatarSide, util.AvatarSide, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, square, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Upload 覆盖写入头像并更新用户记录，返回公开地址
func (s *AvatarService) Upload(ctx context.Context, userID uint, r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, util.MaxAvatarSize+1))
	if err != nil {
		return "", err
	}

	encoded, err := NormalizeAvatar(raw)
	if err != nil {
		return "", err
	}

	url, err := s.Storage.Upload(ctx, AvatarKey(userID), bytes.NewReader(encoded), int64(len(encoded)), util.MimeWebP)
	if err != nil {
		return "", err
	}

	if err := s.Users.UpdateAvatar(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

// Open 读取已存储的头像
func (s *AvatarService) Open(ctx context.Context, userID uint) (io.ReadCloser, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Avatar == "" {
		return nil, util.ErrAvatarNotFound
	}
	return s.Storage.Open(ctx, AvatarKey(userID))
}

// Remove 删除头像对象并清空用户记录
func (s *AvatarService) Remove(ctx context.Context, userID uint) error {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.Avatar == "" {
		return util.ErrAvatarNotFound
	}

	if err := s.Storage.Delete(ctx, AvatarKey(userID)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return s.Users.UpdateAvatar(ctx, userID, "")
}
