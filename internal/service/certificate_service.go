package service

import (
	"context"
	"errors"
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"
	"explore_ia_backend/pkg/logger"
	"explore_ia_backend/pkg/monitoring"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Eligibility 证书资格：全部模块完成才可生成
type Eligibility struct {
	Eligible  bool     `json:"eligible"`
	Completed []string `json:"completed"`
	Missing   []string `json:"missing"`
}

type CertificateService struct {
	Certs    CertificateStore
	Progress ProgressStore
	Users    UserStore

	now func() time.Time
}

func NewCertificateService(certs CertificateStore, progress ProgressStore, users UserStore) *CertificateService {
	return &CertificateService{
		Certs:    certs,
		Progress: progress,
		Users:    users,
		now:      time.Now,
	}
}

func (s *CertificateService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *CertificateService) Eligibility(ctx context.Context, userID uint) (*Eligibility, error) {
	done, err := s.Progress.CompletedModules(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(done))
	for _, m := range done {
		completed[m] = true
	}

	e := &Eligibility{Completed: []string{}, Missing: []string{}}
	for _, id := range course.IDs() {
		if completed[id] {
			e.Completed = append(e.Completed, id)
		} else {
			e.Missing = append(e.Missing, id)
		}
	}
	e.Eligible = len(e.Missing) == 0
	return e, nil
}

// Generate 为完成全部模块的用户签发证书，每个用户只能签发一次
func (s *CertificateService) Generate(ctx context.Context, userID uint) (*model.Certificate, error) {
	existing, err := s.Certs.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrCertificateExists
	}

	e, err := s.Eligibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !e.Eligible {
		return nil, util.ErrNotEligible
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	cert := &model.Certificate{
		UserID: userID,
		Data: datatypes.NewJSONType(model.CertificateData{
			StudentName:    user.Name,
			CompletionDate: s.now().Format(util.DateFormatBR),
			Modules:        course.IDs(),
			ID:             uuid.NewString(),
		}),
	}
	if err := s.Certs.Create(ctx, cert); err != nil {
		// 并发生成时唯一索引冲突
		if again, findErr := s.Certs.FindByUser(ctx, userID); findErr == nil && again != nil {
			return nil, util.ErrCertificateExists
		}
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	logger.Log.Info("Certificate issued",
		zap.Uint("userID", userID),
		zap.String("certificateID", cert.Data.Data().ID))
	return cert, nil
}

func (s *CertificateService) Get(ctx context.Context, userID uint) (*model.Certificate, error) {
	cert, err := s.Certs.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, util.ErrCertificateNotFound
	}
	return cert, nil
}

// Render 生成证书图片，format 为 png 或 webp
func (s *CertificateService) Render(ctx context.Context, userID uint, format string) ([]byte, string, error) {
	cert, err := s.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return EncodeCertificate(cert.Data.Data(), format)
}
