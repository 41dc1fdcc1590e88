package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/internal/util"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type certFixture struct {
	svc      *CertificateService
	progress *stubProgress
	users    *stubUsers
	userID   uint
}

func newCertFixture(t *testing.T) *certFixture {
	t.Helper()
	f := &certFixture{progress: newStubProgress(), users: newStubUsers()}
	u := &model.User{Name: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, f.users.Create(context.Background(), u))
	f.userID = u.ID

	f.svc = NewCertificateService(newStubCerts(), f.progress, f.users)
	f.svc.SetClock(func() time.Time { return time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC) })
	return f
}

func TestEligibilityRequiresEveryModule(t *testing.T) {
	f := newCertFixture(t)
	ctx := context.Background()

	ids := course.IDs()
	f.progress.complete(f.userID, ids[:len(ids)-1]...)

	e, err := f.svc.Eligibility(ctx, f.userID)
	require.NoError(t, err)
	assert.False(t, e.Eligible)
	assert.Equal(t, []string{course.IAEtica}, e.Missing)

	_, err = f.svc.Generate(ctx, f.userID)
	assert.ErrorIs(t, err, util.ErrNotEligible)

	f.progress.complete(f.userID, course.IAEtica)
	e, err = f.svc.Eligibility(ctx, f.userID)
	require.NoError(t, err)
	assert.True(t, e.Eligible)
	assert.Empty(t, e.Missing)
}

func TestGenerateCertificateOnce(t *testing.T) {
	f := newCertFixture(t)
	ctx := context.Background()
	f.progress.complete(f.userID, course.IDs()...)

	_, err := f.svc.Get(ctx, f.userID)
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)

	cert, err := f.svc.Generate(ctx, f.userID)
	require.NoError(t, err)
	data := cert.Data.Data()
	assert.Equal(t, "Ada Lovelace", data.StudentName)
	assert.Equal(t, "04/03/2026", data.CompletionDate)
	assert.Equal(t, course.IDs(), data.Modules)
	assert.Len(t, data.ID, 36)

	_, err = f.svc.Generate(ctx, f.userID)
	assert.ErrorIs(t, err, util.ErrCertificateExists)

	got, err := f.svc.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, data.ID, got.Data.Data().ID)
}

func TestRenderCertificate(t *testing.T) {
	f := newCertFixture(t)
	ctx := context.Background()
	f.progress.complete(f.userID, course.IDs()...)

	_, _, err := f.svc.Render(ctx, f.userID, FormatPNG)
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)

	_, err = f.svc.Generate(ctx, f.userID)
	require.NoError(t, err)

	raw, contentType, err := f.svc.Render(ctx, f.userID, "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1200, 800), img.Bounds())

	// 外边框颜色 #3b82f6
	r, g, b, _ := img.At(20, 400).RGBA()
	assert.Equal(t, []uint32{0x3b, 0x82, 0xf6}, []uint32{r >> 8, g >> 8, b >> 8})

	raw, contentType, err = f.svc.Render(ctx, f.userID, FormatWebP)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", contentType)
	cfg, err := webp.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 800, cfg.Height)

	_, _, err = f.svc.Render(ctx, f.userID, "gif")
	assert.ErrorIs(t, err, util.ErrUnsupportedFormat)
}

func TestCertificateLinesListModulesInOrder(t *testing.T) {
	lines := certificateLines(model.CertificateData{Modules: course.IDs()})

	assert.Equal(t, "Estudante", lines[3].text)
	assert.Equal(t, "• Módulo 1: Introdução à IA", lines[5].text)
	assert.Equal(t, 390, lines[5].y)
	assert.Equal(t, "• Módulo 5: IA e Ética", lines[9].text)
	assert.Equal(t, 490, lines[9].y)
}
