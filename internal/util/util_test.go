package util

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"explore_ia_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "ada@example.com", Role: model.Student}
	user.ID = 42

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "ada@example.com", claims.Email)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "ada@example.com"}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestGetUserFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetUserFromContext(c))

	c.Set(ContextUserKey, "not-claims")
	assert.Nil(t, GetUserFromContext(c))

	c.Set(ContextUserKey, &Claims{UserID: 3})
	require.NotNil(t, GetUserFromContext(c))
	assert.Equal(t, uint(3), GetUserFromContext(c).UserID)
}

func TestValidateMimeType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	mime, err := ValidateMimeType(bytes.NewReader(png), AllowedAvatarTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = ValidateMimeType(bytes.NewReader([]byte("plain text")), AllowedAvatarTypes)
	assert.Error(t, err)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 5))
	assert.Equal(t, 40.0, Percentage(2, 5))
	assert.Equal(t, 33.0, Percentage(1, 3))
	assert.Equal(t, 67.0, Percentage(2, 3))
	assert.Equal(t, 0.0, Percentage(1, 0))
}

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Conflict(c, "duplicate")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"duplicate"}`, w.Body.String())
}
