package controller

import (
	"errors"
	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 将业务错误映射为 HTTP 状态码，未知错误记录日志后返回 500
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrInvalidChoice),
		errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, util.ErrInvalidImage),
		errors.Is(err, util.ErrWrongPassword),
		errors.Is(err, util.ErrPasswordMismatch),
		errors.Is(err, util.ErrUnsupportedFormat):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrNotEligible),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrCertificateNotFound),
		errors.Is(err, util.ErrAvatarNotFound),
		errors.Is(err, quiz.ErrNoQuestions):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrCertificateExists),
		errors.Is(err, quiz.ErrInvalidTransition),
		errors.Is(err, quiz.ErrNotComplete):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrContentUnavailable):
		util.ServiceUnavailable(ctx, "quiz content temporarily unavailable")
	default:
		util.LogInternalError(ctx, err)
	}
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}

// optionalUserID 公开接口中携带合法 token 时返回用户 ID，否则为 0
func optionalUserID(ctx *gin.Context) uint {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
