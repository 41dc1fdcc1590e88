package controller

import (
	"explore_ia_backend/internal/service"
	"explore_ia_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
	AvatarService  *service.AvatarService
}

func NewProfileController(profileService *service.ProfileService, avatarService *service.AvatarService) *ProfileController {
	return &ProfileController{
		ProfileService: profileService,
		AvatarService:  avatarService,
	}
}

// GetProfile godoc
// @Summary 获取个人资料
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.ProfileService.Get(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"max=30"`
}

// UpdateProfile godoc
// @Summary 更新姓名和电话
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProfileRequest true "个人资料"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.ProfileService.Update(ctx.Request.Context(), userID, req.FullName, req.Phone)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ChangePassword godoc
// @Summary 修改密码
// @Description 需要提供当前密码，新密码与确认密码必须一致
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChangePasswordRequest true "密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/profile/password [put]
func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ProfileService.ChangePassword(ctx.Request.Context(), userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 图片会被裁剪为 256x256 并转为 WebP，重复上传覆盖旧头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "头像图片"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 413 {object} util.Response
// @Router /api/profile/avatar [post]
func (c *ProfileController) UploadAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > util.MaxAvatarSize {
		respondError(ctx, util.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.AvatarService.Upload(ctx.Request.Context(), userID, file)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

// GetAvatar godoc
// @Summary 获取头像图片
// @Tags 用户
// @Produce image/webp
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /api/profile/avatar [get]
func (c *ProfileController) GetAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	rc, err := c.AvatarService.Open(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer rc.Close()

	ctx.DataFromReader(http.StatusOK, -1, util.MimeWebP, rc, map[string]string{
		"Cache-Control": "no-cache",
	})
}

// DeleteAvatar godoc
// @Summary 删除头像
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/profile/avatar [delete]
func (c *ProfileController) DeleteAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.AvatarService.Remove(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
