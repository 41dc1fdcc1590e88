package controller

import (
	"explore_ia_backend/internal/service"
	"explore_ia_backend/internal/util"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// Get godoc
// @Summary 查看证书
// @Tags 证书
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/certificate [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cert, err := c.CertificateService.Get(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}

// Eligibility godoc
// @Summary 证书资格
// @Tags 证书
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Eligibility}
// @Router /api/certificate/eligibility [get]
func (c *CertificateController) Eligibility(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	e, err := c.CertificateService.Eligibility(ctx.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, e)
}

// Generate godoc
// @Summary 生成证书
// @Description 全部模块完成后可生成一次
// @Tags 证书
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Certificate}
// @Failure 403 {object} util.Response "尚未完成全部模块"
// @Failure 409 {object} util.Response "证书已存在"
// @Router /api/certificate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cert, err := c.CertificateService.Generate(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, cert)
}

// Download godoc
// @Summary 下载证书图片
// @Tags 证书
// @Produce image/png
// @Produce image/webp
// @Security ApiKeyAuth
// @Param format query string false "png 或 webp" default(png)
// @Success 200 {file} binary
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/certificate/download [get]
func (c *CertificateController) Download(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	format := strings.ToLower(ctx.DefaultQuery("format", service.FormatPNG))
	raw, contentType, err := c.CertificateService.Render(ctx.Request.Context(), userID, format)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificado-explore-ia.%s"`, format))
	ctx.Data(http.StatusOK, contentType, raw)
}
