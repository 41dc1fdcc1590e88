package controller

import (
	"explore_ia_backend/internal/service"
	"explore_ia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService   *service.CourseService
	ProgressService *service.ProgressService
}

func NewCourseController(courseService *service.CourseService, progressService *service.ProgressService) *CourseController {
	return &CourseController{
		CourseService:   courseService,
		ProgressService: progressService,
	}
}

// ListModules godoc
// @Summary 模块列表
// @Description 携带 token 时附带当前用户的完成状态和得分
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]service.ModuleStatus}
// @Router /api/modules [get]
func (c *CourseController) ListModules(ctx *gin.Context) {
	list, err := c.CourseService.List(ctx.Request.Context(), optionalUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetModule godoc
// @Summary 模块内容
// @Tags 课程
// @Produce json
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response{data=service.ModuleStatus}
// @Failure 404 {object} util.Response
// @Router /api/modules/{moduleId} [get]
func (c *CourseController) GetModule(ctx *gin.Context) {
	m, err := c.CourseService.Get(ctx.Request.Context(), optionalUserID(ctx), ctx.Param("moduleId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// NextModule godoc
// @Summary 下一个模块
// @Description 最后一个模块之后回到第一个
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "当前模块 ID"
// @Success 200 {object} util.Response{data=course.Module}
// @Router /api/modules/{moduleId}/next [get]
func (c *CourseController) NextModule(ctx *gin.Context) {
	util.Success(ctx, c.CourseService.Next(ctx.Param("moduleId")))
}

// GetProgress godoc
// @Summary 学习进度
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ProgressSummary}
// @Router /api/progress [get]
func (c *CourseController) GetProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	summary, err := c.ProgressService.Summary(ctx.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
