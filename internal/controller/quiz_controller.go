package controller

import (
	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/service"
	"explore_ia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model ChoiceRequest
type ChoiceRequest struct {
	Choice string `json:"choice"`
}

// parseOptionalChoice 空字符串表示使用已选中的选项
func parseOptionalChoice(ctx *gin.Context) (quiz.Choice, bool) {
	var req ChoiceRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return quiz.None, false
		}
	}
	if req.Choice == "" {
		return quiz.None, true
	}
	c, err := quiz.ParseChoice(req.Choice)
	if err != nil {
		respondError(ctx, err)
		return quiz.None, false
	}
	return c, true
}

// Rules godoc
// @Summary 测验规则
// @Description 题目数量、及格题数和每题分值
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response{data=quiz.Rules}
// @Failure 404 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/quiz/{moduleId}/rules [get]
func (c *QuizController) Rules(ctx *gin.Context) {
	rules, err := c.QuizService.Rules(ctx.Request.Context(), ctx.Param("moduleId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, rules)
}

// Start godoc
// @Summary 开始测验
// @Description 总是从第一题、0 分开始新的一轮
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Success 201 {object} util.Response{data=quiz.View}
// @Failure 404 {object} util.Response "模块不存在或没有题目"
// @Failure 503 {object} util.Response
// @Router /api/quiz/{moduleId}/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	view, err := c.QuizService.Start(ctx.Request.Context(), userID, ctx.Param("moduleId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// Get godoc
// @Summary 当前测验状态
// @Description 揭晓前不包含正确答案
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response{data=quiz.View}
// @Failure 404 {object} util.Response
// @Router /api/quiz/{moduleId} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	view, err := c.QuizService.Get(ctx.Request.Context(), userID, ctx.Param("moduleId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Select godoc
// @Summary 选择选项
// @Description 提交前可以反复修改
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Param body body ChoiceRequest true "a/b/c/d"
// @Success 200 {object} util.Response{data=quiz.View}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quiz/{moduleId}/selection [put]
func (c *QuizController) Select(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	choice, ok := parseOptionalChoice(ctx)
	if !ok {
		return
	}

	view, err := c.QuizService.Select(ctx.Request.Context(), userID, ctx.Param("moduleId"), choice)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Answer godoc
// @Summary 提交答案
// @Description 不传 choice 时使用已选中的选项；进度在后台保存
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Param body body ChoiceRequest false "a/b/c/d"
// @Success 200 {object} util.Response{data=quiz.Outcome}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "当前题目已提交"
// @Router /api/quiz/{moduleId}/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	choice, ok := parseOptionalChoice(ctx)
	if !ok {
		return
	}

	out, err := c.QuizService.Answer(ctx.Request.Context(), userID, ctx.Param("moduleId"), choice)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// Advance godoc
// @Summary 下一题
// @Description 最后一题之后返回最终得分、是否及格以及下一模块
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response{data=service.AdvanceResult}
// @Failure 409 {object} util.Response "尚未提交当前题目"
// @Router /api/quiz/{moduleId}/advance [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	res, err := c.QuizService.Advance(ctx.Request.Context(), userID, ctx.Param("moduleId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// Abandon godoc
// @Summary 放弃测验
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/{moduleId} [delete]
func (c *QuizController) Abandon(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.QuizService.Abandon(ctx.Request.Context(), userID, ctx.Param("moduleId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
