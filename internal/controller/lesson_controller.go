package controller

import (
	"errors"
	"strconv"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// AnswerRequest 答题请求，calificacion 可选，答错时作为部分成绩记录
// swagger:model AnswerRequest
type AnswerRequest struct {
	Answer string   `json:"respuesta" binding:"required"`
	Grade  *float64 `json:"calificacion"`
}

func lessonID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "id de lección inválido")
		return 0, false
	}
	return uint(id), true
}

// Detail godoc
// @Summary 课程详情
// @Description 课程信息、视频列表与用户完成状态
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.LessonDetail}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/lecciones/{id} [get]
func (c *LessonController) Detail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := lessonID(ctx)
	if !ok {
		return
	}

	detail, err := c.LessonService.GetDetail(claims.UserID, id)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// Question godoc
// @Summary 课程随机出题
// @Description 从课程视频里随机抽一个词作为题目，干扰项不足时跨课程补齐
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.Question}
// @Failure 404 {object} util.Response "课程不存在或没有视频"
// @Router /api/lecciones/{id}/question [get]
func (c *LessonController) Question(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := lessonID(ctx)
	if !ok {
		return
	}

	question, err := c.LessonService.GetQuestion(id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound), errors.Is(err, util.ErrNoVideosInLesson):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}

// Answer godoc
// @Summary 提交答案
// @Description 答对则标记课程完成并级联更新模块进度与当日任务
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Param   body body AnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 400 {object} util.Response "成绩超出范围"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/lecciones/{id}/answer [post]
func (c *LessonController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := lessonID(ctx)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LessonService.SubmitAnswer(claims.UserID, id, req.Answer, req.Grade)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidGrade):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
