package controller

import (
	"errors"
	"strconv"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

// ListModules godoc
// @Summary 模块列表
// @Description 上架模块及用户进度，current 按配置的满值刻度缩放
// @Tags 模块
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ModuleInfo}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/modulos [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	modules, err := c.ModuleService.ListModules(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"modulos": modules})
}

// ListLessons godoc
// @Summary 模块下的课程列表
// @Description 上架课程及用户进度，current/max 以视频数为单位
// @Tags 模块
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "模块ID"
// @Success 200 {object} util.Response{data=service.LessonList}
// @Failure 404 {object} util.Response "用户或模块不存在"
// @Router /api/modulos/{id}/lecciones [get]
func (c *ModuleController) ListLessons(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	moduleID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "id de módulo inválido")
		return
	}

	lessons, err := c.ModuleService.ListLessons(claims.UserID, uint(moduleID))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lessons)
}
