package controller

import (
	"errors"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MissionController struct {
	MissionService *service.MissionService
}

func NewMissionController(missionService *service.MissionService) *MissionController {
	return &MissionController{MissionService: missionService}
}

// UpdateMissionRequest 任务进度更新请求，progreso 是绝对值
// swagger:model UpdateMissionRequest
type UpdateMissionRequest struct {
	MissionID int  `json:"mision_id" binding:"required"`
	Progress  *int `json:"progreso" binding:"required"`
}

// List godoc
// @Summary 今日任务列表
// @Description 固定的三个每日任务及当前进度，首次访问会创建当天的挑战记录
// @Tags 任务
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.Mission}
// @Router /api/missions/daily [get]
func (c *MissionController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	missions, err := c.MissionService.ListDailyMissions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"misiones": missions})
}

// Update godoc
// @Summary 更新任务进度
// @Description 将指定任务的计数器设为给定值并结算奖励，同一任务当天只发一次奖励
// @Tags 任务
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateMissionRequest true "任务进度"
// @Success 200 {object} util.Response{data=model.DailyChallenge}
// @Failure 400 {object} util.Response "任务不存在或进度不合法"
// @Router /api/missions/update [post]
func (c *MissionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateMissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if *req.Progress < 0 {
		util.BadRequest(ctx, "el progreso no puede ser negativo")
		return
	}

	ch, err := c.MissionService.UpdateMission(claims.UserID, req.MissionID, *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrInvalidMission) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, ch)
}
