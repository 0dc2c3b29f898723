package controller

import (
	"errors"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// GetHome godoc
// @Summary 首页聚合数据
// @Description 用户信息、本周打卡日历、今日任务计数、总体与分模块进度、连续打卡天数
// @Tags 首页
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.HomeData}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	data, err := c.HomeService.GetHome(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, data)
}
