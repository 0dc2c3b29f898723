package controller

import (
	"errors"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	UserService *service.UserService
}

func NewProfileController(userService *service.UserService) *ProfileController {
	return &ProfileController{UserService: userService}
}

// UpdateProfileRequest 资料更新请求
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name *string `json:"nombre"`
}

// SetAvatarRequest 选择头像请求
// swagger:model SetAvatarRequest
type SetAvatarRequest struct {
	AvatarID int `json:"avatar_id" binding:"required"`
}

// GetProfile godoc
// @Summary 个人资料
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/profile/me [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Description 当前只支持改昵称
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/profile/update [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if req.Name != nil {
		user, err = c.UserService.UpdateName(claims.UserID, *req.Name)
	}
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// Avatars godoc
// @Summary 可选头像目录
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.Avatar}
// @Router /api/avatars [get]
func (c *ProfileController) Avatars(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	avatars := c.UserService.Avatars()
	util.Success(ctx, gin.H{"total": len(avatars), "avatares": avatars})
}

// SetAvatar godoc
// @Summary 选择头像
// @Description 从头像目录里选一个作为当前头像
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SetAvatarRequest true "头像"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "头像不存在"
// @Router /api/profile/avatar [put]
func (c *ProfileController) SetAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SetAvatarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetAvatar(claims.UserID, req.AvatarID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAvatarNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary 上传自定义头像
// @Description multipart 上传图片，存储后端由配置决定
// @Tags 资料
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   avatar formData file true "头像图片"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "缺少文件"
// @Router /api/profile/avatar/upload [post]
func (c *ProfileController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "falta el archivo de avatar")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, fileHeader.Filename,
		file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}
