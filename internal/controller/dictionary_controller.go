package controller

import (
	"errors"
	"strconv"

	"lingo_edu_backend/internal/service"
	"lingo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DictionaryController struct {
	DictionaryService *service.DictionaryService
}

func NewDictionaryController(dictionaryService *service.DictionaryService) *DictionaryController {
	return &DictionaryController{DictionaryService: dictionaryService}
}

// Search godoc
// @Summary 词典检索
// @Description 按词检索词汇视频，search 为空时返回全部
// @Tags 词典
// @Produce  json
// @Security BearerAuth
// @Param   search query string false "检索词"
// @Success 200 {object} util.Response{data=[]repository.WordRow}
// @Router /api/dictionary [get]
func (c *DictionaryController) Search(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.DictionaryService.Search(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"total": len(rows), "palabras": rows})
}

// GetWord godoc
// @Summary 词典单条
// @Description 按 id 返回单个词汇及所属课程模块
// @Tags 词典
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "词汇ID"
// @Success 200 {object} util.Response{data=repository.WordRow}
// @Failure 404 {object} util.Response "词汇不存在"
// @Router /api/dictionary/{id} [get]
func (c *DictionaryController) GetWord(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "id de palabra inválido")
		return
	}

	row, err := c.DictionaryService.GetWord(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrWordNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, row)
}
