package handler

import (
	"copygen/internal/dto"
	"copygen/internal/middleware"
	"copygen/internal/service"
	"copygen/internal/utils"

	"github.com/gin-gonic/gin"
)

// GenerationHandler 营销文案生成处理器
type GenerationHandler struct {
	generationService *service.GenerationService
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(generationService *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
	}
}

// Generate 生成营销文案
func (h *GenerationHandler) Generate(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}

	generation, err := h.generationService.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "生成成功", generation)
}

// History 获取生成历史
func (h *GenerationHandler) History(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}
	page.Normalize()

	generations, total, err := h.generationService.History(c.Request.Context(), userID, page)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.PaginatedResponse(c, generations, total, page.Skip, page.Limit)
}

// Get 获取单条生成记录
func (h *GenerationHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, err := parseID(c, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	generation, err := h.generationService.Get(c.Request.Context(), id, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, generation)
}

// Update 更新生成记录(收藏、修改文案)
func (h *GenerationHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, err := parseID(c, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req dto.UpdateGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}

	generation, err := h.generationService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "更新成功", generation)
}

// Delete 删除生成记录
func (h *GenerationHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, err := parseID(c, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := h.generationService.Delete(c.Request.Context(), id, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", dto.MessageResponse{Message: "Generation deleted successfully"})
}
