package handler

import (
	"copygen/internal/dto"
	"copygen/internal/middleware"
	"copygen/internal/service"
	"copygen/internal/utils"

	"github.com/gin-gonic/gin"
)

// BlogHandler 博客处理器
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler 创建博客处理器
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// Generate 按主题生成博客
// topic/category 可以放在JSON请求体或查询参数中
func (h *BlogHandler) Generate(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.GenerateBlogRequest
	var err error
	if c.Request.ContentLength > 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}

	post, err := h.blogService.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "生成成功", post)
}

// AutoGenerate 按固定主题批量生成博客
func (h *BlogHandler) AutoGenerate(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	resp, err := h.blogService.AutoGenerate(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, resp.Message, resp)
}

// List 获取已发布博客列表
func (h *BlogHandler) List(c *gin.Context) {
	var query dto.BlogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}
	query.Normalize()

	posts, total, err := h.blogService.ListPublished(c.Request.Context(), query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.PaginatedResponse(c, posts, total, query.Skip, query.Limit)
}

// ListCategories 获取博客分类
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// ListMine 获取当前用户的博客(包括未发布)
func (h *BlogHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}
	page.Normalize()

	posts, total, err := h.blogService.ListMine(c.Request.Context(), userID, page)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.PaginatedResponse(c, posts, total, page.Skip, page.Limit)
}

// GetBySlug 公开读取博客
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, post)
}

// Update 更新博客
func (h *BlogHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, err := parseID(c, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatValidationError(err))
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "更新成功", post)
}

// Delete 删除博客
func (h *BlogHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, err := parseID(c, "id")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", dto.MessageResponse{Message: "Blog post deleted successfully"})
}
