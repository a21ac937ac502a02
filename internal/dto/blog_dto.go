package dto

// GenerateBlogRequest 生成博客请求
type GenerateBlogRequest struct {
	Topic    string `json:"topic" form:"topic" binding:"required,max=255"`
	Category string `json:"category" form:"category" binding:"max=100"`
}

// BlogListQuery 博客列表查询参数
type BlogListQuery struct {
	PageQuery
	Category string `form:"category"`
}

// UpdateBlogPostRequest 更新博客请求, 未提供的字段保持不变
type UpdateBlogPostRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	MetaDescription *string `json:"meta_description" binding:"omitempty,max=500"`
	Keywords        *string `json:"keywords"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Tags            *string `json:"tags"`
	ImageURL        *string `json:"image_url" binding:"omitempty,url"`
	IsPublished     *bool   `json:"is_published"`
}

// AutoGenerateResponse 批量生成博客响应
type AutoGenerateResponse struct {
	Message string   `json:"message"`
	Posts   []string `json:"posts"`
}
