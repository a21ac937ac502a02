package dto

// GenerateRequest 生成营销文案请求
type GenerateRequest struct {
	ProductName    string `json:"product_name" binding:"required,max=255"`
	Category       string `json:"category" binding:"max=255"`
	Features       string `json:"features"`
	TargetAudience string `json:"target_audience" binding:"max=255"`
	ToneOfVoice    string `json:"tone_of_voice" binding:"max=100"`
	SEOKeywords    string `json:"seo_keywords"`
}

// UpdateGenerationRequest 更新生成记录请求, 未提供的字段保持不变
type UpdateGenerationRequest struct {
	IsFavorite           *bool     `json:"is_favorite"`
	GeneratedDescription *string   `json:"generated_description"`
	GeneratedAdCopy      *[]string `json:"generated_ad_copy" binding:"omitempty,len=3,dive,required"`
	GeneratedEmailBlurb  *string   `json:"generated_email_blurb"`
}
