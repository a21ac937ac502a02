package service

import (
	"context"
	"strings"
)

// ProductInput 商品属性输入
type ProductInput struct {
	ProductName    string
	Category       string
	Features       string
	TargetAudience string
	ToneOfVoice    string
	SEOKeywords    string
}

// ProductContent 商品营销文案
type ProductContent struct {
	Description string   `json:"product_description"`
	AdCopy      []string `json:"ad_copy"`
	EmailBlurb  string   `json:"email_blurb"`
}

// BlogContent 博客内容
type BlogContent struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Excerpt         string `json:"excerpt"`
	Content         string `json:"content"`
	Keywords        string `json:"keywords"`
	Tags            string `json:"tags"`
}

// ContentGenerator 内容生成器
// 实现必须是输入的纯函数(外部模型调用除外), 不保存状态
type ContentGenerator interface {
	GenerateProduct(ctx context.Context, input ProductInput) (*ProductContent, error)
	GenerateBlog(ctx context.Context, topic, category string) (*BlogContent, error)
}

// AdCopyCount 每次生成的广告文案数量
const AdCopyCount = 3

// 文案语气
const (
	ToneLuxury       = "luxury"
	TonePlayful      = "playful"
	ToneProfessional = "professional"
	ToneInformative  = "informative"
)

// normalizeTone 规范化语气, 未知取值按 informative 处理
func normalizeTone(tone string) string {
	switch t := strings.ToLower(strings.TrimSpace(tone)); t {
	case ToneLuxury, TonePlayful, ToneProfessional:
		return t
	default:
		return ToneInformative
	}
}
