package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"copygen/internal/errs"
	"copygen/pkg/model_caller"
)

const productSystemPrompt = "You are an expert e-commerce copywriter. You always answer with a single JSON object and nothing else."

const blogSystemPrompt = "You are an expert content marketer and SEO writer. You always answer with a single JSON object and nothing else."

// AIGenerator 调用外部文本生成服务的内容生成器
// 只调用一次, 不重试, 任何失败都返回 ErrGenerationFailed
type AIGenerator struct {
	caller  model_caller.Caller
	options *model_caller.CallOptions
}

// NewAIGenerator 创建外部模型生成器
func NewAIGenerator(caller model_caller.Caller, options *model_caller.CallOptions) *AIGenerator {
	return &AIGenerator{caller: caller, options: options}
}

// GenerateProduct 生成商品文案
func (g *AIGenerator) GenerateProduct(ctx context.Context, input ProductInput) (*ProductContent, error) {
	reply, err := g.caller.Chat(ctx, []model_caller.Message{
		{Role: model_caller.RoleSystem, Content: productSystemPrompt},
		{Role: model_caller.RoleUser, Content: buildProductPrompt(input)},
	}, g.options)
	if err != nil {
		return nil, errs.Wrap(errs.ErrGenerationFailed, "生成商品文案失败", err)
	}

	content, err := parseProductReply(reply)
	if err != nil {
		return nil, errs.Wrap(errs.ErrGenerationFailed, "解析商品文案失败", err)
	}
	return content, nil
}

// GenerateBlog 生成博客
func (g *AIGenerator) GenerateBlog(ctx context.Context, topic, category string) (*BlogContent, error) {
	reply, err := g.caller.Chat(ctx, []model_caller.Message{
		{Role: model_caller.RoleSystem, Content: blogSystemPrompt},
		{Role: model_caller.RoleUser, Content: buildBlogPrompt(topic, category)},
	}, g.options)
	if err != nil {
		return nil, errs.Wrap(errs.ErrGenerationFailed, "生成博客失败", err)
	}

	content, err := parseBlogReply(reply)
	if err != nil {
		return nil, errs.Wrap(errs.ErrGenerationFailed, "解析博客内容失败", err)
	}
	return content, nil
}

func buildProductPrompt(input ProductInput) string {
	var b strings.Builder
	b.WriteString("Create marketing content for the following product.\n\n")
	fmt.Fprintf(&b, "Product Name: %s\n", input.ProductName)
	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	fmt.Fprintf(&b, "Features: %s\n", input.Features)
	fmt.Fprintf(&b, "Target Audience: %s\n", input.TargetAudience)
	fmt.Fprintf(&b, "Tone of Voice: %s\n", input.ToneOfVoice)
	fmt.Fprintf(&b, "SEO Keywords: %s\n\n", input.SEOKeywords)
	b.WriteString("Produce:\n")
	b.WriteString("1. product_description: an SEO-optimized description of 200-300 words that naturally uses the SEO keywords and focuses on benefits.\n")
	fmt.Fprintf(&b, "2. ad_copy: exactly %d social media ad variations (Facebook/Instagram, Twitter, LinkedIn), each under 100 words with a clear call-to-action.\n", AdCopyCount)
	b.WriteString("3. email_blurb: a complete marketing email with subject line, introduction, benefits, call-to-action and closing.\n\n")
	b.WriteString(`Respond with JSON only, using exactly these keys: {"product_description": string, "ad_copy": [string, string, string], "email_blurb": string}`)
	return b.String()
}

func buildBlogPrompt(topic, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a comprehensive blog post about %q in the %s category.\n\n", topic, category)
	b.WriteString("Create:\n")
	b.WriteString("1. title: SEO-optimized, 60 characters or less\n")
	b.WriteString("2. meta_description: 150-160 characters\n")
	b.WriteString("3. excerpt: 150-200 characters\n")
	b.WriteString("4. content: the full article (800-1200 words) in Markdown with proper headings\n")
	b.WriteString("5. keywords: SEO keywords, comma-separated\n")
	b.WriteString("6. tags: comma-separated\n\n")
	b.WriteString("Focus on actionable insights, industry trends, practical tips and real-world examples.\n\n")
	b.WriteString(`Respond with JSON only, using exactly these keys: {"title": string, "meta_description": string, "excerpt": string, "content": string, "keywords": string, "tags": string}`)
	return b.String()
}

// productReply 模型返回的商品文案结构, 指针用于区分缺失字段
type productReply struct {
	Description *string  `json:"product_description"`
	AdCopy      []string `json:"ad_copy"`
	EmailBlurb  *string  `json:"email_blurb"`
}

type blogReply struct {
	Title           *string `json:"title"`
	MetaDescription *string `json:"meta_description"`
	Excerpt         *string `json:"excerpt"`
	Content         *string `json:"content"`
	Keywords        *string `json:"keywords"`
	Tags            *string `json:"tags"`
}

// parseProductReply 解析并校验商品文案
func parseProductReply(reply string) (*ProductContent, error) {
	var r productReply
	if err := json.Unmarshal([]byte(extractJSON(reply)), &r); err != nil {
		return nil, fmt.Errorf("返回内容不是合法JSON: %w", err)
	}

	if err := requireText("product_description", r.Description); err != nil {
		return nil, err
	}
	if err := requireText("email_blurb", r.EmailBlurb); err != nil {
		return nil, err
	}
	if len(r.AdCopy) != AdCopyCount {
		return nil, fmt.Errorf("ad_copy 需要 %d 条, 实际 %d 条", AdCopyCount, len(r.AdCopy))
	}

	adCopy := make([]string, len(r.AdCopy))
	for i, ad := range r.AdCopy {
		ad = strings.TrimSpace(ad)
		if ad == "" {
			return nil, fmt.Errorf("ad_copy[%d] 为空", i)
		}
		adCopy[i] = ad
	}

	return &ProductContent{
		Description: strings.TrimSpace(*r.Description),
		AdCopy:      adCopy,
		EmailBlurb:  strings.TrimSpace(*r.EmailBlurb),
	}, nil
}

// parseBlogReply 解析并校验博客内容
func parseBlogReply(reply string) (*BlogContent, error) {
	var r blogReply
	if err := json.Unmarshal([]byte(extractJSON(reply)), &r); err != nil {
		return nil, fmt.Errorf("返回内容不是合法JSON: %w", err)
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"title", r.Title},
		{"meta_description", r.MetaDescription},
		{"excerpt", r.Excerpt},
		{"content", r.Content},
		{"keywords", r.Keywords},
		{"tags", r.Tags},
	}
	for _, f := range fields {
		if err := requireText(f.name, f.value); err != nil {
			return nil, err
		}
	}

	return &BlogContent{
		Title:           strings.TrimSpace(*r.Title),
		MetaDescription: strings.TrimSpace(*r.MetaDescription),
		Excerpt:         strings.TrimSpace(*r.Excerpt),
		Content:         strings.TrimSpace(*r.Content),
		Keywords:        strings.TrimSpace(*r.Keywords),
		Tags:            strings.TrimSpace(*r.Tags),
	}, nil
}

func requireText(name string, value *string) error {
	if value == nil {
		return fmt.Errorf("缺少字段 %s", name)
	}
	if strings.TrimSpace(*value) == "" {
		return fmt.Errorf("字段 %s 为空", name)
	}
	return nil
}

// extractJSON 去掉模型常见的 ```json 代码块包裹
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
