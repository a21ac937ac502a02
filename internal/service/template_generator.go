package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TemplateGenerator 基于固定模板的内容生成器, 相同输入总是得到相同输出
type TemplateGenerator struct{}

// NewTemplateGenerator 创建模板生成器
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// templateFields 模板替换字段, 可选字段为空时使用通用说法
type templateFields struct {
	Name     string
	Category string
	Features string
	Audience string
}

func newTemplateFields(input ProductInput) templateFields {
	return templateFields{
		Name:     strings.TrimSpace(input.ProductName),
		Category: fallback(input.Category, "product"),
		Features: fallback(input.Features, "thoughtful design and everyday reliability"),
		Audience: fallback(input.TargetAudience, "everyone"),
	}
}

// GenerateProduct 按语气套用模板生成商品文案
func (g *TemplateGenerator) GenerateProduct(_ context.Context, input ProductInput) (*ProductContent, error) {
	f := newTemplateFields(input)

	var description, email string
	switch normalizeTone(input.ToneOfVoice) {
	case ToneLuxury:
		description = fmt.Sprintf(
			"Discover %s, an exquisite %s crafted for the discerning few. "+
				"Every detail reflects uncompromising quality: %s. "+
				"Designed for %s who expect nothing less than excellence, %s is more than a purchase, it is a statement.",
			f.Name, f.Category, f.Features, f.Audience, f.Name)
		email = fmt.Sprintf(
			"Subject: An invitation to experience %s\n\n"+
				"Dear valued client,\n\n"+
				"We are delighted to present %s, our most refined %s yet. With %s, it has been created for %s with a taste for the exceptional.\n\n"+
				"Reserve yours today and indulge in true luxury.\n\nWith warm regards,\nThe %s Team",
			f.Name, f.Name, f.Category, f.Features, f.Audience, f.Name)
	case TonePlayful:
		description = fmt.Sprintf(
			"Say hello to %s, the %s that's about to become your new favorite thing! "+
				"Packed with %s, it's built for %s who like a little fun with their everyday. "+
				"Go on, treat yourself to %s!",
			f.Name, f.Category, f.Features, f.Audience, f.Name)
		email = fmt.Sprintf(
			"Subject: Psst... %s just landed!\n\n"+
				"Hey there!\n\n"+
				"Guess what? %s is here and it's the %s you didn't know you needed. %s? Check. Made for %s? Double check.\n\n"+
				"Grab yours before everyone else does!\n\nCheers,\nThe %s Crew",
			f.Name, f.Name, f.Category, capitalize(f.Features), f.Audience, f.Name)
	case ToneProfessional:
		description = fmt.Sprintf(
			"%s is a high-performance %s engineered to deliver measurable results. "+
				"Key capabilities include %s. "+
				"Built for %s, %s combines reliability and efficiency to support your goals.",
			f.Name, f.Category, f.Features, f.Audience, f.Name)
		email = fmt.Sprintf(
			"Subject: Introducing %s\n\n"+
				"Hello,\n\n"+
				"We are pleased to introduce %s, a %s designed for %s. It offers %s, helping you work smarter and achieve more.\n\n"+
				"Contact us today to learn how %s can support your needs.\n\nBest regards,\nThe %s Team",
			f.Name, f.Name, f.Category, f.Audience, f.Features, f.Name, f.Name)
	default:
		description = fmt.Sprintf(
			"%s is a %s that offers %s. "+
				"It is designed for %s looking for a dependable choice. "+
				"Learn what makes %s a smart addition to your routine.",
			f.Name, f.Category, f.Features, f.Audience, f.Name)
		email = fmt.Sprintf(
			"Subject: Get to know %s\n\n"+
				"Hi,\n\n"+
				"%s is a %s made for %s. Highlights include %s.\n\n"+
				"Find out more and order yours today.\n\nThanks,\nThe %s Team",
			f.Name, f.Name, f.Category, f.Audience, f.Features, f.Name)
	}

	return &ProductContent{
		Description: description,
		AdCopy: []string{
			fmt.Sprintf("Meet %s: the %s made for %s. Shop now!", f.Name, f.Category, f.Audience),
			fmt.Sprintf("%s brings you %s. Don't miss out, order %s today!", f.Name, f.Features, f.Name),
			fmt.Sprintf("Upgrade your everyday with %s. Tap to discover why %s love it.", f.Name, f.Audience),
		},
		EmailBlurb: email,
	}, nil
}

// GenerateBlog 套用模板生成博客
func (g *TemplateGenerator) GenerateBlog(_ context.Context, topic, category string) (*BlogContent, error) {
	topic = strings.TrimSpace(topic)
	category = fallback(category, DefaultBlogCategory)

	content := fmt.Sprintf(
		"# %s\n\n"+
			"## Why %s matters\n\n"+
			"%s is reshaping how teams approach %s. Understanding it helps you stay ahead of competitors and serve customers better.\n\n"+
			"## Practical tips\n\n"+
			"1. Start with a clear goal and measure it.\n"+
			"2. Test small changes before rolling them out widely.\n"+
			"3. Review results regularly and keep what works.\n\n"+
			"## Conclusion\n\n"+
			"Applying these ideas to %s is a simple way to grow steadily in %s.",
		topic, topic, topic, strings.ToLower(category), strings.ToLower(topic), category)

	return &BlogContent{
		Title:           topic,
		MetaDescription: fmt.Sprintf("Learn about %s: key insights, practical tips and trends in %s.", topic, category),
		Excerpt:         fmt.Sprintf("A practical guide to %s for %s professionals.", topic, category),
		Content:         content,
		Keywords:        strings.ToLower(topic) + ", " + strings.ToLower(category),
		Tags:            category,
	}, nil
}

func fallback(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

// capitalize 首字母大写, 按rune处理以保证多字节字符完整
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
