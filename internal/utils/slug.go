package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxSlugLength slug最大长度
const MaxSlugLength = 100

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s\p{Z}-]`)
	slugWhitespace   = regexp.MustCompile(`[\s\p{Z}]+`)
)

// CreateSlug 根据标题生成slug
// 转小写, 去除字母数字/空白/连字符以外的字符, 空白折叠为单个连字符, 截断到100个字符
func CreateSlug(title string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(title), "")
	slug = slugWhitespace.ReplaceAllString(strings.TrimFunc(slug, isSlugSpace), "-")
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
	}
	if slug == "" {
		return "post"
	}
	return slug
}

func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r)
}
