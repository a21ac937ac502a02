package models

import (
	"time"

	"gorm.io/datatypes"
)

// Generation 一次商品营销文案生成记录
type Generation struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	UserID         uint   `gorm:"not null;index:idx_generation_user_created,priority:1" json:"user_id"`
	ProductName    string `gorm:"size:255;not null" json:"product_name"`
	Category       string `gorm:"size:255" json:"category"`
	Features       string `gorm:"type:text" json:"features"`
	TargetAudience string `gorm:"size:255" json:"target_audience"`
	ToneOfVoice    string `gorm:"size:100" json:"tone_of_voice"`
	SEOKeywords    string `gorm:"type:text" json:"seo_keywords"`

	GeneratedDescription string                      `gorm:"type:text" json:"generated_description"`
	GeneratedAdCopy      datatypes.JSONSlice[string] `json:"generated_ad_copy"`
	GeneratedEmailBlurb  string                      `gorm:"type:text" json:"generated_email_blurb"`

	IsFavorite bool      `gorm:"default:false" json:"is_favorite"`
	CreatedAt  time.Time `gorm:"index:idx_generation_user_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (Generation) TableName() string {
	return "generations"
}

// GenerationPatch 生成记录的局部更新, nil 字段不修改
type GenerationPatch struct {
	IsFavorite           *bool
	GeneratedDescription *string
	GeneratedAdCopy      *[]string
	GeneratedEmailBlurb  *string
}

// Columns 转换为更新列, updated_at 总是刷新
func (p GenerationPatch) Columns(now time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": now}
	if p.IsFavorite != nil {
		columns["is_favorite"] = *p.IsFavorite
	}
	if p.GeneratedDescription != nil {
		columns["generated_description"] = *p.GeneratedDescription
	}
	if p.GeneratedAdCopy != nil {
		columns["generated_ad_copy"] = datatypes.JSONSlice[string](*p.GeneratedAdCopy)
	}
	if p.GeneratedEmailBlurb != nil {
		columns["generated_email_blurb"] = *p.GeneratedEmailBlurb
	}
	return columns
}
