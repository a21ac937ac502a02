package models

import (
	"time"
)

// BlogPost 博客文章
// UserID 可为空, 系统生成的文章可以没有作者
type BlogPost struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	UserID          *uint      `gorm:"index" json:"user_id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Slug            string     `gorm:"uniqueIndex;size:150;not null" json:"slug"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	MetaDescription string     `gorm:"size:500" json:"meta_description"`
	Keywords        string     `gorm:"type:text" json:"keywords"`
	Category        string     `gorm:"size:100;index" json:"category"`
	Tags            string     `gorm:"type:text" json:"tags"`
	ImageURL        *string    `gorm:"size:500" json:"image_url"`
	IsPublished     bool       `gorm:"not null;index" json:"is_published"`
	ViewCount       int        `gorm:"default:0;not null" json:"view_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `gorm:"index" json:"published_at"`
}

// TableName 指定表名
func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogPostPatch 博客的局部更新, nil 字段不修改
type BlogPostPatch struct {
	Title           *string
	Slug            *string
	Content         *string
	Excerpt         *string
	MetaDescription *string
	Keywords        *string
	Category        *string
	Tags            *string
	ImageURL        *string
	IsPublished     *bool
	PublishedAt     *time.Time
}

// Columns 转换为更新列, updated_at 总是刷新
func (p BlogPostPatch) Columns(now time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": now}
	set := func(name string, v *string) {
		if v != nil {
			columns[name] = *v
		}
	}
	set("title", p.Title)
	set("slug", p.Slug)
	set("content", p.Content)
	set("excerpt", p.Excerpt)
	set("meta_description", p.MetaDescription)
	set("keywords", p.Keywords)
	set("category", p.Category)
	set("tags", p.Tags)
	set("image_url", p.ImageURL)
	if p.IsPublished != nil {
		columns["is_published"] = *p.IsPublished
	}
	if p.PublishedAt != nil {
		columns["published_at"] = *p.PublishedAt
	}
	return columns
}
