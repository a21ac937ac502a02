package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联
	Generations []Generation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"generations,omitempty"`
	BlogPosts   []BlogPost   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"blog_posts,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
