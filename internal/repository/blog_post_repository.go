package repository

import (
	"context"
	"errors"
	"time"

	"copygen/internal/errs"
	"copygen/internal/models"

	"gorm.io/gorm"
)

const blogPostNotFound = "博客文章不存在"

// BlogPostRepository 博客数据访问层
type BlogPostRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBlogPostRepository 创建博客Repository
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db, now: time.Now}
}

// Create 创建博客
func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(post).Error)
}

// CreateBatch 在一个事务中批量创建博客
func (r *BlogPostRepository) CreateBatch(ctx context.Context, posts []*models.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return translateDuplicate(tx.Create(&posts).Error)
	})
}

// ExistsBySlug slug是否已存在(包括未发布的文章)
func (r *BlogPostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// ListPublished 获取已发布博客, 按发布时间倒序, category 为空时不过滤
func (r *BlogPostRepository) ListPublished(ctx context.Context, offset, limit int, category string) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("published_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// ListByUserID 获取用户自己的博客(包括未发布), 按创建时间倒序
func (r *BlogPostRepository) ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// ListCategories 获取已发布博客的分类
func (r *BlogPostRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("is_published = ? AND category IS NOT NULL AND category <> ''", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// GetPublishedBySlugAndIncrementViews 获取已发布博客并将阅读数加1
// 自增在单条UPDATE中完成, 并发读取也不会丢失计数
func (r *BlogPostRepository) GetPublishedBySlugAndIncrementViews(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BlogPost{}).
			Where("slug = ? AND is_published = ?", slug, true).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.New(errs.ErrNotFound, blogPostNotFound)
		}
		return tx.Where("slug = ?", slug).First(&post).Error
	})
	if err != nil {
		return nil, translateNotFound(err, blogPostNotFound)
	}
	return &post, nil
}

// GetByIDAndUserID 获取属于用户的博客
func (r *BlogPostRepository) GetByIDAndUserID(ctx context.Context, id, userID uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&post).Error
	if err != nil {
		return nil, translateNotFound(err, blogPostNotFound)
	}
	return &post, nil
}

// Update 局部更新属于用户的博客并返回更新后的记录
func (r *BlogPostRepository) Update(ctx context.Context, id, userID uint, patch models.BlogPostPatch) (*models.BlogPost, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Columns(r.now()))
	if result.Error != nil {
		return nil, translateDuplicate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.New(errs.ErrNotFound, blogPostNotFound)
	}
	return r.GetByIDAndUserID(ctx, id, userID)
}

// Delete 删除属于用户的博客
func (r *BlogPostRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.New(errs.ErrNotFound, blogPostNotFound)
	}
	return nil
}

// translateDuplicate 将唯一约束冲突转换为 ErrConflict
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.New(errs.ErrConflict, "slug已存在")
	}
	return err
}
