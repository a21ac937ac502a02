package repository

import (
	"context"
	"time"

	"copygen/internal/errs"
	"copygen/internal/models"

	"gorm.io/gorm"
)

const generationNotFound = "生成记录不存在"

// GenerationRepository 生成记录数据访问层
// 所有按ID的读写都在同一条SQL里同时过滤 id 和 user_id
type GenerationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGenerationRepository 创建生成记录Repository
func NewGenerationRepository(db *gorm.DB) *GenerationRepository {
	return &GenerationRepository{db: db, now: time.Now}
}

// Create 创建生成记录
func (r *GenerationRepository) Create(ctx context.Context, generation *models.Generation) error {
	return r.db.WithContext(ctx).Create(generation).Error
}

// ListByUserID 获取用户的生成记录, 按创建时间倒序
func (r *GenerationRepository) ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]models.Generation, int64, error) {
	var generations []models.Generation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Generation{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&generations).Error
	return generations, total, err
}

// GetByIDAndUserID 获取属于用户的生成记录, 不存在或不属于该用户都返回 ErrNotFound
func (r *GenerationRepository) GetByIDAndUserID(ctx context.Context, id, userID uint) (*models.Generation, error) {
	var generation models.Generation
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&generation).Error
	if err != nil {
		return nil, translateNotFound(err, generationNotFound)
	}
	return &generation, nil
}

// Update 局部更新生成记录并返回更新后的记录
func (r *GenerationRepository) Update(ctx context.Context, id, userID uint, patch models.GenerationPatch) (*models.Generation, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Generation{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Columns(r.now()))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.New(errs.ErrNotFound, generationNotFound)
	}
	return r.GetByIDAndUserID(ctx, id, userID)
}

// Delete 删除生成记录
func (r *GenerationRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Generation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.New(errs.ErrNotFound, generationNotFound)
	}
	return nil
}
