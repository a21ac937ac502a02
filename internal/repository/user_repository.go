package repository

import (
	"context"
	"errors"

	"copygen/internal/errs"
	"copygen/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户, 邮箱或用户名重复时返回 ErrConflict
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.New(errs.ErrConflict, "邮箱或用户名已被注册")
	}
	return err
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translateNotFound(err, "用户不存在")
	}
	return &user, nil
}

// GetByIdentifier 根据用户名或邮箱获取用户
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, translateNotFound(err, "用户不存在")
	}
	return &user, nil
}

// FindTaken 检查邮箱和用户名是否已被占用
func (r *UserRepository) FindTaken(ctx context.Context, email, username string) (emailTaken bool, usernameTaken bool, err error) {
	var users []models.User
	err = r.db.WithContext(ctx).
		Select("email", "username").
		Where("email = ? OR username = ?", email, username).
		Find(&users).Error
	if err != nil {
		return false, false, err
	}

	for _, u := range users {
		if u.Email == email {
			emailTaken = true
		}
		if u.Username == username {
			usernameTaken = true
		}
	}
	return emailTaken, usernameTaken, nil
}

// translateNotFound 将记录不存在转换为 ErrNotFound
func translateNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.New(errs.ErrNotFound, message)
	}
	return err
}
