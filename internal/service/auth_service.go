package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"copygen/internal/dto"
	"copygen/internal/errs"
	"copygen/internal/models"
	"copygen/internal/repository"
	"copygen/internal/utils"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register 用户注册
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	emailTaken, usernameTaken, err := s.userRepo.FindTaken(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("检查用户是否存在失败: %w", err)
	}
	if emailTaken {
		return nil, errs.New(errs.ErrConflict, "邮箱已被注册")
	}
	if usernameTaken {
		return nil, errs.New(errs.ErrConflict, "用户名已存在")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// 唯一索引兜底并发注册
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate 校验用户名(或邮箱)和密码
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, errs.New(errs.ErrInvalidCredentials, "用户已被禁用")
	}

	return user, nil
}

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ToUserInfo(user),
	}, nil
}

// GetMe 获取当前用户信息
// Token有效但用户已删除或被禁用时视为未认证
func (s *AuthService) GetMe(ctx context.Context, userID uint) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.New(errs.ErrUnauthenticated, "用户不存在")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.New(errs.ErrUnauthenticated, "用户已被禁用")
	}

	info := ToUserInfo(user)
	return &info, nil
}

// ToUserInfo 转换为不含密码的用户信息
func ToUserInfo(user *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
