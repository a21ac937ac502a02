package service

import (
	"context"
	"strings"

	"copygen/internal/dto"
	"copygen/internal/errs"
	"copygen/internal/models"
	"copygen/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// GenerationService 营销文案生成服务
type GenerationService struct {
	generationRepo *repository.GenerationRepository
	generator      ContentGenerator
	logger         *logrus.Logger
}

// NewGenerationService 创建生成服务
func NewGenerationService(generationRepo *repository.GenerationRepository, generator ContentGenerator, logger *logrus.Logger) *GenerationService {
	return &GenerationService{
		generationRepo: generationRepo,
		generator:      generator,
		logger:         logger,
	}
}

// Generate 生成文案并保存
// 文案全部生成成功后才写库, 不会出现只填了一半的记录
func (s *GenerationService) Generate(ctx context.Context, userID uint, req *dto.GenerateRequest) (*models.Generation, error) {
	input := ProductInput{
		ProductName:    strings.TrimSpace(req.ProductName),
		Category:       strings.TrimSpace(req.Category),
		Features:       strings.TrimSpace(req.Features),
		TargetAudience: strings.TrimSpace(req.TargetAudience),
		ToneOfVoice:    strings.TrimSpace(req.ToneOfVoice),
		SEOKeywords:    strings.TrimSpace(req.SEOKeywords),
	}
	if input.ProductName == "" {
		return nil, errs.New(errs.ErrValidation, "product_name是必填字段")
	}

	content, err := s.generator.GenerateProduct(ctx, input)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":      userID,
			"product_name": input.ProductName,
		}).Error("生成营销文案失败")
		return nil, err
	}

	generation := &models.Generation{
		UserID:               userID,
		ProductName:          input.ProductName,
		Category:             input.Category,
		Features:             input.Features,
		TargetAudience:       input.TargetAudience,
		ToneOfVoice:          input.ToneOfVoice,
		SEOKeywords:          input.SEOKeywords,
		GeneratedDescription: content.Description,
		GeneratedAdCopy:      datatypes.JSONSlice[string](content.AdCopy),
		GeneratedEmailBlurb:  content.EmailBlurb,
	}

	if err := s.generationRepo.Create(ctx, generation); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":       userID,
		"generation_id": generation.ID,
	}).Info("营销文案生成完成")

	return generation, nil
}

// History 获取用户的生成历史, 最新的在前
func (s *GenerationService) History(ctx context.Context, userID uint, page dto.PageQuery) ([]models.Generation, int64, error) {
	page.Normalize()
	return s.generationRepo.ListByUserID(ctx, userID, page.Skip, page.Limit)
}

// Get 获取单条生成记录
func (s *GenerationService) Get(ctx context.Context, id, userID uint) (*models.Generation, error) {
	return s.generationRepo.GetByIDAndUserID(ctx, id, userID)
}

// Update 局部更新生成记录
func (s *GenerationService) Update(ctx context.Context, id, userID uint, req *dto.UpdateGenerationRequest) (*models.Generation, error) {
	return s.generationRepo.Update(ctx, id, userID, models.GenerationPatch{
		IsFavorite:           req.IsFavorite,
		GeneratedDescription: req.GeneratedDescription,
		GeneratedAdCopy:      req.GeneratedAdCopy,
		GeneratedEmailBlurb:  req.GeneratedEmailBlurb,
	})
}

// Delete 删除生成记录
func (s *GenerationService) Delete(ctx context.Context, id, userID uint) error {
	return s.generationRepo.Delete(ctx, id, userID)
}
