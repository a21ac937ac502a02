package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"copygen/internal/dto"
	"copygen/internal/errs"
	"copygen/internal/models"
	"copygen/internal/repository"
	"copygen/internal/utils"

	"github.com/sirupsen/logrus"
)

// DefaultBlogCategory 默认博客分类
const DefaultBlogCategory = "AI Marketing"

// AutoGenerateBatchSize 每次自动生成的博客数量
const AutoGenerateBatchSize = 3

// autoTopics 自动生成的博客主题
var autoTopics = []string{
	"AI Marketing Trends in 2024",
	"How to Write Converting Product Descriptions",
	"Social Media Ad Strategies for E-commerce",
	"Email Marketing Automation Best Practices",
	"SEO Tips for Product Pages",
	"AI Content Generation Tools Comparison",
	"Marketing Psychology for Better Conversions",
	"Customer Journey Optimization",
	"Content Marketing ROI Measurement",
	"Voice Search Optimization for Products",
}

// autoCategories 自动生成博客按顺序轮换的分类
var autoCategories = []string{"AI Marketing", "E-commerce", "SEO", "Content Marketing", "Automation"}

// BlogService 博客服务
type BlogService struct {
	blogRepo  *repository.BlogPostRepository
	generator ContentGenerator
	logger    *logrus.Logger
	now       func() time.Time
}

// NewBlogService 创建博客服务
func NewBlogService(blogRepo *repository.BlogPostRepository, generator ContentGenerator, logger *logrus.Logger) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate 按主题生成一篇博客并发布
func (s *BlogService) Generate(ctx context.Context, userID uint, req *dto.GenerateBlogRequest) (*models.BlogPost, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, errs.New(errs.ErrValidation, "topic是必填字段")
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultBlogCategory
	}

	content, err := s.generator.GenerateBlog(ctx, topic, category)
	if err != nil {
		s.logger.WithError(err).WithField("topic", topic).Error("生成博客失败")
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, content.Title, false, nil)
	if err != nil {
		return nil, err
	}

	post := s.newPost(userID, slug, category, content)
	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"post_id": post.ID,
		"slug":    post.Slug,
	}).Info("博客生成完成")
	return post, nil
}

// AutoGenerate 按固定主题列表批量生成博客
// 单个主题失败只记录日志并跳过, 成功的在最后一次性提交
func (s *BlogService) AutoGenerate(ctx context.Context, userID uint) (*dto.AutoGenerateResponse, error) {
	posts := make([]*models.BlogPost, 0, AutoGenerateBatchSize)
	reserved := make(map[string]bool)

	for i, topic := range autoTopics[:AutoGenerateBatchSize] {
		category := autoCategories[i%len(autoCategories)]

		content, err := s.generator.GenerateBlog(ctx, topic, category)
		if err != nil {
			s.logger.WithError(err).WithField("topic", topic).Warn("自动生成博客失败, 跳过该主题")
			continue
		}

		slug, err := s.uniqueSlug(ctx, content.Title, true, reserved)
		if err != nil {
			s.logger.WithError(err).WithField("topic", topic).Warn("生成slug失败, 跳过该主题")
			continue
		}
		reserved[slug] = true

		posts = append(posts, s.newPost(userID, slug, category, content))
	}

	if err := s.blogRepo.CreateBatch(ctx, posts); err != nil {
		return nil, err
	}

	titles := make([]string, len(posts))
	for i, post := range posts {
		titles[i] = post.Title
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(posts),
	}).Info("自动生成博客完成")

	return &dto.AutoGenerateResponse{
		Message: fmt.Sprintf("Generated %d blog posts", len(posts)),
		Posts:   titles,
	}, nil
}

// ListPublished 获取已发布博客
func (s *BlogService) ListPublished(ctx context.Context, query dto.BlogListQuery) ([]models.BlogPost, int64, error) {
	query.Normalize()
	return s.blogRepo.ListPublished(ctx, query.Skip, query.Limit, strings.TrimSpace(query.Category))
}

// ListMine 获取当前用户的博客
func (s *BlogService) ListMine(ctx context.Context, userID uint, page dto.PageQuery) ([]models.BlogPost, int64, error) {
	page.Normalize()
	return s.blogRepo.ListByUserID(ctx, userID, page.Skip, page.Limit)
}

// ListCategories 获取已发布博客的分类
func (s *BlogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.blogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// GetBySlug 公开读取博客, 每次读取阅读数加1
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.blogRepo.GetPublishedBySlugAndIncrementViews(ctx, slug)
}

// Update 局部更新博客, 标题变化时重新生成slug
func (s *BlogService) Update(ctx context.Context, id, userID uint, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	patch := models.BlogPostPatch{
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		Category:        req.Category,
		Tags:            req.Tags,
		ImageURL:        req.ImageURL,
		IsPublished:     req.IsPublished,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errs.New(errs.ErrValidation, "title不能为空")
		}
		patch.Title = &title
		if title != post.Title {
			slug := utils.CreateSlug(title)
			if slug != post.Slug {
				slug, err = s.uniqueSlug(ctx, title, false, nil)
				if err != nil {
					return nil, err
				}
			}
			patch.Slug = &slug
		}
	}

	if req.IsPublished != nil && *req.IsPublished && post.PublishedAt == nil {
		now := s.now()
		patch.PublishedAt = &now
	}

	return s.blogRepo.Update(ctx, id, userID, patch)
}

// Delete 删除博客
func (s *BlogService) Delete(ctx context.Context, id, userID uint) error {
	return s.blogRepo.Delete(ctx, id, userID)
}

// uniqueSlug 根据标题生成未被占用的slug
// 冲突时追加日期, 批量生成时追加到分钟, 仍冲突再追加序号
func (s *BlogService) uniqueSlug(ctx context.Context, title string, bulk bool, reserved map[string]bool) (string, error) {
	taken := func(slug string) (bool, error) {
		if reserved[slug] {
			return true, nil
		}
		return s.blogRepo.ExistsBySlug(ctx, slug)
	}

	base := utils.CreateSlug(title)
	exists, err := taken(base)
	if err != nil || !exists {
		return base, err
	}

	layout := "20060102"
	if bulk {
		layout = "200601021504"
	}
	dated := base + "-" + s.now().Format(layout)

	candidate := dated
	for n := 2; ; n++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", dated, n)
	}
}

func (s *BlogService) newPost(userID uint, slug, category string, content *BlogContent) *models.BlogPost {
	now := s.now()
	owner := userID
	return &models.BlogPost{
		UserID:          &owner,
		Title:           content.Title,
		Slug:            slug,
		Content:         content.Content,
		Excerpt:         content.Excerpt,
		MetaDescription: content.MetaDescription,
		Keywords:        content.Keywords,
		Category:        category,
		Tags:            content.Tags,
		IsPublished:     true,
		PublishedAt:     &now,
	}
}
