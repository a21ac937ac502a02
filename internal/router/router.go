package router

import (
	"copygen/internal/config"
	"copygen/internal/handler"
	"copygen/internal/middleware"
	"copygen/internal/repository"
	"copygen/internal/service"
	"copygen/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Version API版本
const Version = "1.0.0"

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	generator service.ContentGenerator,
) (*gin.Engine, error) {
	// 设置Gin模式
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	generationRepo := repository.NewGenerationRepository(db)
	blogRepo := repository.NewBlogPostRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager)
	generationService := service.NewGenerationService(generationRepo, generator, logger)
	blogService := service.NewBlogService(blogRepo, generator, logger)

	// 初始化Handler
	healthHandler := handler.NewHealthHandler(db, Version)
	authHandler := handler.NewAuthHandler(authService)
	generationHandler := handler.NewGenerationHandler(generationService)
	blogHandler := handler.NewBlogHandler(blogService)

	// 健康检查
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	auth := middleware.AuthMiddleware(jwtManager)

	// API路由组
	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", auth, authHandler.GetMe)
			authGroup.POST("/logout", auth, authHandler.Logout)
		}

		generationGroup := api.Group("/generation")
		generationGroup.Use(auth)
		{
			generationGroup.POST("/generate", generationHandler.Generate)
			generationGroup.GET("/history", generationHandler.History)
			generationGroup.GET("/:id", generationHandler.Get)
			generationGroup.PUT("/:id", generationHandler.Update)
			generationGroup.DELETE("/:id", generationHandler.Delete)
		}

		blogGroup := api.Group("/blog")
		{
			// 公开接口
			blogGroup.GET("", blogHandler.List)
			blogGroup.GET("/", blogHandler.List)
			blogGroup.GET("/categories", blogHandler.ListCategories)

			// 需要认证的接口
			blogGroup.GET("/admin/posts", auth, blogHandler.ListMine)
			blogGroup.POST("/generate", auth, blogHandler.Generate)
			blogGroup.POST("/auto-generate", auth, blogHandler.AutoGenerate)
			blogGroup.PUT("/:id", auth, blogHandler.Update)
			blogGroup.DELETE("/:id", auth, blogHandler.Delete)

			blogGroup.GET("/:slug", blogHandler.GetBySlug)
		}
	}

	return r, nil
}
