package main

import (
	"io"
	"log"
	"os"

	"copygen/internal/config"
	"copygen/internal/models"
	"copygen/internal/router"
	"copygen/internal/service"
	"copygen/internal/utils"
	"copygen/pkg/model_caller"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	// 加载配置（从项目根目录读取）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := newLogger(&cfg.Log)

	// 初始化数据库
	db, err := models.InitDB(cfg)
	if err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}

	// 初始化工具
	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	generator, err := newGenerator(cfg)
	if err != nil {
		logger.Fatalf("初始化内容生成器失败: %v", err)
	}

	// 设置路由
	r, err := router.SetupRouter(cfg, jwtManager, logger, db, generator)
	if err != nil {
		logger.Fatalf("初始化路由失败: %v", err)
	}

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if cfg.IsProduction() {
		logger.Info("生产模式")
	} else {
		logger.Infof("开发模式: 数据库 %s", cfg.Database.URL)
	}

	if err := r.Run(addr); err != nil {
		logger.Fatalf("启动服务器失败: %v", err)
	}
}

// newLogger 创建JSON格式日志, 配置了日志文件时同时写入滚动文件
func newLogger(cfg *config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
	logger.SetOutput(out)

	return logger
}

// newGenerator 按配置选择模板生成器或外部模型生成器
func newGenerator(cfg *config.Config) (service.ContentGenerator, error) {
	if !cfg.UseAI() {
		return service.NewTemplateGenerator(), nil
	}

	var caller model_caller.Caller
	switch cfg.Model.Client {
	case "langchaingo":
		lc, err := model_caller.NewLangChainCaller(cfg.Model.APIBase, cfg.Model.APIKey, cfg.Model.Model)
		if err != nil {
			return nil, err
		}
		caller = lc
	default:
		caller = model_caller.NewModelCaller(cfg.Model.APIBase, cfg.Model.APIKey, cfg.Model.Model, cfg.Model.GetTimeout())
	}

	return service.NewAIGenerator(caller, &model_caller.CallOptions{
		MaxTokens:   cfg.Model.MaxTokens,
		Temperature: cfg.Model.Temperature,
	}), nil
}
