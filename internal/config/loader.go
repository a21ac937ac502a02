package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSecretKey 开发环境默认密钥, 生产环境禁止使用
const DefaultSecretKey = "dev-secret-key-change-in-production"

// 环境变量与配置项的对应关系
var envBindings = map[string][]string{
	"environment":                   {"ENVIRONMENT"},
	"server.host":                   {"HOST"},
	"server.port":                   {"PORT"},
	"database.url":                  {"DATABASE_URL"},
	"jwt.secret_key":                {"SECRET_KEY"},
	"jwt.expire_minutes":            {"ACCESS_TOKEN_EXPIRE_MINUTES"},
	"log.level":                     {"LOG_LEVEL"},
	"log.file":                      {"LOG_FILE"},
	"model_service.client":          {"MODEL_CLIENT"},
	"model_service.api_base":        {"OPENAI_API_BASE"},
	"model_service.api_key":         {"OPENAI_API_KEY"},
	"model_service.model":           {"OPENAI_MODEL"},
	"model_service.timeout_seconds": {"MODEL_TIMEOUT_SECONDS"},
	"generator.mode":                {"GENERATOR_MODE"},
}

// LoadConfig 加载配置
// 先读取 .env(若存在), 再读取配置文件(若存在), 环境变量优先级最高
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("读取.env失败: %w", err)
	}

	v := viper.New()

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败: %w", err)
		}
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &cfg, nil
}

// setDefaults 设置默认值
func setDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "sqlite:///./eqori.db"
	}
	if cfg.JWT.SecretKey == "" {
		cfg.JWT.SecretKey = DefaultSecretKey
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.ExpireMinutes == 0 {
		cfg.JWT.ExpireMinutes = 30
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
		cfg.CORS.AllowCredentials = true
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"Authorization", "Content-Type", "X-Request-ID"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 7
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 30
	}
	if cfg.Model.Client == "" {
		cfg.Model.Client = "http"
	}
	if cfg.Model.APIBase == "" {
		cfg.Model.APIBase = "https://api.openai.com/v1"
	}
	if cfg.Model.Model == "" {
		cfg.Model.Model = "gpt-3.5-turbo"
	}
	if cfg.Model.Temperature == 0 {
		cfg.Model.Temperature = 0.7
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = 2048
	}
	if cfg.Generator.Mode == "" {
		cfg.Generator.Mode = "auto"
	}
}

// validateConfig 验证配置
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务器端口: %d", cfg.Server.Port)
	}

	if cfg.JWT.Algorithm != "HS256" && cfg.JWT.Algorithm != "HS384" && cfg.JWT.Algorithm != "HS512" {
		return fmt.Errorf("不支持的JWT算法: %s", cfg.JWT.Algorithm)
	}

	if cfg.IsProduction() && cfg.JWT.SecretKey == DefaultSecretKey {
		return fmt.Errorf("生产环境必须设置SECRET_KEY")
	}

	switch strings.ToLower(cfg.Generator.Mode) {
	case "template", "ai", "auto":
	default:
		return fmt.Errorf("无效的生成模式: %s", cfg.Generator.Mode)
	}

	if strings.ToLower(cfg.Generator.Mode) == "ai" && cfg.Model.APIKey == "" {
		return fmt.Errorf("ai 生成模式需要设置OPENAI_API_KEY")
	}

	switch cfg.Model.Client {
	case "http", "langchaingo":
	default:
		return fmt.Errorf("无效的模型客户端: %s", cfg.Model.Client)
	}

	// 检查 sqlite 数据库目录是否存在
	if !cfg.Database.IsPostgres() {
		dbDir := filepath.Dir(cfg.Database.SQLitePath())
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
	}

	return nil
}
