package config

import (
	"fmt"
	"strings"
	"time"
)

// Config 应用配置结构
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	JWT         JWTConfig       `mapstructure:"jwt"`
	CORS        CORSConfig      `mapstructure:"cors"`
	Log         LogConfig       `mapstructure:"log"`
	Model       ModelConfig     `mapstructure:"model_service"`
	Generator   GeneratorConfig `mapstructure:"generator"`
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
// URL 支持 postgres:// 连接串, 其余一律按 sqlite 文件路径处理(可带 sqlite:// 前缀)
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// IsPostgres 是否使用 Postgres
func (d *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(d.URL, "postgres://") || strings.HasPrefix(d.URL, "postgresql://")
}

// SQLitePath 获取 sqlite 文件路径
func (d *DatabaseConfig) SQLitePath() string {
	path := strings.TrimPrefix(d.URL, "sqlite:///")
	return strings.TrimPrefix(path, "sqlite://")
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration 获取过期时间
func (j *JWTConfig) GetExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// CORSConfig CORS配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// ModelConfig 外部文本生成服务配置
type ModelConfig struct {
	Client         string  `mapstructure:"client"`
	APIBase        string  `mapstructure:"api_base"`
	APIKey         string  `mapstructure:"api_key"`
	Model          string  `mapstructure:"model"`
	Temperature    float64 `mapstructure:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

// GetTimeout 获取超时时间, 0 表示不设置超时
func (m *ModelConfig) GetTimeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// GeneratorConfig 内容生成器配置
type GeneratorConfig struct {
	// Mode 取值 template / ai / auto
	Mode string `mapstructure:"mode"`
}

// UseAI 是否使用外部模型生成
func (c *Config) UseAI() bool {
	switch strings.ToLower(c.Generator.Mode) {
	case "ai":
		return true
	case "template":
		return false
	default:
		return c.Model.APIKey != ""
	}
}
