package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv 清空会影响配置的环境变量
func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.GetAddress())
	assert.Equal(t, "sqlite:///./eqori.db", cfg.Database.URL)
	assert.Equal(t, "./eqori.db", cfg.Database.SQLitePath())
	assert.False(t, cfg.Database.IsPostgres())
	assert.Equal(t, DefaultSecretKey, cfg.JWT.SecretKey)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.JWT.GetExpireDuration())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.Origins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model.Model)
	assert.Equal(t, "http", cfg.Model.Client)
	assert.Equal(t, time.Duration(0), cfg.Model.GetTimeout())
	assert.Equal(t, "auto", cfg.Generator.Mode)
	assert.False(t, cfg.UseAI())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "data", "app.db")

	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite:///"+dbPath)
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "15")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, dbPath, cfg.Database.SQLitePath())
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.JWT.GetExpireDuration())
	assert.Equal(t, 15*time.Second, cfg.Model.GetTimeout())
	assert.True(t, cfg.UseAI())

	// sqlite 目录不存在时自动创建
	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 7000
jwt:
  secret_key: from-file
generator:
  mode: template
model_service:
  api_key: sk-file
`), 0o644))

	t.Setenv("PORT", "7100")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 7100, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	assert.False(t, cfg.UseAI(), "template 模式不使用外部模型")
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"生产环境使用默认密钥": {"ENVIRONMENT": "production"},
		"ai模式缺少密钥":   {"GENERATOR_MODE": "ai"},
		"无效的生成模式":    {"GENERATOR_MODE": "magic"},
		"无效的模型客户端":   {"MODEL_CLIENT": "grpc"},
		"无效端口":       {"PORT": "70000"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigProductionWithSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SECRET_KEY", "a-real-secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
