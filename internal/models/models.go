package models

import (
	"copygen/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库
// postgres:// 连接串使用 Postgres 驱动, 其余按 sqlite 文件处理
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if !cfg.IsProduction() && cfg.Log.Level == "debug" {
		logLevel = logger.Info
	}

	var dialector gorm.Dialector
	if cfg.Database.IsPostgres() {
		dialector = postgres.Open(cfg.Database.URL)
	} else {
		dialector = sqlite.Open(cfg.Database.SQLitePath())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Generation{},
		&BlogPost{},
	)
}
