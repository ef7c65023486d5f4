package database

import (
	"Skyline/config"
	"Skyline/models"
	"Skyline/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	gormConf := &gorm.Config{TranslateError: true}
	if !conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}
	db, err := gorm.Open(mysql.Open(dsn), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")

	if conf.MySQL.AutoMigrate {
		if err := Migrate(db); err != nil {
			log.L.Fatal("failed to migrate database", zap.Error(err))
		}
	}
	return db
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
