package initial

import (
	"fmt"
	"time"

	"RoastMe/internal/config"
	roastEntity "RoastMe/internal/modules/roast/domain/entity"
	statusEntity "RoastMe/internal/modules/status/domain/entity"
	"RoastMe/pkg/zlog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MysqlDSN 时间统一按 UTC 读写
func MysqlDSN(conf *config.Config) string {
	c := conf.MysqlConfig
	dbName := c.DatabaseName
	if dbName == "" {
		dbName = conf.AppName
	}
	port := c.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, port, dbName)
}

// InitGorm 连接 MySQL 并自动迁移 roasts / status_checks
func InitGorm(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(MysqlDSN(conf)), &gorm.Config{
		Logger:  zlog.NewGormLogger(logger.Warn, time.Second),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	// 自动迁移，如果没有建表，会自动创建对应的表
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	zlog.Info("mysql connected")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&roastEntity.Roast{}, &statusEntity.StatusCheck{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
