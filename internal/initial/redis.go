package initial

import (
	"context"
	"fmt"
	"time"

	"RoastMe/internal/config"
	"RoastMe/pkg/redis"
	"RoastMe/pkg/zlog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 未配置主机或连接失败时返回 false，缓存随之关闭
func InitRedis(conf *config.Config) bool {
	host := conf.RedisConfig.Host
	port := conf.RedisConfig.Port

	if host == "" {
		zlog.Info("redis not configured, cache disabled")
		return false
	}
	if port == 0 {
		port = 6379
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     conf.RedisConfig.Password,
		DB:           conf.RedisConfig.DB,
		PoolSize:     conf.RedisConfig.PoolSize,
		MinIdleConns: conf.RedisConfig.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zlog.Warn("redis ping failed, cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return false
	}

	redis.SetClient(client)
	zlog.Info("redis connected", zap.String("addr", addr))
	return true
}
