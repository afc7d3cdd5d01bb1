package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ErrNotConnected 未初始化客户端时所有操作返回此错误
var ErrNotConnected = errors.New("redis not connected")

// SetClient 设置 Redis 客户端（由 internal/initial 调用）
func SetClient(c *redis.Client) {
	client = c
}

// Close 关闭 Redis 连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

func IsConnected() bool {
	return client != nil
}

func GetClient() *redis.Client {
	return client
}

func checkClient() error {
	if client == nil {
		return ErrNotConnected
	}
	return nil
}

// IsNil 判断是否为 key 不存在
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func Get(ctx context.Context, key string) (string, error) {
	if err := checkClient(); err != nil {
		return "", err
	}
	return client.Get(ctx, key).Result()
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := checkClient(); err != nil {
		return err
	}
	return client.Set(ctx, key, value, expiration).Err()
}

func Del(ctx context.Context, keys ...string) (int64, error) {
	if err := checkClient(); err != nil {
		return 0, err
	}
	return client.Del(ctx, keys...).Result()
}
