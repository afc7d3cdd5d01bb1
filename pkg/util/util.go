package util

import (
	"time"

	"github.com/google/uuid"
)

// GenerateUUID 生成一个标准的 UUID (v4)
func GenerateUUID() string {
	return uuid.New().String()
}

// NowUTC 当前 UTC 时间，截断到毫秒
//
// MongoDB 与 MySQL datetime(3) 都只保存到毫秒，截断后写入与读出的时间完全一致。
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
