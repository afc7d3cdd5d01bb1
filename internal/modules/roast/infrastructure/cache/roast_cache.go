package cache

import (
	"context"
	"encoding/json"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/pkg/redis"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

const keyPrefix = "roast:id:"

// RoastCache 吐槽记录不可变，按 roast_id 缓存到 Redis
//
// 缓存不可用时 Get 视为未命中、Set 只记录告警，不影响主流程。
type RoastCache struct {
	ttl time.Duration
}

func NewRoastCache(ttl time.Duration) *RoastCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RoastCache{ttl: ttl}
}

func (c *RoastCache) GetRoast(ctx context.Context, roastId string) (*entity.Roast, bool) {
	raw, err := redis.Get(ctx, keyPrefix+roastId)
	if err != nil {
		if !redis.IsNil(err) {
			zlog.Warn("roast cache get failed", zap.Error(err), zap.String("roast_id", roastId))
		}
		return nil, false
	}

	var roast entity.Roast
	if err := json.Unmarshal([]byte(raw), &roast); err != nil {
		zlog.Warn("roast cache decode failed", zap.Error(err), zap.String("roast_id", roastId))
		return nil, false
	}
	return &roast, true
}

func (c *RoastCache) SetRoast(ctx context.Context, roast *entity.Roast) {
	raw, err := json.Marshal(roast)
	if err != nil {
		zlog.Warn("roast cache encode failed", zap.Error(err), zap.String("roast_id", roast.RoastId))
		return
	}
	if err := redis.Set(ctx, keyPrefix+roast.RoastId, raw, c.ttl); err != nil {
		zlog.Warn("roast cache set failed", zap.Error(err), zap.String("roast_id", roast.RoastId))
	}
}
