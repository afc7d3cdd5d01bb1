package repository

import (
	"context"

	"RoastMe/internal/modules/roast/domain/entity"
)

// RoastRepository 吐槽记录存储，只追加不修改
type RoastRepository interface {
	CreateRoast(ctx context.Context, roast *entity.Roast) error
	// GetRoastByRoastID 记录不存在时返回 (nil, nil)
	GetRoastByRoastID(ctx context.Context, roastId string) (*entity.Roast, error)
	CountRoasts(ctx context.Context) (int64, error)
	// CountRoastsByIntensity 按数量降序，数量相同按强度名升序
	CountRoastsByIntensity(ctx context.Context) ([]entity.IntensityCount, error)
}
