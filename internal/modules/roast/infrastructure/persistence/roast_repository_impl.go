package persistence

import (
	"context"
	"errors"
	"strings"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/domain/repository"

	"gorm.io/gorm"
)

type roastRepositoryImpl struct {
	db *gorm.DB
}

func NewRoastRepository(db *gorm.DB) repository.RoastRepository {
	return &roastRepositoryImpl{db: db}
}

func (r *roastRepositoryImpl) CreateRoast(ctx context.Context, roast *entity.Roast) error {
	return r.db.WithContext(ctx).Create(roast).Error
}

func (r *roastRepositoryImpl) GetRoastByRoastID(ctx context.Context, roastId string) (*entity.Roast, error) {
	roastId = strings.TrimSpace(roastId)
	if roastId == "" {
		return nil, nil
	}

	var roast entity.Roast
	err := r.db.WithContext(ctx).
		Where("roast_id = ?", roastId).
		Take(&roast).Error
	if err == nil {
		return &roast, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

func (r *roastRepositoryImpl) CountRoasts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Roast{}).Count(&n).Error
	return n, err
}

func (r *roastRepositoryImpl) CountRoastsByIntensity(ctx context.Context) ([]entity.IntensityCount, error) {
	var rows []entity.IntensityCount
	err := r.db.WithContext(ctx).Model(&entity.Roast{}).
		Select("intensity, COUNT(*) AS count").
		Group("intensity").
		Order("count DESC, intensity ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
