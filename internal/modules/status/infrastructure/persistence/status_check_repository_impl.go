package persistence

import (
	"context"

	"RoastMe/internal/modules/status/domain/entity"
	"RoastMe/internal/modules/status/domain/repository"

	"gorm.io/gorm"
)

type statusCheckRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) repository.StatusCheckRepository {
	return &statusCheckRepositoryImpl{db: db}
}

func (r *statusCheckRepositoryImpl) CreateStatusCheck(ctx context.Context, check *entity.StatusCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *statusCheckRepositoryImpl) ListStatusChecks(ctx context.Context, limit int) ([]entity.StatusCheck, error) {
	var checks []entity.StatusCheck
	err := r.db.WithContext(ctx).
		Order("timestamp ASC, id ASC").
		Limit(limit).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}
