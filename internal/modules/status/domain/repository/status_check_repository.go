package repository

import (
	"context"

	"RoastMe/internal/modules/status/domain/entity"
)

type StatusCheckRepository interface {
	CreateStatusCheck(ctx context.Context, check *entity.StatusCheck) error
	// ListStatusChecks 按写入时间升序，最多 limit 条
	ListStatusChecks(ctx context.Context, limit int) ([]entity.StatusCheck, error)
}
