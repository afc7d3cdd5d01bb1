package service

import (
	"context"
	"strings"

	"RoastMe/internal/modules/status/application/dto/request"
	"RoastMe/internal/modules/status/application/dto/respond"
	"RoastMe/internal/modules/status/domain/entity"
	"RoastMe/internal/modules/status/domain/repository"
	"RoastMe/pkg/util"
	"RoastMe/pkg/xerr"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

// ListLimit 单次列出的最大条数
const ListLimit = 1000

type StatusService interface {
	CreateStatusCheck(ctx context.Context, req request.StatusCheckRequest) (*respond.StatusCheckRespond, error)
	ListStatusChecks(ctx context.Context) ([]respond.StatusCheckRespond, error)
}

type statusServiceImpl struct {
	repo repository.StatusCheckRepository
}

func NewStatusService(repo repository.StatusCheckRepository) StatusService {
	return &statusServiceImpl{repo: repo}
}

func (s *statusServiceImpl) CreateStatusCheck(ctx context.Context, req request.StatusCheckRequest) (*respond.StatusCheckRespond, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, xerr.ErrParam
	}

	check := &entity.StatusCheck{
		StatusId:   util.GenerateUUID(),
		ClientName: name,
		Timestamp:  util.NowUTC(),
	}
	if err := s.repo.CreateStatusCheck(ctx, check); err != nil {
		zlog.Error("save status check failed", zap.Error(err), zap.String("client_name", name))
		return nil, xerr.ErrServerError
	}

	out := toStatusCheckRespond(check)
	return &out, nil
}

func (s *statusServiceImpl) ListStatusChecks(ctx context.Context) ([]respond.StatusCheckRespond, error) {
	checks, err := s.repo.ListStatusChecks(ctx, ListLimit)
	if err != nil {
		zlog.Error("list status checks failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}

	out := make([]respond.StatusCheckRespond, 0, len(checks))
	for i := range checks {
		out = append(out, toStatusCheckRespond(&checks[i]))
	}
	return out, nil
}

func toStatusCheckRespond(c *entity.StatusCheck) respond.StatusCheckRespond {
	return respond.StatusCheckRespond{
		Id:         c.StatusId,
		ClientName: c.ClientName,
		Timestamp:  c.Timestamp,
	}
}
