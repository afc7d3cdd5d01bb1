package service

import (
	"context"
	"strings"

	"RoastMe/internal/modules/roast/application/dto/request"
	"RoastMe/internal/modules/roast/application/dto/respond"
	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/domain/repository"
	"RoastMe/internal/modules/roast/infrastructure/pipeline"
	"RoastMe/pkg/util"
	"RoastMe/pkg/xerr"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

const apiStatusOperational = "operational"

// RoastService 吐槽生成与查询
type RoastService interface {
	CreateRoast(ctx context.Context, req request.RoastRequest) (*respond.RoastRespond, error)
	GetRoast(ctx context.Context, roastId string) (*respond.RoastRespond, error)
	GetStats(ctx context.Context) (*respond.RoastStatsRespond, error)
}

// RoastCache 可选的查询缓存
type RoastCache interface {
	GetRoast(ctx context.Context, roastId string) (*entity.Roast, bool)
	SetRoast(ctx context.Context, roast *entity.Roast)
}

// RoastEventPublisher 可选的事件发布
type RoastEventPublisher interface {
	PublishRoastCreated(ctx context.Context, roast *entity.Roast) error
}

type roastServiceImpl struct {
	repo     repository.RoastRepository
	pipeline *pipeline.RoastPipeline
	cache    RoastCache
	events   RoastEventPublisher
}

// NewRoastService cache 与 events 可以为 nil
func NewRoastService(
	repo repository.RoastRepository,
	pipe *pipeline.RoastPipeline,
	cache RoastCache,
	events RoastEventPublisher,
) RoastService {
	return &roastServiceImpl{
		repo:     repo,
		pipeline: pipe,
		cache:    cache,
		events:   events,
	}
}

func (s *roastServiceImpl) CreateRoast(ctx context.Context, req request.RoastRequest) (*respond.RoastRespond, error) {
	userData, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	result, err := s.pipeline.Execute(ctx, userData)
	if err != nil {
		zlog.Error("roast pipeline failed", zap.Error(err))
		return nil, xerr.ErrRoastFailed
	}

	roast := &entity.Roast{
		RoastId:        util.GenerateUUID(),
		Content:        result.Text,
		Intensity:      userData.RoastIntensity,
		UserData:       userData,
		CreatedAt:      util.NowUTC(),
		ProcessingTime: result.Elapsed.Seconds(),
	}

	if err := s.repo.CreateRoast(ctx, roast); err != nil {
		zlog.Error("save roast failed",
			zap.Error(err),
			zap.String("roast_id", roast.RoastId))
		return nil, xerr.ErrRoastFailed
	}

	if s.events != nil {
		if err := s.events.PublishRoastCreated(ctx, roast); err != nil {
			zlog.Warn("publish roast event failed",
				zap.Error(err),
				zap.String("roast_id", roast.RoastId))
		}
	}

	zlog.Info("roast generated",
		zap.String("roast_id", roast.RoastId),
		zap.String("intensity", roast.Intensity.String()),
		zap.Bool("fallback", result.FellBack),
		zap.Float64("processing_time", roast.ProcessingTime))

	return toRoastRespond(roast), nil
}

func (s *roastServiceImpl) GetRoast(ctx context.Context, roastId string) (*respond.RoastRespond, error) {
	roastId = strings.TrimSpace(roastId)
	if roastId == "" {
		return nil, xerr.ErrRoastNotFound
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetRoast(ctx, roastId); ok {
			return toRoastRespond(cached), nil
		}
	}

	roast, err := s.repo.GetRoastByRoastID(ctx, roastId)
	if err != nil {
		zlog.Error("get roast failed", zap.Error(err), zap.String("roast_id", roastId))
		return nil, err
	}
	if roast == nil {
		return nil, xerr.ErrRoastNotFound
	}

	if s.cache != nil {
		s.cache.SetRoast(ctx, roast)
	}
	return toRoastRespond(roast), nil
}

func (s *roastServiceImpl) GetStats(ctx context.Context) (*respond.RoastStatsRespond, error) {
	total, err := s.repo.CountRoasts(ctx)
	if err != nil {
		zlog.Error("count roasts failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.CountRoastsByIntensity(ctx)
	if err != nil {
		zlog.Error("count roasts by intensity failed", zap.Error(err))
		return nil, err
	}

	buckets := make([]respond.IntensityBucket, 0, len(counts))
	for _, c := range counts {
		buckets = append(buckets, respond.IntensityBucket{
			Intensity: c.Intensity.String(),
			Count:     c.Count,
		})
	}

	return &respond.RoastStatsRespond{
		TotalRoasts:           total,
		IntensityDistribution: buckets,
		ApiStatus:             apiStatusOperational,
	}, nil
}

// normalizeRequest 去除首尾空白并解析强度，非法强度在进入 Prompt 拼装前被拒绝
func normalizeRequest(req request.RoastRequest) (entity.UserData, error) {
	u := entity.UserData{
		Name:             strings.TrimSpace(req.Name),
		Age:              strings.TrimSpace(req.Age),
		Appearance:       strings.TrimSpace(req.Appearance),
		Hobbies:          strings.TrimSpace(req.Hobbies),
		Personality:      strings.TrimSpace(req.Personality),
		Occupation:       strings.TrimSpace(req.Occupation),
		EmbarrassingFact: strings.TrimSpace(req.EmbarrassingFact),
	}
	if u.Name == "" || u.Age == "" {
		return entity.UserData{}, xerr.ErrParam
	}

	intensity, err := entity.ParseIntensity(req.RoastIntensity)
	if err != nil {
		return entity.UserData{}, xerr.ErrInvalidIntensity
	}
	u.RoastIntensity = intensity
	return u, nil
}

func toRoastRespond(r *entity.Roast) *respond.RoastRespond {
	return &respond.RoastRespond{
		Id:             r.RoastId,
		Roast:          r.Content,
		Intensity:      r.Intensity.String(),
		UserData:       r.UserData,
		CreatedAt:      r.CreatedAt,
		ProcessingTime: r.ProcessingTime,
	}
}
