package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	https_server "RoastMe/api/http"
	"RoastMe/internal/config"
	"RoastMe/internal/initial"
	roastService "RoastMe/internal/modules/roast/application/service"
	roastRepository "RoastMe/internal/modules/roast/domain/repository"
	"RoastMe/internal/modules/roast/infrastructure/cache"
	"RoastMe/internal/modules/roast/infrastructure/event"
	"RoastMe/internal/modules/roast/infrastructure/llm"
	roastPersistence "RoastMe/internal/modules/roast/infrastructure/persistence"
	"RoastMe/internal/modules/roast/infrastructure/pipeline"
	roastHandler "RoastMe/internal/modules/roast/interface/http"
	statusService "RoastMe/internal/modules/status/application/service"
	statusRepository "RoastMe/internal/modules/status/domain/repository"
	statusPersistence "RoastMe/internal/modules/status/infrastructure/persistence"
	statusHandler "RoastMe/internal/modules/status/interface/http"
	"RoastMe/pkg/redis"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()
	zlog.Init(conf.LogConfig.LogPath, conf.LogConfig.Level)
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()
	var closers []func()

	// 2. 存储
	roastRepo, statusRepo, closeStore := mustInitStore(ctx, conf)
	closers = append(closers, closeStore)

	// 3. 生成模型，未配置时所有请求走兜底文案
	var generator pipeline.Generator
	chatModel, meta, err := llm.NewChatModelFromConfig(ctx, conf)
	if err != nil {
		zlog.Warn("chat model unavailable, roasts will use fallback text", zap.Error(err))
		generator = llm.UnavailableGenerator{Reason: err}
	} else {
		zlog.Info("chat model ready", zap.String("provider", meta.Provider), zap.String("model", meta.Model))
		generator = llm.NewChatGenerator(chatModel, meta)
	}

	// 4. 可选组件
	var roastCache roastService.RoastCache
	if initial.InitRedis(conf) {
		roastCache = cache.NewRoastCache(time.Duration(conf.RedisConfig.CacheTTLSeconds) * time.Second)
		closers = append(closers, func() { _ = redis.Close() })
	}

	var events roastService.RoastEventPublisher
	if pub := initial.InitKafka(conf); pub != nil {
		events = event.NewRoastEventPublisher(pub, conf.KafkaConfig.RoastTopic)
		closers = append(closers, func() { _ = pub.Close() })
	}

	roastSvc := roastService.NewRoastService(roastRepo, pipeline.NewRoastPipeline(generator), roastCache, events)
	statusSvc := statusService.NewStatusService(statusRepo)

	ge := https_server.NewEngine(conf,
		roastHandler.NewRoastHandler(roastSvc),
		statusHandler.NewStatusHandler(statusSvc))

	// 5. 启动 HTTP 服务
	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	srv := &http.Server{Addr: addr, Handler: ge}
	go func() {
		zlog.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server start failed", zap.Error(err))
		}
	}()

	// 6. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
	zlog.Info("server stopped")
}

func mustInitStore(ctx context.Context, conf *config.Config) (roastRepository.RoastRepository, statusRepository.StatusCheckRepository, func()) {
	switch conf.StoreConfig.Driver {
	case "mysql":
		db, err := initial.InitGorm(conf)
		if err != nil {
			zlog.Fatal("mysql init failed", zap.Error(err))
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return roastPersistence.NewRoastRepository(db), statusPersistence.NewStatusCheckRepository(db), closeFn

	case "", "mongo":
		client, db, err := initial.InitMongo(ctx, conf)
		if err != nil {
			zlog.Fatal("mongo init failed", zap.Error(err))
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return roastPersistence.NewMongoRoastRepository(db), statusPersistence.NewMongoStatusCheckRepository(db), closeFn

	default:
		zlog.Fatal("unknown store driver", zap.String("driver", conf.StoreConfig.Driver))
		return nil, nil, nil
	}
}
