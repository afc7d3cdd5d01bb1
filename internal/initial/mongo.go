package initial

import (
	"context"
	"fmt"
	"time"

	"RoastMe/internal/config"
	roastPersistence "RoastMe/internal/modules/roast/infrastructure/persistence"
	"RoastMe/pkg/zlog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// InitMongo 连接 MongoDB，确认可用后创建 roasts 索引
func InitMongo(ctx context.Context, conf *config.Config) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(conf.MongoConfig.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(conf.MongoConfig.URI).
		SetAppName(conf.AppName).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(conf.MongoConfig.DatabaseName)
	if err := roastPersistence.EnsureRoastIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure roast indexes: %w", err)
	}

	zlog.Info("mongo connected", zap.String("database", db.Name()))
	return client, db, nil
}
