package persistence

import (
	"context"
	"time"

	"RoastMe/internal/modules/status/domain/entity"
	"RoastMe/internal/modules/status/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const StatusCheckCollection = "status_checks"

type statusCheckDocument struct {
	ID         string    `bson:"id"`
	ClientName string    `bson:"client_name"`
	Timestamp  time.Time `bson:"timestamp"`
}

type mongoStatusCheckRepositoryImpl struct {
	coll *mongo.Collection
}

func NewMongoStatusCheckRepository(db *mongo.Database) repository.StatusCheckRepository {
	return &mongoStatusCheckRepositoryImpl{coll: db.Collection(StatusCheckCollection)}
}

func (r *mongoStatusCheckRepositoryImpl) CreateStatusCheck(ctx context.Context, check *entity.StatusCheck) error {
	_, err := r.coll.InsertOne(ctx, statusCheckDocument{
		ID:         check.StatusId,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	})
	return err
}

func (r *mongoStatusCheckRepositoryImpl) ListStatusChecks(ctx context.Context, limit int) ([]entity.StatusCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []statusCheckDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	checks := make([]entity.StatusCheck, 0, len(docs))
	for _, d := range docs {
		checks = append(checks, entity.StatusCheck{
			StatusId:   d.ID,
			ClientName: d.ClientName,
			Timestamp:  d.Timestamp.UTC(),
		})
	}
	return checks, nil
}
