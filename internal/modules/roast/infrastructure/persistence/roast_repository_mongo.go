package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RoastCollection = "roasts"

// roastDocument roasts 集合中的文档，id 与 roast_id 保存同一个值
type roastDocument struct {
	ID             string          `bson:"id"`
	RoastID        string          `bson:"roast_id"`
	Roast          string          `bson:"roast"`
	Intensity      string          `bson:"intensity"`
	UserData       entity.UserData `bson:"user_data"`
	CreatedAt      time.Time       `bson:"created_at"`
	ProcessingTime float64         `bson:"processing_time"`
}

func toRoastDocument(r *entity.Roast) roastDocument {
	return roastDocument{
		ID:             r.RoastId,
		RoastID:        r.RoastId,
		Roast:          r.Content,
		Intensity:      r.Intensity.String(),
		UserData:       r.UserData,
		CreatedAt:      r.CreatedAt,
		ProcessingTime: r.ProcessingTime,
	}
}

func (d roastDocument) toEntity() *entity.Roast {
	return &entity.Roast{
		RoastId:        d.RoastID,
		Content:        d.Roast,
		Intensity:      entity.Intensity(d.Intensity),
		UserData:       d.UserData,
		CreatedAt:      d.CreatedAt.UTC(),
		ProcessingTime: d.ProcessingTime,
	}
}

type mongoRoastRepositoryImpl struct {
	coll *mongo.Collection
}

func NewMongoRoastRepository(db *mongo.Database) repository.RoastRepository {
	return &mongoRoastRepositoryImpl{coll: db.Collection(RoastCollection)}
}

// EnsureRoastIndexes roast_id 唯一索引，intensity 普通索引
func EnsureRoastIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(RoastCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "roast_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_roast_id"),
		},
		{
			Keys:    bson.D{{Key: "intensity", Value: 1}},
			Options: options.Index().SetName("idx_intensity"),
		},
	})
	return err
}

func (r *mongoRoastRepositoryImpl) CreateRoast(ctx context.Context, roast *entity.Roast) error {
	_, err := r.coll.InsertOne(ctx, toRoastDocument(roast))
	return err
}

func (r *mongoRoastRepositoryImpl) GetRoastByRoastID(ctx context.Context, roastId string) (*entity.Roast, error) {
	roastId = strings.TrimSpace(roastId)
	if roastId == "" {
		return nil, nil
	}

	var doc roastDocument
	err := r.coll.FindOne(ctx, bson.M{"roast_id": roastId}).Decode(&doc)
	if err == nil {
		return doc.toEntity(), nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return nil, err
}

func (r *mongoRoastRepositoryImpl) CountRoasts(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *mongoRoastRepositoryImpl) CountRoastsByIntensity(ctx context.Context) ([]entity.IntensityCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$intensity"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Intensity string `bson:"_id"`
		Count     int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make([]entity.IntensityCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.IntensityCount{
			Intensity: entity.Intensity(row.Intensity),
			Count:     row.Count,
		})
	}
	return counts, nil
}
