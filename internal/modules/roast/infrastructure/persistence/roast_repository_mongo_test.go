package persistence

import (
	"context"
	"testing"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func roastNS(mt *mtest.T) string {
	return mt.DB.Name() + "." + RoastCollection
}

func TestMongoRoastRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewMongoRoastRepository(mt.DB).CreateRoast(ctx, newRoast(entity.IntensitySavage))
		assert.NoError(mt, err)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := NewMongoRoastRepository(mt.DB).CreateRoast(ctx, newRoast(entity.IntensitySavage))
		assert.Error(mt, err)
	})

	mt.Run("find by roast id", func(mt *mtest.T) {
		createdAt := time.Date(2024, 5, 1, 12, 30, 0, 123_000_000, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, roastNS(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "id", Value: "abc"},
			{Key: "roast_id", Value: "abc"},
			{Key: "roast", Value: "line one"},
			{Key: "intensity", Value: "light"},
			{Key: "user_data", Value: bson.D{
				{Key: "name", Value: "Sam"},
				{Key: "age", Value: "30"},
				{Key: "occupation", Value: ""},
				{Key: "roast_intensity", Value: "light"},
			}},
			{Key: "created_at", Value: primitive.NewDateTimeFromTime(createdAt)},
			{Key: "processing_time", Value: 0.5},
		}))

		got, err := NewMongoRoastRepository(mt.DB).GetRoastByRoastID(ctx, "abc")
		require.NoError(mt, err)
		require.NotNil(mt, got)

		assert.Equal(mt, "abc", got.RoastId)
		assert.Equal(mt, "line one", got.Content)
		assert.Equal(mt, entity.IntensityLight, got.Intensity)
		assert.Equal(mt, entity.UserData{Name: "Sam", Age: "30", RoastIntensity: entity.IntensityLight}, got.UserData)
		assert.True(mt, createdAt.Equal(got.CreatedAt))
		assert.Equal(mt, 0.5, got.ProcessingTime)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, roastNS(mt), mtest.FirstBatch))

		got, err := NewMongoRoastRepository(mt.DB).GetRoastByRoastID(ctx, "nope")
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, roastNS(mt), mtest.FirstBatch, bson.D{
			{Key: "n", Value: int32(3)},
		}))

		n, err := NewMongoRoastRepository(mt.DB).CountRoasts(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("count by intensity", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, roastNS(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "savage"}, {Key: "count", Value: int32(2)}},
			bson.D{{Key: "_id", Value: "light"}, {Key: "count", Value: int32(1)}},
		))

		counts, err := NewMongoRoastRepository(mt.DB).CountRoastsByIntensity(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []entity.IntensityCount{
			{Intensity: entity.IntensitySavage, Count: 2},
			{Intensity: entity.IntensityLight, Count: 1},
		}, counts)
	})
}

func TestRoastDocumentMapping(t *testing.T) {
	r := newRoast(entity.IntensityMedium)

	doc := toRoastDocument(r)
	assert.Equal(t, r.RoastId, doc.ID)
	assert.Equal(t, r.RoastId, doc.RoastID)

	back := doc.toEntity()
	assert.Equal(t, r.RoastId, back.RoastId)
	assert.Equal(t, r.Content, back.Content)
	assert.Equal(t, r.Intensity, back.Intensity)
	assert.Equal(t, r.UserData, back.UserData)
	assert.True(t, r.CreatedAt.Equal(back.CreatedAt))
}
