package persistence

import (
	"context"
	"testing"
	"time"

	"RoastMe/internal/modules/status/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStatusCheckRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewMongoStatusCheckRepository(mt.DB).CreateStatusCheck(ctx, &entity.StatusCheck{
			StatusId:   "s1",
			ClientName: "probe",
			Timestamp:  time.Now().UTC(),
		})
		assert.NoError(mt, err)
	})

	mt.Run("list", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + StatusCheckCollection
		ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "id", Value: "s1"},
				{Key: "client_name", Value: "alpha"},
				{Key: "timestamp", Value: primitive.NewDateTimeFromTime(ts)},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "id", Value: "s2"},
				{Key: "client_name", Value: "beta"},
				{Key: "timestamp", Value: primitive.NewDateTimeFromTime(ts.Add(time.Second))},
			},
		))

		got, err := NewMongoStatusCheckRepository(mt.DB).ListStatusChecks(ctx, 1000)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "s1", got[0].StatusId)
		assert.Equal(mt, "alpha", got[0].ClientName)
		assert.True(mt, ts.Equal(got[0].Timestamp))
		assert.Equal(mt, "beta", got[1].ClientName)
	})

	mt.Run("list error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))

		_, err := NewMongoStatusCheckRepository(mt.DB).ListStatusChecks(ctx, 1000)
		assert.Error(mt, err)
	})
}
