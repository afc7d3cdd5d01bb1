package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/infrastructure/mq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	msgs []mq.Message
	err  error
}

func (r *recordingPublisher) Publish(ctx context.Context, msg mq.Message) (mq.PublishResult, error) {
	r.msgs = append(r.msgs, msg)
	return mq.PublishResult{}, r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestPublishRoastCreated(t *testing.T) {
	rec := &recordingPublisher{}
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	roast := &entity.Roast{
		RoastId:        "abc",
		Content:        "burn",
		Intensity:      entity.IntensitySavage,
		UserData:       entity.UserData{Name: "Sam", Age: "30", EmbarrassingFact: "secret"},
		CreatedAt:      createdAt,
		ProcessingTime: 2.5,
	}

	require.NoError(t, NewRoastEventPublisher(rec, "roasts").PublishRoastCreated(context.Background(), roast))

	require.Len(t, rec.msgs, 1)
	msg := rec.msgs[0]
	assert.Equal(t, "roasts", msg.Topic)
	assert.Equal(t, []byte("abc"), msg.Key)
	assert.Equal(t, EventTypeRoastCreated, msg.Headers["event_type"])
	assert.NotContains(t, string(msg.Value), "secret")

	var evt RoastCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, RoastCreatedEvent{
		EventType:      EventTypeRoastCreated,
		RoastID:        "abc",
		Intensity:      "savage",
		ProcessingTime: 2.5,
		CreatedAt:      createdAt,
	}, evt)
}

func TestPublishRoastCreatedError(t *testing.T) {
	rec := &recordingPublisher{err: errors.New("broker down")}

	err := NewRoastEventPublisher(rec, "roasts").PublishRoastCreated(context.Background(), &entity.Roast{RoastId: "x"})
	assert.ErrorContains(t, err, "broker down")
}
