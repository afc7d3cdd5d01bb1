package kafka

import (
	"context"
	"errors"
	"testing"

	"RoastMe/internal/modules/roast/infrastructure/mq"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"roast_id":"abc"}` {
			return errors.New("unexpected payload: " + string(val))
		}
		return nil
	})
	pub := NewPublisherFromProducer(sp)

	_, err := pub.Publish(context.Background(), mq.Message{
		Topic:   "roast.created",
		Key:     []byte("abc"),
		Value:   []byte(`{"roast_id":"abc"}`),
		Headers: map[string]string{"event_type": "roast.created", " ": "skipped"},
	})
	require.NoError(t, err)
	require.NoError(t, pub.Close())
}

func TestPublisherSendFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	pub := NewPublisherFromProducer(sp)

	_, err := pub.Publish(context.Background(), mq.Message{Topic: "roast.created", Value: []byte("x")})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func TestPublisherRejectsBeforeSending(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	pub := NewPublisherFromProducer(sp)

	_, err := pub.Publish(context.Background(), mq.Message{Topic: " "})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pub.Publish(ctx, mq.Message{Topic: "roast.created"})
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, pub.Close())
}

func TestConfigValidation(t *testing.T) {
	_, err := NewSaramaPublisher(PublisherConfig{})
	assert.Error(t, err)

	assert.Error(t, EnsureTopic(TopicAdminConfig{}, "roast.created", 1, 1))
	assert.Error(t, EnsureTopic(TopicAdminConfig{Brokers: []string{"127.0.0.1:1"}}, " ", 1, 1))
}
