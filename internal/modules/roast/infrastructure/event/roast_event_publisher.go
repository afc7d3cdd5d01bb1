package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/infrastructure/mq"
)

const EventTypeRoastCreated = "roast.created"

// RoastCreatedEvent 吐槽记录写入成功后发布，不包含用户填写的原始信息
type RoastCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RoastID        string    `json:"roast_id"`
	Intensity      string    `json:"intensity"`
	ProcessingTime float64   `json:"processing_time"`
	CreatedAt      time.Time `json:"created_at"`
}

type RoastEventPublisher struct {
	pub   mq.Publisher
	topic string
}

func NewRoastEventPublisher(pub mq.Publisher, topic string) *RoastEventPublisher {
	return &RoastEventPublisher{pub: pub, topic: topic}
}

func (p *RoastEventPublisher) PublishRoastCreated(ctx context.Context, roast *entity.Roast) error {
	payload, err := json.Marshal(RoastCreatedEvent{
		EventType:      EventTypeRoastCreated,
		RoastID:        roast.RoastId,
		Intensity:      roast.Intensity.String(),
		ProcessingTime: roast.ProcessingTime,
		CreatedAt:      roast.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal roast event: %w", err)
	}

	_, err = p.pub.Publish(ctx, mq.Message{
		Topic:   p.topic,
		Key:     []byte(roast.RoastId),
		Value:   payload,
		Headers: map[string]string{"event_type": EventTypeRoastCreated},
	})
	if err != nil {
		return fmt.Errorf("publish roast event: %w", err)
	}
	return nil
}
