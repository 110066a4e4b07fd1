package facades

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the subset of *kafka.Writer used for publishing.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ScoreEventsKafkaFacade publishes score events to a Kafka topic.
type ScoreEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewScoreEventsKafkaFacade creates a new facade over a Kafka writer.
func NewScoreEventsKafkaFacade(writer KafkaWriter) *ScoreEventsKafkaFacade {
	return &ScoreEventsKafkaFacade{writer: writer}
}

// Publish writes the event as JSON keyed by its event id.
func (f *ScoreEventsKafkaFacade) Publish(ctx context.Context, event models.ScoreEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish score event to Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	logger.Log.Infow("score event published to Kafka", "event_id", event.EventID, "user_id", event.UserID, "score", event.Score)
	return nil
}

// RedisPublisher is the subset of *redis.Client used for pub/sub.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// ScoreEventsRedisFacade publishes score events to a Redis pub/sub channel.
type ScoreEventsRedisFacade struct {
	client  RedisPublisher
	channel string
}

// NewScoreEventsRedisFacade creates a new facade over a Redis client.
func NewScoreEventsRedisFacade(client RedisPublisher, channel string) *ScoreEventsRedisFacade {
	return &ScoreEventsRedisFacade{client: client, channel: channel}
}

// Publish sends the event as JSON on the configured channel.
func (f *ScoreEventsRedisFacade) Publish(ctx context.Context, event models.ScoreEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	receivers, err := f.client.Publish(ctx, f.channel, data).Result()
	if err != nil {
		logger.Log.Errorw("failed to publish score event to Redis", "event_id", event.EventID, "channel", f.channel, "error", err)
		return err
	}

	logger.Log.Infow("score event published to Redis", "event_id", event.EventID, "channel", f.channel, "receivers", receivers)
	return nil
}
