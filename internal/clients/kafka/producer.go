package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	EventsTopic() string
}

// Producer publishes expense events keyed by user, so one user's events keep
// their order within a partition.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers(), newSaramaConfig())
	if err != nil {
		return nil, errors.Wrap(err, "create sync producer")
	}
	return NewProducerWith(producer, cfg.EventsTopic()), nil
}

func newSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Partitioner = sarama.NewHashPartitioner
	return config
}

func NewProducerWith(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) Publish(ctx context.Context, event expense.Event) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishEvent")
	defer span.Finish()
	span.SetTag("type", string(event.Type))

	message, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return errors.Wrap(err, "send event")
	}
	logger.Debug("event published",
		zap.String("type", string(event.Type)), zap.Int32("partition", partition), zap.Int64("offset", offset))
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
