package repository

import (
	"context"

	"QuantScout/internal/domain/models"
	"QuantScout/pkg/kafka"
)

// KafkaScanPublisher streams completed scans to a Kafka topic, keyed by scan
// timestamp so a partitioned topic keeps passes in order per partition.
type KafkaScanPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaScanPublisher(producer *kafka.Producer, topic string) *KafkaScanPublisher {
	return &KafkaScanPublisher{producer: producer, topic: topic}
}

func (p *KafkaScanPublisher) PublishScan(ctx context.Context, res *models.ScanResult) error {
	key := []byte(res.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))
	return p.producer.Publish(ctx, p.topic, key, res)
}

func (p *KafkaScanPublisher) Close() error {
	return p.producer.Close()
}
