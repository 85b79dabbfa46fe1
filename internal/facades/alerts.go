package facades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=alerts.go -destination=alerts_mock.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AlertKafkaFacade forwards fraud alerts to a Kafka topic.
type AlertKafkaFacade struct {
	writer KafkaWriter
}

// NewAlertKafkaFacade creates a facade around writer. A nil writer turns
// publishing into a logged no-op.
func NewAlertKafkaFacade(writer KafkaWriter) *AlertKafkaFacade {
	return &AlertKafkaFacade{writer: writer}
}

// NewKafkaWriter returns a writer for topic on the given brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// PublishAlerts writes one message per alert, keyed by alert ID, in a single batch.
func (f *AlertKafkaFacade) PublishAlerts(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping alert publishing", "alerts", len(alerts))
		return nil
	}

	msgs := make([]kafka.Message, 0, len(alerts))
	for _, a := range alerts {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal alert %s: %w", a.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(a.ID),
			Value: data,
		})
	}

	if err := f.writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish alerts to Kafka", "alerts", len(alerts), "error", err)
		return fmt.Errorf("publish alerts: %w", err)
	}

	logger.Log.Infow("Alerts published to Kafka", "alerts", len(alerts))
	return nil
}

// Close releases the underlying writer.
func (f *AlertKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
