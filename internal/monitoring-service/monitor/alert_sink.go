package monitor

import (
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// AlertSink forwards created alerts to the delivery pipeline. The orchestrator
// treats publish failures as non-fatal; the alert row is already persisted.
type AlertSink interface {
	Publish(ctx context.Context, event model.AlertEvent) error
}

type kafkaAlertSink struct {
	kafka infra.KafkaWriter
}

func (k *kafkaAlertSink) Publish(ctx context.Context, event model.AlertEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafkaAlertSink.Publish: %w", err)
	}
	err = k.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.WebsiteID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("kafkaAlertSink.Publish: %w", err)
	}
	return nil
}

func NewKafkaAlertSink(kafkaWriter infra.KafkaWriter) AlertSink {
	return &kafkaAlertSink{
		kafka: kafkaWriter,
	}
}
