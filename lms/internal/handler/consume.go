package handler

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/pkg/kafka"
)

type recordAudit func(ctx context.Context, e kafka.AuditEvent) error

// Consumer persists audit events from the audit topic.
type Consumer struct {
	record recordAudit
	log    *zap.Logger
}

func NewConsumer(record recordAudit, log *zap.Logger) *Consumer {
	return &Consumer{
		record: record,
		log:    log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			e, err := kafka.DecodeEvent(message.Value)
			if err != nil {
				// a malformed event will never decode, skip it
				consumer.log.Error("kafka.DecodeEvent", zap.Error(err), zap.ByteString("value", message.Value))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.record(session.Context(), e); err != nil {
				consumer.log.Error("consumer.record", zap.Error(err), zap.String("event_id", e.ID))
				continue
			}

			consumer.log.Debug("Message claimed:",
				zap.String("event_id", e.ID),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
