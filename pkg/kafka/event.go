package kafka

import (
	"context"
	"time"

	"github.com/Astemirdum/lms-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
)

type Entity string

const (
	EntityBook Entity = "book"
	EntityUser Entity = "user"
)

type AuditEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Entity    Entity    `json:"entity"`
	EntityID  int       `json:"entityId"`
	Action    string    `json:"action"`
	ActorID   int       `json:"actorId"`
	Details   string    `json:"details"`
}

func EncodeEvent(e AuditEvent) ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(e)
}

func DecodeEvent(data []byte) (AuditEvent, error) {
	var e AuditEvent
	err := jsoniter.ConfigFastest.Unmarshal(data, &e)
	return e, err
}

type eventLog struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewEventLog publishes audit events through a circuit breaker so a dead broker fails fast.
func NewEventLog(producer sarama.SyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 10*time.Second, 0.5, 2),
	}
}

func (l *eventLog) Log(_ context.Context, e AuditEvent) error {
	if l == nil {
		return nil
	}
	data, err := EncodeEvent(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(e.Entity),
		Value: sarama.ByteEncoder(data),
	}
	return l.cb.Call(func() error {
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}
