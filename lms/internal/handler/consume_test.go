package handler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/handler"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	good, err := kafka.EncodeEvent(kafka.AuditEvent{
		ID:        "a1",
		Timestamp: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Entity:    kafka.EntityBook,
		EntityID:  7,
		Action:    "borrow",
		ActorID:   3,
	})
	require.NoError(t, err)
	retry, err := kafka.EncodeEvent(kafka.AuditEvent{ID: "a2", Entity: kafka.EntityUser})
	require.NoError(t, err)

	var recorded []string
	record := func(_ context.Context, e kafka.AuditEvent) error {
		if e.ID == "a2" {
			return errors.New("db down")
		}
		recorded = append(recorded, e.ID)
		return nil
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Topic: kafka.AuditTopic, Offset: 1, Value: good}
	claim.messages <- &sarama.ConsumerMessage{Topic: kafka.AuditTopic, Offset: 2, Value: []byte("{broken")}
	claim.messages <- &sarama.ConsumerMessage{Topic: kafka.AuditTopic, Offset: 3, Value: retry}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	c := handler.NewConsumer(record, zap.NewNop())
	require.NoError(t, c.ConsumeClaim(session, claim))

	require.Equal(t, []string{"a1"}, recorded)
	// the failed write stays unmarked so the group redelivers it
	require.Equal(t, []int64{1, 2}, session.marked)
}
