package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookmart/admin-service/pkg/kafka"
	md "github.com/bookmart/admin-service/pkg/middleware"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// audit publishes a mutation event, fire-and-forget. A nil enqueuer
// disables auditing.
func (s *Service) audit(ctx context.Context, action, entity, key string) {
	if s.enqueuer == nil {
		return
	}
	event := kafka.AuditEvent{
		EventID: uuid.New().String(),
		Action:  action,
		Entity:  entity,
		Key:     key,
		Actor:   md.Actor(ctx),
		At:      time.Now().UTC(),
	}
	if err := s.enqueuer.Enqueue(kafka.AuditTopic, event); err != nil {
		s.log.Warn("audit enqueue", zap.String("entity", entity), zap.String("key", key), zap.Error(err))
	}
}
