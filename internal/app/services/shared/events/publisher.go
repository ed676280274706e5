package events

import (
	"context"
	"errors"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event is the message body published for downstream consumers.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitMQPublisher struct {
	ch       channel
	queue    string
	confirms <-chan amqp.Confirmation
	log      *zap.Logger
	mu       sync.Mutex
}

// NewRabbitMQPublisher declares the durable queue, enables publisher confirms
// and returns a publisher writing to that queue.
func NewRabbitMQPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newPublisher(ch, queue, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), logger), nil
}

func newPublisher(ch channel, queue string, confirms <-chan amqp.Confirmation, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		ch:       ch,
		queue:    queue,
		confirms: confirms,
		log:      logger,
	}
}

// Publish sends a persistent message and waits for the broker confirm.
func (p *rabbitMQPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingQueueKey, p.queue),
	)

	body, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Type:          eventType,
		CorrelationId: requestID,
		Timestamp:     time.Now().UTC(),
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("rabbitMQPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPublishEvent(err, p.queue)
	}

	if p.confirms != nil {
		select {
		case confirmed := <-p.confirms:
			if !confirmed.Ack {
				return exceptions.ErrPublishEvent(errors.New(constvars.ErrDevEventNotConfirmed), p.queue)
			}
		case <-ctx.Done():
			return exceptions.ErrPublishEvent(ctx.Err(), p.queue)
		}
	}

	p.log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
