package reportqueue

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "report_analysis_queue"
	DeadLetterQueueName = "report_analysis_dlq"
)

// Service manages the RabbitMQ queues backing report analysis. Jobs are
// persistent and published with confirms so an accepted upload cannot be
// silently dropped.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, enables confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// QueuedItem pairs a fetched delivery with its decoded job.
type QueuedItem struct {
	DeliveryTag uint64
	Job         contracts.ReportJob
}

// Enqueue publishes a job to the standard queue and waits for the confirm.
func (s *Service) Enqueue(ctx context.Context, job contracts.ReportJob) error {
	s.log.Info("ReportQueue.Enqueue called",
		zap.String(constvars.LoggingReportIDKey, job.ReportID))
	return s.publish(ctx, StandardQueueName, job)
}

// Reenqueue publishes the (possibly modified) job to the tail of the standard queue.
func (s *Service) Reenqueue(ctx context.Context, job contracts.ReportJob) error {
	s.log.Info("ReportQueue.Reenqueue called",
		zap.String(constvars.LoggingReportIDKey, job.ReportID),
		zap.Int("failed_count", job.FailedCount))
	return s.publish(ctx, StandardQueueName, job)
}

// EnqueueToDeadQueue moves the job to the DLQ after retries are exhausted.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, job contracts.ReportJob) error {
	s.log.Warn("ReportQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingReportIDKey, job.ReportID),
		zap.Int("failed_count", job.FailedCount))
	return s.publish(ctx, DeadLetterQueueName, job)
}

// FetchN retrieves up to max jobs using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	n := max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var job contracts.ReportJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			// invalid payload goes straight to the DLQ to avoid a poison loop
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Job: job})
	}

	return items, nil
}

// AckMessage acknowledges a delivery so it is removed from the queue.
func (s *Service) AckMessage(ctx context.Context, deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) publish(ctx context.Context, queue string, job contracts.ReportJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
