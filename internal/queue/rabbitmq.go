package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
)

var (
	ErrDisabled         = errors.New("task queue disabled")
	ErrConnectionClosed = errors.New("task queue connection closed")
)

// Handler processes one message body. A nil return acknowledges the message.
type Handler func(ctx context.Context, body []byte) error

type Config struct {
	URL      string
	Exchange string
	Prefetch int
	Classes  []domain.QueueClass
}

// RabbitMQ is a topic-routed task queue. A RabbitMQ built from an empty URL
// is disabled: Publish logs and drops, Consume returns ErrDisabled.
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	mu       sync.Mutex
	exchange string
	prefetch int
	logger   zerolog.Logger
}

func NewRabbitMQ(cfg Config, logger zerolog.Logger) (*RabbitMQ, error) {
	logger = logger.With().Str("component", "queue").Logger()

	if cfg.URL == "" {
		logger.Warn().Msg("rabbitmq url not configured, task queue disabled")
		return &RabbitMQ{logger: logger}, nil
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 1
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg.Exchange, cfg.Classes); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info().
		Str("exchange", cfg.Exchange).
		Int("classes", len(cfg.Classes)).
		Msg("connected to rabbitmq")

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefetch: cfg.Prefetch,
		logger:   logger,
	}, nil
}

func QueueName(class domain.QueueClass) string {
	return string(class) + "_queue"
}

func DeadLetterQueueName(class domain.QueueClass) string {
	return string(class) + "_dead"
}

func RoutingKey(class domain.QueueClass, verb string) string {
	return string(class) + "." + verb
}

func declareTopology(ch *amqp.Channel, exchange string, classes []domain.QueueClass) error {
	dlx := exchange + ".dlx"

	for _, name := range []string{exchange, dlx} {
		if err := ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
	}

	for _, class := range classes {
		pattern := string(class) + ".*"

		dead, err := ch.QueueDeclare(DeadLetterQueueName(class), true, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", DeadLetterQueueName(class), err)
		}
		if err := ch.QueueBind(dead.Name, pattern, dlx, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", dead.Name, err)
		}

		q, err := ch.QueueDeclare(QueueName(class), true, false, false, false, amqp.Table{
			"x-dead-letter-exchange": dlx,
		})
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", QueueName(class), err)
		}
		if err := ch.QueueBind(q.Name, pattern, exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", q.Name, err)
		}
	}
	return nil
}

func (r *RabbitMQ) Enabled() bool {
	return r.conn != nil
}

// Publish sends payload as a persistent JSON message routed by "<class>.<verb>".
func (r *RabbitMQ) Publish(ctx context.Context, class domain.QueueClass, verb string, payload any) error {
	key := RoutingKey(class, verb)
	if !r.Enabled() {
		r.logger.Warn().Str("routing_key", key).Msg("task queue disabled, message dropped")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	r.mu.Lock()
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Type:         string(class),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug().Str("routing_key", key).Msg("published task")

	return nil
}

// Consume delivers messages of class to handler one at a time until ctx is
// cancelled or the connection drops. Losing the connection returns
// ErrConnectionClosed; the owning process is expected to exit and restart.
func (r *RabbitMQ) Consume(ctx context.Context, class domain.QueueClass, handler Handler) error {
	if !r.Enabled() {
		return ErrDisabled
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(r.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(QueueName(class), "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming %s: %w", QueueName(class), err)
	}

	log := r.logger.With().Str("queue", QueueName(class)).Logger()
	log.Info().Msg("consumer started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("%s: %w", QueueName(class), ErrConnectionClosed)
			}
			settle(ctx, d, handler, log)
		}
	}
}

// settle runs handler and acknowledges d according to the outcome: success
// acks, ErrMalformed dead-letters, anything else requeues for redelivery.
func settle(ctx context.Context, d amqp.Delivery, handler Handler, log zerolog.Logger) {
	err := safeHandle(ctx, d.Body, handler)

	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			log.Error().Err(ackErr).Str("message_id", d.MessageId).Msg("ack failed")
		}
	case errors.Is(err, ErrMalformed):
		log.Warn().Err(err).Str("message_id", d.MessageId).Msg("malformed message dead-lettered")
		if nackErr := d.Nack(false, false); nackErr != nil {
			log.Error().Err(nackErr).Str("message_id", d.MessageId).Msg("nack failed")
		}
	default:
		log.Error().Err(err).
			Str("message_id", d.MessageId).
			Bool("redelivered", d.Redelivered).
			Msg("handler failed, message requeued")
		if nackErr := d.Nack(false, true); nackErr != nil {
			log.Error().Err(nackErr).Str("message_id", d.MessageId).Msg("nack failed")
		}
	}
}

func safeHandle(ctx context.Context, body []byte, handler Handler) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic: %v", p)
		}
	}()
	return handler(ctx, body)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
