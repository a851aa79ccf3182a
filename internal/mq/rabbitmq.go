package mq

import (
	"FileHub/config"
	"context"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeThumbnails = "thumbnail.exchange"
	QueueThumbnails    = "thumbnail.queue"
	RoutingThumbnail   = "thumbnail"
)

// Rabbit is a RabbitMQ-backed Queue. Messages are persistent and
// manually acknowledged; a consumer crash before ack causes redelivery.
type Rabbit struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	publishMu sync.Mutex
}

// DialRabbit connects to RabbitMQ and declares the thumbnail topology.
func DialRabbit() (*Rabbit, error) {
	conn, err := amqp.Dial(config.AppConfig.RabbitMQURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	r := &Rabbit{conn: conn, channel: ch}
	if err := r.declareTopology(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Rabbit) declareTopology() error {
	if err := r.channel.ExchangeDeclare(
		ExchangeThumbnails,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	if _, err := r.channel.QueueDeclare(
		QueueThumbnails,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	return r.channel.QueueBind(
		QueueThumbnails,
		RoutingThumbnail,
		ExchangeThumbnails,
		false,
		nil,
	)
}

// Publish sends a persistent message to the thumbnail queue.
func (r *Rabbit) Publish(ctx context.Context, body []byte) error {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()
	return r.channel.PublishWithContext(
		ctx,
		ExchangeThumbnails,
		RoutingThumbnail,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}

// Consume starts a manual-ack consumer with the configured prefetch.
func (r *Rabbit) Consume(ctx context.Context) (<-chan Delivery, error) {
	prefetch := config.AppConfig.RabbitMQPrefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := r.channel.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	deliveries, err := r.channel.Consume(
		QueueThumbnails,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- &amqpDelivery{d: d}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close shuts the channel and connection.
func (r *Rabbit) Close() error {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

type amqpDelivery struct {
	d amqp.Delivery
}

func (a *amqpDelivery) Body() []byte { return a.d.Body }

func (a *amqpDelivery) Ack() error { return a.d.Ack(false) }

func (a *amqpDelivery) Nack(requeue bool) error { return a.d.Nack(false, requeue) }
