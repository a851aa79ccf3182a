package mq

import "context"

// Delivery is one message pulled from a queue. Consumers must either
// Ack or Nack; an unacknowledged message is redelivered, so processing
// has to tolerate duplicates.
type Delivery interface {
	Body() []byte
	Ack() error
	Nack(requeue bool) error
}

// Queue decouples job producers from the worker loop. Delivery is
// at-least-once; no ordering is guaranteed between jobs.
type Queue interface {
	Publish(ctx context.Context, body []byte) error
	Consume(ctx context.Context) (<-chan Delivery, error)
	Close() error
}
