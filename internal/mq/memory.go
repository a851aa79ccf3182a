package mq

import (
	"context"
	"errors"
	"sync"
)

var errQueueClosed = errors.New("queue closed")

// Memory is an in-process queue on a buffered channel, used when the
// server runs its worker loop in the same process. Redelivery survives
// a Nack but not a process crash.
type Memory struct {
	jobs chan []byte
	done chan struct{}
	once sync.Once
}

// NewMemory creates an in-process queue with the given buffer size.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = 64
	}
	return &Memory{
		jobs: make(chan []byte, size),
		done: make(chan struct{}),
	}
}

// Publish enqueues a message, blocking while the buffer is full. A
// concurrent Close unblocks every waiting publisher with an error; the
// jobs channel itself is never closed, so no send can panic.
func (m *Memory) Publish(ctx context.Context, body []byte) error {
	select {
	case <-m.done:
		return errQueueClosed
	default:
	}
	select {
	case m.jobs <- body:
		return nil
	case <-m.done:
		return errQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume returns a delivery channel fed until ctx ends or the queue
// closes.
func (m *Memory) Consume(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.done:
				return
			case body := <-m.jobs:
				select {
				case out <- &memoryDelivery{queue: m, body: body}:
				case <-ctx.Done():
					return
				case <-m.done:
					return
				}
			}
		}
	}()
	return out, nil
}

// Close stops accepting messages and unblocks waiting publishers.
func (m *Memory) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}

type memoryDelivery struct {
	queue *Memory
	body  []byte
}

func (d *memoryDelivery) Body() []byte { return d.body }

func (d *memoryDelivery) Ack() error { return nil }

// Nack requeues the message when asked, dropping it otherwise.
func (d *memoryDelivery) Nack(requeue bool) error {
	if !requeue {
		return nil
	}
	return d.queue.Publish(context.Background(), d.body)
}
