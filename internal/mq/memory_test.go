package mq

import (
	"context"
	"testing"
	"time"
)

func receive(t *testing.T, deliveries <-chan Delivery) Delivery {
	t.Helper()
	select {
	case d, ok := <-deliveries:
		if !ok {
			t.Fatal("delivery channel closed")
		}
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
	return nil
}

// TestMemoryPublishConsume tests the basic pipe.
func TestMemoryPublishConsume(t *testing.T) {
	queue := NewMemory(4)
	defer queue.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := queue.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	if err := queue.Publish(ctx, []byte(`{"file_id":1}`)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	d := receive(t, deliveries)
	if string(d.Body()) != `{"file_id":1}` {
		t.Fatalf("unexpected body %s", d.Body())
	}
	if err := d.Ack(); err != nil {
		t.Fatalf("Ack failed: %v", err)
	}
}

// TestMemoryNackRequeue tests at-least-once redelivery.
func TestMemoryNackRequeue(t *testing.T) {
	queue := NewMemory(4)
	defer queue.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := queue.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	if err := queue.Publish(ctx, []byte("job")); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	first := receive(t, deliveries)
	if err := first.Nack(true); err != nil {
		t.Fatalf("Nack failed: %v", err)
	}

	second := receive(t, deliveries)
	if string(second.Body()) != "job" {
		t.Fatalf("expect redelivered body, got %s", second.Body())
	}
	_ = second.Ack()
}

// TestMemoryNackDrop tests that nack without requeue discards.
func TestMemoryNackDrop(t *testing.T) {
	queue := NewMemory(4)
	defer queue.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := queue.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	if err := queue.Publish(ctx, []byte("job")); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	d := receive(t, deliveries)
	if err := d.Nack(false); err != nil {
		t.Fatalf("Nack failed: %v", err)
	}

	select {
	case redelivered := <-deliveries:
		t.Fatalf("dropped message came back: %s", redelivered.Body())
	case <-time.After(100 * time.Millisecond):
	}
}

// TestMemoryClosed tests that a closed queue rejects publishes.
func TestMemoryClosed(t *testing.T) {
	queue := NewMemory(4)
	_ = queue.Close()

	if err := queue.Publish(context.Background(), []byte("job")); err == nil {
		t.Fatal("Publish on a closed queue should fail")
	}
}

// TestMemoryCloseUnblocksPublish tests the shutdown path: a publisher
// waiting on a full buffer must fail cleanly when the queue closes
// underneath it, never panic.
func TestMemoryCloseUnblocksPublish(t *testing.T) {
	queue := NewMemory(1)
	ctx := context.Background()

	if err := queue.Publish(ctx, []byte("fill")); err != nil {
		t.Fatalf("fill publish failed: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Publish panicked: %v", r)
				errCh <- nil
			}
		}()
		errCh <- queue.Publish(ctx, []byte("stuck"))
	}()

	// Give the publisher time to block on the full buffer.
	time.Sleep(50 * time.Millisecond)
	_ = queue.Close()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("publish during close should fail")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("publish still blocked after close")
	}
}

// TestMemoryCloseStopsConsumer tests that the delivery channel ends
// when the queue closes even with a consumer still attached.
func TestMemoryCloseStopsConsumer(t *testing.T) {
	queue := NewMemory(4)

	deliveries, err := queue.Consume(context.Background())
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	_ = queue.Close()

	select {
	case _, ok := <-deliveries:
		if ok {
			t.Fatal("expect closed delivery channel, got a delivery")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("delivery channel still open after close")
	}
}
